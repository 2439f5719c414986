package rpc

import (
	"context"

	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
)

// GetRawMempool lists mempool transactions. verbose asks for the detailed
// mapping; the result is decoded from the shape the node actually sent.
func (c *Client) GetRawMempool(ctx context.Context, verbose bool) (*pivxjson.RawMempool, error) {
	var pool pivxjson.RawMempool
	if err := c.Call(ctx, "getrawmempool", &pool, verbose); err != nil {
		return nil, err
	}
	return &pool, nil
}

func (c *Client) GetMempoolInfo(ctx context.Context) (*pivxjson.MempoolInfo, error) {
	var info pivxjson.MempoolInfo
	if err := c.Call(ctx, "getmempoolinfo", &info); err != nil {
		return nil, err
	}
	return &info, nil
}
