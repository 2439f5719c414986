package rpc

import (
	"context"

	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
)

func (c *Client) GetMasternodeCount(ctx context.Context) (*pivxjson.MasternodeCount, error) {
	var count pivxjson.MasternodeCount
	if err := c.Call(ctx, "getmasternodecount", &count); err != nil {
		return nil, err
	}
	return &count, nil
}

// ListMasternodes returns the masternode list, optionally narrowed by a
// filter string (address, txhash or status).
func (c *Client) ListMasternodes(ctx context.Context, filter string) ([]pivxjson.MasternodeEntry, error) {
	var list []pivxjson.MasternodeEntry
	if err := c.Call(ctx, "listmasternodes", &list, optString(filter)); err != nil {
		return nil, err
	}
	return list, nil
}
