package rpc

import (
	"context"

	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
)

func (c *Client) GetInfo(ctx context.Context) (*pivxjson.Info, error) {
	var info pivxjson.Info
	if err := c.Call(ctx, "getinfo", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetSupplyInfo returns the money supply. forceUpdate makes the node
// recalculate instead of returning its cached figure.
func (c *Client) GetSupplyInfo(ctx context.Context, forceUpdate bool) (*pivxjson.MoneySupply, error) {
	var supply pivxjson.MoneySupply
	if err := c.Call(ctx, "getsupplyinfo", &supply, forceUpdate); err != nil {
		return nil, err
	}
	return &supply, nil
}
