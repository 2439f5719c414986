package rpc

import (
	"context"

	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
)

func (c *Client) GetStakingStatus(ctx context.Context) (*pivxjson.StakingStatus, error) {
	var status pivxjson.StakingStatus
	if err := c.Call(ctx, "getstakingstatus", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ListColdUtxos returns the cold-staking delegations held by the wallet.
func (c *Client) ListColdUtxos(ctx context.Context) ([]pivxjson.ColdUtxo, error) {
	var utxos []pivxjson.ColdUtxo
	if err := c.Call(ctx, "listcoldutxos", &utxos); err != nil {
		return nil, err
	}
	return utxos, nil
}

// DelegatorAdd whitelists an owner address for cold staking.
func (c *Client) DelegatorAdd(ctx context.Context, address, label string) (bool, error) {
	if address == "" {
		return false, requestErrorf("delegatoradd", "empty address")
	}
	var ok bool
	if err := c.Call(ctx, "delegatoradd", &ok, address, optString(label)); err != nil {
		return false, err
	}
	return ok, nil
}
