package rpc

import (
	"context"
	"math"
)

// GetNewAddress returns a fresh wallet address. label and addressType are
// optional.
func (c *Client) GetNewAddress(ctx context.Context, label, addressType string) (string, error) {
	var addr string
	if err := c.Call(ctx, "getnewaddress", &addr, optString(label), optString(addressType)); err != nil {
		return "", err
	}
	return addr, nil
}

func (c *Client) DumpPrivKey(ctx context.Context, address string) (string, error) {
	if address == "" {
		return "", requestErrorf("dumpprivkey", "empty address")
	}
	var key string
	if err := c.Call(ctx, "dumpprivkey", &key, address); err != nil {
		return "", err
	}
	return key, nil
}

// SendToAddress pays amount coins to address and returns the txid. comment,
// commentTo and subtractFee are optional.
func (c *Client) SendToAddress(ctx context.Context, address string, amount float64, comment, commentTo string, subtractFee *bool) (string, error) {
	if address == "" {
		return "", requestErrorf("sendtoaddress", "empty address")
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return "", requestErrorf("sendtoaddress", "amount %v must be a positive finite number", amount)
	}
	var txid string
	if err := c.Call(ctx, "sendtoaddress", &txid, address, amount, optString(comment), optString(commentTo), subtractFee); err != nil {
		return "", err
	}
	return txid, nil
}

// Generate mines nBlocks blocks on regtest and returns their hashes.
func (c *Client) Generate(ctx context.Context, nBlocks int, maxTries *int) ([]string, error) {
	if nBlocks < 1 {
		return nil, requestErrorf("generate", "nblocks %d must be positive", nBlocks)
	}
	var hashes []string
	if err := c.Call(ctx, "generate", &hashes, nBlocks, maxTries); err != nil {
		return nil, err
	}
	return hashes, nil
}
