package rpc

import (
	"context"

	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
)

func (c *Client) GetBestBlockHash(ctx context.Context) (string, error) {
	var hash string
	if err := c.Call(ctx, "getbestblockhash", &hash); err != nil {
		return "", err
	}
	return hash, nil
}

func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	var count int64
	if err := c.Call(ctx, "getblockcount", &count); err != nil {
		return 0, err
	}
	return count, nil
}

// GetBlockHash returns the hash of the best-chain block at height.
func (c *Client) GetBlockHash(ctx context.Context, height int64) (string, error) {
	var hash string
	if err := c.Call(ctx, "getblockhash", &hash, height); err != nil {
		return "", err
	}
	return hash, nil
}

func (c *Client) GetBlockHeader(ctx context.Context, blockHash string) (*pivxjson.BlockHeader, error) {
	hash, err := hashParam("getblockheader", "blockhash", blockHash)
	if err != nil {
		return nil, err
	}
	var header pivxjson.BlockHeader
	if err := c.Call(ctx, "getblockheader", &header, hash); err != nil {
		return nil, err
	}
	return &header, nil
}

// GetBlock returns the verbose block. Its Tx list holds ids or full
// transactions, whichever the node sends.
func (c *Client) GetBlock(ctx context.Context, blockHash string) (*pivxjson.Block, error) {
	hash, err := hashParam("getblock", "blockhash", blockHash)
	if err != nil {
		return nil, err
	}
	var block pivxjson.Block
	if err := c.Call(ctx, "getblock", &block, hash); err != nil {
		return nil, err
	}
	return &block, nil
}

func (c *Client) GetBlockChainInfo(ctx context.Context) (*pivxjson.BlockChainInfo, error) {
	var info pivxjson.BlockChainInfo
	if err := c.Call(ctx, "getblockchaininfo", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) GetChainTips(ctx context.Context) ([]pivxjson.ChainTip, error) {
	var tips []pivxjson.ChainTip
	if err := c.Call(ctx, "getchaintips", &tips); err != nil {
		return nil, err
	}
	return tips, nil
}
