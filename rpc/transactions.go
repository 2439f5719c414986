package rpc

import (
	"bytes"
	"context"
	"encoding/hex"

	"github.com/btcsuite/btcd/wire"

	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
)

// GetRawTransaction asks for a transaction by id. verbose selects the
// request form; the reply holds whatever form the node actually returned.
func (c *Client) GetRawTransaction(ctx context.Context, txid string, verbose bool) (*pivxjson.RawTransactionReply, error) {
	id, err := hashParam("getrawtransaction", "txid", txid)
	if err != nil {
		return nil, err
	}
	var reply pivxjson.RawTransactionReply
	if err := c.Call(ctx, "getrawtransaction", &reply, id, verbose); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetTxOut looks up an unspent output. The reply's Out is nil when the
// output does not exist or has been spent.
func (c *Client) GetTxOut(ctx context.Context, txid string, vout uint32, includeMempool bool) (*pivxjson.TxOutReply, error) {
	id, err := hashParam("gettxout", "txid", txid)
	if err != nil {
		return nil, err
	}
	var reply pivxjson.TxOutReply
	if err := c.Call(ctx, "gettxout", &reply, id, vout, includeMempool); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) GetTxOutSetInfo(ctx context.Context) (*pivxjson.TxOutSetInfo, error) {
	var info pivxjson.TxOutSetInfo
	if err := c.Call(ctx, "gettxoutsetinfo", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// CreateRawTransaction builds an unsigned transaction spending inputs to
// outputs (address -> amount in coins). lockTime is optional.
func (c *Client) CreateRawTransaction(ctx context.Context, inputs []pivxjson.TxInput, outputs map[string]float64, lockTime *uint32) (string, error) {
	if inputs == nil {
		inputs = []pivxjson.TxInput{}
	}
	if outputs == nil {
		outputs = map[string]float64{}
	}
	var txHex string
	if err := c.Call(ctx, "createrawtransaction", &txHex, inputs, outputs, lockTime); err != nil {
		return "", err
	}
	return txHex, nil
}

// SignRawTransaction signs txHex. prevTxs, privKeys and sigHashType are
// optional and may be nil/empty.
func (c *Client) SignRawTransaction(ctx context.Context, txHex string, prevTxs []pivxjson.PrevTx, privKeys []string, sigHashType string) (*pivxjson.SignedTx, error) {
	if txHex == "" {
		return nil, requestErrorf("signrawtransaction", "empty transaction")
	}
	var signed pivxjson.SignedTx
	if err := c.Call(ctx, "signrawtransaction", &signed, txHex, prevTxs, privKeys, optString(sigHashType)); err != nil {
		return nil, err
	}
	return &signed, nil
}

// SendRawTransaction broadcasts a serialized transaction and returns its id.
func (c *Client) SendRawTransaction(ctx context.Context, txHex string, allowHighFees *bool) (string, error) {
	if txHex == "" {
		return "", requestErrorf("sendrawtransaction", "empty transaction")
	}
	var txid string
	if err := c.Call(ctx, "sendrawtransaction", &txid, txHex, allowHighFees); err != nil {
		return "", err
	}
	return txid, nil
}

// SendMsgTx serializes tx and broadcasts it with sendrawtransaction.
func (c *Client) SendMsgTx(ctx context.Context, tx *wire.MsgTx, allowHighFees *bool) (string, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return "", requestErrorf("sendrawtransaction", "serialize: %w", err)
	}
	return c.SendRawTransaction(ctx, hex.EncodeToString(buf.Bytes()), allowHighFees)
}
