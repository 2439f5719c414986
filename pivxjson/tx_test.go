package pivxjson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coinbaseVin = `{"coinbase":"03a08601","sequence":4294967295}`

const prevoutVin = `{
	"txid":"5f1a7ec1b1a4f3d8e0c1c5f0e7a9d1b2c3d4e5f60718293a4b5c6d7e8f901234",
	"vout":1,
	"scriptSig":{"asm":"3044","hex":"473044"},
	"sequence":4294967294
}`

func TestVinVariants(t *testing.T) {
	var cb Vin
	require.NoError(t, json.Unmarshal([]byte(coinbaseVin), &cb))
	assert.Equal(t, VinCoinbase, cb.Kind())
	assert.True(t, cb.IsCoinBase())
	assert.Equal(t, "03a08601", cb.Coinbase.Coinbase)
	assert.Nil(t, cb.Prevout)

	var po Vin
	require.NoError(t, json.Unmarshal([]byte(prevoutVin), &po))
	assert.Equal(t, VinPrevout, po.Kind())
	assert.False(t, po.IsCoinBase())
	assert.Equal(t, uint32(1), po.Prevout.Vout)
	assert.Equal(t, "473044", po.Prevout.ScriptSig.Hex)
	assert.Equal(t, uint32(4294967294), po.Prevout.Sequence)
}

func TestVinRejectsAmbiguousInput(t *testing.T) {
	cases := map[string]string{
		"both":       `{"coinbase":"00","txid":"ab","vout":0,"scriptSig":{"asm":"","hex":""},"sequence":0}`,
		"neither":    `{"sequence":0}`,
		"no vout":    `{"txid":"ab","scriptSig":{"asm":"","hex":""},"sequence":0}`,
		"not object": `"03a08601"`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			var v Vin
			err := json.Unmarshal([]byte(doc), &v)
			assert.ErrorIs(t, err, ErrUnknownShape)
		})
	}
}

func TestVinMissingSequence(t *testing.T) {
	var v Vin
	err := json.Unmarshal([]byte(`{"coinbase":"00"}`), &v)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestTxOutReply(t *testing.T) {
	var empty TxOutReply
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.False(t, empty.Found())

	doc := `{
		"bestblock":"0000000000000000000000000000000000000000000000000000000000000abc",
		"confirmations":12,
		"value":2.5,
		"scriptPubKey":{"asm":"OP_DUP","hex":"76a9","reqSigs":1,"type":"pubkeyhash","addresses":["DAddr"]},
		"coinbase":false
	}`
	var found TxOutReply
	require.NoError(t, json.Unmarshal([]byte(doc), &found))
	require.True(t, found.Found())
	assert.Equal(t, int64(12), found.Out.Confirmations)
	assert.Equal(t, []string{"DAddr"}, found.Out.ScriptPubKey.Addresses)
	require.NotNil(t, found.Out.ScriptPubKey.ReqSigs)
	assert.Equal(t, int64(1), *found.Out.ScriptPubKey.ReqSigs)

	amt, err := found.Out.Amount()
	require.NoError(t, err)
	assert.Equal(t, int64(250000000), int64(amt))

	var bad TxOutReply
	assert.ErrorIs(t, json.Unmarshal([]byte(`[1,2]`), &bad), ErrUnknownShape)
}

func TestTxOutReplyMissingField(t *testing.T) {
	var r TxOutReply
	err := json.Unmarshal([]byte(`{"bestblock":"ab","confirmations":1,"value":1,"coinbase":true}`), &r)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "scriptPubKey")
}

func TestRawTransactionReply(t *testing.T) {
	var hexOnly RawTransactionReply
	require.NoError(t, json.Unmarshal([]byte(`"0100000001"`), &hexOnly))
	assert.False(t, hexOnly.Verbose())
	assert.Equal(t, "0100000001", hexOnly.Hex)

	doc := `{
		"txid":"aa","version":1,"type":0,"size":225,"locktime":0,
		"vin":[` + coinbaseVin + `],
		"vout":[{"value":1.5,"n":0,"scriptPubKey":{"asm":"","hex":"00"}}],
		"hex":"01000000",
		"blockhash":"bb","confirmations":3,"time":1600000000,"blocktime":1600000000
	}`
	var verbose RawTransactionReply
	require.NoError(t, json.Unmarshal([]byte(doc), &verbose))
	require.True(t, verbose.Verbose())
	assert.Equal(t, "01000000", verbose.Hex)
	assert.Equal(t, "aa", verbose.Info.Txid)
	assert.True(t, verbose.Info.Vin[0].IsCoinBase())
	require.NotNil(t, verbose.Info.BlockHash)
	assert.Equal(t, "bb", *verbose.Info.BlockHash)
	assert.Nil(t, verbose.Info.ValueBalance)

	var bad RawTransactionReply
	assert.ErrorIs(t, json.Unmarshal([]byte(`12`), &bad), ErrUnknownShape)
}

func TestBlockTxList(t *testing.T) {
	var ids BlockTxList
	require.NoError(t, json.Unmarshal([]byte(`["aa","bb"]`), &ids))
	assert.Equal(t, []string{"aa", "bb"}, ids.TxIDs())
	assert.Equal(t, 2, ids.Len())

	var empty BlockTxList
	require.NoError(t, json.Unmarshal([]byte(`[]`), &empty))
	assert.Equal(t, 0, empty.Len())
	assert.NotNil(t, empty.IDs)

	full := `[{"txid":"cc","version":1,"size":10,"locktime":0,"vin":[],"vout":[],"hex":"00"}]`
	var txs BlockTxList
	require.NoError(t, json.Unmarshal([]byte(full), &txs))
	assert.Equal(t, []string{"cc"}, txs.TxIDs())
	assert.Len(t, txs.Txs, 1)

	var mixed BlockTxList
	assert.ErrorIs(t, json.Unmarshal([]byte(`["aa",{"txid":"cc"}]`), &mixed), ErrUnknownShape)
}

func TestVinMarshalKeepsVariantShape(t *testing.T) {
	var v Vin
	require.NoError(t, json.Unmarshal([]byte(prevoutVin), &v))
	out, err := json.Marshal(v)
	require.NoError(t, err)

	var again Vin
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, v, again)

	_, err = json.Marshal(Vin{})
	assert.Error(t, err)
}
