package pivxjson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blockChainInfoDoc = `{
	"chain":"main",
	"blocks":4000000,
	"headers":4000000,
	"bestblockhash":"00000000000000000000000000000000000000000000000000000000000000aa",
	"difficulty":12345.6,
	"verificationprogress":0.9999,
	"chainwork":"00ff",
	"shield_pool_value":{"chainValue":1000.5,"valueDelta":-1.25},
	"initial_block_downloading":false,
	"softforks":[{"id":"bip65","version":5,"reject":{"status":true}}],
	"upgrades":{"PoS v2":{"activationheight":1967000,"status":"active","info":"Cold staking"}},
	"warnings":""
}`

func TestBlockChainInfo(t *testing.T) {
	var info BlockChainInfo
	require.NoError(t, json.Unmarshal([]byte(blockChainInfoDoc), &info))
	assert.Equal(t, "main", info.Chain)
	assert.Equal(t, int64(4000000), info.Blocks)
	require.NotNil(t, info.ShieldPoolValue)
	assert.Equal(t, -1.25, info.ShieldPoolValue.ValueDelta)
	require.Len(t, info.Softforks, 1)
	assert.True(t, info.Softforks[0].Reject.Status)
	assert.Equal(t, int64(1967000), info.Upgrades["PoS v2"].ActivationHeight)
}

func TestRequiredFieldMissingOrNull(t *testing.T) {
	var tip ChainTip
	err := json.Unmarshal([]byte(`{"height":1,"hash":"aa","status":"active"}`), &tip)
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "branchlen")

	err = json.Unmarshal([]byte(`{"height":1,"hash":"aa","branchlen":null,"status":"active"}`), &tip)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestOptionalFieldsStayNil(t *testing.T) {
	doc := `{
		"hash":"aa","confirmations":1,"height":10,"version":3,"merkleroot":"bb",
		"time":1,"mediantime":1,"nonce":0,"bits":"1d00ffff","difficulty":1,"chainwork":"00"
	}`
	var h BlockHeader
	require.NoError(t, json.Unmarshal([]byte(doc), &h))
	assert.Nil(t, h.PreviousBlockHash)
	assert.Nil(t, h.NextBlockHash)
	assert.Nil(t, h.AccCheckpoint)
	assert.Nil(t, h.ShieldPoolValue)
}

func TestInfoWithoutWallet(t *testing.T) {
	doc := `{
		"version":5030100,"protocolversion":70923,"staking status":"Staking Not Active",
		"blocks":10,"timeoffset":0,"connections":8,"proxy":"","difficulty":1,
		"testnet":false,"moneysupply":80000000.5,"relayfee":0.0001,"errors":""
	}`
	var info Info
	require.NoError(t, json.Unmarshal([]byte(doc), &info))
	assert.Equal(t, "Staking Not Active", info.StakingStatus)
	assert.Nil(t, info.Balance)
	assert.Nil(t, info.WalletVersion)
}

func TestShapeAndIsNull(t *testing.T) {
	assert.Equal(t, "null", Shape([]byte(" null")))
	assert.Equal(t, "object", Shape([]byte(`{}`)))
	assert.Equal(t, "array", Shape([]byte(`[]`)))
	assert.Equal(t, "string", Shape([]byte(`"x"`)))
	assert.Equal(t, "number", Shape([]byte(`-1`)))
	assert.Equal(t, "boolean", Shape([]byte(`true`)))
	assert.Equal(t, "invalid", Shape(nil))
	assert.True(t, IsNull(nil))
	assert.False(t, IsNull([]byte(`0`)))
}
