package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CADMonkey21/pivx-rpc-go/mocks"
	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
	"github.com/CADMonkey21/pivx-rpc-go/rpc"
)

const tipHash = "00000000000000000000000000000000000000000000000000000000000000aa"

func chainInfo() *pivxjson.BlockChainInfo {
	return &pivxjson.BlockChainInfo{Chain: "main", Blocks: 100, Headers: 100, BestBlockHash: tipHash}
}

func expectSections(node *mocks.MockNodeClient) {
	node.EXPECT().GetMempoolInfo(gomock.Any()).Return(&pivxjson.MempoolInfo{Size: 3, Bytes: 900}, nil)
	node.EXPECT().GetMasternodeCount(gomock.Any()).Return(&pivxjson.MasternodeCount{Total: 10, Enabled: 9}, nil)
	node.EXPECT().GetSupplyInfo(gomock.Any(), false).Return(&pivxjson.MoneySupply{TotalSupply: 1000}, nil)
}

type recordingSink struct {
	got []*Snapshot
}

func (s *recordingSink) Write(_ context.Context, snap *Snapshot) error {
	s.got = append(s.got, snap)
	return nil
}

func TestPollCollectsSections(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := mocks.NewMockNodeClient(ctrl)

	node.EXPECT().GetBlockChainInfo(gomock.Any()).Return(chainInfo(), nil)
	expectSections(node)
	node.EXPECT().GetStakingStatus(gomock.Any()).Return(nil, &rpc.RPCError{Method: "getstakingstatus", Code: btcjson.ErrRPCMethodNotFound.Code, Message: "Method not found"})
	node.EXPECT().GetBlockHeader(gomock.Any(), tipHash).Return(&pivxjson.BlockHeader{Hash: tipHash, Height: 100}, nil)

	m := New(node, time.Minute)
	updates, cancel := m.Subscribe()
	defer cancel()

	snap, err := m.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(100), snap.Chain.Blocks)
	assert.Equal(t, int64(3), snap.Mempool.Size)
	assert.Equal(t, int32(9), snap.Masternodes.Enabled)
	assert.Nil(t, snap.Staking)
	assert.Contains(t, snap.Errors["staking"], "Method not found")
	assert.Equal(t, int64(100), snap.BestHeader.Height)
	assert.Same(t, snap, m.Latest())

	select {
	case got := <-updates:
		assert.Same(t, snap, got)
	default:
		t.Fatal("no snapshot published")
	}
}

func TestPollReusesHeaderForSameTip(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := mocks.NewMockNodeClient(ctrl)

	node.EXPECT().GetBlockChainInfo(gomock.Any()).Return(chainInfo(), nil).Times(2)
	node.EXPECT().GetMempoolInfo(gomock.Any()).Return(&pivxjson.MempoolInfo{}, nil).Times(2)
	node.EXPECT().GetMasternodeCount(gomock.Any()).Return(&pivxjson.MasternodeCount{}, nil).Times(2)
	node.EXPECT().GetStakingStatus(gomock.Any()).Return(&pivxjson.StakingStatus{}, nil).Times(2)
	node.EXPECT().GetSupplyInfo(gomock.Any(), true).Return(&pivxjson.MoneySupply{}, nil).Times(2)
	node.EXPECT().GetBlockHeader(gomock.Any(), tipHash).Return(&pivxjson.BlockHeader{Hash: tipHash}, nil).Times(1)

	m := New(node, time.Minute)
	m.SetForceSupplyUpdate(true)
	first, err := m.Poll(context.Background())
	require.NoError(t, err)
	second, err := m.Poll(context.Background())
	require.NoError(t, err)
	assert.Same(t, first.BestHeader, second.BestHeader)
}

func TestPollFailsWithoutChainInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := mocks.NewMockNodeClient(ctrl)

	warmup := &rpc.RPCError{Method: "getblockchaininfo", Code: -28, Message: "Loading block index..."}
	node.EXPECT().GetBlockChainInfo(gomock.Any()).Return(nil, warmup)
	node.EXPECT().GetMempoolInfo(gomock.Any()).Return(nil, errors.New("down")).AnyTimes()
	node.EXPECT().GetMasternodeCount(gomock.Any()).Return(nil, errors.New("down")).AnyTimes()
	node.EXPECT().GetStakingStatus(gomock.Any()).Return(nil, errors.New("down")).AnyTimes()
	node.EXPECT().GetSupplyInfo(gomock.Any(), gomock.Any()).Return(nil, errors.New("down")).AnyTimes()

	m := New(node, time.Minute)
	_, err := m.Poll(context.Background())
	var rpcErr *rpc.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.True(t, rpcErr.IsWarmup())
	assert.Nil(t, m.Latest())
}

func TestRunWritesSinkAndStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := mocks.NewMockNodeClient(ctrl)

	node.EXPECT().GetBlockChainInfo(gomock.Any()).Return(chainInfo(), nil).MinTimes(1)
	node.EXPECT().GetMempoolInfo(gomock.Any()).Return(&pivxjson.MempoolInfo{}, nil).MinTimes(1)
	node.EXPECT().GetMasternodeCount(gomock.Any()).Return(&pivxjson.MasternodeCount{}, nil).MinTimes(1)
	node.EXPECT().GetStakingStatus(gomock.Any()).Return(&pivxjson.StakingStatus{}, nil).MinTimes(1)
	node.EXPECT().GetSupplyInfo(gomock.Any(), false).Return(&pivxjson.MoneySupply{}, nil).MinTimes(1)
	node.EXPECT().GetBlockHeader(gomock.Any(), tipHash).Return(&pivxjson.BlockHeader{Hash: tipHash}, nil).Times(1)

	sink := &recordingSink{}
	m := New(node, time.Hour)
	m.SetSink(sink)

	updates, unsubscribe := m.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	select {
	case <-updates:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not poll")
	}
	cancel()
	require.NoError(t, <-done)
	assert.Len(t, sink.got, 1)
}

func TestSetClientSwitchesNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	oldNode := mocks.NewMockNodeClient(ctrl)
	newNode := mocks.NewMockNodeClient(ctrl)

	newNode.EXPECT().GetBlockChainInfo(gomock.Any()).Return(chainInfo(), nil)
	expectSections(newNode)
	newNode.EXPECT().GetStakingStatus(gomock.Any()).Return(&pivxjson.StakingStatus{}, nil)
	newNode.EXPECT().GetBlockHeader(gomock.Any(), tipHash).Return(&pivxjson.BlockHeader{Hash: tipHash}, nil)

	m := New(oldNode, time.Minute)
	m.SetClient(newNode)
	_, err := m.Poll(context.Background())
	require.NoError(t, err)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	m := New(nil, time.Minute)
	ch, cancel := m.Subscribe()
	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "2.00 KiB", formatBytes(2048))
	assert.Equal(t, "1.50 hours", formatAge(5400))
	assert.Equal(t, "30 seconds", formatAge(30))
}
