// Package monitor polls a PIVX node on an interval and keeps the latest
// snapshot of its chain, mempool, masternode, staking and supply state.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/CADMonkey21/pivx-rpc-go/logging"
	"github.com/CADMonkey21/pivx-rpc-go/pivxjson"
	"github.com/CADMonkey21/pivx-rpc-go/rpc"
)

// NodeClient is the part of *rpc.Client the monitor uses.
type NodeClient interface {
	GetBlockChainInfo(ctx context.Context) (*pivxjson.BlockChainInfo, error)
	GetBlockHeader(ctx context.Context, blockHash string) (*pivxjson.BlockHeader, error)
	GetMempoolInfo(ctx context.Context) (*pivxjson.MempoolInfo, error)
	GetMasternodeCount(ctx context.Context) (*pivxjson.MasternodeCount, error)
	GetStakingStatus(ctx context.Context) (*pivxjson.StakingStatus, error)
	GetSupplyInfo(ctx context.Context, forceUpdate bool) (*pivxjson.MoneySupply, error)
}

var _ NodeClient = (*rpc.Client)(nil)

// Sink receives every successful snapshot.
type Sink interface {
	Write(ctx context.Context, s *Snapshot) error
}

// Snapshot is one poll of the node. Only Chain is guaranteed; the other
// sections are nil when their call failed, with the reason in Errors.
type Snapshot struct {
	Time        time.Time                 `json:"time"`
	Chain       *pivxjson.BlockChainInfo  `json:"chain"`
	BestHeader  *pivxjson.BlockHeader     `json:"best_header,omitempty"`
	Mempool     *pivxjson.MempoolInfo     `json:"mempool,omitempty"`
	Masternodes *pivxjson.MasternodeCount `json:"masternodes,omitempty"`
	Staking     *pivxjson.StakingStatus   `json:"staking,omitempty"`
	Supply      *pivxjson.MoneySupply     `json:"supply,omitempty"`
	Errors      map[string]string         `json:"errors,omitempty"`
}

type Monitor struct {
	mu          sync.RWMutex
	client      NodeClient
	sink        Sink
	interval    time.Duration
	forceSupply bool
	latest      *Snapshot
	subs        map[chan *Snapshot]struct{}
}

func New(client NodeClient, interval time.Duration) *Monitor {
	return &Monitor{
		client:   client,
		interval: interval,
		subs:     make(map[chan *Snapshot]struct{}),
	}
}

// SetClient swaps the node client, e.g. after a configuration reload. Polls
// already running finish on the old client.
func (m *Monitor) SetClient(c NodeClient) {
	m.mu.Lock()
	m.client = c
	m.mu.Unlock()
}

func (m *Monitor) SetSink(s Sink) {
	m.mu.Lock()
	m.sink = s
	m.mu.Unlock()
}

// SetForceSupplyUpdate makes every poll ask the node to recompute the supply.
func (m *Monitor) SetForceSupplyUpdate(force bool) {
	m.mu.Lock()
	m.forceSupply = force
	m.mu.Unlock()
}

// Latest returns the most recent snapshot, or nil before the first
// successful poll.
func (m *Monitor) Latest() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest
}

// Subscribe returns a channel receiving every new snapshot and a function
// that ends the subscription. Slow subscribers miss snapshots.
func (m *Monitor) Subscribe() (<-chan *Snapshot, func()) {
	ch := make(chan *Snapshot, 4)
	m.mu.Lock()
	m.subs[ch] = struct{}{}
	m.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, ch)
			m.mu.Unlock()
			close(ch)
		})
	}
}

// Poll queries the node once, concurrently for each section, and publishes
// the result.
func (m *Monitor) Poll(ctx context.Context) (*Snapshot, error) {
	m.mu.RLock()
	client, force, prev := m.client, m.forceSupply, m.latest
	m.mu.RUnlock()

	snap := &Snapshot{Time: time.Now().UTC()}
	var errMu sync.Mutex
	optional := func(section string, err error) {
		if err == nil {
			return
		}
		errMu.Lock()
		defer errMu.Unlock()
		if snap.Errors == nil {
			snap.Errors = make(map[string]string)
		}
		snap.Errors[section] = err.Error()
		logging.Debugf("MONITOR: %s unavailable: %v", section, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := client.GetBlockChainInfo(gctx)
		snap.Chain = info
		return err
	})
	g.Go(func() error {
		info, err := client.GetMempoolInfo(gctx)
		snap.Mempool = info
		optional("mempool", err)
		return nil
	})
	g.Go(func() error {
		count, err := client.GetMasternodeCount(gctx)
		snap.Masternodes = count
		optional("masternodes", err)
		return nil
	})
	g.Go(func() error {
		status, err := client.GetStakingStatus(gctx)
		snap.Staking = status
		optional("staking", err)
		return nil
	})
	g.Go(func() error {
		supply, err := client.GetSupplyInfo(gctx, force)
		snap.Supply = supply
		optional("supply", err)
		return nil
	})
	if err := g.Wait(); err != nil {
		var rpcErr *rpc.RPCError
		if errors.As(err, &rpcErr) && rpcErr.IsWarmup() {
			logging.Warnf("MONITOR: Node is still warming up: %s", rpcErr.Message)
		}
		return nil, err
	}

	if prev != nil && prev.BestHeader != nil && prev.BestHeader.Hash == snap.Chain.BestBlockHash {
		snap.BestHeader = prev.BestHeader
	} else {
		header, err := client.GetBlockHeader(ctx, snap.Chain.BestBlockHash)
		optional("best_header", err)
		if header != nil {
			snap.BestHeader = header
			logging.Noticef("MONITOR: New best block %d (%s)", header.Height, header.Hash)
		}
	}

	m.publish(snap)
	return snap, nil
}

func (m *Monitor) publish(snap *Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest = snap
	for ch := range m.subs {
		select {
		case ch <- snap:
		default:
			logging.Warnf("MONITOR: Subscriber channel is full, dropping snapshot.")
		}
	}
}

// Run polls every interval until ctx is done. Failed polls are logged and
// retried at the next tick.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	reachable := false
	for {
		snap, err := m.Poll(ctx)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil
		case err != nil:
			logging.Errorf("MONITOR: Poll failed: %v", err)
			reachable = false
		default:
			if !reachable {
				logging.Successf("MONITOR: Node reachable on %s at height %d", snap.Chain.Chain, snap.Chain.Blocks)
				reachable = true
			}
			LogStats(snap)
			m.writeSink(ctx, snap)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (m *Monitor) writeSink(ctx context.Context, snap *Snapshot) {
	m.mu.RLock()
	sink := m.sink
	m.mu.RUnlock()
	if sink == nil {
		return
	}
	if err := sink.Write(ctx, snap); err != nil {
		logging.Warnf("MONITOR: Failed to store snapshot: %v", err)
	}
}
