package web

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/CADMonkey21/pivx-rpc-go/monitor"
)

// SnapshotSource provides the latest node snapshot.
type SnapshotSource interface {
	Latest() *monitor.Snapshot
}

// InFlighter reports how many of a client's request slots are in use.
type InFlighter interface {
	InFlight() int
	Capacity() int
}

type status struct {
	Height         int64   `json:"height"`
	Headers        int64   `json:"headers"`
	BestBlockHash  string  `json:"best_block_hash"`
	SyncProgress   float64 `json:"sync_progress"`
	MempoolTxs     int64   `json:"mempool_txs"`
	MasternodesOn  int32   `json:"masternodes_enabled"`
	StakingActive  bool    `json:"staking_active"`
	TotalSupply    float64 `json:"total_supply"`
	SnapshotAgeSec float64 `json:"snapshot_age_secs"`
	GoRoutines     int     `json:"go_routines"`
	RPCInFlight    int     `json:"rpc_in_flight"`
	RPCCapacity    int     `json:"rpc_capacity"`
}

// NewDashboard serves a JSON status summary at "/" and the full latest
// snapshot at "/snapshot". Both answer 503 until the first poll succeeds.
func NewDashboard(src SnapshotSource, client InFlighter) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/snapshot", func(w http.ResponseWriter, r *http.Request) {
		snap := src.Latest()
		if snap == nil {
			http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, snap)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		snap := src.Latest()
		if snap == nil {
			http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
			return
		}
		s := status{
			Height:         snap.Chain.Blocks,
			Headers:        snap.Chain.Headers,
			BestBlockHash:  snap.Chain.BestBlockHash,
			SyncProgress:   snap.Chain.VerificationProgress,
			SnapshotAgeSec: time.Since(snap.Time).Seconds(),
			GoRoutines:     runtime.NumGoroutine(),
		}
		if client != nil {
			s.RPCInFlight = client.InFlight()
			s.RPCCapacity = client.Capacity()
		}
		if snap.Mempool != nil {
			s.MempoolTxs = snap.Mempool.Size
		}
		if snap.Masternodes != nil {
			s.MasternodesOn = snap.Masternodes.Enabled
		}
		if snap.Staking != nil {
			s.StakingActive = snap.Staking.StakingStatus
		}
		if snap.Supply != nil {
			s.TotalSupply = snap.Supply.TotalSupply
		}
		writeJSON(w, s)
	})
	return mux
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
