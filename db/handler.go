package db

import (
	"context"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/CADMonkey21/pivx-rpc-go/config"
	"github.com/CADMonkey21/pivx-rpc-go/logging"
	"github.com/CADMonkey21/pivx-rpc-go/monitor"
)

// Handler stores monitor snapshots in InfluxDB.
type Handler struct {
	cfg    config.InfluxDBConfig
	client influxdb2.Client
	writer api.WriteAPIBlocking
}

func NewHandler(cfg config.InfluxDBConfig) *Handler {
	logging.Infof("DB: Connecting to InfluxDB at %s", cfg.URL)
	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	return &Handler{
		cfg:    cfg,
		client: client,
		writer: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
	}
}

// Write stores one point per snapshot section.
func (h *Handler) Write(ctx context.Context, s *monitor.Snapshot) error {
	return h.writer.WritePoint(ctx, Points(s)...)
}

func (h *Handler) Close() {
	h.client.Close()
}

// Points converts a snapshot into line-protocol points tagged with the chain
// name. Missing sections produce no point.
func Points(s *monitor.Snapshot) []*write.Point {
	tags := map[string]string{"chain": s.Chain.Chain}
	ts := s.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	points := []*write.Point{
		influxdb2.NewPoint("chain", tags, map[string]interface{}{
			"blocks":                s.Chain.Blocks,
			"headers":               s.Chain.Headers,
			"difficulty":            s.Chain.Difficulty,
			"verification_progress": s.Chain.VerificationProgress,
		}, ts),
	}
	if s.Mempool != nil {
		points = append(points, influxdb2.NewPoint("mempool", tags, map[string]interface{}{
			"size":  s.Mempool.Size,
			"bytes": s.Mempool.Bytes,
			"usage": s.Mempool.Usage,
		}, ts))
	}
	if s.Masternodes != nil {
		points = append(points, influxdb2.NewPoint("masternodes", tags, map[string]interface{}{
			"total":   s.Masternodes.Total,
			"enabled": s.Masternodes.Enabled,
			"stable":  s.Masternodes.Stable,
		}, ts))
	}
	if s.Staking != nil {
		points = append(points, influxdb2.NewPoint("staking", tags, map[string]interface{}{
			"active":          s.Staking.StakingStatus,
			"balance":         s.Staking.StakingBalance,
			"stakeable_coins": s.Staking.StakeableCoins,
		}, ts))
	}
	if s.Supply != nil {
		points = append(points, influxdb2.NewPoint("supply", tags, map[string]interface{}{
			"total":       s.Supply.TotalSupply,
			"transparent": s.Supply.TransparentSupply,
			"shield":      s.Supply.ShieldSupply,
		}, ts))
	}
	return points
}
