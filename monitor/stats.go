package monitor

import (
	"fmt"
	"time"

	"github.com/CADMonkey21/pivx-rpc-go/logging"
)

func formatBytes(n int64) string {
	switch {
	case n > 1<<30:
		return fmt.Sprintf("%.2f GiB", float64(n)/(1<<30))
	case n > 1<<20:
		return fmt.Sprintf("%.2f MiB", float64(n)/(1<<20))
	case n > 1<<10:
		return fmt.Sprintf("%.2f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func formatAge(sec float64) string {
	switch {
	case sec > 86400:
		return fmt.Sprintf("%.2f days", sec/86400)
	case sec > 3600:
		return fmt.Sprintf("%.2f hours", sec/3600)
	case sec > 60:
		return fmt.Sprintf("%.2f minutes", sec/60)
	default:
		return fmt.Sprintf("%.0f seconds", sec)
	}
}

// LogStats prints a short summary of s.
func LogStats(s *Snapshot) {
	c := s.Chain
	logging.Infof("Chain: %s  height %d / headers %d  |  sync %.2f%%  difficulty %.2f",
		c.Chain, c.Blocks, c.Headers, c.VerificationProgress*100, c.Difficulty)
	if s.BestHeader != nil {
		age := s.Time.Sub(time.Unix(s.BestHeader.Time, 0)).Seconds()
		logging.Infof(" Tip: %s  (%s ago)", s.BestHeader.Hash, formatAge(age))
	}
	if s.Mempool != nil {
		logging.Infof(" Mempool: %d txs  %s", s.Mempool.Size, formatBytes(s.Mempool.Bytes))
	}
	if s.Masternodes != nil {
		logging.Infof(" Masternodes: %d enabled / %d total", s.Masternodes.Enabled, s.Masternodes.Total)
	}
	if s.Staking != nil {
		logging.Infof(" Staking: active=%t  balance %.4f PIV  coins %d",
			s.Staking.StakingStatus, s.Staking.StakingBalance, s.Staking.StakeableCoins)
	}
	if s.Supply != nil {
		logging.Infof(" Supply: %.2f PIV (%.2f transparent, %.2f shield)",
			s.Supply.TotalSupply, s.Supply.TransparentSupply, s.Supply.ShieldSupply)
	}
	for section, reason := range s.Errors {
		logging.Warnf(" %s: %s", section, reason)
	}
}
