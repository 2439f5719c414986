package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/soheilhy/cmux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/CADMonkey21/pivx-rpc-go/config"
	"github.com/CADMonkey21/pivx-rpc-go/db"
	"github.com/CADMonkey21/pivx-rpc-go/feed"
	"github.com/CADMonkey21/pivx-rpc-go/logging"
	"github.com/CADMonkey21/pivx-rpc-go/monitor"
	"github.com/CADMonkey21/pivx-rpc-go/rpc"
	"github.com/CADMonkey21/pivx-rpc-go/web"
)

var monitorCommand = &cobra.Command{
	Use:   "monitor",
	Short: "poll the node and serve its state over HTTP and TCP",
	RunE:  runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCommand)
	monitorCommand.Flags().String("monitor.listen", "", "address for the dashboard and snapshot feed")
	monitorCommand.Flags().Int("monitor.interval", 0, "poll interval in seconds")
	monitorCommand.Flags().Bool("monitor.forcesupply", false, "ask the node to recompute supply on every poll")
	monitorCommand.Flags().String("influxdb.url", "", "InfluxDB url, empty disables storage")
	monitorCommand.Flags().String("influxdb.token", "", "InfluxDB token")
	monitorCommand.Flags().String("influxdb.org", "", "InfluxDB organization")
	monitorCommand.Flags().String("influxdb.bucket", "", "InfluxDB bucket")
	for _, name := range []string{
		"monitor.listen", "monitor.interval", "monitor.forcesupply",
		"influxdb.url", "influxdb.token", "influxdb.org", "influxdb.bucket",
	} {
		_ = viper.BindPFlag(name, monitorCommand.Flags().Lookup(name))
	}
}

// currentClient lets the dashboard follow client rebuilds.
type currentClient struct {
	p atomic.Pointer[rpc.Client]
}

func (c *currentClient) InFlight() int {
	if client := c.p.Load(); client != nil {
		return client.InFlight()
	}
	return 0
}

func (c *currentClient) Capacity() int {
	if client := c.p.Load(); client != nil {
		return client.Capacity()
	}
	return 0
}

func isClosed(err error) bool {
	return err == nil ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, http.ErrServerClosed) ||
		errors.Is(err, cmux.ErrListenerClosed)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	logging.Infof("🚀  pivx-rpc monitor starting up")
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conn, err := cfg.ConnConfig()
	if err != nil {
		return err
	}
	client, err := rpc.NewClient(conn)
	if err != nil {
		return err
	}
	var current currentClient
	current.p.Store(client)

	mon := monitor.New(client, cfg.Interval())
	mon.SetForceSupplyUpdate(cfg.Monitor.ForceSupply)
	if cfg.InfluxDB.Enabled() {
		handler := db.NewHandler(cfg.InfluxDB)
		defer handler.Close()
		mon.SetSink(handler)
	}

	baseListener, err := net.Listen("tcp", cfg.Monitor.Listen)
	if err != nil {
		return err
	}

	// One port: HTTP/1 goes to the dashboard, everything else to the feed.
	m := cmux.New(baseListener)
	httpL := m.Match(cmux.HTTP1Fast())
	feedL := m.Match(cmux.Any())

	httpSrv := &http.Server{
		Handler:           web.NewDashboard(mon, &current),
		ReadHeaderTimeout: 10 * time.Second,
	}
	feedSrv := feed.NewServer(mon)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpSrv.Serve(httpL); !isClosed(err) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := feedSrv.Serve(feedL); !isClosed(err) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := m.Serve(); !isClosed(err) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return mon.Run(gctx)
	})
	g.Go(func() error {
		err := config.Watch(gctx, viper.GetString("config"), func(next config.Config) {
			next.ApplyOverrides(viper.GetViper())
			logging.SetLogLevel(logging.ParseLevel(next.LogLevel))
			conn, err := next.ConnConfig()
			if err != nil {
				logging.Errorf("MAIN: Ignoring new configuration: %v", err)
				return
			}
			rebuilt, err := rpc.NewClient(conn)
			if err != nil {
				logging.Errorf("MAIN: Ignoring new configuration: %v", err)
				return
			}
			current.p.Store(rebuilt)
			mon.SetClient(rebuilt)
			logging.Infof("MAIN: RPC client rebuilt for %s", conn.Endpoint)
		})
		if err != nil {
			logging.Warnf("MAIN: Config reload disabled: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logging.Infof("MAIN: Shutting down...")
		_ = httpSrv.Close()
		return baseListener.Close()
	})

	logging.Infof("MAIN: Startup complete, dashboard + feed on %s. Press Ctrl+C to exit.", baseListener.Addr())
	if err := g.Wait(); !isClosed(err) {
		return err
	}
	return nil
}
