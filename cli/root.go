package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CADMonkey21/pivx-rpc-go/config"
	"github.com/CADMonkey21/pivx-rpc-go/logging"
)

var rootCmd = &cobra.Command{
	Use:   "pivx-rpc",
	Short: "pivx-rpc talks JSON-RPC to a PIVX node",
	Long: "pivx-rpc calls methods on a PIVX full node over its JSON-RPC interface " +
		"and can run a monitor that polls the node and serves its state",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return errors.New("unable to run root command")
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	flags.String("config", config.DefaultPath, "path to the configuration file")
	flags.StringP("network", "n", "", "mainnet, testnet or regtest")
	flags.String("loglevel", "", "error, warn, info or debug")
	flags.String("logfile", "", "also write the log to this file")
	flags.String("rpc.endpoint", "", "node RPC endpoint, host:port or URL")
	flags.StringP("rpc.user", "u", "", "RPC username")
	flags.StringP("rpc.pass", "p", "", "RPC password")
	flags.Int("rpc.maxconcurrent", 0, "maximum requests in flight")
	flags.Int("rpc.maxretries", 0, "extra attempts after a transient failure")
	flags.Int("rpc.timeoutms", 0, "per-attempt timeout in milliseconds")
	flags.Int("rpc.retrydelayms", 0, "pause between attempts in milliseconds")
	for _, name := range []string{
		"config", "network", "loglevel", "logfile",
		"rpc.endpoint", "rpc.user", "rpc.pass",
		"rpc.maxconcurrent", "rpc.maxretries", "rpc.timeoutms", "rpc.retrydelayms",
	} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

func initConfig() {
	viper.SetEnvPrefix("PIVXRPC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the configuration file, applies flag and environment
// overrides and configures logging.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return cfg, err
	}
	cfg.ApplyOverrides(viper.GetViper())

	logging.SetLogLevel(logging.ParseLevel(cfg.LogLevel))
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
		if err != nil {
			return cfg, err
		}
		logging.SetLogFile(logFile)
	}
	return cfg, nil
}
