package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/CADMonkey21/pivx-rpc-go/logging"
	pivxnet "github.com/CADMonkey21/pivx-rpc-go/net"
	"github.com/CADMonkey21/pivx-rpc-go/rpc"
)

const DefaultPath = "config.yaml"

type RPCConfig struct {
	// Endpoint wins over Host and Port when set.
	Endpoint      string `yaml:"endpoint"`
	Host          string `yaml:"host"`
	Port          int    `yaml:"port"`
	User          string `yaml:"user"`
	Pass          string `yaml:"pass"`
	MaxConcurrent int    `yaml:"maxConcurrent"`
	MaxRetries    int    `yaml:"maxRetries"`
	TimeoutMs     int    `yaml:"timeoutMs"`
	RetryDelayMs  int    `yaml:"retryDelayMs"`
}

type MonitorConfig struct {
	Listen          string `yaml:"listen"`
	IntervalSeconds int    `yaml:"intervalSeconds"`
	ForceSupply     bool   `yaml:"forceSupplyUpdate"`
}

type InfluxDBConfig struct {
	URL    string `yaml:"url"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	Bucket string `yaml:"bucket"`
}

func (c InfluxDBConfig) Enabled() bool {
	return c.URL != ""
}

type Config struct {
	Network  string         `yaml:"network"`
	LogLevel string         `yaml:"logLevel"`
	LogFile  string         `yaml:"logFile"`
	RPC      RPCConfig      `yaml:"rpc"`
	Monitor  MonitorConfig  `yaml:"monitor"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
}

func Default() Config {
	return Config{
		Network:  pivxnet.Mainnet.Name,
		LogLevel: "info",
		RPC: RPCConfig{
			Host:          "127.0.0.1",
			MaxConcurrent: 4,
			MaxRetries:    3,
			TimeoutMs:     30000,
			RetryDelayMs:  500,
		},
		Monitor: MonitorConfig{
			Listen:          ":51480",
			IntervalSeconds: 30,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Warnf("CONFIG: No %s file found, using defaults.", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyOverrides copies the keys set on v (command-line flags or PIVXRPC_*
// environment variables) over the file values.
func (c *Config) ApplyOverrides(v *viper.Viper) {
	str := func(key string, dst *string) {
		if v.IsSet(key) && v.GetString(key) != "" {
			*dst = v.GetString(key)
		}
	}
	num := func(key string, dst *int) {
		if v.IsSet(key) {
			*dst = v.GetInt(key)
		}
	}
	flag := func(key string, dst *bool) {
		if v.IsSet(key) {
			*dst = v.GetBool(key)
		}
	}
	str("network", &c.Network)
	str("loglevel", &c.LogLevel)
	str("logfile", &c.LogFile)
	str("rpc.endpoint", &c.RPC.Endpoint)
	str("rpc.user", &c.RPC.User)
	str("rpc.pass", &c.RPC.Pass)
	num("rpc.maxconcurrent", &c.RPC.MaxConcurrent)
	num("rpc.maxretries", &c.RPC.MaxRetries)
	num("rpc.timeoutms", &c.RPC.TimeoutMs)
	num("rpc.retrydelayms", &c.RPC.RetryDelayMs)
	str("monitor.listen", &c.Monitor.Listen)
	num("monitor.interval", &c.Monitor.IntervalSeconds)
	flag("monitor.forcesupply", &c.Monitor.ForceSupply)
	str("influxdb.url", &c.InfluxDB.URL)
	str("influxdb.token", &c.InfluxDB.Token)
	str("influxdb.org", &c.InfluxDB.Org)
	str("influxdb.bucket", &c.InfluxDB.Bucket)
}

// Endpoint resolves the node address from Endpoint, or Host and Port with the
// network's default RPC port filling in a zero Port.
func (c Config) Endpoint() (string, error) {
	if c.RPC.Endpoint != "" {
		return c.RPC.Endpoint, nil
	}
	network, err := pivxnet.Lookup(c.Network)
	if err != nil {
		return "", err
	}
	host, port := c.RPC.Host, c.RPC.Port
	if host == "" {
		host = "127.0.0.1"
	}
	if port == 0 {
		port = network.RPCPort
	}
	return fmt.Sprintf("%s:%d", host, port), nil
}

// ConnConfig converts the file settings into a client configuration.
func (c Config) ConnConfig() (rpc.ConnConfig, error) {
	endpoint, err := c.Endpoint()
	if err != nil {
		return rpc.ConnConfig{}, err
	}
	return rpc.ConnConfig{
		Endpoint:      endpoint,
		User:          c.RPC.User,
		Pass:          c.RPC.Pass,
		MaxConcurrent: c.RPC.MaxConcurrent,
		MaxRetries:    c.RPC.MaxRetries,
		Timeout:       time.Duration(c.RPC.TimeoutMs) * time.Millisecond,
		RetryDelay:    time.Duration(c.RPC.RetryDelayMs) * time.Millisecond,
	}, nil
}

func (c Config) Interval() time.Duration {
	if c.Monitor.IntervalSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Monitor.IntervalSeconds) * time.Second
}
