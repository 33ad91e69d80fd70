// Package config builds the engine's runtime Config from command-line
// flags, an optional YAML file, and environment variables, the same
// layered precedence a node's own config package builds from pflag plus
// viper plus a config file.
package config

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/staked-chain/txvalidation/account"
)

// Key names for every setting, exported so callers can override them
// programmatically with the same names the flags use.
const (
	KeyNetworkName      = "network-name"
	KeyChainHexID       = "chain-hex-id"
	KeyMinFee           = "min-fee"
	KeyUnbondingPeriod  = "unbonding-period"
	KeyLogLevel         = "log-level"
	KeyLogFile          = "log-file"
	KeyMetricsNamespace = "metrics-namespace"
	KeyMetricsAddress   = "metrics-address"
	KeyTraceSampleRatio = "trace-sample-ratio"
	KeyConfigFile       = "config-file"
)

// Config is every setting the cmd/txvalidate binary and its long-running
// mode need, resolved once at startup.
type Config struct {
	NetworkName      string
	ChainHexID       uint8
	MinFee           uint64
	UnbondingPeriod  uint32
	LogLevel         string
	LogFile          string
	MetricsNamespace string
	MetricsAddress   string
	TraceSampleRatio float64
}

// BuildFlagSet declares every flag Config reads, mirroring the defaults a
// node's main package would declare for its own flag set.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("txvalidate", pflag.ContinueOnError)
	fs.String(KeyNetworkName, account.LocalName, "named network preset (mainnet, testnet, local)")
	fs.Uint8(KeyChainHexID, 0, "override the network preset's chain hex id (0 defers to the preset)")
	fs.Uint64(KeyMinFee, 0, "minimum fee, in the smallest coin unit")
	fs.Uint32(KeyUnbondingPeriod, 0, "override the network preset's unbonding period, in seconds")
	fs.String(KeyLogLevel, "info", "log level: debug, info, warn, error")
	fs.String(KeyLogFile, "", "log file path; empty logs to stderr only")
	fs.String(KeyMetricsNamespace, "txvalidation", "Prometheus metrics namespace")
	fs.String(KeyMetricsAddress, "", "address to serve /metrics on; empty disables the server")
	fs.Float64(KeyTraceSampleRatio, 0, "OpenTelemetry trace sampling ratio, 0 to 1")
	fs.String(KeyConfigFile, "", "optional YAML config file; flags take precedence over it")
	return fs
}

// Load resolves a Config from fs (already parsed by the caller) layered
// over an optional YAML config file and TXVALIDATE_-prefixed environment
// variables.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TXVALIDATE")
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("config: binding flags: %w", err)
	}

	if configFile := v.GetString(KeyConfigFile); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	}

	networkName := v.GetString(KeyNetworkName)
	preset, ok := account.NetworkParamsByName(networkName)
	if !ok {
		return Config{}, fmt.Errorf("config: unknown network name %q", networkName)
	}

	chainHexID := preset.ChainHexID
	if raw := v.GetUint64(KeyChainHexID); raw != 0 {
		id, err := cast.ToUint8E(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", KeyChainHexID, err)
		}
		chainHexID = id
	}

	unbondingPeriod := preset.UnbondingPeriod
	if raw := v.GetUint32(KeyUnbondingPeriod); raw != 0 {
		unbondingPeriod = raw
	}

	return Config{
		NetworkName:      networkName,
		ChainHexID:       chainHexID,
		MinFee:           v.GetUint64(KeyMinFee),
		UnbondingPeriod:  unbondingPeriod,
		LogLevel:         v.GetString(KeyLogLevel),
		LogFile:          v.GetString(KeyLogFile),
		MetricsNamespace: v.GetString(KeyMetricsNamespace),
		MetricsAddress:   v.GetString(KeyMetricsAddress),
		TraceSampleRatio: v.GetFloat64(KeyTraceSampleRatio),
	}, nil
}
