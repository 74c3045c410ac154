// Package config loads the CLI's run configuration with spf13/viper, the
// way the wider retrieved corpus's matching-engine entrypoints do
// (dylanlott-orderbook, VictorVVedtion-perp-dex): defaults set in code,
// overridable by environment variables under the MATCHBOOK_ prefix, and
// bound to cobra flags by the caller.
package config

import "github.com/spf13/viper"

const envPrefix = "MATCHBOOK"

// Config is the batch run's file paths and parallelism, per spec.md 6's
// CLI contract (default paths orders.json/orderbook.json/trades.json).
type Config struct {
	InputPath     string
	OrderBookPath string
	TradesPath    string
	Workers       int
}

// Load reads defaults, then environment overrides, into a fresh viper
// instance. The caller (cmd/matchbook) binds cobra flags on top of this
// before calling Resolve.
func Load() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("input", "orders.json")
	v.SetDefault("orderbook-out", "orderbook.json")
	v.SetDefault("trades-out", "trades.json")
	v.SetDefault("workers", 1)
	return v
}

// Resolve reads the final values out of v into a Config.
func Resolve(v *viper.Viper) Config {
	return Config{
		InputPath:     v.GetString("input"),
		OrderBookPath: v.GetString("orderbook-out"),
		TradesPath:    v.GetString("trades-out"),
		Workers:       v.GetInt("workers"),
	}
}
