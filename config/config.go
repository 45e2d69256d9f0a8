// Package config loads the settings of the itemsets command from a YAML file,
// ITEMSETS_* environment variables and command-line flags, in increasing order of
// precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration of the itemsets command
type Config struct {
	Support           uint64 `mapstructure:"support"`
	Threads           int    `mapstructure:"threads"`
	SwitchPass        int    `mapstructure:"switch-pass"`
	Fanout            int    `mapstructure:"fanout"`
	StrategyFactor    uint64 `mapstructure:"strategy-factor"`
	TIDThreshold      int    `mapstructure:"tid-threshold"`
	HashFilterBuckets int    `mapstructure:"hash-buckets"`

	Format   string `mapstructure:"format"`    // dat or jsonl
	JSONPath string `mapstructure:"json-path"` // gjson path of the items of a jsonl line
	Raw      bool   `mapstructure:"raw"`       // items are dense indices already
	MaxItems uint64 `mapstructure:"max-items"` // raw item indices must be below this; 0 for the default

	Output      string `mapstructure:"output"` // file to write to; empty or "-" for stdout
	WithSupport bool   `mapstructure:"with-support"`
	RedisAddr   string `mapstructure:"redis-addr"`
	RedisKey    string `mapstructure:"redis-key"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"` // console or json
	Time      bool   `mapstructure:"time"`
}

// SetDefaults registers the default value of every setting. Settings without a
// default are invisible to environment lookups when unmarshalling.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("support", 0)
	v.SetDefault("threads", 4)
	v.SetDefault("switch-pass", 3)
	v.SetDefault("fanout", 0)
	v.SetDefault("strategy-factor", 0)
	v.SetDefault("tid-threshold", 0)
	v.SetDefault("hash-buckets", 0)
	v.SetDefault("format", "dat")
	v.SetDefault("json-path", "items")
	v.SetDefault("raw", false)
	v.SetDefault("max-items", 0)
	v.SetDefault("output", "")
	v.SetDefault("with-support", false)
	v.SetDefault("redis-addr", "")
	v.SetDefault("redis-key", "itemsets")
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-format", "console")
	v.SetDefault("time", false)
}

// Load reads configuration from the file at configPath, if not empty, and from the
// environment, on top of whatever flags are already bound to v
func Load(v *viper.Viper, configPath string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("itemsets")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if conf.Format != "dat" && conf.Format != "jsonl" {
		return nil, fmt.Errorf("unknown input format %q", conf.Format)
	}
	return conf, nil
}
