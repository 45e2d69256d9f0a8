package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-sif/itemsets"
	"github.com/go-sif/itemsets/apriori"
	"github.com/go-sif/itemsets/config"
	"github.com/go-sif/itemsets/datasource"
	"github.com/go-sif/itemsets/datasource/dat"
	"github.com/go-sif/itemsets/datasource/jsonl"
	"github.com/go-sif/itemsets/distribution"
	"github.com/go-sif/itemsets/logging"
	"github.com/go-sif/itemsets/sink"
	redissink "github.com/go-sif/itemsets/sink/redis"
	"github.com/go-sif/itemsets/sink/text"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// A statsMiner is a Miner which records RuntimeStatistics about its last run
type statsMiner interface {
	itemsets.Miner
	Stats() itemsets.RuntimeStatistics
}

type minerFactory func(conf *config.Config, logger zerolog.Logger) (statsMiner, error)

type minerCommand struct {
	name    string
	short   string
	factory minerFactory
}

func aprioriOptions(conf *config.Config, logger zerolog.Logger) apriori.Options {
	return apriori.Options{
		MinSupport:        conf.Support,
		Fanout:            conf.Fanout,
		StrategyFactor:    conf.StrategyFactor,
		TIDThreshold:      conf.TIDThreshold,
		SwitchPass:        conf.SwitchPass,
		HashFilterBuckets: conf.HashFilterBuckets,
		Logger:            logger,
	}
}

func distributionOptions(conf *config.Config, logger zerolog.Logger) distribution.Options {
	return distribution.Options{
		MinSupport:     conf.Support,
		Threads:        conf.Threads,
		Fanout:         conf.Fanout,
		StrategyFactor: conf.StrategyFactor,
		TIDThreshold:   conf.TIDThreshold,
		SwitchPass:     conf.SwitchPass,
		Logger:         logger,
	}
}

var minerCommands = []minerCommand{
	{"apriori", "Mine with Apriori, scanning raw transactions in every pass", func(conf *config.Config, logger zerolog.Logger) (statsMiner, error) {
		return apriori.New(aprioriOptions(conf, logger))
	}},
	{"apriori-tid", "Mine with AprioriTID, reading raw transactions only once", func(conf *config.Config, logger zerolog.Logger) (statsMiner, error) {
		return apriori.NewTID(aprioriOptions(conf, logger))
	}},
	{"apriori-hybrid", "Mine with AprioriHybrid, switching to TID entries at --switch-pass", func(conf *config.Config, logger zerolog.Logger) (statsMiner, error) {
		return apriori.NewHybrid(aprioriOptions(conf, logger))
	}},
	{"apriori-trie", "Mine with Apriori over a single prefix trie", func(conf *config.Config, logger zerolog.Logger) (statsMiner, error) {
		return apriori.NewTrie(aprioriOptions(conf, logger))
	}},
	{"count-distribution", "Mine in parallel with Count Distribution over --threads shards", func(conf *config.Config, logger zerolog.Logger) (statsMiner, error) {
		return distribution.New(distributionOptions(conf, logger))
	}},
	{"count-distribution-hybrid", "Mine in parallel, switching every shard to TID entries at --switch-pass", func(conf *config.Config, logger zerolog.Logger) (statsMiner, error) {
		return distribution.NewHybrid(distributionOptions(conf, logger))
	}},
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:          "itemsets",
		Short:        "Mine the frequent itemsets of transaction files",
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.Uint64P("support", "s", 0, "minimum support, as an absolute transaction count")
	flags.IntP("threads", "t", 4, "number of shards for count-distribution")
	flags.Int("switch-pass", 3, "first pass counted from TID entries, for hybrid miners")
	flags.Int("fanout", 0, "branching factor of the counting trie (0 for the default)")
	flags.Uint64("strategy-factor", 0, "cost multiplier of subset enumeration (0 for the default)")
	flags.Int("tid-threshold", 0, "frequent itemsets below which TID switch-in uses bitsets (0 for the default)")
	flags.Int("hash-buckets", 0, "buckets of the direct hashing filter of apriori (0 disables it)")
	flags.String("format", "dat", "input format: dat or jsonl")
	flags.String("json-path", "items", "gjson path of the items of each jsonl line")
	flags.Bool("raw", false, "items are dense integer indices and are not remapped")
	flags.Uint64("max-items", 0, "raw item indices must be below this (0 for the default)")
	flags.StringP("output", "o", "", "output file (stdout if empty or -)")
	flags.Bool("with-support", false, "append \" #SUP: n\" to every itemset")
	flags.String("redis-addr", "", "also write itemsets to a Redis sorted set at this address")
	flags.String("redis-key", "itemsets", "Redis sorted set key")
	flags.String("log-level", "warn", "log level: trace, debug, info, warn, error or fatal")
	flags.String("log-format", "console", "log format: console or json")
	flags.Bool("time", false, "print the elapsed time of the run to stderr")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	for _, mc := range minerCommands {
		root.AddCommand(&cobra.Command{
			Use:   mc.name + " <file>...",
			Short: mc.short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				configPath, err := cmd.Flags().GetString("config")
				if err != nil {
					return err
				}
				conf, err := config.Load(v, configPath)
				if err != nil {
					return err
				}
				return run(cmd.Context(), conf, mc.factory, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
			},
		})
	}
	return root
}

func newLogger(conf *config.Config, w io.Writer) (zerolog.Logger, error) {
	level, err := logging.ParseLevel(conf.LogLevel)
	if err != nil {
		return zerolog.Logger{}, err
	}
	if conf.LogFormat == "json" {
		return logging.New(w, level), nil
	}
	return logging.NewConsole(w, level), nil
}

func newParser(conf *config.Config) datasource.Parser {
	if conf.Format == "jsonl" {
		return jsonl.CreateParser(&jsonl.ParserConf{Path: conf.JSONPath})
	}
	return dat.CreateParser(&dat.ParserConf{})
}

func newSink(ctx context.Context, conf *config.Config, res *datasource.Result, stdout io.Writer) (sink.Sink, func(), error) {
	format := res.Format
	var out sink.Multi
	cleanup := func() {}
	if conf.Output == "" || conf.Output == "-" {
		out = append(out, text.New(stdout, text.Options{WithSupport: conf.WithSupport, Format: format}))
	} else {
		s, err := text.Create(conf.Output, text.Options{WithSupport: conf.WithSupport, Format: format})
		if err != nil {
			return nil, nil, err
		}
		out = append(out, s)
	}
	if conf.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: conf.RedisAddr})
		cleanup = func() { client.Close() }
		out = append(out, redissink.New(ctx, client, redissink.Options{Key: conf.RedisKey, Format: format}))
	}
	return out, cleanup, nil
}

func run(ctx context.Context, conf *config.Config, factory minerFactory, paths []string, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := newLogger(conf, stderr)
	if err != nil {
		return err
	}
	miner, err := factory(conf, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := datasource.LoadFiles(paths, newParser(conf), &datasource.LoadConf{Raw: conf.Raw, MaxItems: conf.MaxItems})
	if err != nil {
		return err
	}
	logger.Info().
		Int("transactions", res.Dataset.Len()).
		Int("items", res.Dataset.NumItems).
		Dur("elapsed", time.Since(start)).
		Msg("Loaded dataset")

	out, cleanup, err := newSink(ctx, conf, res, stdout)
	if err != nil {
		return err
	}
	defer cleanup()
	mineErr := miner.Stream(res.Dataset, out.Write)
	if err := out.Close(); err != nil && mineErr == nil {
		mineErr = err
	}
	if mineErr != nil {
		return mineErr
	}

	if conf.Time {
		stats := miner.Stats()
		fmt.Fprintf(stderr, "Loaded in %s, mined in %s\n", stats.GetStartTime().Sub(start), stats.GetRuntime())
		frequent := stats.GetFrequentCounts()
		for i, d := range stats.GetPassRuntimes() {
			fmt.Fprintf(stderr, "  pass %d: %d candidates, %d frequent, %s\n", i+1, stats.GetCandidateCounts()[i], frequent[i], d)
		}
	}
	return nil
}
