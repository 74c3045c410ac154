package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"matchbook/internal/batchio"
	"matchbook/internal/config"
	"matchbook/internal/engine"
	"matchbook/internal/logging"
)

func newRootCmd() *cobra.Command {
	v := config.Load()

	root := &cobra.Command{
		Use:           "matchbook",
		Short:         "Batch limit-order matching engine for a multi-pair spot exchange",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v)
		},
	}

	flags := root.Flags()
	flags.String("input", "orders.json", "path to the input command file")
	flags.String("orderbook-out", "orderbook.json", "path to write the order-book snapshot")
	flags.String("trades-out", "trades.json", "path to write the trade log")
	flags.Int("workers", 1, "number of pairs to process concurrently (1 = strictly sequential)")
	bindFlags(v, flags)

	return root
}

// bindFlags wires each cobra flag onto the matching viper key, so a flag
// takes precedence over the MATCHBOOK_* environment variable, which in
// turn takes precedence over the code default.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})
}

// run executes one batch: read, ingest, write. No output file is written
// if reading or ingestion fails, matching the "no partial output" policy in
// spec.md 7. The two output files are written one after the other, so a
// failure writing the trade log leaves the order-book file already written.
func run(ctx context.Context, v *viper.Viper) error {
	log := logging.New()
	cfg := config.Resolve(v)

	log.Info().Str("input", cfg.InputPath).Int("workers", cfg.Workers).Msg("starting batch run")

	cmds, err := batchio.ReadCommands(cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read input")
		return fmt.Errorf("read input: %w", err)
	}
	log.Info().Int("commands", len(cmds)).Msg("parsed input commands")

	eng := engine.New()
	if err := eng.IngestBatch(ctx, cmds, cfg.Workers); err != nil {
		log.Error().Err(err).Msg("failed to process commands")
		return fmt.Errorf("ingest commands: %w", err)
	}

	snapshots, trades := eng.Finish()
	log.Info().Int("pairs", len(snapshots)).Int("trades", len(trades)).Msg("matching complete")

	if err := batchio.WriteOrderBook(cfg.OrderBookPath, snapshots); err != nil {
		log.Error().Err(err).Msg("failed to write order book")
		return fmt.Errorf("write orderbook: %w", err)
	}
	if err := batchio.WriteTrades(cfg.TradesPath, trades); err != nil {
		log.Error().Err(err).Msg("failed to write trades")
		return fmt.Errorf("write trades: %w", err)
	}

	log.Info().
		Str("orderbook", cfg.OrderBookPath).
		Str("trades", cfg.TradesPath).
		Msg("batch run complete")
	return nil
}
