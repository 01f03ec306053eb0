package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/c360studio/dwcgraph/config"
	"github.com/c360studio/dwcgraph/source"
	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	var (
		flags    runFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [input...]",
		Short: "Convert, then reconvert whenever an input file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			cfg, err := flags.load(cmd, args, logger)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debounce") {
				cfg.Watch.Debounce = debounce
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return watch(ctx, cfg, logger)
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", source.DefaultDebounce, "Quiet period before reconverting")
	return cmd
}

// watch converts once and again after every change set until ctx ends. A
// failing conversion is logged and the previous output is left in place.
func watch(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	w, err := source.NewWatcher(cfg.Input.Paths, cfg.Watch.Debounce, logger)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil {
		return err
	}

	reconvert := func(reason string) {
		logger.Info("Converting", "reason", reason)
		if _, err := convert(ctx, cfg, logger); err != nil && ctx.Err() == nil {
			logger.Error("Conversion failed", "error", err)
		}
	}
	reconvert("start")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Received shutdown signal")
			return nil
		case cs, ok := <-w.Changes():
			if !ok {
				return nil
			}
			logger.Debug("Inputs changed", "paths", cs.Paths)
			reconvert("change")
		}
	}
}
