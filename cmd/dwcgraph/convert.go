package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/c360studio/dwcgraph/config"
	"github.com/c360studio/dwcgraph/entity"
	"github.com/c360studio/dwcgraph/graph"
	"github.com/c360studio/dwcgraph/ident"
	"github.com/c360studio/dwcgraph/pipeline"
	"github.com/c360studio/dwcgraph/source"
	"github.com/c360studio/semstreams/metric"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// runFlags are the flags shared by convert and watch.
type runFlags struct {
	configPath   string
	inputs       []string
	output       string
	format       string
	delimiter    string
	baseURI      string
	siteModeling bool
	row          int
	onError      string
	workers      int
	natsURL      string
	metricsFile  string
}

func (f *runFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringArrayVarP(&f.inputs, "input", "i", nil, "Input CSV file or glob (repeatable)")
	flags.StringVarP(&f.output, "output", "o", "", "Output file")
	flags.StringVarP(&f.format, "format", "f", "", "Output format (turtle, ntriples, jsonld)")
	flags.StringVar(&f.delimiter, "delimiter", "", "Field delimiter")
	flags.StringVar(&f.baseURI, "base-uri", "", "Base IRI for minted identifiers")
	flags.BoolVar(&f.siteModeling, "site-modeling", false, "Model a Site between the region and each occurrence")
	flags.IntVar(&f.row, "row", 0, "Convert only the row with this index")
	flags.StringVar(&f.onError, "on-error", "", "Row failure policy (abort, skip)")
	flags.IntVar(&f.workers, "workers", 0, "Rows expanded concurrently")
	flags.StringVar(&f.natsURL, "nats-url", "", "Publish entities to the semstreams graph at this NATS URL")
	flags.StringVar(&f.metricsFile, "metrics-file", "", "Write run metrics to this Prometheus textfile")
}

// load builds the effective configuration: defaults, user and project
// config, then flags and positional inputs.
func (f *runFlags) load(cmd *cobra.Command, args []string, logger *slog.Logger) (*config.Config, error) {
	cfg, err := config.NewLoader(logger).Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	override := &config.Config{
		Input: config.InputConfig{
			Paths:     append(append([]string{}, f.inputs...), args...),
			Delimiter: f.delimiter,
		},
		Output:   config.OutputConfig{Path: f.output, Format: f.format},
		Model:    config.ModelConfig{BaseURI: f.baseURI},
		Pipeline: config.PipelineConfig{ErrorPolicy: f.onError, Workers: f.workers},
		Publish:  config.PublishConfig{NATSURL: f.natsURL},
		Metrics:  config.MetricsConfig{Textfile: f.metricsFile},
	}
	if cmd.Flags().Changed("row") {
		row := f.row
		override.Input.DebugRow = &row
	}
	if envURL := os.Getenv("NATS_URL"); envURL != "" && override.Publish.NATSURL == "" {
		override.Publish.NATSURL = envURL
	}
	if cmd.Flags().Changed("site-modeling") {
		enabled := f.siteModeling
		override.Model.SiteModeling = &enabled
	}
	cfg.Merge(override)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if len(cfg.Input.Paths) == 0 {
		return nil, fmt.Errorf("no input files given (use -i or input.paths)")
	}
	return cfg, nil
}

func convertCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "convert [input...]",
		Short: "Convert occurrence CSV files to a linked data graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			cfg, err := flags.load(cmd, args, logger)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			_, err = convert(ctx, cfg, logger)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

// convert runs one full conversion and writes the output file. Nothing is
// written when the run aborts.
func convert(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pipeline.Summary, error) {
	paths, err := source.ResolveInputs(cfg.Input.Paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved inputs", "files", len(paths))

	src, err := source.OpenAll(paths, cfg.Input.DelimiterRune())
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logger.Warn("Failed to close inputs", "error", cerr)
		}
	}()

	format, err := cfg.OutputFormat()
	if err != nil {
		return nil, err
	}
	policy, err := pipeline.ParseErrorPolicy(cfg.Pipeline.ErrorPolicy)
	if err != nil {
		return nil, err
	}

	registry := metric.NewMetricsRegistry()
	metrics, err := pipeline.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	if cfg.Metrics.Textfile != "" {
		defer func() {
			if werr := prometheus.WriteToTextfile(cfg.Metrics.Textfile, registry.PrometheusRegistry()); werr != nil {
				logger.Warn("Failed to write metrics", "path", cfg.Metrics.Textfile, "error", werr)
			}
		}()
	}

	store := graph.NewStore()
	var acc pipeline.Accumulator = store
	var publisher *graph.Publisher
	if cfg.Publish.NATSURL != "" {
		nc, err := connectToNATS(ctx, cfg.Publish.NATSURL, logger)
		if err != nil {
			return nil, err
		}
		defer nc.Close(ctx)

		if err := graph.EnsureStream(ctx, nc, cfg.Publish.Stream, cfg.Publish.Subject); err != nil {
			return nil, err
		}
		publisher = graph.NewPublisher(nc, cfg.Publish.Subject)
		acc = graph.Fanout(store, publisher.Sink(ctx))
	}

	expander := pipeline.NewExpander(ident.NewMinter(cfg.Model.BaseURI), pipeline.Options{
		SiteModeling:  cfg.Model.SiteModelingEnabled(),
		DefaultRegion: cfg.Model.DefaultRegion,
		Dataset: entity.Dataset{
			License:      cfg.Dataset.License,
			Source:       cfg.Dataset.Source,
			RightsHolder: cfg.Dataset.RightsHolder,
			Comment:      cfg.Dataset.Comment,
		},
	})

	opts := []pipeline.RunnerOption{
		pipeline.WithErrorPolicy(policy),
		pipeline.WithWorkers(cfg.Pipeline.Workers),
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(metrics),
	}
	if cfg.Input.DebugRow != nil {
		opts = append(opts, pipeline.WithDebugRow(*cfg.Input.DebugRow))
	}

	summary, err := pipeline.NewRunner(expander, opts...).Run(ctx, src, acc)
	if err != nil {
		return summary, err
	}

	if err := writeOutput(cfg.Output.Path, func(f *os.File) error {
		return store.Serialize(f, format)
	}); err != nil {
		return summary, err
	}

	logger.Info("Wrote graph",
		"path", cfg.Output.Path,
		"format", string(format),
		"statements", store.Len(),
		"published", publisher.Published(),
		"duration", summary.Duration.Round(time.Millisecond).String())
	return summary, nil
}

// writeOutput writes through a temporary file in the destination directory
// and renames it into place.
func writeOutput(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("serialize graph: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}

func connectToNATS(ctx context.Context, url string, logger *slog.Logger) (*natsclient.Client, error) {
	logger.Info("Connecting to NATS", "url", url)

	client, err := natsclient.NewClient(url,
		natsclient.WithName(appName),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
		natsclient.WithHealthInterval(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, wrapNATSError(err, url)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		return nil, wrapNATSError(err, url)
	}

	logger.Info("Connected to NATS", "url", url)
	return client, nil
}

// wrapNATSError provides helpful guidance when NATS connection fails.
func wrapNATSError(err error, url string) error {
	errStr := err.Error()

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no servers available") ||
		strings.Contains(errStr, "timeout") {
		return fmt.Errorf(`NATS connection failed: %w

NATS is not running at %s.

To start NATS:
  docker run -d -p 4222:4222 nats:latest -js

Or drop --nats-url to convert without publishing.`, err, url)
	}

	return fmt.Errorf("NATS connection failed: %w", err)
}
