// Package config provides configuration loading and management for dwcgraph.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/c360studio/dwcgraph/export"
	"github.com/c360studio/dwcgraph/vocabulary/tern"
	"gopkg.in/yaml.v3"
)

// Config represents the complete dwcgraph configuration
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Model    ModelConfig    `yaml:"model"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Publish  PublishConfig  `yaml:"publish"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Watch    WatchConfig    `yaml:"watch"`
}

// InputConfig selects the occurrence files to convert
type InputConfig struct {
	// Paths are files or glob patterns; ** matches recursively
	Paths []string `yaml:"paths"`
	// Delimiter is the single field separator character (default: ",")
	Delimiter string `yaml:"delimiter"`
	// DebugRow restricts conversion to the row with this index
	DebugRow *int `yaml:"debug_row,omitempty"`
}

// OutputConfig configures the serialized graph
type OutputConfig struct {
	// Path is the output file (default: output.ttl)
	Path string `yaml:"path"`
	// Format is turtle, ntriples or jsonld (default: inferred from Path)
	Format string `yaml:"format"`
}

// ModelConfig configures how rows are modeled
type ModelConfig struct {
	// BaseURI prefixes every minted identifier
	BaseURI string `yaml:"base_uri"`
	// SiteModeling inserts a Site between the region and each occurrence.
	// Nil means unset so a later layer can switch it off.
	SiteModeling *bool `yaml:"site_modeling,omitempty"`
	// DefaultRegion is the state or territory of rows without stateProvince
	DefaultRegion string `yaml:"default_region"`
}

// DatasetConfig holds the constants stamped on every record
type DatasetConfig struct {
	License      string `yaml:"license"`
	Source       string `yaml:"source"`
	RightsHolder string `yaml:"rights_holder"`
	Comment      string `yaml:"comment"`
}

// PipelineConfig configures row processing
type PipelineConfig struct {
	// ErrorPolicy is abort or skip (default: abort)
	ErrorPolicy string `yaml:"error_policy"`
	// Workers is the number of rows expanded concurrently (default: 1)
	Workers int `yaml:"workers"`
}

// PublishConfig configures optional publication to a semstreams graph
type PublishConfig struct {
	// NATSURL is the NATS server URL (empty = do not publish)
	NATSURL string `yaml:"nats_url"`
	// Subject is the ingestion subject (default: graph.ingest.entity)
	Subject string `yaml:"subject"`
	// Stream is the JetStream stream capturing Subject (default: GRAPH)
	Stream string `yaml:"stream"`
}

// MetricsConfig configures run metrics
type MetricsConfig struct {
	// Textfile is a Prometheus textfile collector path (empty = disabled)
	Textfile string `yaml:"textfile"`
}

// WatchConfig configures the watch command
type WatchConfig struct {
	// Debounce is how long to wait for more changes before reconverting
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Delimiter: ",",
		},
		Output: OutputConfig{
			Path: "output.ttl",
		},
		Model: ModelConfig{
			BaseURI:       "https://example.com/",
			SiteModeling:  boolPtr(false),
			DefaultRegion: string(tern.RegionWA),
		},
		Dataset: DatasetConfig{
			License:      "https://creativecommons.org/licenses/by/4.0/",
			Source:       "https://doi.org/10.26197/ala.26fdc11f-107e-45fa-9aab-3aead9083137",
			RightsHolder: "https://museum.wa.gov.au/",
			Comment:      "Equivalent to dwc:Record.",
		},
		Pipeline: PipelineConfig{
			ErrorPolicy: "abort",
			Workers:     1,
		},
		Publish: PublishConfig{
			Subject: "graph.ingest.entity",
			Stream:  "GRAPH",
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("input.delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	if c.Input.DebugRow != nil && *c.Input.DebugRow < 0 {
		return fmt.Errorf("input.debug_row must not be negative")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	if _, err := c.OutputFormat(); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if err := validateBase(c.Model.BaseURI); err != nil {
		return fmt.Errorf("model.base_uri: %w", err)
	}
	if _, err := tern.LookupRegion(c.Model.DefaultRegion); err != nil {
		return fmt.Errorf("model.default_region: %w", err)
	}
	for name, v := range map[string]string{
		"dataset.license":       c.Dataset.License,
		"dataset.source":        c.Dataset.Source,
		"dataset.rights_holder": c.Dataset.RightsHolder,
	} {
		if v == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	switch c.Pipeline.ErrorPolicy {
	case "abort", "skip":
	default:
		return fmt.Errorf("pipeline.error_policy must be abort or skip, got %q", c.Pipeline.ErrorPolicy)
	}
	if c.Pipeline.Workers < 1 {
		return fmt.Errorf("pipeline.workers must be at least 1")
	}
	if c.Publish.NATSURL != "" && (c.Publish.Subject == "" || c.Publish.Stream == "") {
		return fmt.Errorf("publish.subject and publish.stream are required when publishing")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

func validateBase(base string) error {
	u, err := url.Parse(base)
	if err != nil {
		return err
	}
	if !u.IsAbs() {
		return fmt.Errorf("%q is not an absolute IRI", base)
	}
	if !strings.HasSuffix(base, "/") && !strings.HasSuffix(base, "#") {
		return fmt.Errorf("%q must end with / or #", base)
	}
	return nil
}

// DelimiterRune returns the field separator.
func (c *InputConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// OutputFormat returns the configured format, inferring it from the output
// path when unset.
func (c *Config) OutputFormat() (export.Format, error) {
	if c.Output.Format == "" {
		if f, ok := export.FormatFromPath(c.Output.Path); ok {
			return f, nil
		}
	}
	return export.ParseFormat(c.Output.Format)
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Input
	if len(other.Input.Paths) > 0 {
		c.Input.Paths = other.Input.Paths
	}
	if other.Input.Delimiter != "" {
		c.Input.Delimiter = other.Input.Delimiter
	}
	if other.Input.DebugRow != nil {
		row := *other.Input.DebugRow
		c.Input.DebugRow = &row
	}

	// Output
	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}

	// Model
	if other.Model.BaseURI != "" {
		c.Model.BaseURI = other.Model.BaseURI
	}
	if other.Model.SiteModeling != nil {
		c.Model.SiteModeling = boolPtr(*other.Model.SiteModeling)
	}
	if other.Model.DefaultRegion != "" {
		c.Model.DefaultRegion = other.Model.DefaultRegion
	}

	// Dataset
	if other.Dataset.License != "" {
		c.Dataset.License = other.Dataset.License
	}
	if other.Dataset.Source != "" {
		c.Dataset.Source = other.Dataset.Source
	}
	if other.Dataset.RightsHolder != "" {
		c.Dataset.RightsHolder = other.Dataset.RightsHolder
	}
	if other.Dataset.Comment != "" {
		c.Dataset.Comment = other.Dataset.Comment
	}

	// Pipeline
	if other.Pipeline.ErrorPolicy != "" {
		c.Pipeline.ErrorPolicy = other.Pipeline.ErrorPolicy
	}
	if other.Pipeline.Workers != 0 {
		c.Pipeline.Workers = other.Pipeline.Workers
	}

	// Publish
	if other.Publish.NATSURL != "" {
		c.Publish.NATSURL = other.Publish.NATSURL
	}
	if other.Publish.Subject != "" {
		c.Publish.Subject = other.Publish.Subject
	}
	if other.Publish.Stream != "" {
		c.Publish.Stream = other.Publish.Stream
	}

	// Metrics
	if other.Metrics.Textfile != "" {
		c.Metrics.Textfile = other.Metrics.Textfile
	}

	// Watch
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
}

// SiteModelingEnabled reports whether rows are modeled with a Site.
func (m *ModelConfig) SiteModelingEnabled() bool {
	return m.SiteModeling != nil && *m.SiteModeling
}

func boolPtr(b bool) *bool { return &b }
