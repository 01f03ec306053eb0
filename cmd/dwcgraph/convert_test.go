package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/c360studio/dwcgraph/config"
	"github.com/c360studio/dwcgraph/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const occurrencesCSV = `catalogNumber,collectionCode,countryCode,provenance,decimalLatitude,decimalLongitude,eventDate,verbatimEventDate,occurrenceID,recordedBy,preparations,sex,typeStatus,scientificName,kingdom
T1,Arachnology,AU,Wild,-32.0,115.8,,01/12/2021,urn:occ:1,A. Collector,ethanol,male,,Idiosoma sigillatum,Animalia
T2,Arachnology,AU,Wild,-31.5,116.0,2020-05-04,,urn:occ:2,,ethanol,,,Idiosoma nigrum,Animalia
T3,Arachnology,AU,Wild,-30.1,117.2,2019-01-02T09:00:00,,urn:occ:3,B. Collector,dry,female,holotype,Aname mellosa,Animalia
`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "occurrences.csv")
	require.NoError(t, os.WriteFile(input, []byte(occurrencesCSV), 0644))

	cfg := config.DefaultConfig()
	cfg.Input.Paths = []string{input}
	cfg.Output.Path = filepath.Join(dir, "out", "graph.ttl")
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestConvertSkip(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pipeline.ErrorPolicy = "skip"
	cfg.Metrics.Textfile = filepath.Join(t.TempDir(), "dwcgraph.prom")

	summary, err := convert(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, 2, summary.Expanded)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, 1, summary.Failures[0].Index)

	data, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "@prefix tern: <https://w3id.org/tern/ontologies/tern/> .")
	assert.Contains(t, out, `"POINT(115.8 -32.0)"^^geo:wktLiteral`)
	assert.Contains(t, out, `"2021-12-01T00:00:00"^^xsd:dateTime`)
	assert.Contains(t, out, `time:inXSDDateTime "2021-12-01T00:00:00"^^xsd:dateTime`)
	assert.NotContains(t, out, "xsd:dateTimeStamp", "zone-less instants are not date-time stamps")
	assert.Contains(t, out, `"holotype"`)
	assert.NotContains(t, out, "urn:occ:2")

	metrics, err := os.ReadFile(cfg.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `dwcgraph_pipeline_rows_total{status="failed"} 1`)
	assert.Contains(t, string(metrics), `dwcgraph_pipeline_rows_total{status="expanded"} 2`)

	entries, err := os.ReadDir(filepath.Dir(cfg.Output.Path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary output should be renamed into place")
}

func TestConvertAbortWritesNothing(t *testing.T) {
	cfg := testConfig(t)

	_, err := convert(context.Background(), cfg, quietLogger())
	require.Error(t, err)
	var rowErr *pipeline.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 1, rowErr.Index)

	_, statErr := os.Stat(cfg.Output.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertDebugRowNTriples(t *testing.T) {
	cfg := testConfig(t)
	row := 2
	cfg.Input.DebugRow = &row
	cfg.Output.Path = strings.TrimSuffix(cfg.Output.Path, ".ttl") + ".nt"

	summary, err := convert(context.Background(), cfg, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Expanded)

	data, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "_:r2n")
	assert.NotContains(t, out, "_:r0n")
	assert.NotContains(t, out, "@prefix")
}

func TestConvertSiteModeling(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pipeline.ErrorPolicy = "skip"
	enabled := true
	cfg.Model.SiteModeling = &enabled

	_, err := convert(context.Background(), cfg, quietLogger())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a tern:Site")
	assert.Contains(t, string(data), "a tern:SiteVisit")
}

func TestConvertMissingInput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input.Paths = []string{filepath.Join(t.TempDir(), "*.csv")}

	_, err := convert(context.Background(), cfg, quietLogger())
	assert.Error(t, err)
}

func TestWriteOutputKeepsPreviousOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.ttl")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

	err := writeOutput(path, func(f *os.File) error {
		_, _ = f.WriteString("partial")
		return errors.New("boom")
	})
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestRootCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"version"}, "dwcgraph version " + Version},
		{[]string{"vocab"}, "rdf.syntax.type"},
		{[]string{"vocab", "--kinds"}, "material_sample"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			var out bytes.Buffer
			cmd := rootCmd()
			cmd.SetOut(&out)
			cmd.SetArgs(append([]string{"--log-level", "error"}, tt.args...))
			require.NoError(t, cmd.Execute())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestConvertCommandFlags(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	require.NoError(t, os.WriteFile("occurrences.csv", []byte(occurrencesCSV), 0644))

	cmd := rootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"--log-level", "error", "convert",
		"-i", "*.csv", "-o", "graph.jsonld", "--on-error", "skip", "--workers", "2"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "graph.jsonld"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "@id")
}

func TestConvertCommandDelimiter(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	semicolons := strings.ReplaceAll(occurrencesCSV, ",", ";")
	require.NoError(t, os.WriteFile("occurrences.txt", []byte(semicolons), 0644))

	cmd := rootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"--log-level", "error", "convert",
		"occurrences.txt", "--delimiter", ";", "-o", "graph.ttl", "--on-error", "skip"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "graph.ttl"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"POINT(115.8 -32.0)"^^geo:wktLiteral`)
	assert.Contains(t, out, "urn:occ:3")
	assert.NotContains(t, out, "urn:occ:2")
}

func TestConvertCommandSiteModelingOverride(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		wantSite bool
	}{
		{"config enables", nil, true},
		{"flag disables", []string{"--site-modeling=false"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			t.Setenv("HOME", dir)
			require.NoError(t, os.WriteFile("occurrences.csv", []byte(occurrencesCSV), 0644))
			require.NoError(t, os.WriteFile(config.ProjectConfigFile, []byte("model:\n  site_modeling: true\n"), 0644))

			args := []string{"--log-level", "error", "convert", "occurrences.csv", "-o", "graph.ttl", "--on-error", "skip"}
			cmd := rootCmd()
			cmd.SetOut(io.Discard)
			cmd.SetArgs(append(args, tt.flags...))
			require.NoError(t, cmd.Execute())

			data, err := os.ReadFile(filepath.Join(dir, "graph.ttl"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSite, strings.Contains(string(data), "a tern:Site"))
		})
	}
}
