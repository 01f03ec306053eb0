package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/c360studio/dwcgraph/graph"
	"github.com/c360studio/dwcgraph/record"
	"github.com/c360studio/semstreams/metric"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	rows []record.Row
	pos  int
}

func (s *sliceSource) Next(ctx context.Context) (record.Row, error) {
	if err := ctx.Err(); err != nil {
		return record.Row{}, err
	}
	if s.pos >= len(s.rows) {
		return record.Row{}, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

func rows(n int, bad ...int) *sliceSource {
	failing := make(map[int]bool)
	for _, b := range bad {
		failing[b] = true
	}
	src := &sliceSource{}
	for i := 0; i < n; i++ {
		var edit func(map[string]string)
		if failing[i] {
			edit = func(c map[string]string) { delete(c, record.ColRecordedBy) }
		}
		src.rows = append(src.rows, occurrenceRow(i, edit))
	}
	return src
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseErrorPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ErrorPolicy
		wantErr bool
	}{
		{"abort", PolicyAbort, false},
		{"skip", PolicySkip, false},
		{"", PolicyAbort, false},
		{"retry", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseErrorPolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunSkipPolicy(t *testing.T) {
	var logs bytes.Buffer
	store := graph.NewStore()
	runner := NewRunner(NewExpander(testMinter(), DefaultOptions()),
		WithErrorPolicy(PolicySkip),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	summary, err := runner.Run(context.Background(), rows(3, 1), store)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, 2, summary.Expanded)
	assert.Equal(t, 1, summary.Skipped)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, 1, summary.Failures[0].Index)
	assert.Equal(t, "occurrences.csv", summary.Failures[0].Source)
	assert.Equal(t, summary.Entities, store.Subjects())

	out := logs.String()
	assert.Contains(t, out, "Skipping row")
	assert.Contains(t, out, "field=recordedBy")
	assert.Contains(t, out, "entity=person")
	assert.Contains(t, out, "Conversion complete")
}

func TestRunAbortPolicy(t *testing.T) {
	store := graph.NewStore()
	runner := NewRunner(NewExpander(testMinter(), DefaultOptions()), WithLogger(quietLogger()))

	summary, err := runner.Run(context.Background(), rows(4, 1), store)
	require.Error(t, err)

	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 1, rowErr.Index)
	assert.ErrorIs(t, err, record.ErrRowFailed)
	assert.True(t, strings.HasPrefix(err.Error(), "occurrences.csv: row 1:"))

	assert.Equal(t, 1, summary.Expanded)
	assert.Equal(t, summary.Entities, store.Subjects())
}

func TestRunWorkersMatchSequential(t *testing.T) {
	run := func(workers int) *graph.Store {
		store := graph.NewStore()
		runner := NewRunner(NewExpander(testMinter(), DefaultOptions()),
			WithWorkers(workers),
			WithErrorPolicy(PolicySkip),
			WithLogger(quietLogger()))
		summary, err := runner.Run(context.Background(), rows(10, 4, 7), store)
		require.NoError(t, err)
		assert.Equal(t, 8, summary.Expanded)
		assert.Equal(t, []int{4, 7}, []int{summary.Failures[0].Index, summary.Failures[1].Index})
		return store
	}

	sequential := run(1)
	parallel := run(4)
	assert.Equal(t, sequential.Len(), parallel.Len())
	assert.Equal(t, sequential.Subjects(), parallel.Subjects())
}

func TestRunDebugRow(t *testing.T) {
	store := graph.NewStore()
	runner := NewRunner(NewExpander(testMinter(), DefaultOptions()),
		WithDebugRow(2),
		WithLogger(quietLogger()))

	summary, err := runner.Run(context.Background(), rows(5), store)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Rows)
	assert.Equal(t, 1, summary.Expanded)
}

func TestRunAcceptError(t *testing.T) {
	boom := errors.New("boom")
	acc := graph.AcceptFunc(func(g graph.Graphable) error { return boom })
	runner := NewRunner(NewExpander(testMinter(), DefaultOptions()), WithLogger(quietLogger()))

	_, err := runner.Run(context.Background(), rows(2), acc)
	assert.ErrorIs(t, err, boom)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := NewRunner(NewExpander(testMinter(), DefaultOptions()), WithLogger(quietLogger()))

	_, err := runner.Run(ctx, rows(2), graph.NewStore())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMetrics(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	m, err := NewMetrics(registry)
	require.NoError(t, err)
	require.NotNil(t, m)

	runner := NewRunner(NewExpander(testMinter(), DefaultOptions()),
		WithErrorPolicy(PolicySkip),
		WithMetrics(m),
		WithLogger(quietLogger()))
	summary, err := runner.Run(context.Background(), rows(3, 0), graph.NewStore())
	require.NoError(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.rowsTotal.WithLabelValues("expanded")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.rowsTotal.WithLabelValues("failed")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.entitiesTotal.WithLabelValues("record")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.runDuration))

	var total float64
	for _, kind := range []string{"record", "attribute", "text", "taxon", "person", "point", "procedure", "instant", "sampling", "observation", "sample", "material_sample"} {
		total += testutil.ToFloat64(m.entitiesTotal.WithLabelValues(kind))
	}
	assert.Equal(t, float64(summary.Entities), total)
}

func TestNewMetricsNilRegistry(t *testing.T) {
	m, err := NewMetrics(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	// A nil *Metrics records nothing.
	m.recordRow("expanded")
	m.recordEntity("record")
}

func TestRowErrorLogAttrs(t *testing.T) {
	err := &RowError{Index: 4, Err: &record.MalformedDateError{Field: record.ColEventDate, Value: "soon"}}
	attrs := err.logAttrs()
	assert.Contains(t, attrs, "field")
	assert.Contains(t, attrs, record.ColEventDate)
	assert.Contains(t, attrs, "soon")
	assert.Equal(t, "row 4: "+err.Err.Error(), err.Error())
}
