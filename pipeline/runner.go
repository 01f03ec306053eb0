package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/c360studio/dwcgraph/graph"
	"github.com/c360studio/dwcgraph/record"
	"golang.org/x/sync/errgroup"
)

// ErrorPolicy decides what happens to the run when a row fails.
type ErrorPolicy string

// Error policies.
const (
	// PolicyAbort stops the run at the first failing row.
	PolicyAbort ErrorPolicy = "abort"

	// PolicySkip reports the failing row and continues with the next one.
	PolicySkip ErrorPolicy = "skip"
)

// ParseErrorPolicy parses an error policy name.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch ErrorPolicy(s) {
	case PolicyAbort, PolicySkip:
		return ErrorPolicy(s), nil
	case "":
		return PolicyAbort, nil
	}
	return "", fmt.Errorf("unknown error policy %q (want abort or skip)", s)
}

// RowSource yields rows in source order. Next returns io.EOF after the last
// row.
type RowSource interface {
	Next(ctx context.Context) (record.Row, error)
}

// Accumulator receives every entity of every successfully expanded row.
type Accumulator interface {
	Accept(g graph.Graphable) error
}

// Summary describes a completed run.
type Summary struct {
	Rows     int
	Expanded int
	Skipped  int
	Entities int
	Failures []*RowError
	Duration time.Duration
}

// Runner drives an Expander over a row source.
type Runner struct {
	expander *Expander
	policy   ErrorPolicy
	workers  int
	debugRow *int
	logger   *slog.Logger
	metrics  *Metrics
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithErrorPolicy sets the policy applied to failing rows.
func WithErrorPolicy(p ErrorPolicy) RunnerOption {
	return func(r *Runner) {
		r.policy = p
	}
}

// WithWorkers sets how many rows are expanded concurrently.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithDebugRow restricts the run to the row at the given index.
func WithDebugRow(index int) RunnerOption {
	return func(r *Runner) {
		r.debugRow = &index
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics enables run metrics.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) {
		r.metrics = m
	}
}

// NewRunner creates a runner around an expander.
func NewRunner(exp *Expander, opts ...RunnerOption) *Runner {
	r := &Runner{
		expander: exp,
		policy:   PolicyAbort,
		workers:  1,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type result struct {
	row       record.Row
	expansion *Expansion
	err       error
}

// Run expands every row of src and merges the results into acc in source
// order. With PolicyAbort the first failing row ends the run with its
// *RowError; rows before it are already merged. With PolicySkip failing rows
// are logged and listed in the summary.
func (r *Runner) Run(ctx context.Context, src RowSource, acc Accumulator) (*Summary, error) {
	start := time.Now()
	summary := &Summary{}
	defer func() {
		summary.Duration = time.Since(start)
		r.metrics.observeRun(summary.Duration)
	}()

	for {
		batch, err := r.readBatch(ctx, src)
		if err != nil {
			return summary, err
		}
		if len(batch) == 0 {
			break
		}

		results := r.expandBatch(ctx, batch)
		for _, res := range results {
			if err := r.merge(res, acc, summary); err != nil {
				return summary, err
			}
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}
	}

	r.logger.Info("Conversion complete",
		"rows", summary.Rows,
		"expanded", summary.Expanded,
		"skipped", summary.Skipped,
		"entities", summary.Entities)
	return summary, nil
}

// readBatch reads up to one row per worker, honouring the debug row filter.
func (r *Runner) readBatch(ctx context.Context, src RowSource) ([]record.Row, error) {
	batch := make([]record.Row, 0, r.workers)
	for len(batch) < r.workers {
		row, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if r.debugRow != nil && row.Index != *r.debugRow {
			continue
		}
		batch = append(batch, row)
	}
	return batch, nil
}

func (r *Runner) expandBatch(ctx context.Context, batch []record.Row) []result {
	results := make([]result, len(batch))
	if len(batch) == 1 {
		x, err := r.expander.Expand(batch[0])
		results[0] = result{row: batch[0], expansion: x, err: err}
		return results
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, row := range batch {
		g.Go(func() error {
			x, err := r.expander.Expand(row)
			results[i] = result{row: row, expansion: x, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Runner) merge(res result, acc Accumulator, summary *Summary) error {
	summary.Rows++
	if res.err != nil {
		rowErr := &RowError{Index: res.row.Index, Source: res.row.Source, Err: res.err}
		r.metrics.recordRow("failed")
		if r.policy != PolicySkip {
			return rowErr
		}
		summary.Skipped++
		summary.Failures = append(summary.Failures, rowErr)
		r.logger.Warn("Skipping row", rowErr.logAttrs()...)
		return nil
	}

	for _, e := range res.expansion.Entities() {
		if err := acc.Accept(e); err != nil {
			return fmt.Errorf("accept %s %s from row %d: %w", e.EntityKind(), e.EntityID(), res.row.Index, err)
		}
		r.metrics.recordEntity(string(e.EntityKind()))
	}
	summary.Expanded++
	summary.Entities += len(res.expansion.Entities())
	r.metrics.recordRow("expanded")
	r.logger.Debug("Row expanded", "row", res.row.Index, "entities", len(res.expansion.Entities()))
	return nil
}
