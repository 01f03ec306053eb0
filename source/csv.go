package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/c360studio/dwcgraph/record"
	"github.com/frictionlessdata/tableschema-go/csv"
)

// rowIterator is the iterator returned by tableschema tables.
type rowIterator interface {
	Next() bool
	Row() []string
	Err() error
	Close() error
}

// CSVSource yields the rows of one delimited file with a header line.
type CSVSource struct {
	name    string
	headers []string
	iter    rowIterator
	index   int
}

// OpenCSV opens a delimited file. A zero delimiter means a comma.
func OpenCSV(path string, delimiter rune) (*CSVSource, error) {
	return newCSVSource(path, csv.FromFile(path), delimiter)
}

// ReadCSVString reads delimited content held in memory; name is reported
// as the row source.
func ReadCSVString(name, content string, delimiter rune) (*CSVSource, error) {
	return newCSVSource(name, csv.FromString(content), delimiter)
}

func newCSVSource(name string, src csv.Source, delimiter rune) (*CSVSource, error) {
	if delimiter == 0 {
		delimiter = ','
	}
	// Delimiter must precede LoadHeaders, which reads the header line at once.
	table, err := csv.NewTable(src, csv.Delimiter(delimiter), csv.LoadHeaders())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	headers := table.Headers()
	if len(headers) == 0 {
		return nil, fmt.Errorf("open %s: no header line", name)
	}
	iter, err := table.Iter()
	if err != nil {
		return nil, fmt.Errorf("iterate %s: %w", name, err)
	}
	return &CSVSource{name: name, headers: headers, iter: iter}, nil
}

// Name returns the file the rows come from.
func (s *CSVSource) Name() string {
	return s.name
}

// Headers returns the column names.
func (s *CSVSource) Headers() []string {
	return s.headers
}

// Next returns the next row, or io.EOF after the last one.
func (s *CSVSource) Next(ctx context.Context) (record.Row, error) {
	if err := ctx.Err(); err != nil {
		return record.Row{}, err
	}
	if !s.iter.Next() {
		if err := s.iter.Err(); err != nil {
			return record.Row{}, fmt.Errorf("%s: row %d: %w", s.name, s.index, err)
		}
		return record.Row{}, io.EOF
	}
	row := record.NewRow(s.index, s.headers, s.iter.Row())
	row.Source = s.name
	s.index++
	return row, nil
}

// Close releases the underlying file.
func (s *CSVSource) Close() error {
	return s.iter.Close()
}

// MultiSource concatenates sources and numbers their rows consecutively, so
// row indexes are unique across files.
type MultiSource struct {
	sources []*CSVSource
	current int
	index   int
}

// NewMultiSource concatenates sources in order.
func NewMultiSource(sources ...*CSVSource) *MultiSource {
	return &MultiSource{sources: sources}
}

// OpenAll opens every path as a CSV source. Sources opened before a failure
// are closed.
func OpenAll(paths []string, delimiter rune) (*MultiSource, error) {
	sources := make([]*CSVSource, 0, len(paths))
	for _, p := range paths {
		s, err := OpenCSV(p, delimiter)
		if err != nil {
			for _, opened := range sources {
				_ = opened.Close()
			}
			return nil, err
		}
		sources = append(sources, s)
	}
	return NewMultiSource(sources...), nil
}

// Next returns the next row across all sources, or io.EOF.
func (m *MultiSource) Next(ctx context.Context) (record.Row, error) {
	for m.current < len(m.sources) {
		row, err := m.sources[m.current].Next(ctx)
		if errors.Is(err, io.EOF) {
			m.current++
			continue
		}
		if err != nil {
			return record.Row{}, err
		}
		row.Index = m.index
		m.index++
		return row, nil
	}
	return record.Row{}, io.EOF
}

// Close closes every source.
func (m *MultiSource) Close() error {
	var errs []error
	for _, s := range m.sources {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
