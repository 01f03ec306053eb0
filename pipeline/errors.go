package pipeline

import (
	"errors"
	"fmt"

	"github.com/c360studio/dwcgraph/record"
)

// RowError reports a row that could not be expanded.
type RowError struct {
	Index  int
	Source string
	Err    error
}

func (e *RowError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: row %d: %v", e.Source, e.Index, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// logAttrs returns the field and entity kind a row error names, as slog
// key/value pairs.
func (e *RowError) logAttrs() []any {
	attrs := []any{"row", e.Index}
	if e.Source != "" {
		attrs = append(attrs, "source", e.Source)
	}

	var (
		missing   *record.MissingFieldError
		malformed *record.MalformedDateError
		invalid   *record.InvalidValueError
		term      *record.UnresolvedTermError
	)
	switch {
	case errors.As(e.Err, &missing):
		attrs = append(attrs, "field", missing.Field, "entity", missing.Entity)
	case errors.As(e.Err, &malformed):
		attrs = append(attrs, "field", malformed.Field, "value", malformed.Value)
	case errors.As(e.Err, &invalid):
		attrs = append(attrs, "field", invalid.Field, "entity", invalid.Entity, "value", invalid.Value)
	case errors.As(e.Err, &term):
		attrs = append(attrs, "vocabulary", term.Vocabulary, "value", term.Value)
	}
	return append(attrs, "error", e.Err)
}
