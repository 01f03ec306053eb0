package record

import (
	"fmt"
	"strings"
	"time"
)

// Canonical output layouts.
const (
	// LayoutDateTime is the canonical form of a zone-less event instant.
	LayoutDateTime = "2006-01-02T15:04:05.999999999"

	// LayoutDate is the canonical form of a calendar date.
	LayoutDate = "2006-01-02"

	// legacyLayout accepts day-first dates with one or two digit day and month.
	legacyLayout = "2/1/2006"
)

// isoLayouts are tried in order against a canonical event date. The first
// group carries a zone offset and keeps it.
var isoLayouts = []struct {
	layout string
	zoned  bool
}{
	{time.RFC3339Nano, true},
	{"2006-01-02T15:04:05.999999999", false},
	{"2006-01-02 15:04:05.999999999Z07:00", true},
	{"2006-01-02 15:04:05.999999999", false},
	{"2006-01-02T15:04", false},
	{LayoutDate, false},
}

// ResolveInstant returns the row's event instant as an ISO-8601 string.
//
// A present primary field wins and the fallback is never consulted. Otherwise
// the fallback is read as DD/MM/YYYY.
func ResolveInstant(r Row, primaryField, fallbackField string) (string, error) {
	if primary, ok := r.Value(primaryField); ok {
		return CanonicalInstant(primaryField, primary)
	}
	fallback, ok := r.Value(fallbackField)
	if !ok {
		return "", &MalformedDateError{
			Field:  primaryField,
			Reason: fmt.Sprintf("neither %s nor %s is present", primaryField, fallbackField),
		}
	}
	return LegacyInstant(fallbackField, fallback)
}

// CanonicalInstant parses an ISO-8601 value and returns it in canonical form.
// Zoned values keep their offset; date-only values become midnight.
func CanonicalInstant(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	for _, l := range isoLayouts {
		t, err := time.Parse(l.layout, v)
		if err != nil {
			continue
		}
		if l.zoned {
			return t.Format(time.RFC3339Nano), nil
		}
		return t.Format(LayoutDateTime), nil
	}
	return "", &MalformedDateError{Field: field, Value: value, Reason: "not an ISO-8601 date or date-time"}
}

// IsZoned reports whether a canonical instant carries a zone offset.
func IsZoned(instant string) bool {
	_, err := time.Parse(time.RFC3339Nano, instant)
	return err == nil
}

// LegacyInstant converts a day-first DD/MM/YYYY value to an ISO-8601 date-time
// at midnight.
func LegacyInstant(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	parts := strings.Split(v, "/")
	if len(parts) != 3 {
		return "", &MalformedDateError{
			Field:  field,
			Value:  value,
			Reason: fmt.Sprintf("expected 3 slash-separated components, got %d", len(parts)),
		}
	}
	t, err := time.Parse(legacyLayout, v)
	if err != nil {
		return "", &MalformedDateError{Field: field, Value: value, Reason: "not a valid DD/MM/YYYY date"}
	}
	return t.Format(LayoutDateTime), nil
}

// ResolveYear resolves a coarse identification date. A bare year expands to
// January 1st of that year and full dates are kept as dates. The boolean is
// false when the field is absent.
func ResolveYear(r Row, field string) (string, bool, error) {
	value, ok := r.Value(field)
	if !ok {
		return "", false, nil
	}
	v := strings.TrimSpace(value)
	if t, err := time.Parse("2006", v); err == nil {
		return t.Format(LayoutDate), true, nil
	}
	for _, l := range isoLayouts {
		if t, err := time.Parse(l.layout, v); err == nil {
			return t.Format(LayoutDate), true, nil
		}
	}
	return "", true, &MalformedDateError{Field: field, Value: value, Reason: "not a year or ISO-8601 date"}
}
