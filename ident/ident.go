// Package ident mints identifiers for entities built from occurrence records.
//
// Global identifiers are dereferenceable IRIs formed from a base IRI and a
// random UUID. Local identifiers are blank node labels scoped to one output
// document; they are derived from the row index and a per-row sequence, so
// the same row always yields the same labels regardless of processing order.
package ident

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// BlankPrefix marks a local identifier.
const BlankPrefix = "_:"

// DefaultBase is the base IRI for minted resources.
const DefaultBase = "https://example.com/"

// Option configures a Minter.
type Option func(*Minter)

// WithUUIDSource replaces the random suffix generator.
func WithUUIDSource(fn func() string) Option {
	return func(m *Minter) {
		m.newUUID = fn
	}
}

// Minter creates global identifiers. It is safe for concurrent use as long as
// the configured UUID source is.
type Minter struct {
	base    string
	newUUID func() string
}

// NewMinter creates a minter for the given base IRI.
func NewMinter(base string, opts ...Option) *Minter {
	if base == "" {
		base = DefaultBase
	}
	m := &Minter{
		base:    base,
		newUUID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Base returns the base IRI.
func (m *Minter) Base() string {
	return m.base
}

// Global returns a new globally unique IRI.
func (m *Minter) Global() string {
	return m.base + m.newUUID()
}

// Scope returns a local identifier scope for one row.
func (m *Minter) Scope(row int) *Scope {
	return &Scope{minter: m, row: row}
}

// Scope mints identifiers for a single row. A Scope must not be shared
// between goroutines.
type Scope struct {
	minter *Minter
	row    int
	seq    int
}

// Global returns a new globally unique IRI.
func (s *Scope) Global() string {
	return s.minter.Global()
}

// Base returns the base IRI of the minter.
func (s *Scope) Base() string {
	return s.minter.Base()
}

// Row returns the row the scope mints for.
func (s *Scope) Row() int {
	return s.row
}

// Local returns the next blank node label of the row.
func (s *Scope) Local() string {
	s.seq++
	return fmt.Sprintf("%sr%dn%d", BlankPrefix, s.row, s.seq)
}

// IsLocal reports whether id is a blank node label.
func IsLocal(id string) bool {
	return strings.HasPrefix(id, BlankPrefix)
}
