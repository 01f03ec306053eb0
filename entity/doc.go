// Package entity defines the typed entities an occurrence record expands into
// and the builders that construct them.
//
// Every entity is immutable once built and serializes itself as a flat list
// of semstreams triples. The relation each field serializes as is declared in
// an ordered per-kind table, see Describe. Fields holding the zero value are
// never emitted, so an absent source cell and an omitted relation are the
// same thing.
//
// Entities reference each other by identifier only. Builders that produce a
// mutually referencing pair, such as a Sampling and the Sample it results in,
// mint both identifiers before either value is constructed.
package entity
