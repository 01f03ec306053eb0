// Package graph accumulates entity triples into a single RDF graph and
// publishes entities to the semstreams graph.
package graph

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/c360studio/dwcgraph/export"
	"github.com/c360studio/dwcgraph/vocabulary/tern"
	"github.com/c360studio/semstreams/message"
	"github.com/cayleygraph/quad"
)

// Graphable is implemented by anything that can be merged into a Store.
type Graphable interface {
	EntityID() string
	Triples() []message.Triple
}

// Store is a duplicate-tolerant, in-memory graph. Accepting the same
// statement twice has no effect, so the final content does not depend on
// the order or multiplicity of Accept calls. It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	quads    map[string]quad.Quad
	subjects map[string]struct{}
	prefixes map[string]string
}

// NewStore creates an empty store bound to the default prefixes.
func NewStore() *Store {
	return &Store{
		quads:    make(map[string]quad.Quad),
		subjects: make(map[string]struct{}),
		prefixes: tern.Prefixes(),
	}
}

// Accept merges the triples of an entity. Either every triple is merged or,
// on error, none is.
func (s *Store) Accept(g Graphable) error {
	triples := g.Triples()
	typed := make([]quad.Quad, 0, len(triples))
	for _, t := range triples {
		q, err := ToQuad(t)
		if err != nil {
			return fmt.Errorf("entity %s: %w", g.EntityID(), err)
		}
		typed = append(typed, q)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range typed {
		s.quads[key(q)] = q
	}
	s.subjects[g.EntityID()] = struct{}{}
	return nil
}

// Len returns the number of distinct statements.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.quads)
}

// Subjects returns the number of distinct entities accepted.
func (s *Store) Subjects() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subjects)
}

// Quads returns every statement in a stable order.
func (s *Store) Quads() []quad.Quad {
	s.mu.Lock()
	keys := make([]string, 0, len(s.quads))
	for k := range s.quads {
		keys = append(keys, k)
	}
	out := make([]quad.Quad, 0, len(keys))
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, s.quads[k])
	}
	s.mu.Unlock()
	return out
}

// Contains reports whether a statement is in the graph.
func (s *Store) Contains(q quad.Quad) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.quads[key(q)]
	return ok
}

// SetPrefix binds an extra namespace prefix used when serializing.
func (s *Store) SetPrefix(prefix, iri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefixes[prefix] = iri
}

// Serialize writes the whole graph in the given format.
func (s *Store) Serialize(w io.Writer, format export.Format) error {
	s.mu.Lock()
	prefixes := make(map[string]string, len(s.prefixes))
	for k, v := range s.prefixes {
		prefixes[k] = v
	}
	s.mu.Unlock()

	return export.Write(w, format, s.Quads(), prefixes)
}

func key(q quad.Quad) string {
	return q.Subject.String() + " " + q.Predicate.String() + " " + q.Object.String()
}
