package graph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/c360studio/dwcgraph/ident"
	"github.com/c360studio/dwcgraph/vocabulary/tern"
	"github.com/c360studio/semstreams/message"
	"github.com/cayleygraph/quad"
)

// ErrUnknownPredicate is returned for a triple whose predicate has no
// registered IRI or value kind.
var ErrUnknownPredicate = errors.New("unregistered predicate")

// Node converts an entity identifier to an RDF node. Local identifiers
// become blank nodes.
func Node(id string) quad.Value {
	if ident.IsLocal(id) {
		return quad.BNode(strings.TrimPrefix(id, ident.BlankPrefix))
	}
	return quad.IRI(id)
}

// ToQuad types a triple using the registered value kind of its predicate.
func ToQuad(t message.Triple) (quad.Quad, error) {
	pred, ok := tern.PredicateIRI(t.Predicate)
	if !ok {
		return quad.Quad{}, fmt.Errorf("%w: %s", ErrUnknownPredicate, t.Predicate)
	}
	kind, ok := tern.ValueKind(t.Predicate)
	if !ok {
		return quad.Quad{}, fmt.Errorf("%w: %s has no value kind", ErrUnknownPredicate, t.Predicate)
	}
	if t.Subject == "" {
		return quad.Quad{}, fmt.Errorf("triple %s has no subject", t.Predicate)
	}

	obj, err := object(kind, t.Object)
	if err != nil {
		return quad.Quad{}, fmt.Errorf("%s: %w", t.Predicate, err)
	}
	return quad.Quad{Subject: Node(t.Subject), Predicate: quad.IRI(pred), Object: obj}, nil
}

func object(kind string, v any) (quad.Value, error) {
	switch kind {
	case tern.KindEntityID:
		id, ok := v.(string)
		if !ok || id == "" {
			return nil, fmt.Errorf("identifier object must be a non-empty string, got %T", v)
		}
		return Node(id), nil
	case tern.KindString:
		return quad.String(lexical(v)), nil
	}

	dt := tern.DatatypeIRI(kind)
	if dt == "" {
		return nil, fmt.Errorf("value kind %q has no datatype", kind)
	}
	return quad.TypedString{Value: quad.String(lexical(v)), Type: quad.IRI(dt)}, nil
}

func lexical(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
