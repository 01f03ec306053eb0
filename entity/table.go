package entity

import (
	"github.com/c360studio/dwcgraph/vocabulary/tern"
	"github.com/c360studio/semstreams/message"
)

// Relation describes how one entity field is serialized.
type Relation struct {
	Field     string
	Predicate string
	ValueKind string
}

type column[T any] struct {
	field     string
	predicate string
	value     func(T) any
}

// table is the ordered serialization table of one kind. Column values may be
// a string, a []string, a float64 or a *float64; empty strings and nil
// pointers are omitted.
type table[T any] []column[T]

func (t table[T]) triples(b Base, e T) []message.Triple {
	out := b.header()
	for _, c := range t {
		for _, v := range present(c.value(e)) {
			out = append(out, b.triple(c.predicate, v))
		}
	}
	return out
}

func (t table[T]) relations() []Relation {
	rels := make([]Relation, 0, len(t)+2)
	rels = append(rels, relation("Kind", tern.RDFType), relation("InDataset", tern.VoidInDataset))
	for _, c := range t {
		rels = append(rels, relation(c.field, c.predicate))
	}
	return rels
}

func relation(field, predicate string) Relation {
	kind, _ := tern.ValueKind(predicate)
	return Relation{Field: field, Predicate: predicate, ValueKind: kind}
}

func present(v any) []any {
	switch x := v.(type) {
	case string:
		if x == "" {
			return nil
		}
		return []any{x}
	case []string:
		out := make([]any, 0, len(x))
		for _, s := range x {
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case *float64:
		if x == nil {
			return nil
		}
		return []any{*x}
	case float64:
		return []any{x}
	default:
		return nil
	}
}

// Describe returns the ordered serialization table of a kind.
func Describe(k Kind) []Relation {
	switch k {
	case KindRecord:
		return recordTable.relations()
	case KindAttribute:
		return attributeTable.relations()
	case KindText:
		return textTable.relations()
	case KindTaxon:
		return taxonTable.relations()
	case KindPerson:
		return personTable.relations()
	case KindPoint:
		return pointTable.relations()
	case KindProcedure:
		return procedureTable.relations()
	case KindInstant:
		return instantTable.relations()
	case KindSampling:
		return samplingTable.relations()
	case KindObservation:
		return observationTable.relations()
	case KindSample, KindSite, KindMaterialSample:
		return sampleTable.relations()
	case KindSiteVisit:
		return siteVisitTable.relations()
	}
	return nil
}

// Kinds lists every entity kind in expansion order.
func Kinds() []Kind {
	return []Kind{
		KindRecord, KindAttribute, KindText, KindTaxon, KindPerson, KindPoint,
		KindProcedure, KindInstant, KindSampling, KindSample, KindSite,
		KindSiteVisit, KindMaterialSample, KindObservation,
	}
}
