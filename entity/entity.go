package entity

import (
	"time"

	"github.com/c360studio/dwcgraph/vocabulary/tern"
	"github.com/c360studio/semstreams/message"
)

// Source is recorded on every triple produced by this package.
const Source = "dwcgraph.expand"

// Kind tags the variant of an entity.
type Kind string

// Entity kinds.
const (
	KindRecord         Kind = "record"
	KindAttribute      Kind = "attribute"
	KindText           Kind = "text"
	KindTaxon          Kind = "taxon"
	KindPerson         Kind = "person"
	KindPoint          Kind = "point"
	KindProcedure      Kind = "procedure"
	KindInstant        Kind = "instant"
	KindSampling       Kind = "sampling"
	KindObservation    Kind = "observation"
	KindSample         Kind = "sample"
	KindSite           Kind = "site"
	KindMaterialSample Kind = "material_sample"
	KindSiteVisit      Kind = "site_visit"
)

var classes = map[Kind]string{
	KindRecord:         tern.ClassRDFDataset,
	KindAttribute:      tern.ClassAttribute,
	KindText:           tern.ClassText,
	KindTaxon:          tern.ClassTaxon,
	KindPerson:         tern.ClassPerson,
	KindPoint:          tern.ClassPoint,
	KindProcedure:      tern.ClassProcedure,
	KindInstant:        tern.ClassInstant,
	KindSampling:       tern.ClassSampling,
	KindObservation:    tern.ClassObservation,
	KindSample:         tern.ClassSample,
	KindSite:           tern.ClassSite,
	KindMaterialSample: tern.ClassMaterialSample,
	KindSiteVisit:      tern.ClassSiteVisit,
}

// Class returns the ontology class IRI of the kind.
func (k Kind) Class() string {
	return classes[k]
}

// IsSample reports whether the kind belongs to the Sample family.
func (k Kind) IsSample() bool {
	return k == KindSample || k == KindSite || k == KindMaterialSample
}

// Entity is implemented by every built entity.
type Entity interface {
	EntityID() string
	EntityKind() Kind
	Triples() []message.Triple
}

// Base holds the fields every entity carries.
type Base struct {
	ID   string
	Kind Kind

	// InDataset is the identifier of the owning Record. It is empty only on
	// the Record itself.
	InDataset string

	// Built is stamped on the triples of the entity.
	Built time.Time
}

// EntityID returns the identifier of the entity.
func (b Base) EntityID() string { return b.ID }

// EntityKind returns the variant tag of the entity.
func (b Base) EntityKind() Kind { return b.Kind }

func (b Base) triple(predicate string, object any) message.Triple {
	return message.Triple{
		Subject:    b.ID,
		Predicate:  predicate,
		Object:     object,
		Source:     Source,
		Timestamp:  b.Built,
		Confidence: 1.0,
	}
}

// header emits the relations shared by every kind.
func (b Base) header() []message.Triple {
	out := []message.Triple{b.triple(tern.RDFType, b.Kind.Class())}
	if b.InDataset != "" {
		out = append(out, b.triple(tern.VoidInDataset, b.InDataset))
	}
	return out
}
