package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/dwcgraph/ident"
	"github.com/c360studio/dwcgraph/record"
	"github.com/c360studio/dwcgraph/vocabulary/tern"
)

// ErrNoParent is returned when a sampling is built without a parent feature.
var ErrNoParent = errors.New("sampling has no parent feature")

// Context carries what every builder of one row needs.
type Context struct {
	Row record.Row
	IDs *ident.Scope

	// Record is the identifier of the row's Record, empty until it is built.
	Record string

	Built time.Time
}

func (c Context) base(kind Kind, id string) Base {
	return Base{ID: id, Kind: kind, InDataset: c.Record, Built: c.Built}
}

func (c Context) local(kind Kind) Base  { return c.base(kind, c.IDs.Local()) }
func (c Context) global(kind Kind) Base { return c.base(kind, c.IDs.Global()) }

// Dataset holds the constants stamped on every Record.
type Dataset struct {
	License      string
	Source       string
	RightsHolder string
	Comment      string
}

// DefaultDataset returns the constants of the museum occurrence export.
func DefaultDataset() Dataset {
	return Dataset{
		License:      "https://creativecommons.org/licenses/by/4.0/",
		Source:       "https://doi.org/10.26197/ala.26fdc11f-107e-45fa-9aab-3aead9083137",
		RightsHolder: "https://museum.wa.gov.au/",
		Comment:      "Equivalent to dwc:Record.",
	}
}

// NewRecord builds the Record of a row together with its country code and
// provenance attributes.
func NewRecord(c Context, ds Dataset) (*Record, error) {
	identifier, err := c.Row.Require(record.ColCatalogNumber, string(KindRecord))
	if err != nil {
		return nil, err
	}
	code, err := c.Row.Require(record.ColCollectionCode, string(KindRecord))
	if err != nil {
		return nil, err
	}
	subject, err := tern.ResolveTerm(tern.NamespaceBDRCV, code)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		Base:         Base{ID: c.IDs.Global(), Kind: KindRecord, Built: c.Built},
		Identifier:   identifier,
		License:      ds.License,
		Subject:      subject,
		Source:       ds.Source,
		RightsHolder: ds.RightsHolder,
		Comment:      ds.Comment,
	}

	c.Record = rec.ID
	for _, a := range []struct{ term, field string }{
		{tern.AttributeCountryCode, record.ColCountryCode},
		{tern.AttributeProvenance, record.ColProvenance},
	} {
		attr, err := NewTextAttribute(c, a.term, a.field)
		if err != nil {
			return nil, err
		}
		rec.Attributes = append(rec.Attributes, attr)
	}
	return rec, nil
}

// NewTextAttribute builds an attribute whose value is the text of a
// mandatory field.
func NewTextAttribute(c Context, term, field string) (*Attribute, error) {
	v, err := c.Row.Require(field, string(KindAttribute))
	if err != nil {
		return nil, err
	}
	attr := &Attribute{Base: c.local(KindAttribute), Term: term}
	attr.Value = NewText(c, v)
	return attr, nil
}

// NewText wraps a literal string.
func NewText(c Context, text string) *Value {
	return &Value{Base: c.local(KindText), Text: text}
}

// NewTaxon builds the taxon value of a row. Scientific name and kingdom are
// mandatory; the remaining ranks are emitted when present.
func NewTaxon(c Context) (*Value, error) {
	name, err := c.Row.Require(record.ColScientificName, string(KindTaxon))
	if err != nil {
		return nil, err
	}
	kingdom, err := c.Row.Require(record.ColKingdom, string(KindTaxon))
	if err != nil {
		return nil, err
	}

	taxon := &Taxon{
		ScientificName:           name,
		Kingdom:                  kingdom,
		Phylum:                   c.Row.Optional(record.ColPhylum),
		Class:                    c.Row.Optional(record.ColClass),
		Order:                    c.Row.Optional(record.ColOrder),
		Family:                   c.Row.Optional(record.ColFamily),
		Genus:                    c.Row.Optional(record.ColGenus),
		SpecificEpithet:          c.Row.Optional(record.ColSpecificEpithet),
		TaxonRank:                c.Row.Optional(record.ColTaxonRank),
		ScientificNameAuthorship: c.Row.Optional(record.ColScientificNameAuthor),
		Species:                  c.Row.Optional(record.ColSpecies),
	}
	if concept, ok := c.Row.Value(record.ColTaxonConceptID); ok {
		iri, err := tern.ResolveTerm(c.IDs.Base(), concept)
		if err != nil {
			return nil, err
		}
		taxon.ConceptID = iri
	}
	return &Value{Base: c.local(KindTaxon), Taxon: taxon}, nil
}

// NewPerson builds a named agent.
func NewPerson(c Context, name string) *Person {
	return &Person{Base: c.local(KindPerson), Name: name}
}

var elevationCleaner = strings.NewReplacer(" ", "", "m", "")

// NewPoint builds the collection point of a row. Latitude and longitude are
// mandatory; elevation and positional accuracy are optional.
func NewPoint(c Context) (*Point, error) {
	entity := string(KindPoint)
	latRaw, err := c.Row.Require(record.ColDecimalLatitude, entity)
	if err != nil {
		return nil, err
	}
	longRaw, err := c.Row.Require(record.ColDecimalLongitude, entity)
	if err != nil {
		return nil, err
	}
	lat, err := parseFloat(record.ColDecimalLatitude, entity, latRaw)
	if err != nil {
		return nil, err
	}
	long, err := parseFloat(record.ColDecimalLongitude, entity, longRaw)
	if err != nil {
		return nil, err
	}
	if lat < -90 || lat > 90 {
		return nil, &record.InvalidValueError{Field: record.ColDecimalLatitude, Entity: entity, Value: latRaw}
	}
	if long < -180 || long > 180 {
		return nil, &record.InvalidValueError{Field: record.ColDecimalLongitude, Entity: entity, Value: longRaw}
	}

	p := &Point{
		Base: c.local(KindPoint),
		Lat:  lat,
		Long: long,
		WKT:  fmt.Sprintf("POINT(%s %s)", strings.TrimSpace(longRaw), strings.TrimSpace(latRaw)),
	}
	if v, ok := c.Row.Value(record.ColVerbatimElevation); ok {
		e, err := parseFloat(record.ColVerbatimElevation, entity, elevationCleaner.Replace(v))
		if err != nil {
			return nil, err
		}
		p.Elevation = &e
	}
	if v, ok := c.Row.Value(record.ColCoordinateUncertainty); ok {
		a, err := parseFloat(record.ColCoordinateUncertainty, entity, v)
		if err != nil {
			return nil, err
		}
		p.Accuracy = &a
	}
	return p, nil
}

func parseFloat(field, entity, raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &record.InvalidValueError{Field: field, Entity: entity, Value: raw}
	}
	return f, nil
}

// NewProcedure builds a described method.
func NewProcedure(c Context, description string) *Procedure {
	return &Procedure{Base: c.local(KindProcedure), Description: description}
}

// Moment is a resolved time. Exactly one field is set.
type Moment struct {
	DateTime string
	Date     string
}

// NewInstant builds a time instant. Date-times with a zone offset become
// xsd:dateTimeStamp values, local ones stay xsd:dateTime.
func NewInstant(c Context, m Moment) *Instant {
	i := &Instant{Base: c.local(KindInstant), Date: m.Date}
	if record.IsZoned(m.DateTime) {
		i.DateTimeStamp = m.DateTime
	} else {
		i.DateTime = m.DateTime
	}
	return i
}

// SamplingSpec describes a Sampling and the Sample it results in.
type SamplingSpec struct {
	// Parent is the feature of interest of the sampling, which is also the
	// feature the sample is a sample of.
	Parent         string
	Procedure      string
	AssociatedWith string
	Geometry       string
	Within         []string
	ResultTime     string
	Identifier     string
	SamplingType   string
	Comment        string

	SampleKind       Kind
	SampleIdentifier string
	SampleComment    string
	FeatureType      string
	SampleGeometry   string
	MaterialSampleID string
	Site             *SiteDetail
}

// NewSamplingPair builds a Sampling and its resulting Sample. Both
// identifiers are minted before either value exists, so the sampling's result
// and the sample's is-result-of always agree.
func NewSamplingPair(c Context, spec SamplingSpec) (*Sampling, *Sample, error) {
	if spec.Parent == "" {
		return nil, nil, ErrNoParent
	}
	if !spec.SampleKind.IsSample() {
		return nil, nil, fmt.Errorf("sampling result of kind %q is not a sample", spec.SampleKind)
	}

	samplingID := c.IDs.Global()
	sampleID := c.IDs.Global()

	sampling := &Sampling{
		Activity: Activity{
			Base:              c.base(KindSampling, samplingID),
			FeatureOfInterest: spec.Parent,
			Procedure:         spec.Procedure,
			AssociatedWith:    spec.AssociatedWith,
			Geometry:          spec.Geometry,
			Within:            spec.Within,
			ResultTime:        spec.ResultTime,
			Comment:           spec.Comment,
		},
		Identifier:   spec.Identifier,
		SamplingType: spec.SamplingType,
		Result:       sampleID,
	}
	sample := &Sample{
		Base:             c.base(spec.SampleKind, sampleID),
		Identifier:       spec.SampleIdentifier,
		Comment:          spec.SampleComment,
		SampleOf:         spec.Parent,
		ResultOf:         samplingID,
		FeatureType:      spec.FeatureType,
		Geometry:         spec.SampleGeometry,
		MaterialSampleID: spec.MaterialSampleID,
		Site:             spec.Site,
	}
	return sampling, sample, nil
}

// ObservationSpec selects the driving field and constants of a text
// observation.
type ObservationSpec struct {
	Field    string
	Property string
	Comment  string

	// Optional observations are not built when Field is absent.
	Optional bool
}

// NewTextObservation builds an observation whose result is the text of
// spec.Field. The activity fields are taken from about. When the field is
// optional and absent, nothing is built and ok is false.
func NewTextObservation(c Context, spec ObservationSpec, about Activity, when Moment) (obs *Observation, ok bool, err error) {
	v, present := c.Row.Value(spec.Field)
	if !present {
		if spec.Optional {
			return nil, false, nil
		}
		return nil, false, &record.MissingFieldError{Field: spec.Field, Entity: string(KindObservation)}
	}
	obs = newObservation(c, about, spec.Property, spec.Comment)
	obs.Result = NewText(c, v)
	obs.PhenomenonTime = NewInstant(c, when)
	return obs, true, nil
}

// NewTaxonObservation builds the taxonomic identification of a row.
func NewTaxonObservation(c Context, about Activity, when Moment) (*Observation, error) {
	obs := newObservation(c, about, tern.PropertyTaxon, "Taxonomic identification of the specimen.")
	taxon, err := NewTaxon(c)
	if err != nil {
		return nil, err
	}
	obs.Result = taxon
	obs.PhenomenonTime = NewInstant(c, when)
	return obs, nil
}

func newObservation(c Context, about Activity, property, comment string) *Observation {
	about.Base = c.global(KindObservation)
	about.Comment = comment
	return &Observation{Activity: about, Property: property}
}

// NewSiteVisit builds a visit to a site starting at the given instant.
func NewSiteVisit(c Context, site, startedAt string) *SiteVisit {
	return &SiteVisit{Base: c.global(KindSiteVisit), StartedAt: startedAt, Site: site}
}
