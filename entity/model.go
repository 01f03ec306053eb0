package entity

import (
	"github.com/c360studio/dwcgraph/vocabulary/tern"
	"github.com/c360studio/semstreams/message"
)

// Record is the dataset entry a source row is recorded as. It is the
// in-dataset anchor of every other entity built from the row.
type Record struct {
	Base
	Identifier   string
	License      string
	Subject      string
	Source       string
	RightsHolder string
	Comment      string
	Attributes   []*Attribute
}

var recordTable = table[*Record]{
	{"Identifier", tern.DCIdentifier, func(r *Record) any { return r.Identifier }},
	{"License", tern.DCLicense, func(r *Record) any { return r.License }},
	{"Subject", tern.DCSubject, func(r *Record) any { return r.Subject }},
	{"Source", tern.DCSource, func(r *Record) any { return r.Source }},
	{"RightsHolder", tern.DCRightsHolder, func(r *Record) any { return r.RightsHolder }},
	{"Attributes", tern.HasAttribute, func(r *Record) any { return ids(r.Attributes) }},
	{"Comment", tern.RDFSComment, func(r *Record) any { return r.Comment }},
}

// Triples serializes the record.
func (r *Record) Triples() []message.Triple { return recordTable.triples(r.Base, r) }

// Attribute annotates a Record with a vocabulary term and its value.
type Attribute struct {
	Base
	Term  string
	Value *Value
}

var attributeTable = table[*Attribute]{
	{"Term", tern.AttributeTerm, func(a *Attribute) any { return a.Term }},
	{"Value", tern.HasValue, func(a *Attribute) any { return a.Value.EntityID() }},
	{"SimpleValue", tern.HasSimpleValue, func(a *Attribute) any { return a.Value.Simple() }},
}

// Triples serializes the attribute. The simple value is always the literal
// mirror of the structured value.
func (a *Attribute) Triples() []message.Triple { return attributeTable.triples(a.Base, a) }

// Taxon holds the rank fields of a taxonomic identification.
type Taxon struct {
	ConceptID                string
	ScientificName           string
	Kingdom                  string
	Phylum                   string
	Class                    string
	Order                    string
	Family                   string
	Genus                    string
	SpecificEpithet          string
	TaxonRank                string
	ScientificNameAuthorship string
	Species                  string
}

// Value is the payload of an Observation or Attribute. Kind selects between
// a Text value and a Taxon value.
type Value struct {
	Base
	Text  string
	Taxon *Taxon
}

// Simple returns the literal form of the value.
func (v *Value) Simple() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindTaxon && v.Taxon != nil {
		return v.Taxon.ScientificName
	}
	return v.Text
}

// EntityID returns the identifier, or "" for a nil value.
func (v *Value) EntityID() string {
	if v == nil {
		return ""
	}
	return v.ID
}

var textTable = table[*Value]{
	{"Text", tern.RDFValue, func(v *Value) any { return v.Text }},
}

var taxonTable = table[*Value]{
	{"ConceptID", tern.TaxonConceptID, func(v *Value) any { return v.Taxon.ConceptID }},
	{"ScientificName", tern.ScientificName, func(v *Value) any { return v.Taxon.ScientificName }},
	{"Kingdom", tern.Kingdom, func(v *Value) any { return v.Taxon.Kingdom }},
	{"Phylum", tern.Phylum, func(v *Value) any { return v.Taxon.Phylum }},
	{"Class", tern.Class, func(v *Value) any { return v.Taxon.Class }},
	{"Order", tern.Order, func(v *Value) any { return v.Taxon.Order }},
	{"Family", tern.Family, func(v *Value) any { return v.Taxon.Family }},
	{"Genus", tern.Genus, func(v *Value) any { return v.Taxon.Genus }},
	{"SpecificEpithet", tern.SpecificEpithet, func(v *Value) any { return v.Taxon.SpecificEpithet }},
	{"TaxonRank", tern.TaxonRank, func(v *Value) any { return v.Taxon.TaxonRank }},
	{"ScientificNameAuthorship", tern.ScientificNameAuthorship, func(v *Value) any { return v.Taxon.ScientificNameAuthorship }},
	{"Species", tern.Species, func(v *Value) any { return v.Taxon.Species }},
}

// Triples serializes the value according to its variant.
func (v *Value) Triples() []message.Triple {
	if v.Kind == KindTaxon {
		return taxonTable.triples(v.Base, v)
	}
	return textTable.triples(v.Base, v)
}

// Person is a named agent.
type Person struct {
	Base
	Name string
}

var personTable = table[*Person]{
	{"Name", tern.SDOName, func(p *Person) any { return p.Name }},
}

// Triples serializes the person.
func (p *Person) Triples() []message.Triple { return personTable.triples(p.Base, p) }

// Point is a WGS84 location.
type Point struct {
	Base
	Lat       float64
	Long      float64
	WKT       string
	Elevation *float64
	Accuracy  *float64
}

var pointTable = table[*Point]{
	{"Lat", tern.WGSLat, func(p *Point) any { return p.Lat }},
	{"Long", tern.WGSLong, func(p *Point) any { return p.Long }},
	{"WKT", tern.GeoAsWKT, func(p *Point) any { return p.WKT }},
	{"Elevation", tern.LocElevation, func(p *Point) any { return p.Elevation }},
	{"Accuracy", tern.GeoMetricSpatialAccuracy, func(p *Point) any { return p.Accuracy }},
}

// Triples serializes the point.
func (p *Point) Triples() []message.Triple { return pointTable.triples(p.Base, p) }

// Procedure is a described method.
type Procedure struct {
	Base
	Description string
}

var procedureTable = table[*Procedure]{
	{"Description", tern.DCDescription, func(p *Procedure) any { return p.Description }},
}

// Triples serializes the procedure.
func (p *Procedure) Triples() []message.Triple { return procedureTable.triples(p.Base, p) }

// Instant is a point in time. Exactly one of DateTimeStamp, DateTime and
// Date is set. DateTimeStamp holds zoned values only.
type Instant struct {
	Base
	DateTimeStamp string
	DateTime      string
	Date          string
}

var instantTable = table[*Instant]{
	{"DateTimeStamp", tern.InXSDDateTimeStamp, func(i *Instant) any { return i.DateTimeStamp }},
	{"DateTime", tern.InXSDDateTime, func(i *Instant) any { return i.DateTime }},
	{"Date", tern.InXSDDate, func(i *Instant) any { return i.Date }},
}

// Triples serializes the instant.
func (i *Instant) Triples() []message.Triple { return instantTable.triples(i.Base, i) }

// Activity holds the fields shared by samplings and observations.
type Activity struct {
	Base
	FeatureOfInterest string
	Procedure         string
	AssociatedWith    string
	Geometry          string
	Within            []string
	ResultTime        string
	Comment           string
}

// Sampling is an activity producing a Sample from a feature of interest.
type Sampling struct {
	Activity
	Identifier   string
	SamplingType string
	Result       string
}

var samplingTable = table[*Sampling]{
	{"FeatureOfInterest", tern.HasFeatureOfInterest, func(s *Sampling) any { return s.FeatureOfInterest }},
	{"Procedure", tern.UsedProcedure, func(s *Sampling) any { return s.Procedure }},
	{"AssociatedWith", tern.WasAssociatedWith, func(s *Sampling) any { return s.AssociatedWith }},
	{"Geometry", tern.GeoHasGeometry, func(s *Sampling) any { return s.Geometry }},
	{"Within", tern.GeoSfWithin, func(s *Sampling) any { return s.Within }},
	{"ResultTime", tern.ResultTime, func(s *Sampling) any { return s.ResultTime }},
	{"Comment", tern.RDFSComment, func(s *Sampling) any { return s.Comment }},
	{"Identifier", tern.DCIdentifier, func(s *Sampling) any { return s.Identifier }},
	{"SamplingType", tern.SamplingType, func(s *Sampling) any { return s.SamplingType }},
	{"Result", tern.HasResult, func(s *Sampling) any { return s.Result }},
}

// Triples serializes the sampling.
func (s *Sampling) Triples() []message.Triple { return samplingTable.triples(s.Base, s) }

// Observation is an activity asserting a value about a feature of interest.
// The simple result is derived from Result, so the two cannot disagree.
type Observation struct {
	Activity
	Property       string
	Result         *Value
	PhenomenonTime *Instant
}

var observationTable = table[*Observation]{
	{"FeatureOfInterest", tern.HasFeatureOfInterest, func(o *Observation) any { return o.FeatureOfInterest }},
	{"Procedure", tern.UsedProcedure, func(o *Observation) any { return o.Procedure }},
	{"AssociatedWith", tern.WasAssociatedWith, func(o *Observation) any { return o.AssociatedWith }},
	{"ResultTime", tern.ResultTime, func(o *Observation) any { return o.ResultTime }},
	{"Comment", tern.RDFSComment, func(o *Observation) any { return o.Comment }},
	{"Property", tern.ObservedProperty, func(o *Observation) any { return o.Property }},
	{"Result", tern.HasResult, func(o *Observation) any { return o.Result.EntityID() }},
	{"SimpleResult", tern.HasSimpleResult, func(o *Observation) any { return o.Result.Simple() }},
	{"PhenomenonTime", tern.PhenomenonTime, func(o *Observation) any { return instantID(o.PhenomenonTime) }},
}

// Triples serializes the observation.
func (o *Observation) Triples() []message.Triple { return observationTable.triples(o.Base, o) }

// SiteDetail holds the fields only a Site carries.
type SiteDetail struct {
	Within              []string
	LocationDescription string
}

// Sample is a feature produced by a Sampling. Kind selects between a plain
// Sample, a Site and a MaterialSample.
type Sample struct {
	Base
	Identifier       string
	Comment          string
	SampleOf         string
	ResultOf         string
	FeatureType      string
	Geometry         string
	MaterialSampleID string
	Site             *SiteDetail
}

var sampleTable = table[*Sample]{
	{"Identifier", tern.DCIdentifier, func(s *Sample) any { return s.Identifier }},
	{"Comment", tern.RDFSComment, func(s *Sample) any { return s.Comment }},
	{"SampleOf", tern.IsSampleOf, func(s *Sample) any { return s.SampleOf }},
	{"ResultOf", tern.IsResultOf, func(s *Sample) any { return s.ResultOf }},
	{"FeatureType", tern.FeatureType, func(s *Sample) any { return s.FeatureType }},
	{"Geometry", tern.GeoHasGeometry, func(s *Sample) any { return s.Geometry }},
	{"MaterialSampleID", tern.MaterialSampleID, func(s *Sample) any { return s.MaterialSampleID }},
	{"Site.Within", tern.GeoSfWithin, func(s *Sample) any {
		if s.Site == nil {
			return nil
		}
		return s.Site.Within
	}},
	{"Site.LocationDescription", tern.LocationDescription, func(s *Sample) any {
		if s.Site == nil {
			return nil
		}
		return s.Site.LocationDescription
	}},
}

// Triples serializes the sample.
func (s *Sample) Triples() []message.Triple { return sampleTable.triples(s.Base, s) }

// SiteVisit is a temporal visit to a Site.
type SiteVisit struct {
	Base
	StartedAt string
	Site      string
}

var siteVisitTable = table[*SiteVisit]{
	{"StartedAt", tern.StartedAtTime, func(v *SiteVisit) any { return v.StartedAt }},
	{"Site", tern.HasSite, func(v *SiteVisit) any { return v.Site }},
}

// Triples serializes the site visit.
func (v *SiteVisit) Triples() []message.Triple { return siteVisitTable.triples(v.Base, v) }

func ids(attrs []*Attribute) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, a.ID)
	}
	return out
}

func instantID(i *Instant) string {
	if i == nil {
		return ""
	}
	return i.ID
}
