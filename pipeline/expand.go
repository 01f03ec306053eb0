package pipeline

import (
	"time"

	"github.com/c360studio/dwcgraph/entity"
	"github.com/c360studio/dwcgraph/ident"
	"github.com/c360studio/dwcgraph/record"
	"github.com/c360studio/dwcgraph/vocabulary/tern"
)

// Options selects the model tier and the constants of an expansion.
type Options struct {
	// SiteModeling adds a Site, its establishing Sampling and a SiteVisit
	// between the region and the Occurrence.
	SiteModeling bool

	// DefaultRegion is the state or territory used when a row has no
	// stateProvince.
	DefaultRegion string

	Dataset entity.Dataset
}

// DefaultOptions returns the region-only tier with the default dataset.
func DefaultOptions() Options {
	return Options{
		DefaultRegion: string(tern.RegionWA),
		Dataset:       entity.DefaultDataset(),
	}
}

var (
	occurrenceObservations = []entity.ObservationSpec{
		{Field: record.ColSex, Property: tern.PropertySex, Comment: "Sex of the occurrence.", Optional: true},
		{Field: record.ColLifeStage, Property: tern.PropertyLifeStage, Comment: "Life stage of the occurrence.", Optional: true},
		{Field: record.ColHabitat, Property: tern.PropertyHabitat, Comment: "Habitat of the occurrence.", Optional: true},
	}

	typeStatusObservation = entity.ObservationSpec{
		Field:    record.ColTypeStatus,
		Property: tern.PropertyTypeStatus,
		Comment:  "Type status of the specimen.",
		Optional: true,
	}
)

// Expansion is every entity built from one row, in construction order.
type Expansion struct {
	Row int

	Record             *entity.Record
	Site               *entity.Sample
	SiteSampling       *entity.Sampling
	SiteVisit          *entity.SiteVisit
	Occurrence         *entity.Sample
	OccurrenceSampling *entity.Sampling
	Specimen           *entity.Sample
	SpecimenSampling   *entity.Sampling
	Observations       []*entity.Observation

	entities []entity.Entity
}

func (x *Expansion) add(es ...entity.Entity) {
	x.entities = append(x.entities, es...)
}

// Entities returns the built entities in the order they were built.
func (x *Expansion) Entities() []entity.Entity {
	return x.entities
}

// Expander builds the entity graph of single rows.
type Expander struct {
	minter *ident.Minter
	opts   Options
	now    func() time.Time
}

// NewExpander creates an expander minting identifiers from m.
func NewExpander(m *ident.Minter, opts Options) *Expander {
	if m == nil {
		m = ident.NewMinter(ident.DefaultBase)
	}
	if opts.DefaultRegion == "" {
		opts.DefaultRegion = string(tern.RegionWA)
	}
	return &Expander{minter: m, opts: opts, now: time.Now}
}

// Options returns the options of the expander.
func (e *Expander) Options() Options {
	return e.opts
}

// Expand builds every entity of a row. It is safe to call concurrently for
// different rows.
func (e *Expander) Expand(row record.Row) (*Expansion, error) {
	c := entity.Context{Row: row, IDs: e.minter.Scope(row.Index), Built: e.now()}
	x := &Expansion{Row: row.Index}

	rec, err := entity.NewRecord(c, e.opts.Dataset)
	if err != nil {
		return nil, err
	}
	c.Record = rec.ID
	x.Record = rec
	x.add(rec)
	for _, a := range rec.Attributes {
		x.add(a, a.Value)
	}

	instant, err := record.ResolveInstant(row, record.ColEventDate, record.ColVerbatimEventDate)
	if err != nil {
		return nil, err
	}

	region, err := e.region(row)
	if err != nil {
		return nil, err
	}
	within := []string{tern.GeonamesAustralia, region}

	recordedBy, err := row.Require(record.ColRecordedBy, string(entity.KindPerson))
	if err != nil {
		return nil, err
	}
	recorder := entity.NewPerson(c, recordedBy)
	point, err := entity.NewPoint(c)
	if err != nil {
		return nil, err
	}
	x.add(recorder, point)

	parent := region
	if e.opts.SiteModeling {
		if err := e.expandSite(c, x, siteInputs{region: region, within: within, instant: instant, recorder: recorder.ID, point: point.ID}); err != nil {
			return nil, err
		}
		parent = x.Site.ID
	}

	if err := e.expandOccurrence(c, x, parent, within, instant, recorder.ID, point.ID); err != nil {
		return nil, err
	}
	if err := e.expandSpecimen(c, x, instant, recorder.ID); err != nil {
		return nil, err
	}

	moment := entity.Moment{DateTime: instant}
	about := entity.Activity{
		FeatureOfInterest: x.Occurrence.ID,
		Procedure:         tern.ProcedureOccurrence,
		AssociatedWith:    recorder.ID,
		ResultTime:        instant,
	}
	for _, spec := range occurrenceObservations {
		if err := e.observeText(c, x, spec, about, moment); err != nil {
			return nil, err
		}
	}

	about.FeatureOfInterest = x.Specimen.ID
	about.Procedure = tern.ProcedureTypeDesignation
	if err := e.observeText(c, x, typeStatusObservation, about, moment); err != nil {
		return nil, err
	}
	if err := e.identify(c, x, instant); err != nil {
		return nil, err
	}
	return x, nil
}

// region resolves the state or territory a row was collected in.
func (e *Expander) region(row record.Row) (string, error) {
	if name, ok := row.Value(record.ColStateProvince); ok {
		return tern.LookupRegion(name)
	}
	return tern.LookupRegion(e.opts.DefaultRegion)
}

type siteInputs struct {
	region   string
	within   []string
	instant  string
	recorder string
	point    string
}

func (e *Expander) expandSite(c entity.Context, x *Expansion, in siteInputs) error {
	sampling, site, err := entity.NewSamplingPair(c, entity.SamplingSpec{
		Parent:           in.region,
		Procedure:        tern.ProcedureSiteEstablish,
		AssociatedWith:   in.recorder,
		Geometry:         in.point,
		Within:           in.within,
		ResultTime:       in.instant,
		SampleKind:       entity.KindSite,
		SampleIdentifier: c.Row.Optional(record.ColLocationID),
		SampleComment:    "site",
		FeatureType:      tern.FeatureTypeSite,
		SampleGeometry:   in.point,
		Site: &entity.SiteDetail{
			Within:              in.within,
			LocationDescription: c.Row.Optional(record.ColLocationRemarks),
		},
	})
	if err != nil {
		return err
	}
	visit := entity.NewSiteVisit(c, site.ID, in.instant)
	x.SiteSampling, x.Site, x.SiteVisit = sampling, site, visit
	x.add(sampling, site, visit)
	return nil
}

func (e *Expander) expandOccurrence(c entity.Context, x *Expansion, parent string, within []string, instant, recorder, point string) error {
	occurrenceID, err := c.Row.Require(record.ColOccurrenceID, string(entity.KindSample))
	if err != nil {
		return err
	}
	var samplingType string
	if protocol, ok := c.Row.Value(record.ColSamplingProtocol); ok {
		samplingType, err = tern.ResolveTerm(tern.NamespaceBDRCV, protocol)
		if err != nil {
			return err
		}
	}

	sampling, occurrence, err := entity.NewSamplingPair(c, entity.SamplingSpec{
		Parent:           parent,
		Procedure:        tern.ProcedureOccurrence,
		AssociatedWith:   recorder,
		Geometry:         point,
		Within:           within,
		ResultTime:       instant,
		Identifier:       c.Row.Optional(record.ColFieldNumber),
		SamplingType:     samplingType,
		Comment:          c.Row.Optional(record.ColLocationRemarks),
		SampleKind:       entity.KindSample,
		SampleIdentifier: occurrenceID,
		SampleComment:    "occurrence",
		FeatureType:      tern.FeatureTypeOccurrence,
	})
	if err != nil {
		return err
	}
	x.OccurrenceSampling, x.Occurrence = sampling, occurrence
	x.add(sampling, occurrence)
	return nil
}

func (e *Expander) expandSpecimen(c entity.Context, x *Expansion, instant, recorder string) error {
	preparations, err := c.Row.Require(record.ColPreparations, string(entity.KindProcedure))
	if err != nil {
		return err
	}
	procedure := entity.NewProcedure(c, preparations)

	sampling, specimen, err := entity.NewSamplingPair(c, entity.SamplingSpec{
		Parent:           x.Occurrence.ID,
		Procedure:        procedure.ID,
		AssociatedWith:   recorder,
		ResultTime:       instant,
		SampleKind:       entity.KindMaterialSample,
		SampleComment:    "specimen",
		FeatureType:      tern.FeatureTypeSpecimen,
		MaterialSampleID: x.Record.Identifier,
	})
	if err != nil {
		return err
	}
	x.SpecimenSampling, x.Specimen = sampling, specimen
	x.add(procedure, sampling, specimen)
	return nil
}

func (e *Expander) observeText(c entity.Context, x *Expansion, spec entity.ObservationSpec, about entity.Activity, when entity.Moment) error {
	obs, ok, err := entity.NewTextObservation(c, spec, about, when)
	if err != nil || !ok {
		return err
	}
	x.Observations = append(x.Observations, obs)
	x.add(obs, obs.Result, obs.PhenomenonTime)
	return nil
}

// identify builds the taxonomic identification of the specimen. The
// identification date is resolved at year precision and falls back to the
// event instant.
func (e *Expander) identify(c entity.Context, x *Expansion, instant string) error {
	about := entity.Activity{
		FeatureOfInterest: x.Specimen.ID,
		Procedure:         tern.ProcedureIdentification,
		ResultTime:        instant,
	}
	when := entity.Moment{DateTime: instant}

	date, ok, err := record.ResolveYear(c.Row, record.ColDateIdentified)
	if err != nil {
		return err
	}
	if ok {
		when = entity.Moment{Date: date}
		about.ResultTime = date + "T00:00:00"
	}

	var identifier *entity.Person
	if name, ok := c.Row.Value(record.ColIdentifiedBy); ok {
		identifier = entity.NewPerson(c, name)
		about.AssociatedWith = identifier.ID
	}

	obs, err := entity.NewTaxonObservation(c, about, when)
	if err != nil {
		return err
	}
	if identifier != nil {
		x.add(identifier)
	}
	x.Observations = append(x.Observations, obs)
	x.add(obs, obs.Result, obs.PhenomenonTime)
	return nil
}
