package tern

import "github.com/c360studio/semstreams/vocabulary"

// Value kinds recorded as predicate data types.
const (
	KindEntityID      = "entity_id"
	KindString        = "string"
	KindFloat         = "float"
	KindDateTime      = "datetime"
	KindDateTimeStamp = "datetimestamp"
	KindDate          = "date"
	KindWKT           = "wkt"
)

// Core RDF predicates.
const (
	// RDFType asserts the class of an entity.
	RDFType = "rdf.syntax.type"

	// RDFValue carries the literal of a text value.
	RDFValue = "rdf.syntax.value"

	// RDFSComment is a human-readable note.
	RDFSComment = "rdfs.schema.comment"
)

// Dataset (record) predicates.
const (
	// VoidInDataset links every derived entity to its owning record.
	VoidInDataset = "void.dataset.in_dataset"

	DCIdentifier   = "dcterms.record.identifier"
	DCLicense      = "dcterms.record.license"
	DCSubject      = "dcterms.record.subject"
	DCSource       = "dcterms.record.source"
	DCRightsHolder = "dcterms.record.rights_holder"
	DCDescription  = "dcterms.record.description"

	// HasAttribute links a record to its attributes.
	HasAttribute = "tern.attribute.has_attribute"

	// AttributeTerm names the vocabulary term an attribute describes.
	AttributeTerm = "tern.attribute.attribute"

	// HasValue links an attribute to its structured value.
	HasValue = "tern.attribute.has_value"

	// HasSimpleValue mirrors an attribute's value as a plain literal.
	HasSimpleValue = "tern.attribute.has_simple_value"
)

// Agent predicates.
const (
	SDOName = "sdo.agent.name"
)

// Geometry predicates.
const (
	GeoAsWKT                 = "geo.geometry.as_wkt"
	GeoHasGeometry           = "geo.geometry.has_geometry"
	GeoSfWithin              = "geo.geometry.sf_within"
	GeoMetricSpatialAccuracy = "geo.geometry.metric_spatial_accuracy"
	WGSLat                   = "wgs.position.lat"
	WGSLong                  = "wgs.position.long"
	LocElevation             = "tern.location.elevation"
	LocationDescription      = "tern.location.description"
)

// Activity predicates shared by samplings and observations.
const (
	HasFeatureOfInterest = "sosa.activity.has_feature_of_interest"
	UsedProcedure        = "sosa.activity.used_procedure"
	HasResult            = "sosa.activity.has_result"
	ResultTime           = "sosa.activity.result_time"
	WasAssociatedWith    = "prov.activity.was_associated_with"
	StartedAtTime        = "prov.activity.started_at_time"
	SamplingType         = "tern.sampling.sampling_type"
)

// Sample predicates.
const (
	IsSampleOf       = "sosa.sample.is_sample_of"
	IsResultOf       = "sosa.sample.is_result_of"
	FeatureType      = "tern.feature.feature_type"
	HasSite          = "tern.site.has_site"
	MaterialSampleID = "dwc.sample.material_sample_id"
)

// Observation predicates.
const (
	HasSimpleResult  = "sosa.observation.has_simple_result"
	ObservedProperty = "sosa.observation.observed_property"
	PhenomenonTime   = "sosa.observation.phenomenon_time"
)

// Time predicates.
const (
	InXSDDateTimeStamp = "time.instant.in_xsd_datetimestamp"
	InXSDDateTime      = "time.instant.in_xsd_datetime"
	InXSDDate          = "time.instant.in_xsd_date"
)

// Taxon predicates (Darwin Core terms).
const (
	TaxonConceptID           = "dwc.taxon.concept_id"
	ScientificName           = "dwc.taxon.scientific_name"
	Kingdom                  = "dwc.taxon.kingdom"
	Phylum                   = "dwc.taxon.phylum"
	Class                    = "dwc.taxon.class"
	Order                    = "dwc.taxon.order"
	Family                   = "dwc.taxon.family"
	Genus                    = "dwc.taxon.genus"
	SpecificEpithet          = "dwc.taxon.specific_epithet"
	TaxonRank                = "dwc.taxon.taxon_rank"
	ScientificNameAuthorship = "dwc.taxon.scientific_name_authorship"
	Species                  = "dwc.taxon.species"
)

func registerCorePredicates() {
	vocabulary.Register(RDFType,
		vocabulary.WithDescription("Class of the entity"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceRDF+"type"))

	vocabulary.Register(RDFValue,
		vocabulary.WithDescription("Literal payload of a text value"),
		vocabulary.WithDataType(KindString),
		vocabulary.WithIRI(NamespaceRDF+"value"))

	vocabulary.Register(RDFSComment,
		vocabulary.WithDescription("Human-readable comment"),
		vocabulary.WithDataType(KindString),
		vocabulary.WithIRI(NamespaceRDFS+"comment"))
}

func registerDatasetPredicates() {
	vocabulary.Register(VoidInDataset,
		vocabulary.WithDescription("Record the entity was derived from"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceVOID+"inDataset"))

	vocabulary.Register(DCIdentifier,
		vocabulary.WithDescription("Source identifier such as a catalog number"),
		vocabulary.WithDataType(KindString),
		vocabulary.WithIRI(NamespaceDCTerms+"identifier"))

	vocabulary.Register(DCLicense,
		vocabulary.WithDescription("License of the record"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceDCTerms+"license"))

	vocabulary.Register(DCSubject,
		vocabulary.WithDescription("Collection the record belongs to"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceDCTerms+"subject"))

	vocabulary.Register(DCSource,
		vocabulary.WithDescription("Published source of the record"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceDCTerms+"source"))

	vocabulary.Register(DCRightsHolder,
		vocabulary.WithDescription("Organisation holding rights over the record"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceDCTerms+"rightsHolder"))

	vocabulary.Register(DCDescription,
		vocabulary.WithDescription("Free-text description of a procedure"),
		vocabulary.WithDataType(KindString),
		vocabulary.WithIRI(NamespaceDCTerms+"description"))

	vocabulary.Register(HasAttribute,
		vocabulary.WithDescription("Attribute annotating a record"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceTERN+"hasAttribute"))

	vocabulary.Register(AttributeTerm,
		vocabulary.WithDescription("Vocabulary term the attribute describes"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceTERN+"attribute"))

	vocabulary.Register(HasValue,
		vocabulary.WithDescription("Structured value of an attribute"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceTERN+"hasValue"))

	vocabulary.Register(HasSimpleValue,
		vocabulary.WithDescription("Literal mirror of an attribute value"),
		vocabulary.WithDataType(KindString),
		vocabulary.WithIRI(NamespaceTERN+"hasSimpleValue"))

	vocabulary.Register(SDOName,
		vocabulary.WithDescription("Name of an agent"),
		vocabulary.WithDataType(KindString),
		vocabulary.WithIRI(NamespaceSDO+"name"))
}

func registerGeometryPredicates() {
	vocabulary.Register(GeoAsWKT,
		vocabulary.WithDescription("Well-known text serialization of a geometry"),
		vocabulary.WithDataType(KindWKT),
		vocabulary.WithIRI(NamespaceGEO+"asWKT"))

	vocabulary.Register(GeoHasGeometry,
		vocabulary.WithDescription("Geometry of a feature or activity"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceGEO+"hasGeometry"))

	vocabulary.Register(GeoSfWithin,
		vocabulary.WithDescription("Region spatially containing the entity"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceGEO+"sfWithin"))

	vocabulary.Register(GeoMetricSpatialAccuracy,
		vocabulary.WithDescription("Positional accuracy of a geometry"),
		vocabulary.WithDataType(KindFloat),
		vocabulary.WithUnits("meters"),
		vocabulary.WithIRI(NamespaceGEO+"hasMetricSpatialAccuracy"))

	vocabulary.Register(WGSLat,
		vocabulary.WithDescription("WGS84 latitude"),
		vocabulary.WithDataType(KindFloat),
		vocabulary.WithRange("-90 to 90"),
		vocabulary.WithIRI(NamespaceWGS+"lat"))

	vocabulary.Register(WGSLong,
		vocabulary.WithDescription("WGS84 longitude"),
		vocabulary.WithDataType(KindFloat),
		vocabulary.WithRange("-180 to 180"),
		vocabulary.WithIRI(NamespaceWGS+"long"))

	vocabulary.Register(LocElevation,
		vocabulary.WithDescription("Elevation above sea level"),
		vocabulary.WithDataType(KindFloat),
		vocabulary.WithUnits("meters"),
		vocabulary.WithIRI(NamespaceTERNLoc+"elevation"))

	vocabulary.Register(LocationDescription,
		vocabulary.WithDescription("Free-text description of a site"),
		vocabulary.WithDataType(KindString),
		vocabulary.WithIRI(NamespaceTERN+"locationDescription"))
}

func registerActivityPredicates() {
	vocabulary.Register(HasFeatureOfInterest,
		vocabulary.WithDescription("Feature the activity is about"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceSOSA+"hasFeatureOfInterest"))

	vocabulary.Register(UsedProcedure,
		vocabulary.WithDescription("Procedure followed by the activity"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceSOSA+"usedProcedure"))

	vocabulary.Register(HasResult,
		vocabulary.WithDescription("Sample or value produced by the activity"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceSOSA+"hasResult"))

	vocabulary.Register(ResultTime,
		vocabulary.WithDescription("Time the result became available"),
		vocabulary.WithDataType(KindDateTime),
		vocabulary.WithIRI(NamespaceSOSA+"resultTime"))

	vocabulary.Register(WasAssociatedWith,
		vocabulary.WithDescription("Agent responsible for the activity"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespacePROV+"wasAssociatedWith"))

	vocabulary.Register(StartedAtTime,
		vocabulary.WithDescription("Start of a site visit"),
		vocabulary.WithDataType(KindDateTime),
		vocabulary.WithIRI(NamespacePROV+"startedAtTime"))

	vocabulary.Register(SamplingType,
		vocabulary.WithDescription("Kind of sampling protocol"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceTERN+"samplingType"))
}

func registerSamplePredicates() {
	vocabulary.Register(IsSampleOf,
		vocabulary.WithDescription("Immediate parent feature of a sample"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceSOSA+"isSampleOf"))

	vocabulary.Register(IsResultOf,
		vocabulary.WithDescription("Sampling that produced the sample"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceSOSA+"isResultOf"))

	vocabulary.Register(FeatureType,
		vocabulary.WithDescription("Controlled feature type of a sample"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceTERN+"featureType"))

	vocabulary.Register(HasSite,
		vocabulary.WithDescription("Site visited"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceTERN+"hasSite"))

	vocabulary.Register(MaterialSampleID,
		vocabulary.WithDescription("Identifier of a physical specimen"),
		vocabulary.WithDataType(KindString),
		vocabulary.WithIRI(NamespaceDWC+"materialSampleID"))
}

func registerObservationPredicates() {
	vocabulary.Register(HasSimpleResult,
		vocabulary.WithDescription("Literal mirror of an observation result"),
		vocabulary.WithDataType(KindString),
		vocabulary.WithIRI(NamespaceSOSA+"hasSimpleResult"))

	vocabulary.Register(ObservedProperty,
		vocabulary.WithDescription("Property being observed"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceSOSA+"observedProperty"))

	vocabulary.Register(PhenomenonTime,
		vocabulary.WithDescription("Instant the observed phenomenon applies to"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceSOSA+"phenomenonTime"))

	vocabulary.Register(InXSDDateTimeStamp,
		vocabulary.WithDescription("Instant as a date-time with a zone offset"),
		vocabulary.WithDataType(KindDateTimeStamp),
		vocabulary.WithIRI(NamespaceTIME+"inXSDDateTimeStamp"))

	vocabulary.Register(InXSDDateTime,
		vocabulary.WithDescription("Instant as a local date-time without zone offset"),
		vocabulary.WithDataType(KindDateTime),
		vocabulary.WithIRI(NamespaceTIME+"inXSDDateTime"))

	vocabulary.Register(InXSDDate,
		vocabulary.WithDescription("Instant as a calendar date"),
		vocabulary.WithDataType(KindDate),
		vocabulary.WithIRI(NamespaceTIME+"inXSDDate"))
}

func registerTaxonPredicates() {
	vocabulary.Register(TaxonConceptID,
		vocabulary.WithDescription("Taxon concept the identification refers to"),
		vocabulary.WithDataType(KindEntityID),
		vocabulary.WithIRI(NamespaceDWC+"taxonConceptID"))

	taxonTerms := []struct {
		name string
		term string
		desc string
	}{
		{ScientificName, "scientificName", "Full scientific name"},
		{Kingdom, "kingdom", "Kingdom rank"},
		{Phylum, "phylum", "Phylum rank"},
		{Class, "class", "Class rank"},
		{Order, "order", "Order rank"},
		{Family, "family", "Family rank"},
		{Genus, "genus", "Genus rank"},
		{SpecificEpithet, "specificEpithet", "Specific epithet"},
		{TaxonRank, "taxonRank", "Rank of the most specific name"},
		{ScientificNameAuthorship, "scientificNameAuthorship", "Authorship of the scientific name"},
		{Species, "species", "Species name"},
	}
	for _, t := range taxonTerms {
		vocabulary.Register(t.name,
			vocabulary.WithDescription(t.desc),
			vocabulary.WithDataType(KindString),
			vocabulary.WithIRI(NamespaceDWC+t.term))
	}
}

func init() {
	registerCorePredicates()
	registerDatasetPredicates()
	registerGeometryPredicates()
	registerActivityPredicates()
	registerSamplePredicates()
	registerObservationPredicates()
	registerTaxonPredicates()
}
