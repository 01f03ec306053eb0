package tern

// Namespace IRIs bound as prefixes on serialized graphs.
const (
	NamespaceEX      = "https://example.com/"
	NamespaceTERN    = "https://w3id.org/tern/ontologies/tern/"
	NamespaceTERNLoc = "https://w3id.org/tern/ontologies/loc/"
	NamespaceGEO     = "http://www.opengis.net/ont/geosparql#"
	NamespaceWGS     = "http://www.w3.org/2003/01/geo/wgs84_pos#"
	NamespaceBDRCV   = "https://linked.data.gov.au/def/bdr-cv/"
	NamespaceDWC     = "http://rs.tdwg.org/dwc/terms/"
	NamespaceSF      = "http://www.opengis.net/ont/sf#"
	NamespaceDCTerms = "http://purl.org/dc/terms/"
	NamespaceSOSA    = "http://www.w3.org/ns/sosa/"
	NamespacePROV    = "http://www.w3.org/ns/prov#"
	NamespaceSDO     = "https://schema.org/"
	NamespaceVOID    = "http://rdfs.org/ns/void#"
	NamespaceTIME    = "http://www.w3.org/2006/time#"
	NamespaceRDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS    = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceXSD     = "http://www.w3.org/2001/XMLSchema#"
)

// Class IRIs for the entity kinds produced from an occurrence record.
const (
	// ClassRDFDataset is the dataset entry a source row is recorded as.
	ClassRDFDataset = NamespaceTERN + "RDFDataset"

	// ClassAttribute is a key/value annotation on a dataset.
	ClassAttribute = NamespaceTERN + "Attribute"

	// ClassValue is the abstract payload of an observation or attribute.
	ClassValue = NamespaceTERN + "Value"

	// ClassText is a literal string value.
	ClassText = NamespaceTERN + "Text"

	// ClassTaxon is a taxonomic concept value.
	ClassTaxon = NamespaceTERN + "Taxon"

	// ClassPerson is an agent with a name.
	ClassPerson = NamespaceSDO + "Person"

	// ClassAgent is the PROV agent superclass.
	ClassAgent = NamespacePROV + "Agent"

	// ClassGeometry is the GeoSPARQL geometry superclass.
	ClassGeometry = NamespaceGEO + "Geometry"

	// ClassPoint is a simple-features point.
	ClassPoint = NamespaceSF + "Point"

	// ClassProcedure is a described method.
	ClassProcedure = NamespaceSOSA + "Procedure"

	// ClassInstant is a normalized point in time.
	ClassInstant = NamespaceTERN + "Instant"

	// ClassSampling is an activity producing a sample.
	ClassSampling = NamespaceTERN + "Sampling"

	// ClassObservation is an activity asserting a value about a feature.
	ClassObservation = NamespaceTERN + "Observation"

	// ClassFeatureOfInterest is the superclass of everything that can be sampled or observed.
	ClassFeatureOfInterest = NamespaceTERN + "FeatureOfInterest"

	// ClassSample is a feature produced by a sampling.
	ClassSample = NamespaceTERN + "Sample"

	// ClassSite is a sample representing a physical site.
	ClassSite = NamespaceTERN + "Site"

	// ClassMaterialSample is a physical specimen.
	ClassMaterialSample = NamespaceTERN + "MaterialSample"

	// ClassSiteVisit is a temporal visit to a site.
	ClassSiteVisit = NamespaceTERN + "SiteVisit"
)

// Datatype IRIs used for typed literals.
const (
	XSDString        = NamespaceXSD + "string"
	XSDDouble        = NamespaceXSD + "double"
	XSDDate          = NamespaceXSD + "date"
	XSDDateTime      = NamespaceXSD + "dateTime"
	XSDDateTimeStamp = NamespaceXSD + "dateTimeStamp"
	GEOWKTLiteral    = NamespaceGEO + "wktLiteral"
)
