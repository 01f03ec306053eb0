package tern

// Feature types of the samples produced from an occurrence record.
const (
	// FeatureTypeOccurrence is the TERN feature type for an animal or plant occurrence.
	FeatureTypeOccurrence = "http://linked.data.gov.au/def/tern-cv/2361dea8-598c-4b6f-a641-2b98ff199e9e"

	// FeatureTypeSpecimen is the TERN feature type for a preserved specimen.
	FeatureTypeSpecimen = "http://linked.data.gov.au/def/tern-cv/cd5cbdbb-07d9-4a5b-9b11-5ab9d6015be6"

	// FeatureTypeSite is the feature type of a site established for an occurrence.
	FeatureTypeSite = NamespaceBDRCV + "site"
)

// Observable properties.
const (
	PropertySex        = "http://linked.data.gov.au/def/tern-cv/05cbf534-c233-4aa8-a08c-00b28976ed36"
	PropertyLifeStage  = "http://linked.data.gov.au/def/tern-cv/abb0ee19-b2e8-42f3-8a25-d1f39ca3ebc3"
	PropertyHabitat    = "http://linked.data.gov.au/def/tern-cv/2090cfd9-8b6b-497b-9512-497456a18b99"
	PropertyTypeStatus = NamespaceBDRCV + "type-status"
	PropertyTaxon      = NamespaceBDRCV + "taxon"
)

// Procedures referenced by IRI.
const (
	ProcedureOccurrence      = NamespaceBDRCV + "occurrence-method"
	ProcedureSiteEstablish   = NamespaceBDRCV + "site-establishment-method"
	ProcedureIdentification  = NamespaceBDRCV + "identification-method"
	ProcedureTypeDesignation = NamespaceBDRCV + "type-designation-method"
)

// Attribute terms attached to a record.
const (
	AttributeCountryCode = NamespaceBDRCV + "country-code"
	AttributeProvenance  = NamespaceBDRCV + "provenance"
)

// GeonamesAustralia is the containing country of every region below.
const GeonamesAustralia = "https://sws.geonames.org/2077456/"

// Region is an Australian state or territory code.
type Region string

// ASGS 2016 state and territory codes.
const (
	RegionNSW Region = "NSW"
	RegionVIC Region = "VIC"
	RegionQLD Region = "QLD"
	RegionSA  Region = "SA"
	RegionWA  Region = "WA"
	RegionTAS Region = "TAS"
	RegionNT  Region = "NT"
	RegionACT Region = "ACT"
	RegionOT  Region = "OT"
)

const asgsStateOrTerritory = "http://linked.data.gov.au/dataset/asgs2016/stateorterritory/"

// RegionIRIs maps each region to its ASGS 2016 IRI.
var RegionIRIs = map[Region]string{
	RegionNSW: asgsStateOrTerritory + "1",
	RegionVIC: asgsStateOrTerritory + "2",
	RegionQLD: asgsStateOrTerritory + "3",
	RegionSA:  asgsStateOrTerritory + "4",
	RegionWA:  asgsStateOrTerritory + "5",
	RegionTAS: asgsStateOrTerritory + "6",
	RegionNT:  asgsStateOrTerritory + "7",
	RegionACT: asgsStateOrTerritory + "8",
	RegionOT:  asgsStateOrTerritory + "9",
}

// regionNames maps lower-cased full names to codes.
var regionNames = map[string]Region{
	"new south wales":              RegionNSW,
	"victoria":                     RegionVIC,
	"queensland":                   RegionQLD,
	"south australia":              RegionSA,
	"western australia":            RegionWA,
	"tasmania":                     RegionTAS,
	"northern territory":           RegionNT,
	"australian capital territory": RegionACT,
	"other territories":            RegionOT,
}
