package record

// Column names of the occurrence export.
const (
	ColCatalogNumber         = "catalogNumber"
	ColCollectionCode        = "collectionCode"
	ColCountryCode           = "countryCode"
	ColProvenance            = "provenance"
	ColDecimalLatitude       = "decimalLatitude"
	ColDecimalLongitude      = "decimalLongitude"
	ColVerbatimElevation     = "verbatimElevation"
	ColCoordinateUncertainty = "coordinateUncertaintyInMeters"
	ColEventDate             = "eventDate"
	ColVerbatimEventDate     = "verbatimEventDate"
	ColOccurrenceID          = "occurrenceID"
	ColFieldNumber           = "fieldNumber"
	ColSamplingProtocol      = "samplingProtocol"
	ColLocationRemarks       = "locationRemarks"
	ColLocationID            = "locationID"
	ColStateProvince         = "stateProvince"
	ColRecordedBy            = "recordedBy"
	ColPreparations          = "preparations"
	ColSex                   = "sex"
	ColLifeStage             = "lifeStage"
	ColHabitat               = "habitat"
	ColTypeStatus            = "typeStatus"
	ColDateIdentified        = "dateIdentified"
	ColIdentifiedBy          = "identifiedBy"
	ColTaxonConceptID        = "taxonConceptID"
	ColScientificName        = "scientificName"
	ColKingdom               = "kingdom"
	ColPhylum                = "phylum"
	ColClass                 = "class"
	ColOrder                 = "order"
	ColFamily                = "family"
	ColGenus                 = "genus"
	ColSpecificEpithet       = "specificEpithet"
	ColTaxonRank             = "taxonRank"
	ColScientificNameAuthor  = "scientificNameAuthorship"
	ColSpecies               = "species"
)

// Row is one source record keyed by column name.
type Row struct {
	// Index is the zero-based position of the row in its source.
	Index int

	// Source names the file the row was read from.
	Source string

	cells map[string]string
}

// NewRow builds a row from parallel header and value slices. Missing trailing
// values are treated as empty cells.
func NewRow(index int, headers, values []string) Row {
	cells := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(values) {
			cells[h] = values[i]
		} else {
			cells[h] = ""
		}
	}
	return Row{Index: index, cells: cells}
}

// FromMap builds a row from a column map.
func FromMap(index int, cells map[string]string) Row {
	c := make(map[string]string, len(cells))
	for k, v := range cells {
		c[k] = v
	}
	return Row{Index: index, cells: c}
}

// Raw returns the unnormalized cell.
func (r Row) Raw(field string) string {
	return r.cells[field]
}

// Value returns the normalized cell and whether it is present.
// Unknown columns are absent.
func (r Row) Value(field string) (string, bool) {
	cell, ok := r.cells[field]
	if !ok {
		return "", false
	}
	return Normalize(cell)
}

// Optional returns the normalized cell, or "" when absent.
func (r Row) Optional(field string) string {
	v, _ := r.Value(field)
	return v
}

// Require returns the normalized cell or a MissingFieldError naming the
// field and the entity kind that needed it.
func (r Row) Require(field, entity string) (string, error) {
	v, ok := r.Value(field)
	if !ok {
		return "", &MissingFieldError{Field: field, Entity: entity}
	}
	return v, nil
}
