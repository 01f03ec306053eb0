package tern

import (
	"errors"
	"strings"
	"testing"

	"github.com/c360studio/dwcgraph/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicatesRegistered(t *testing.T) {
	tests := []struct {
		predicate string
		kind      string
		iri       string
	}{
		{RDFType, KindEntityID, NamespaceRDF + "type"},
		{VoidInDataset, KindEntityID, NamespaceVOID + "inDataset"},
		{GeoAsWKT, KindWKT, NamespaceGEO + "asWKT"},
		{WGSLat, KindFloat, NamespaceWGS + "lat"},
		{InXSDDateTimeStamp, KindDateTimeStamp, NamespaceTIME + "inXSDDateTimeStamp"},
		{InXSDDateTime, KindDateTime, NamespaceTIME + "inXSDDateTime"},
		{InXSDDate, KindDate, NamespaceTIME + "inXSDDate"},
		{ResultTime, KindDateTime, NamespaceSOSA + "resultTime"},
		{HasSimpleResult, KindString, NamespaceSOSA + "hasSimpleResult"},
		{ScientificName, KindString, NamespaceDWC + "scientificName"},
		{TaxonConceptID, KindEntityID, NamespaceDWC + "taxonConceptID"},
	}

	for _, tt := range tests {
		t.Run(tt.predicate, func(t *testing.T) {
			kind, ok := ValueKind(tt.predicate)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)

			iri, ok := PredicateIRI(tt.predicate)
			require.True(t, ok)
			assert.Equal(t, tt.iri, iri)
		})
	}

	_, ok := ValueKind("not.a.predicate")
	assert.False(t, ok)
}

func TestRelationsSortedAndScoped(t *testing.T) {
	rels := Relations()
	require.NotEmpty(t, rels)

	for i := 1; i < len(rels); i++ {
		assert.Less(t, rels[i-1].Name, rels[i].Name)
	}
	for _, r := range rels {
		assert.True(t, isTernIRI(r.StandardIRI), r.Name)
	}
}

func TestDatatypeIRI(t *testing.T) {
	assert.Equal(t, XSDDouble, DatatypeIRI(KindFloat))
	assert.Equal(t, XSDDateTime, DatatypeIRI(KindDateTime))
	assert.Equal(t, XSDDateTimeStamp, DatatypeIRI(KindDateTimeStamp))
	assert.Equal(t, XSDDate, DatatypeIRI(KindDate))
	assert.Equal(t, GEOWKTLiteral, DatatypeIRI(KindWKT))
	assert.Empty(t, DatatypeIRI(KindString))
	assert.Empty(t, DatatypeIRI(KindEntityID))
}

func TestResolveTerm(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		fails bool
	}{
		{"plain word", "male", NamespaceEX + "male", false},
		{"trimmed", "  adult ", NamespaceEX + "adult", false},
		{"absolute IRI kept", "https://example.org/taxa/42", "https://example.org/taxa/42", false},
		{"urn kept", "urn:lsid:biodiversity.org.au:apni.taxon:1", "urn:lsid:biodiversity.org.au:apni.taxon:1", false},
		{"spaces escaped", "open woodland", NamespaceEX + "open+woodland", false},
		{"braces escaped", "{x}", NamespaceEX + "%7Bx%7D", false},
		{"empty", "   ", "", true},
		{"control char", "ma\x00le", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTerm(NamespaceEX, tt.raw)
			if tt.fails {
				require.Error(t, err)
				var unresolved *record.UnresolvedTermError
				assert.True(t, errors.As(err, &unresolved))
				assert.ErrorIs(t, err, record.ErrRowFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.False(t, strings.ContainsAny(got, " <>"))
		})
	}
}

func TestLookupRegion(t *testing.T) {
	wa := RegionIRIs[RegionWA]
	require.NotEmpty(t, wa)

	for _, name := range []string{"WA", "wa", " Western Australia ", "western australia"} {
		got, err := LookupRegion(name)
		require.NoError(t, err, name)
		assert.Equal(t, wa, got)
	}

	_, err := LookupRegion("Atlantis")
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrRowFailed)
}

func TestPrefixesCoverNamespaces(t *testing.T) {
	p := Prefixes()
	assert.Equal(t, NamespaceDWC, p["dwc"])
	assert.Equal(t, NamespaceSOSA, p["sosa"])
	assert.Len(t, p, 17)
}
