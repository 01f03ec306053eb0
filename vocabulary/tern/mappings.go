package tern

import (
	"net/url"
	"sort"
	"strings"
	"unicode"

	"github.com/c360studio/dwcgraph/record"
	"github.com/c360studio/semstreams/vocabulary"
)

// invalidIRIChars are the characters that make a string unusable as an IRI
// without escaping.
const invalidIRIChars = "<>\" {}|\\^`"

// Prefixes returns the namespace prefixes bound on serialized graphs.
func Prefixes() map[string]string {
	return map[string]string{
		"ex":       NamespaceEX,
		"tern":     NamespaceTERN,
		"tern-loc": NamespaceTERNLoc,
		"geo":      NamespaceGEO,
		"wgs":      NamespaceWGS,
		"bdr-cv":   NamespaceBDRCV,
		"dwc":      NamespaceDWC,
		"sf":       NamespaceSF,
		"dcterms":  NamespaceDCTerms,
		"sosa":     NamespaceSOSA,
		"prov":     NamespacePROV,
		"sdo":      NamespaceSDO,
		"void":     NamespaceVOID,
		"time":     NamespaceTIME,
		"rdf":      NamespaceRDF,
		"rdfs":     NamespaceRDFS,
		"xsd":      NamespaceXSD,
	}
}

// ValueKind returns the registered value kind of a relation.
func ValueKind(predicate string) (string, bool) {
	meta := vocabulary.GetPredicateMetadata(predicate)
	if meta == nil || meta.DataType == "" {
		return "", false
	}
	return meta.DataType, true
}

// PredicateIRI returns the IRI a dotted relation serializes to.
func PredicateIRI(predicate string) (string, bool) {
	meta := vocabulary.GetPredicateMetadata(predicate)
	if meta == nil || meta.StandardIRI == "" {
		return "", false
	}
	return meta.StandardIRI, true
}

// DatatypeIRI returns the literal datatype for a value kind. Plain strings and
// identifier references have none.
func DatatypeIRI(kind string) string {
	switch kind {
	case KindFloat:
		return XSDDouble
	case KindDateTime:
		return XSDDateTime
	case KindDateTimeStamp:
		return XSDDateTimeStamp
	case KindDate:
		return XSDDate
	case KindWKT:
		return GEOWKTLiteral
	default:
		return ""
	}
}

// Relations lists every relation registered by this package, sorted by name.
func Relations() []vocabulary.PredicateMetadata {
	var out []vocabulary.PredicateMetadata
	for _, name := range vocabulary.ListRegisteredPredicates() {
		meta := vocabulary.GetPredicateMetadata(name)
		if meta == nil || !isTernIRI(meta.StandardIRI) {
			continue
		}
		out = append(out, *meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func isTernIRI(iri string) bool {
	for _, ns := range Prefixes() {
		if strings.HasPrefix(iri, ns) {
			return true
		}
	}
	return false
}

// ResolveTerm maps a free-text value onto a vocabulary namespace.
//
// Absolute IRIs are returned unchanged. Values that are valid IRI fragments are
// appended to the namespace as-is, anything else is percent-encoded first.
func ResolveTerm(namespace, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.IndexFunc(value, unicode.IsControl) >= 0 {
		return "", &record.UnresolvedTermError{Vocabulary: namespace, Value: raw}
	}

	if !strings.ContainsAny(value, invalidIRIChars) {
		if u, err := url.Parse(value); err == nil && u.IsAbs() && (u.Host != "" || u.Opaque != "") {
			return value, nil
		}
		return namespace + value, nil
	}

	return namespace + url.QueryEscape(value), nil
}

// LookupRegion resolves a state or territory code or name to its IRI.
func LookupRegion(name string) (string, error) {
	key := strings.TrimSpace(name)
	if iri, ok := RegionIRIs[Region(strings.ToUpper(key))]; ok {
		return iri, nil
	}
	if code, ok := regionNames[strings.ToLower(key)]; ok {
		return RegionIRIs[code], nil
	}
	return "", &record.UnresolvedTermError{Vocabulary: "asgs2016/stateorterritory", Value: name}
}
