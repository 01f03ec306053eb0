// Package tern provides the domain vocabulary for biodiversity occurrence graphs
// built on the TERN, SOSA, PROV, GeoSPARQL and Darwin Core ontologies.
//
// # Semstreams Integration
//
// This package follows semstreams vocabulary patterns:
//   - Relations use three-level dotted notation (domain.category.property)
//   - Relations are registered in init() using vocabulary.Register()
//   - IRI mappings use vocabulary.WithIRI() for RDF serialization
//   - The value kind of every relation is recorded with vocabulary.WithDataType()
//
// The registry is the single typing context for the graph: the accumulator
// looks up each relation's data type to decide whether its object is an
// identifier reference, a typed literal or a plain string.
//
// # Value Kinds
//
//	entity_id      IRI or blank node reference
//	string         plain literal
//	float          xsd:double
//	datetime       xsd:dateTime
//	datetimestamp  xsd:dateTimeStamp
//	date           xsd:date
//	wkt            geo:wktLiteral
//
// # Controlled Vocabularies
//
// Procedures, feature types, observable properties and regions are fixed
// IRIs (see enums.go). Free-text values such as a collection code are mapped
// onto the bdr-cv namespace with ResolveTerm.
package tern
