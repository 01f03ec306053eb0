// Package pipeline expands occurrence rows into entities and merges them into
// a graph accumulator.
//
// The Expander turns one row into an ordered Expansion. Construction is
// strictly ordered because later entities reference earlier ones: the Record
// and its attributes, the event instant, the optional Site tier, the
// Occurrence and Specimen samplings, then the occurrence and specimen
// observations. A row either expands completely or fails with a row-local
// error; nothing from a failed row reaches the accumulator.
//
// The Runner drives an Expander over a RowSource. Rows may be expanded by
// several workers but are always merged in source order by a single
// goroutine, so the final graph does not depend on scheduling.
package pipeline
