// Package record holds the row-level primitives of the conversion: the input
// row, the single missing-value predicate every builder routes through, the
// event date resolver, and the row-local error kinds.
package record
