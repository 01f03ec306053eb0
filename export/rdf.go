package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"
)

// Write serializes quads in the given format. Turtle output binds prefixes;
// the other formats write full IRIs.
func Write(w io.Writer, format Format, quads []quad.Quad, prefixes map[string]string) error {
	switch format {
	case FormatTurtle:
		return writeTurtle(w, quads, prefixes)
	case FormatNTriples:
		return writeQuads(nquads.NewWriter(w), quads)
	case FormatJSONLD:
		return writeQuads(jsonld.NewWriter(w), quads)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

type quadWriter interface {
	WriteQuad(q quad.Quad) error
	Close() error
}

func writeQuads(qw quadWriter, quads []quad.Quad) error {
	for _, q := range quads {
		if err := qw.WriteQuad(q); err != nil {
			return fmt.Errorf("write quad: %w", err)
		}
	}
	if err := qw.Close(); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}
	return nil
}

func writeTurtle(w io.Writer, quads []quad.Quad, prefixes map[string]string) error {
	tw := NewTurtleWriter(w, prefixes)
	tw.WritePrefixes()
	for _, block := range groupBySubject(quads) {
		tw.WriteSubject(block)
	}
	return tw.Flush()
}

// groupBySubject splits quads into per-subject blocks ordered by subject.
func groupBySubject(quads []quad.Quad) [][]quad.Quad {
	index := make(map[string]int)
	var blocks [][]quad.Quad
	var keys []string
	for _, q := range quads {
		k := q.Subject.String()
		i, ok := index[k]
		if !ok {
			i = len(blocks)
			index[k] = i
			blocks = append(blocks, nil)
			keys = append(keys, k)
		}
		blocks[i] = append(blocks[i], q)
	}

	order := make([]int, len(blocks))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return keys[order[a]] < keys[order[b]] })

	out := make([][]quad.Quad, 0, len(blocks))
	for _, i := range order {
		out = append(out, blocks[i])
	}
	return out
}
