package export

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cayleygraph/quad"
)

const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// TurtleWriter writes RDF in Turtle format, compacting IRIs against the
// bound prefixes.
type TurtleWriter struct {
	w        *bufio.Writer
	prefixes map[string]string
	// names is sorted by namespace length, longest first, so the most
	// specific prefix wins.
	names []string
}

// NewTurtleWriter creates a Turtle writer bound to prefixes.
func NewTurtleWriter(w io.Writer, prefixes map[string]string) *TurtleWriter {
	tw := &TurtleWriter{w: bufio.NewWriter(w), prefixes: make(map[string]string, len(prefixes))}
	for p, iri := range prefixes {
		tw.SetPrefix(p, iri)
	}
	return tw
}

// SetPrefix sets a namespace prefix.
func (w *TurtleWriter) SetPrefix(prefix, iri string) {
	if _, ok := w.prefixes[prefix]; !ok {
		w.names = append(w.names, prefix)
	}
	w.prefixes[prefix] = iri
	sort.Slice(w.names, func(i, j int) bool {
		a, b := w.prefixes[w.names[i]], w.prefixes[w.names[j]]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return w.names[i] < w.names[j]
	})
}

// WritePrefixes writes prefix declarations.
func (w *TurtleWriter) WritePrefixes() {
	// Sort prefixes for consistent output
	keys := make([]string, 0, len(w.prefixes))
	for k := range w.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, prefix := range keys {
		fmt.Fprintf(w.w, "@prefix %s: <%s> .\n", prefix, w.prefixes[prefix])
	}
	w.w.WriteString("\n")
}

// WriteSubject writes one subject block. All statements must share the
// subject; rdf:type statements are written first.
func (w *TurtleWriter) WriteSubject(statements []quad.Quad) {
	if len(statements) == 0 {
		return
	}
	sorted := append([]quad.Quad(nil), statements...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return isType(sorted[i]) && !isType(sorted[j])
	})

	w.w.WriteString(w.Term(sorted[0].Subject))
	w.w.WriteString("\n")
	for i, q := range sorted {
		terminator := " ;"
		if i == len(sorted)-1 {
			terminator = " ."
		}
		pred := "a"
		if !isType(q) {
			pred = w.Term(q.Predicate)
		}
		fmt.Fprintf(w.w, "    %s %s%s\n", pred, w.Term(q.Object), terminator)
	}
	w.w.WriteString("\n")
}

// Term renders a node, using a prefixed name where one applies.
func (w *TurtleWriter) Term(v quad.Value) string {
	switch t := v.(type) {
	case quad.IRI:
		return w.compact(string(t))
	case quad.TypedString:
		return quad.String(t.Value).String() + "^^" + w.compact(string(t.Type))
	default:
		return v.String()
	}
}

// Flush writes buffered output.
func (w *TurtleWriter) Flush() error {
	return w.w.Flush()
}

func (w *TurtleWriter) compact(iri string) string {
	for _, p := range w.names {
		ns := w.prefixes[p]
		if !strings.HasPrefix(iri, ns) {
			continue
		}
		local := strings.TrimPrefix(iri, ns)
		if isLocalName(local) {
			return p + ":" + local
		}
	}
	return "<" + iri + ">"
}

// isLocalName reports whether s can be written as the local part of a
// prefixed name without escaping.
func isLocalName(s string) bool {
	if s == "" {
		return true
	}
	if s[0] == '-' || s[0] == '.' || s[len(s)-1] == '.' {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return false
		}
	}
	return true
}

func isType(q quad.Quad) bool {
	iri, ok := q.Predicate.(quad.IRI)
	return ok && string(iri) == rdfType
}
