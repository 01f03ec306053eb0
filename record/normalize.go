package record

// nullSentinels are the cell contents read as missing, matching the default
// NA markers of common tabular exports.
var nullSentinels = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// Normalize maps a raw cell to its value, or reports it absent.
// Present cells are returned unchanged.
func Normalize(cell string) (string, bool) {
	if _, null := nullSentinels[cell]; null {
		return "", false
	}
	return cell, true
}

// IsAbsent reports whether a cell is missing.
func IsAbsent(cell string) bool {
	_, ok := Normalize(cell)
	return !ok
}
