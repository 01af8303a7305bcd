// Package deluxetable renumbers the citations of an AASTeX deluxetable.
//
// A table is read as a slice of lines (each keeping its line ending). The
// rows between \startdata and \enddata are split into fields, the citation
// keys of the selected columns are numbered in order of first appearance,
// the cells are rewritten to carry the numbers and a \tablenotetext line
// listing the references is inserted after \enddata. Everything outside the
// data region is copied unchanged.
//
// Example usage:
//
//	result, err := deluxetable.Convert(lines, deluxetable.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	fmt.Print(result.String())
package deluxetable

// Markers and separators of the deluxetable environment.
const (
	StartMarker    = `\startdata`
	EndMarker      = `\enddata`
	FieldSeparator = "&"
	RowEnd         = `\\`
)

// FootnoteTemplate wraps the rendered reference list.
const FootnoteTemplate = `\tablenotetext{}{{\bf References.} %s}`

// Region locates the data rows inside a table.
// Start and End are the zero-based line indices of the two markers.
type Region struct {
	Start int
	End   int
	// Later marker lines that were ignored because an earlier one won.
	Duplicates []int
}

// Len returns the number of data lines between the markers.
func (r Region) Len() int {
	return r.End - r.Start - 1
}

// Options controls how a table is converted.
type Options struct {
	// Columns holds the zero-based indices of the citation columns, scanned
	// in the given order. Empty selects the last column of the first row.
	Columns []int
	// Macros lists the citation macro names (without backslash) whose
	// wrappers are stripped from rewritten cells.
	Macros []string
	// NumericSort orders the numbers of a rewritten cell numerically.
	// The default is a plain string sort, so "10" comes before "2".
	NumericSort bool
	// FootnoteMacro, when set, wraps each key of the reference list,
	// e.g. "citet" renders "(1) \citet{key}".
	FootnoteMacro string
}

// DefaultMacros returns the narrative, parenthetical and plain citation forms.
func DefaultMacros() []string {
	return []string{"citet", "citep", "cite"}
}

// DefaultOptions returns options selecting the last column with the default macros.
func DefaultOptions() Options {
	return Options{Macros: DefaultMacros()}
}

// Reference is one entry of an Index.
type Reference struct {
	Rank  int
	Key   string
	Count int // number of citations of Key in the scanned columns
}
