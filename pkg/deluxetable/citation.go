package deluxetable

import (
	"sort"
	"strconv"
	"strings"
)

// citationGroup returns the positions of the first '{' and the first '}'.
// Only this group is considered; further macros in the same field are not.
func citationGroup(field string) (open, end int, ok bool) {
	open = strings.IndexByte(field, '{')
	end = strings.IndexByte(field, '}')
	if open < 0 || end < 0 || end < open {
		return 0, 0, false
	}
	return open, end, true
}

// splitKeys splits a comma separated key list, trimming each key and
// dropping empty ones.
func splitKeys(group string) []string {
	var keys []string
	for _, key := range strings.Split(group, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// ExtractCitations returns the citation keys of the selected columns of one
// row, in column order. row is the 1-based data row used in error messages.
func ExtractCitations(fields []string, row int, columns []int) ([][]string, error) {
	sets := make([][]string, 0, len(columns))

	for _, col := range columns {
		if col >= len(fields) {
			return nil, &CitationError{Row: row, Column: col, Reason: "row has only " + strconv.Itoa(len(fields)) + " columns"}
		}

		field := fields[col]
		open, end, ok := citationGroup(field)
		if !ok {
			return nil, &CitationError{Row: row, Column: col, Field: field, Reason: "no {...} citation group"}
		}

		keys := splitKeys(field[open+1 : end])
		if len(keys) == 0 {
			return nil, &CitationError{Row: row, Column: col, Field: field, Reason: "empty citation group"}
		}

		sets = append(sets, keys)
	}

	return sets, nil
}

// RewriteCell replaces the keys of the field's citation group by their ranks,
// strips the citation macro wrappers and normalizes the result into a sorted
// ", " separated list. Leading and trailing whitespace of the field is kept.
func RewriteCell(field string, idx *Index, opts Options) string {
	open, end, ok := citationGroup(field)
	if !ok {
		return field
	}

	keys := splitKeys(field[open+1 : end])
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		if rank, found := idx.Rank(key); found {
			labels = append(labels, strconv.Itoa(rank))
		} else {
			labels = append(labels, key)
		}
	}

	text := field[:open+1] + strings.Join(labels, ",") + field[end:]
	for _, macro := range opts.Macros {
		text = strings.ReplaceAll(text, `\`+macro+`{`, "")
	}
	text = strings.ReplaceAll(text, "}", "")

	var tokens []string
	for _, token := range strings.Split(strings.TrimSpace(text), ",") {
		tokens = append(tokens, strings.TrimSpace(token))
	}
	sortLabels(tokens, opts.NumericSort)

	lead := field[:len(field)-len(strings.TrimLeft(field, " \t"))]
	trail := field[len(strings.TrimRight(field, " \t")):]
	return lead + strings.Join(tokens, ", ") + trail
}

// sortLabels sorts as strings unless numeric is set. In numeric mode
// non-numeric labels follow the numbers, in string order.
func sortLabels(labels []string, numeric bool) {
	if !numeric {
		sort.Strings(labels)
		return
	}

	sort.SliceStable(labels, func(i, j int) bool {
		a, errA := strconv.Atoi(labels[i])
		b, errB := strconv.Atoi(labels[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return labels[i] < labels[j]
		}
	})
}
