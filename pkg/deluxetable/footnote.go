package deluxetable

import (
	"fmt"
	"strings"
)

// Footnote renders idx as a \tablenotetext line, e.g.
//
//	\tablenotetext{}{{\bf References.} (1) SmithA, (2) JonesB}
//
// With a non-empty macro each key is wrapped: (1) \citet{SmithA}.
func Footnote(idx *Index, macro string) string {
	entries := idx.Entries()
	parts := make([]string, 0, len(entries))

	for _, ref := range entries {
		key := ref.Key
		if macro != "" {
			key = `\` + macro + "{" + key + "}"
		}
		parts = append(parts, fmt.Sprintf("(%d) %s", ref.Rank, key))
	}

	return fmt.Sprintf(FootnoteTemplate, strings.Join(parts, ", "))
}
