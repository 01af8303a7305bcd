// nolint:errcheck
package internal

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Hanaasagi/tabref/pkg/deluxetable"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	errorStyle   = color.New(color.Bold, color.FgHiRed)
	successStyle = color.New(color.FgHiGreen)
	headerStyle  = color.New(color.Bold, color.FgHiWhite)
	rankStyle    = color.New(color.FgHiYellow)
)

// PrintError writes a user-facing description of a failed conversion.
func PrintError(w io.Writer, input string, err error) {
	switch {
	case errors.Is(err, deluxetable.ErrFileNotFound):
		errorStyle.Fprintf(w, "Whoops! LaTeX document %s does not exist.\n", input)
	case errors.Is(err, deluxetable.ErrMalformedTable):
		errorStyle.Fprint(w, "Malformed table: ")
		fmt.Fprintln(w, err)
	case errors.Is(err, deluxetable.ErrMalformedCitation):
		errorStyle.Fprint(w, "Malformed citation: ")
		fmt.Fprintln(w, err)
	default:
		errorStyle.Fprint(w, "Error: ")
		fmt.Fprintln(w, err)
	}
}

// PrintSummary reports where a conversion was written.
func PrintSummary(w io.Writer, c *Conversion) {
	successStyle.Fprintf(w, "Wrote %s", c.Output)
	fmt.Fprintf(w, " (%d rows, %d references)\n", c.Result.Region.Len(), c.Result.Index.Len())
}

// PrintReferences writes the index as an aligned table of rank, key and
// citation count. Keys are padded by display width.
func PrintReferences(w io.Writer, idx *deluxetable.Index) {
	entries := idx.Entries()

	rankWidth := runewidth.StringWidth("Rank")
	keyWidth := runewidth.StringWidth("Key")
	for _, ref := range entries {
		rankWidth = max(rankWidth, runewidth.StringWidth(strconv.Itoa(ref.Rank)))
		keyWidth = max(keyWidth, runewidth.StringWidth(ref.Key))
	}

	headerStyle.Fprintf(w, "%s  %s  %s\n",
		runewidth.FillLeft("Rank", rankWidth), runewidth.FillRight("Key", keyWidth), "Cited")
	for _, ref := range entries {
		rankStyle.Fprint(w, runewidth.FillLeft(strconv.Itoa(ref.Rank), rankWidth))
		fmt.Fprintf(w, "  %s  %d\n", runewidth.FillRight(ref.Key, keyWidth), ref.Count)
	}
}
