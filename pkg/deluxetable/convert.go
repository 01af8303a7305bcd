package deluxetable

import (
	"fmt"
	"log/slog"
	"strings"
)

// Result holds a converted table.
type Result struct {
	Lines    []string // output lines, each with its line ending
	Region   Region
	Columns  []int
	Index    *Index
	Footnote string
}

// String returns the converted document.
func (r *Result) String() string {
	return strings.Join(r.Lines, "")
}

// Convert renumbers the citations of a deluxetable. lines must keep their
// line endings; they are not modified.
func Convert(lines []string, opts Options) (*Result, error) {
	region, err := Locate(lines)
	if err != nil {
		return nil, err
	}
	if len(region.Duplicates) > 0 {
		slog.Warn("Ignoring repeated data markers", "lines", region.Duplicates)
	}

	rows := make([][]string, 0, region.Len())
	for _, line := range lines[region.Start+1 : region.End] {
		rows = append(rows, SplitRow(line))
	}

	columns, err := resolveColumns(opts.Columns, rows)
	if err != nil {
		return nil, err
	}

	sets := make([][][]string, 0, len(rows))
	for i, fields := range rows {
		keys, err := ExtractCitations(fields, i+1, columns)
		if err != nil {
			return nil, err
		}
		sets = append(sets, keys)
	}

	idx := BuildIndex(sets)
	footnote := Footnote(idx, opts.FootnoteMacro)
	slog.Debug("Indexed citations", "rows", len(rows), "columns", columns, "references", idx.Len())

	for _, fields := range rows {
		for _, col := range columns {
			fields[col] = RewriteCell(fields[col], idx, opts)
		}
	}

	return &Result{
		Lines:    Render(lines, region, rows, footnote),
		Region:   region,
		Columns:  columns,
		Index:    idx,
		Footnote: footnote,
	}, nil
}

func resolveColumns(columns []int, rows [][]string) ([]int, error) {
	if len(columns) == 0 {
		return []int{len(rows[0]) - 1}, nil
	}

	for _, col := range columns {
		if col < 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
		}
	}

	return append([]int(nil), columns...), nil
}

// Render assembles the output document: the lines through the start marker,
// the rows terminated by \\ except for the last one, the end marker, the
// footnote and the remaining lines.
func Render(lines []string, region Region, rows [][]string, footnote string) []string {
	eol := lineEnding(lines[region.Start])
	out := make([]string, 0, len(lines)+1)

	out = append(out, lines[:region.Start+1]...)
	for i, fields := range rows {
		row := strings.TrimRight(JoinRow(fields), " \t")
		if i < len(rows)-1 {
			row += " " + RowEnd
		}
		out = append(out, row+eol)
	}

	end := lines[region.End]
	if !strings.HasSuffix(end, "\n") {
		end += eol
	}
	out = append(out, end)
	out = append(out, footnote+eol)
	out = append(out, lines[region.End+1:]...)

	return out
}
