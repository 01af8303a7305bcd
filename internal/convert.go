package internal

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Hanaasagi/tabref/pkg/deluxetable"
)

// Conversion is the outcome of converting one file.
type Conversion struct {
	Input  string
	Output string
	Result *deluxetable.Result
}

// ConvertFile reads a deluxetable document and converts it in memory.
// Nothing is written; see Conversion.Write.
func ConvertFile(input, suffix string, opts deluxetable.Options) (*Conversion, error) {
	output, err := OutputPath(input, suffix)
	if err != nil {
		return nil, err
	}

	lines, err := ReadLines(input)
	if err != nil {
		return nil, err
	}
	slog.Debug("Read document", "path", input, "lines", len(lines))

	result, err := deluxetable.Convert(lines, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}

	return &Conversion{Input: input, Output: output, Result: result}, nil
}

// Write stores the converted document next to the input.
func (c *Conversion) Write() error {
	if filepath.Clean(c.Output) == filepath.Clean(c.Input) {
		return fmt.Errorf("refusing to overwrite input %s", c.Input)
	}

	if err := WriteFileAtomic(c.Output, c.Result.String()); err != nil {
		return err
	}

	slog.Info("Wrote converted table", "input", c.Input, "output", c.Output,
		"rows", c.Result.Region.Len(), "references", c.Result.Index.Len())
	return nil
}
