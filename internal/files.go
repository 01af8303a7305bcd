package internal

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Hanaasagi/tabref/pkg/deluxetable"
)

const (
	defaultSize   = 4096
	DefaultSuffix = "_new"
)

// ReadLines reads a whole document, keeping the line endings so that the
// untouched parts can be written back byte for byte. Any failure to open
// the file is reported as deluxetable.ErrFileNotFound.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		slog.Debug("Opening input failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", deluxetable.ErrFileNotFound, path, err)
	}
	defer file.Close() // nolint: errcheck

	reader := bufio.NewReaderSize(file, defaultSize)
	var lines []string

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if line != "" {
			lines = append(lines, line)
		}

		if err == io.EOF {
			break
		}
	}

	return lines, nil
}

// OutputPath derives the converted file's name from the input path.
func OutputPath(input, suffix string) (string, error) {
	if suffix == "" {
		return "", fmt.Errorf("empty output suffix would overwrite %s", input)
	}
	return input + suffix, nil
}

// WriteFileAtomic writes content to a temporary file next to path and
// renames it into place, so a failed run leaves no partial output.
func WriteFileAtomic(path, content string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tabref-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	writer := bufio.NewWriterSize(tmp, defaultSize)
	if _, err = writer.WriteString(content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = writer.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("setting mode of %s: %w", path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}

	return nil
}
