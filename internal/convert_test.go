package internal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Hanaasagi/tabref/pkg/deluxetable"
)

const table = `\begin{deluxetable}{lc}
\startdata
Star A & \citet{SmithA} \\
Star B & \citep{JonesB, SmithA}
\enddata
\end{deluxetable}
`

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.tex")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertFileWrite(t *testing.T) {
	input := writeTable(t, table)

	conv, err := ConvertFile(input, DefaultSuffix, deluxetable.DefaultOptions())
	if err != nil {
		t.Fatalf("ConvertFile failed: %v", err)
	}
	if err := conv.Write(); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(input + "_new")
	if err != nil {
		t.Fatalf("Reading output: %v", err)
	}

	expected := `\begin{deluxetable}{lc}
\startdata
Star A & 1 \\
Star B & 1, 2
\enddata
\tablenotetext{}{{\bf References.} (1) SmithA, (2) JonesB}
\end{deluxetable}
`
	if string(data) != expected {
		t.Errorf("Unexpected output:\n%s", data)
	}

	original, err := os.ReadFile(input)
	if err != nil {
		t.Fatal(err)
	}
	if string(original) != table {
		t.Error("Input file must not change")
	}
}

func TestConvertFileMalformedWritesNothing(t *testing.T) {
	input := writeTable(t, strings.Replace(table, "\\enddata\n", "", 1))

	_, err := ConvertFile(input, DefaultSuffix, deluxetable.DefaultOptions())
	if !errors.Is(err, deluxetable.ErrMalformedTable) {
		t.Fatalf("Expected ErrMalformedTable, got %v", err)
	}
	if !strings.Contains(err.Error(), input) {
		t.Errorf("Error should name the file: %v", err)
	}

	if _, err := os.Stat(input + "_new"); !os.IsNotExist(err) {
		t.Error("No output file should be created")
	}
}

func TestConvertFileTwiceFails(t *testing.T) {
	input := writeTable(t, table)

	conv, err := ConvertFile(input, DefaultSuffix, deluxetable.DefaultOptions())
	if err != nil {
		t.Fatalf("ConvertFile failed: %v", err)
	}
	if err := conv.Write(); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	_, err = ConvertFile(conv.Output, DefaultSuffix, deluxetable.DefaultOptions())
	if !errors.Is(err, deluxetable.ErrMalformedCitation) {
		t.Errorf("Expected ErrMalformedCitation, got %v", err)
	}
}

func TestConvertFileMissing(t *testing.T) {
	_, err := ConvertFile(filepath.Join(t.TempDir(), "none.tex"), DefaultSuffix, deluxetable.DefaultOptions())
	if !errors.Is(err, deluxetable.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}
