package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func withoutColor(t *testing.T) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

func TestColorUsageFunc(t *testing.T) {
	withoutColor(t)

	c := &cobra.Command{
		Use:     "tabref FILE [COLUMN...]",
		Example: "  tabref table.tex 3 5",
		RunE:    func(*cobra.Command, []string) error { return nil },
	}
	c.Flags().BoolP("list", "l", false, "Print the reference list")
	c.Flags().String("suffix", "_new", "Output suffix")

	var buf bytes.Buffer
	if err := ColorUsageFunc(&buf, c); err != nil {
		t.Fatalf("ColorUsageFunc failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Usage:\n  tabref FILE [COLUMN...] [flags]",
		"Examples:\n  tabref table.tex 3 5",
		"  -l, --list",
		"      --suffix string",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Usage should contain %q, got:\n%s", want, out)
		}
	}
}

func TestColorFlagsKeepsPlainLines(t *testing.T) {
	withoutColor(t)

	raw := "  -l, --list   Print\n      --suffix string   Output\nnot a flag"
	if got := string(colorFlags(raw)); got != raw+"\n" {
		t.Errorf("colorFlags without color = %q", got)
	}
}
