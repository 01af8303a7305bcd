package clipboard

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	if !c.tmux || !c.system || !c.osc52 {
		t.Error("Default settings should enable all targets")
	}
}

func TestOSC52(t *testing.T) {
	// "hello" in base64 is "aGVsbG8="
	if got := OSC52("hello", false); got != "\033]52;c;aGVsbG8=\007" {
		t.Errorf("Unexpected sequence %q", got)
	}
	if got := OSC52("hello", true); got != "\033Ptmux;\033\033]52;c;aGVsbG8=\007\033\\" {
		t.Errorf("Unexpected tmux sequence %q", got)
	}
}

func TestCopyOSC52Only(t *testing.T) {
	t.Setenv("TMUX", "")

	var buf bytes.Buffer
	c := New(WithTmux(false), WithSystem(false), WithOutput(&buf))

	if err := c.Copy(`\tablenotetext{}{(1) A}`); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\033]52;c;") {
		t.Errorf("Output should contain an OSC52 sequence, got %q", buf.String())
	}
}

func TestCopyTmuxBuffer(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,12345,0")

	var calls [][]string
	c := New(WithSystem(false), WithOSC52(false))
	c.run = func(name string, args []string, text string) error {
		calls = append(calls, append([]string{name, text}, args...))
		return nil
	}

	if err := c.Copy("refs"); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	want := [][]string{{"tmux", "refs", "load-buffer", "-"}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v; want %v", calls, want)
	}
}

func TestCopyNoTarget(t *testing.T) {
	c := New(WithTmux(false), WithSystem(false), WithOSC52(false))
	if err := c.Copy("x"); err == nil {
		t.Error("Expected an error with every target disabled")
	}
}

func TestCopyReportsFailures(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,12345,0")

	c := New(WithSystem(false), WithOSC52(false))
	c.run = func(string, []string, string) error { return errors.New("no server") }

	err := c.Copy("x")
	if err == nil || !strings.Contains(err.Error(), "no server") {
		t.Errorf("Expected the tmux failure, got %v", err)
	}
}

func TestClipboardTools(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"pbcopy"}},
		{"linux", []string{"wl-copy", "xclip", "xsel"}},
		{"windows", []string{"clip"}},
		{"plan9", nil},
	}

	for _, tt := range tests {
		if got := clipboardTools(tt.goos); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("clipboardTools(%s) = %v; want %v", tt.goos, got, tt.want)
		}
	}
}
