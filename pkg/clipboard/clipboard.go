// Package clipboard copies text to the tmux buffer, the system clipboard
// and the terminal (OSC 52), whichever are enabled.
package clipboard

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Option configures a Clipboard
type Option func(*Clipboard)

// Clipboard fans text out to the enabled targets
type Clipboard struct {
	tmux   bool
	system bool
	osc52  bool
	output io.Writer
	// run executes an external command with text on stdin
	run func(name string, args []string, text string) error
}

// New creates a Clipboard with every target enabled and OSC 52 sequences
// written to stderr.
func New(opts ...Option) *Clipboard {
	c := &Clipboard{
		tmux:   true,
		system: true,
		osc52:  true,
		output: os.Stderr,
		run:    runCommand,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTmux enables/disables the tmux buffer
func WithTmux(enabled bool) Option {
	return func(c *Clipboard) {
		c.tmux = enabled
	}
}

// WithSystem enables/disables the system clipboard tool
func WithSystem(enabled bool) Option {
	return func(c *Clipboard) {
		c.system = enabled
	}
}

// WithOSC52 enables/disables the OSC 52 escape sequence
func WithOSC52(enabled bool) Option {
	return func(c *Clipboard) {
		c.osc52 = enabled
	}
}

// WithOutput sets where OSC 52 sequences are written
func WithOutput(w io.Writer) Option {
	return func(c *Clipboard) {
		c.output = w
	}
}

// Copy writes text to all enabled targets. It fails only when no target
// accepted the text.
func (c *Clipboard) Copy(text string) error {
	var errs []error
	copied := 0

	if c.tmux && IsTmuxSession() {
		if err := c.run("tmux", []string{"load-buffer", "-"}, text); err != nil {
			errs = append(errs, fmt.Errorf("tmux: %w", err))
		} else {
			copied++
		}
	}

	if c.system {
		if tool := systemTool(); tool == "" {
			errs = append(errs, errors.New("no system clipboard tool available"))
		} else if err := c.run(tool, nil, text); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", tool, err))
		} else {
			copied++
		}
	}

	if c.osc52 {
		if _, err := io.WriteString(c.output, OSC52(text, IsTmuxSession())); err != nil {
			errs = append(errs, fmt.Errorf("osc52: %w", err))
		} else {
			copied++
		}
	}

	if copied == 0 {
		if len(errs) == 0 {
			return errors.New("no clipboard target enabled")
		}
		return errors.Join(errs...)
	}
	return nil
}

// OSC52 returns the escape sequence that sets the terminal clipboard,
// wrapped for tmux passthrough when requested.
func OSC52(text string, tmux bool) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	if tmux {
		return fmt.Sprintf("\033Ptmux;\033\033]52;c;%s\007\033\\", encoded)
	}
	return fmt.Sprintf("\033]52;c;%s\007", encoded)
}

// IsTmuxSession returns true if running inside tmux
func IsTmuxSession() bool {
	return os.Getenv("TMUX") != ""
}

func runCommand(name string, args []string, text string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// systemTool finds the first installed clipboard tool for this platform
func systemTool() string {
	for _, tool := range clipboardTools(runtime.GOOS) {
		if _, err := exec.LookPath(tool); err == nil {
			return tool
		}
	}
	return ""
}

func clipboardTools(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"pbcopy"}
	case "linux":
		return []string{"wl-copy", "xclip", "xsel"}
	case "windows":
		return []string{"clip"}
	default:
		return nil
	}
}
