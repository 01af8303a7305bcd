// nolint:errcheck
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	titleStyle   = color.New(color.Bold, color.FgHiWhite)
	commandStyle = color.New(color.FgHiGreen)
	exampleStyle = color.New(color.FgHiCyan)
	flagStyle    = color.New(color.Bold, color.FgHiCyan)
	argStyle     = color.New(color.FgHiYellow)
)

var HelpTemplate = `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}` + titleStyle.Sprintf("GitHub:") + color.New(color.FgYellow).Sprintln(
	"		https://github.com/Hanaasagi/tabref",
)

var (
	reWithShort = regexp.MustCompile(`^( {2,})(-[a-zA-Z]), (--[a-zA-Z0-9-]+)(.*)$`)
	reLongOnly  = regexp.MustCompile(`^( {2,})(--[a-zA-Z0-9-]+)(.*)$`)
	reArgument  = regexp.MustCompile(`[A-Z][A-Z_]+(\.\.\.)?`)
)

func trimRightSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// colorFlags highlights the flag names of a pflag usage listing.
func colorFlags(raw string) []byte {
	var out bytes.Buffer

	for _, line := range strings.Split(raw, "\n") {
		if m := reWithShort.FindStringSubmatch(line); m != nil {
			out.WriteString(m[1])
			flagStyle.Fprint(&out, m[2])
			fmt.Fprintf(&out, ", %s%s\n", m[3], m[4])
			continue
		}
		if m := reLongOnly.FindStringSubmatch(line); m != nil {
			out.WriteString(m[1])
			flagStyle.Fprint(&out, m[2])
			fmt.Fprintf(&out, "%s\n", m[3])
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}

	return out.Bytes()
}

// section writes a titled block separated from the previous one.
func section(buf *bytes.Buffer, title string) {
	fmt.Fprint(buf, "\n\n")
	titleStyle.Fprint(buf, title)
	fmt.Fprint(buf, "\n")
}

// ColorUsageFunc renders the usage of a single command: the use line with
// its positional arguments highlighted, the examples and the flags.
func ColorUsageFunc(w io.Writer, cmd *cobra.Command) error {
	buf := &bytes.Buffer{}

	titleStyle.Fprint(buf, "Usage:")
	if cmd.Runnable() {
		fmt.Fprint(buf, "\n  ")
		useLine := cmd.UseLine()
		last := 0
		for _, loc := range reArgument.FindAllStringIndex(useLine, -1) {
			commandStyle.Fprint(buf, useLine[last:loc[0]])
			argStyle.Fprint(buf, useLine[loc[0]:loc[1]])
			last = loc[1]
		}
		commandStyle.Fprint(buf, useLine[last:])
	}

	if len(cmd.Aliases) > 0 {
		section(buf, "Aliases:")
		fmt.Fprint(buf, "  ")
		commandStyle.Fprint(buf, strings.Join(cmd.Aliases, ", "))
	}

	if cmd.HasExample() {
		section(buf, "Examples:")
		exampleStyle.Fprint(buf, cmd.Example)
	}

	if cmd.HasAvailableLocalFlags() {
		section(buf, "Flags:")
		buf.Write(colorFlags(trimRightSpace(cmd.LocalFlags().FlagUsages())))
	}

	if cmd.HasAvailableInheritedFlags() {
		section(buf, "Global Flags:")
		buf.Write(colorFlags(trimRightSpace(cmd.InheritedFlags().FlagUsages())))
	}

	fmt.Fprintln(buf)

	_, err := w.Write(buf.Bytes())
	return err
}
