package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Hanaasagi/tabref/cmd"
	"github.com/Hanaasagi/tabref/internal"
	"github.com/Hanaasagi/tabref/internal/logger"
	"github.com/Hanaasagi/tabref/pkg/clipboard"
	"github.com/Hanaasagi/tabref/pkg/deluxetable"
	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const appName = "tabref"

var (
	Version     = "0.1.0"
	CommitSha   = "unknown"
	FullVersion = Version + "-" + CommitSha
)

var (
	configPath = filepath.Join(xdg.ConfigHome, appName, "config.toml")
	logPath    = filepath.Join(xdg.StateHome, appName, appName+".log")
)

// AppConfig holds the resolved settings of one invocation
type AppConfig struct {
	input         string
	columns       []int
	suffix        string
	macros        []string
	footnoteMacro string
	numericSort   bool
	stdout        bool
	list          bool
	copy          bool
	configFile    string
	logLevel      string
	showVersion   bool
	clipboard     ClipboardConfig

	closeLog func() error
}

// parseColumns reads zero-based column indices
func parseColumns(args []string) ([]int, error) {
	columns := make([]int, 0, len(args))
	for _, arg := range args {
		col, err := strconv.Atoi(arg)
		if err != nil || col < 0 {
			return nil, fmt.Errorf("%w: %q is not a zero-based column index", deluxetable.ErrInvalidColumn, arg)
		}
		columns = append(columns, col)
	}
	return columns, nil
}

// configureColor turns color off unless w is a terminal
func configureColor(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
	}
}

// loadSettings fills the settings that were not given on the command line
// from the config file, then starts logging.
func loadSettings(c *cobra.Command, config *AppConfig) error {
	fileConfig, err := LoadConfigFromFile(config.configFile)
	if err != nil {
		return err
	}

	flags := c.Flags()
	if !flags.Changed("suffix") {
		config.suffix = fileConfig.Core.Suffix
	}
	if !flags.Changed("numeric-sort") {
		config.numericSort = fileConfig.Core.NumericSort
	}
	if !flags.Changed("footnote-macro") {
		config.footnoteMacro = fileConfig.Footnote.Macro
	}
	// --macro adds to the configured macros
	config.macros = append(append([]string(nil), fileConfig.Core.Macros...), config.macros...)
	config.clipboard = fileConfig.Clipboard

	if !flags.Changed("log-level") {
		config.logLevel = os.Getenv("TABREF_LOG")
		if config.logLevel == "" {
			config.logLevel = fileConfig.Core.LogLevel
		}
	}

	closeLog, err := logger.InitLogger(logPath, config.logLevel)
	if err != nil {
		return err
	}
	config.closeLog = closeLog

	return nil
}

// runApp runs the main application logic
func runApp(c *cobra.Command, config *AppConfig, args []string) error {
	if config.showVersion {
		fmt.Fprintf(c.OutOrStdout(), "%s version: %s\n", appName, FullVersion)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("requires a FILE argument")
	}
	config.input = args[0]

	columns, err := parseColumns(args[1:])
	if err != nil {
		return err
	}
	config.columns = columns

	opts := deluxetable.Options{
		Columns:       config.columns,
		Macros:        config.macros,
		NumericSort:   config.numericSort,
		FootnoteMacro: config.footnoteMacro,
	}
	slog.Debug("Converting table", "input", config.input, "columns", columns, "macros", config.macros)

	conv, err := internal.ConvertFile(config.input, config.suffix, opts)
	if err != nil {
		return err
	}

	if config.stdout {
		if _, err := io.WriteString(c.OutOrStdout(), conv.Result.String()); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
	} else {
		if err := conv.Write(); err != nil {
			return err
		}
		internal.PrintSummary(c.ErrOrStderr(), conv)
	}

	if config.list {
		internal.PrintReferences(c.ErrOrStderr(), conv.Result.Index)
	}

	if config.copy {
		board := clipboard.New(
			clipboard.WithTmux(config.clipboard.Tmux),
			clipboard.WithSystem(config.clipboard.System),
			clipboard.WithOSC52(config.clipboard.OSC52),
			clipboard.WithOutput(c.ErrOrStderr()),
		)
		if err := board.Copy(conv.Result.Footnote); err != nil {
			slog.Warn("Copying footnote failed", "error", err)
			color.New(color.FgYellow).Fprintf(c.ErrOrStderr(), "Could not copy the footnote: %v\n", err)
		}
	}

	return nil
}

func newRootCmd(config *AppConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName + " FILE [COLUMN...]",
		Short: "Number the citations of a deluxetable in order of appearance",
		Long: color.New(color.FgHiMagenta).Sprintf(
			"Number the citations of an AASTeX deluxetable in order of appearance. %s",
			color.New(color.FgBlue).Sprintf("(%s)", FullVersion),
		),
		Example: "  tabref table.tex          # citations in the last column\n" +
			"  tabref table.tex 3 5      # citations in columns 3 and 5 (zero-based)\n" +
			"  tabref --stdout --list table.tex",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			configureColor(c.ErrOrStderr())
			return loadSettings(c, config)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runApp(c, config, args)
		},
	}

	rootCmd.Flags().StringVarP(&config.suffix, "suffix", "s", internal.DefaultSuffix, "Suffix appended to the input path for the output file")
	rootCmd.Flags().BoolVarP(&config.numericSort, "numeric-sort", "n", false, "Sort the numbers of a cell numerically instead of as strings")
	rootCmd.Flags().StringVarP(&config.footnoteMacro, "footnote-macro", "f", "", "Wrap footnote keys in this citation macro (e.g. citet)")
	rootCmd.Flags().StringArrayVarP(&config.macros, "macro", "m", nil, "Extra citation macro to strip (e.g. citealt)")
	rootCmd.Flags().BoolVar(&config.stdout, "stdout", false, "Print the converted table instead of writing a file")
	rootCmd.Flags().BoolVarP(&config.list, "list", "l", false, "Print the reference list after converting")
	rootCmd.Flags().BoolVarP(&config.copy, "copy", "c", false, "Copy the generated footnote to the clipboard")
	rootCmd.Flags().StringVar(&config.configFile, "config", configPath, "Path to the config file")
	rootCmd.Flags().StringVar(&config.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&config.showVersion, "version", "v", false, "Print version and exit")

	rootCmd.SetHelpTemplate(cmd.HelpTemplate)
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		return cmd.ColorUsageFunc(c.OutOrStderr(), c)
	})

	return rootCmd
}

// execute runs the command line and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	config := &AppConfig{closeLog: func() error { return nil }}

	rootCmd := newRootCmd(config)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		slog.Error("Error executing command", "error", err)
		internal.PrintError(stderr, config.input, err)
	}

	if cerr := config.closeLog(); cerr != nil {
		fmt.Fprintf(stderr, "closing log: %v\n", cerr)
	}

	if err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
