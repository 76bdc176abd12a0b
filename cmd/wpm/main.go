// Package main provides the CLI entrypoint for wpm.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wpm/internal/config"
	"wpm/internal/generator"
	"wpm/internal/model"
	"wpm/internal/runner"
	"wpm/internal/stats"
	"wpm/internal/wordlist"
)

const defaultTime = 60

var (
	testTime   int
	debugMode  bool
	strictMode bool
	manualMode bool
	configPath string
)

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))

// promptDecorator adapts the variadic Style.Render to the runner's
// single-word decorator.
func promptDecorator() func(string) string {
	return func(word string) string {
		return promptStyle.Render(word)
	}
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wpm",
		Short:         "Command-line typing speed test",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().IntVar(&testTime, "time", defaultTime, "test duration in seconds")
	rootCmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "verbose diagnostic output")
	rootCmd.Flags().BoolVar(&strictMode, "strict", false, "end the test mid-read when the deadline passes")
	rootCmd.Flags().BoolVar(&manualMode, "manual", false, "print the full manual and exit")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	if manualMode {
		if _, err := fmt.Fprint(cmd.OutOrStdout(), manualText()); err != nil {
			return fmt.Errorf("failed to write manual: %w", err)
		}
		return nil
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "time", &testTime, fileCfg.Test.Time)
	applyBoolConfig(cmd, "debug", &debugMode, fileCfg.Test.Debug)
	applyBoolConfig(cmd, "strict", &strictMode, fileCfg.Test.Strict)

	cfg := model.Config{
		Duration: time.Duration(testTime) * time.Second,
		Debug:    debugMode,
		Strict:   strictMode,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	words, err := wordlist.Load()
	if err != nil {
		return err
	}

	r, err := runner.New(cfg, words, generator.New(), runner.SystemClock(), os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		r.Decorate = promptDecorator()
	}

	session, err := r.Run()
	if err != nil {
		return err
	}

	if cfg.Debug {
		if err := stats.RenderComparison(os.Stderr, session); err != nil {
			logErrf("failed to render comparison: %v\n", err)
		}
	}
	return stats.RenderReport(os.Stdout, stats.Score(session, cfg.DurationSeconds()))
}

func validateConfig(cfg model.Config) error {
	if cfg.Duration < 0 {
		return fmt.Errorf("--time must be >= 0")
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func manualText() string {
	return fmt.Sprintf(`WPM(1)                          User Commands                          WPM(1)

NAME
    wpm - command-line typing speed test

SYNOPSIS
    wpm [--time <seconds>] [--debug] [--strict] [--config <path>]
    wpm --manual
    wpm --help

DESCRIPTION
    wpm prompts with randomly selected words from its built-in dictionary,
    one per line, and reads one typed line per prompt from standard input.
    When the configured duration elapses it reports how many responses
    matched their prompts exactly (case- and whitespace-sensitive) and the
    resulting words-per-minute score:

        <correct> words correct in <duration> seconds for a WPM of <wpm>

    The deadline is checked between prompts. By default a read in progress
    is never interrupted, so the last answer may arrive after the deadline;
    --strict ends the test mid-read instead. End of input ends the test
    early and the responses collected so far are scored.

    The dictionary deliberately repeats common words; selection is uniform
    by index, so repetition weights the draw toward frequent words.

OPTIONS
    --time <seconds>   test duration in seconds (default %d)
    -d, --debug        trace dictionary size, draws, and timestamps to
                       standard error, and print a per-word comparison
                       table after the test
    --strict           enforce the deadline during reads
    --config <path>    read defaults from a TOML file with a [test] table
                       (keys: time, debug, strict); flags take precedence
    --manual           print this manual and exit
    --help             print the usage summary and exit

EXIT STATUS
    0 on success, 1 on configuration or resource errors.
`, defaultTime)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
