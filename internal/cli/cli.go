package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/focusgridgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// listFlag is a repeatable, comma separated flag value.
type listFlag struct {
	values []string
	set    bool
}

func (l *listFlag) String() string {
	return strings.Join(l.values, ",")
}

func (l *listFlag) Set(v string) error {
	if !l.set {
		l.values = nil
		l.set = true
	}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			l.values = append(l.values, part)
		}
	}
	return nil
}

// Parse processes command-line arguments. Defaults come from FOCUSGRID_*
// environment variables and a .env file in the working directory; flags win
// over both. It returns a populated Config, a boolean indicating if the
// program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	defaults := app.EnvDefaults(".env")

	flagSet := flag.NewFlagSet("focusgridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
FocusGridGo - Composes per-country national focus trees from a template corpus.

Usage:
  focusgridgo [options] [CORPUS_PATH...]

Arguments:
  CORPUS_PATH
    Path to a single .hcl file or a directory containing .hcl focus templates.

Options:
`)
		flagSet.PrintDefaults()
	}

	corpus := &listFlag{values: defaults.CorpusPaths}
	localisation := &listFlag{values: defaults.LocalisationPaths}
	countries := &listFlag{values: defaults.Countries}
	flagSet.Var(corpus, "corpus", "Focus template file or directory. Repeatable or comma separated.")
	flagSet.Var(corpus, "c", "Focus template file or directory (shorthand).")
	worldFlag := flagSet.String("world", defaults.WorldPath, "Path to the world file.")
	rulesFlag := flagSet.String("rules", defaults.RulesPath, "Path to a selection rules file. Built-in rules when empty.")
	flagSet.Var(localisation, "localisation", "Localisation file or directory. Repeatable or comma separated.")
	flagSet.Var(countries, "countries", "Only compose these country tags. Comma separated.")
	outFlag := flagSet.String("out", defaults.OutputDir, "Output directory.")
	formatFlag := flagSet.String("format", defaults.OutputFormat, "Output format. Options: 'paradox' or 'hcl'.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", defaults.WorkerCount, "Number of concurrent workers writing output files.")
	publishFlag := flagSet.String("publish-url", defaults.PublishURL, "socket.io URL of a focus tree viewer. Disabled when empty.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	corpusPaths := corpus.values
	if flagSet.NArg() > 0 {
		corpusPaths = append(corpusPaths, flagSet.Args()...)
	}
	slog.Debug("Corpus paths determined.", "paths", corpusPaths)

	if len(corpusPaths) == 0 {
		slog.Debug("No corpus path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		CorpusPaths:       corpusPaths,
		WorldPath:         *worldFlag,
		RulesPath:         *rulesFlag,
		LocalisationPaths: localisation.values,
		OutputDir:         *outFlag,
		OutputFormat:      strings.ToLower(*formatFlag),
		Countries:         countries.values,
		LogFormat:         strings.ToLower(*logFormatFlag),
		LogLevel:          strings.ToLower(*logLevelFlag),
		HealthcheckPort:   *healthPortFlag,
		WorkerCount:       *workersFlag,
		PublishURL:        *publishFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
