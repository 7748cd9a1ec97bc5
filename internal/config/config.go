// Package config handles command-line and environment configuration for the
// fibseq application. Resolution priority is CLI flags > environment
// variables (FIBSEQ_ prefix) > built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "github.com/agbru/fibseq/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "FIBSEQ_"

// Default configuration values. N defaults to the reference use case of the
// first ten terms.
const (
	DefaultN       = 10
	DefaultAlgo    = "iterative"
	DefaultTimeout = 1 * time.Minute
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	// N is the number of sequence terms to generate.
	N uint64
	// Algo selects the generator implementation, or "all" for comparison mode.
	Algo string
	// Timeout is the maximum duration for the generation run.
	Timeout time.Duration
	// OutputFile is the path to save the sequence (empty for no file output).
	OutputFile string
	// Completion requests a shell completion script ("bash", "zsh", "fish").
	Completion string
	// Quiet suppresses everything except the terms themselves.
	Quiet bool
	// Verbose enables debug logging and full term display.
	Verbose bool
	// NoColor disables ANSI color output.
	NoColor bool
	// TUI launches the interactive dashboard.
	TUI bool
	// REPL launches the interactive prompt.
	REPL bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags not explicitly set, and validates the
// result.
//
// The count may be given either with -n or as a single positional argument
// (matching the reference surface: no arguments means N=10).
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The writer for usage and parse error output.
//   - availableAlgos: The registry keys accepted by --algo.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a config/validation error.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	// N is parsed as a signed integer so that a negative count reaches
	// validation and is reported, rather than failing opaquely in the parser.
	n := fs.Int64("n", DefaultN, "Number of Fibonacci terms to generate")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo, fmt.Sprintf("Generator to use (%v, or \"all\" to compare)", availableAlgos))
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum execution time (e.g. 30s, 5m)")
	fs.StringVar(&cfg.OutputFile, "output", "", "Write the sequence to the given file")
	fs.StringVar(&cfg.OutputFile, "o", "", "Write the sequence to the given file (shorthand)")
	fs.StringVar(&cfg.Completion, "completion", "", "Generate a shell completion script (bash, zsh, fish)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the terms, one per line")
	fs.BoolVar(&cfg.Quiet, "q", false, "Print only the terms, one per line (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging and full term display")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging and full term display (shorthand)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.TUI, "tui", false, "Launch the interactive dashboard")
	fs.BoolVar(&cfg.REPL, "repl", false, "Launch the interactive prompt")
	fs.BoolVar(&cfg.REPL, "i", false, "Launch the interactive prompt (shorthand)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Positional count: `fibseq 25` is equivalent to `fibseq -n 25`.
	nPositional := false
	switch fs.NArg() {
	case 0:
	case 1:
		if isFlagSet(fs, "n") {
			return AppConfig{}, apperrors.NewConfigError("count given both as -n and as a positional argument")
		}
		parsed, err := strconv.ParseInt(fs.Arg(0), 10, 64)
		if err != nil {
			return AppConfig{}, apperrors.NewConfigError("invalid count %q: not an integer", fs.Arg(0))
		}
		*n = parsed
		nPositional = true
	default:
		return AppConfig{}, apperrors.NewConfigError("too many arguments: expected at most one positional count")
	}

	applyEnvOverrides(&cfg, n, fs, nPositional)

	if *n < 0 {
		return AppConfig{}, apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("count must be non-negative, got %d", *n),
		}
	}
	cfg.N = uint64(*n)

	if err := validate(cfg, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate checks cross-field constraints after flag and env resolution.
func validate(cfg AppConfig, availableAlgos []string) error {
	if cfg.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if cfg.Algo != "all" {
		found := false
		for _, a := range availableAlgos {
			if a == cfg.Algo {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown algorithm %q (available: %v, or \"all\")", cfg.Algo, availableAlgos)
		}
	}
	if cfg.TUI && cfg.Quiet {
		return apperrors.NewConfigError("--tui and --quiet are mutually exclusive")
	}
	return nil
}
