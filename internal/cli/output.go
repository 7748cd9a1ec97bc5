// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySequence], [DisplayQuietSequence], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatTerm], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteSequenceToFile].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/fibseq/internal/format"
	"github.com/agbru/fibseq/internal/ui"
)

// OutputConfig holds configuration for sequence output.
type OutputConfig struct {
	// OutputFile is the path to save the sequence (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything except the terms themselves.
	Quiet bool
	// Verbose shows full term values without truncation.
	Verbose bool
}

// FormatTerm renders a single term for display, truncating very large values
// unless verbose output was requested.
//
// Parameters:
//   - term: The term value.
//   - verbose: When true, the full decimal representation is returned.
//
// Returns:
//   - string: The formatted term.
func FormatTerm(term *big.Int, verbose bool) string {
	s := term.String()
	if !verbose && len(s) > TruncationLimit {
		return format.TruncateNumber(s, DisplayEdges)
	}
	return s
}

// DisplaySequence writes the standard sequence report: a header line, the full
// sequence as a single bracketed collection, and one `F(i) = value` line per
// term.
//
// Parameters:
//   - out: The output writer.
//   - seq: The generated sequence.
//   - duration: The generation duration (shown only when verbose).
//   - opts: Output configuration.
func DisplaySequence(out io.Writer, seq []*big.Int, duration time.Duration, opts OutputConfig) {
	fmt.Fprintf(out, "%sFirst %d Fibonacci numbers:%s\n", ui.Bold(), len(seq), ui.Reset())

	terms := make([]string, len(seq))
	for i, term := range seq {
		terms[i] = FormatTerm(term, opts.Verbose)
	}
	fmt.Fprintf(out, "%s[%s]%s\n", ui.Accent(), strings.Join(terms, ", "), ui.Reset())

	for i, term := range seq {
		fmt.Fprintf(out, "F(%d) = %s%s%s\n", i, ui.Success(), FormatTerm(term, opts.Verbose), ui.Reset())
	}

	if opts.Verbose {
		fmt.Fprintf(out, "\nGenerated %s%d%s terms in %s%s%s.\n",
			ui.Info(), len(seq), ui.Reset(),
			ui.Warning(), format.FormatExecutionDuration(duration), ui.Reset())
	}
}

// DisplayQuietSequence outputs the sequence in quiet mode: one full term per
// line, nothing else. Suitable for scripting.
//
// Parameters:
//   - out: The output writer.
//   - seq: The generated sequence.
func DisplayQuietSequence(out io.Writer, seq []*big.Int) {
	for _, term := range seq {
		fmt.Fprintln(out, term.String())
	}
}

// WriteSequenceToFile writes the generated sequence to a file with a
// commented metadata header.
//
// Parameters:
//   - seq: The generated sequence.
//   - duration: The generation duration.
//   - algo: The algorithm name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteSequenceToFile(seq []*big.Int, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Fibonacci Sequence\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Terms: %d\n", len(seq))
	fmt.Fprintf(file, "\n")

	// Write terms
	for i, term := range seq {
		fmt.Fprintf(file, "F(%d) = %s\n", i, term.String())
	}

	return nil
}

// DisplaySequenceWithConfig displays a sequence with the given output
// configuration. This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - seq: The generated sequence.
//   - duration: The generation duration.
//   - algo: The algorithm name.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplaySequenceWithConfig(out io.Writer, seq []*big.Int, duration time.Duration, algo string, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietSequence(out, seq)
	} else {
		DisplaySequence(out, seq, duration, config)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteSequenceToFile(seq, duration, algo, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Sequence saved to: %s%s%s\n",
				ui.Success(), ui.Info(), config.OutputFile, ui.Reset())
		}
	}

	return nil
}
