package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/format"
	"github.com/agbru/fibseq/internal/orchestration"
	"github.com/agbru/fibseq/internal/progress"
	"github.com/agbru/fibseq/internal/ui"
)

// CLIColorProvider adapts the active ui theme to the apperrors.ColorProvider
// interface used when reporting generation errors.
type CLIColorProvider struct{}

// Verify that CLIColorProvider implements apperrors.ColorProvider.
var _ apperrors.ColorProvider = CLIColorProvider{}

// Red returns the theme's error color code.
func (CLIColorProvider) Red() string { return ui.Error() }

// Yellow returns the theme's warning color code.
func (CLIColorProvider) Yellow() string { return ui.Warning() }

// Reset returns the theme's reset code.
func (CLIColorProvider) Reset() string { return ui.Reset() }

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during generations.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing generations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numGenerators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numGenerators, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for generation results in the
// command-line interface.
type CLIResultPresenter struct {
	// OutputFile is the optional path to save the sequence to.
	OutputFile string
	// Algo is the algorithm name recorded in the file header.
	Algo string
	// Quiet suppresses everything except the terms themselves.
	Quiet bool
	// ErrWriter receives file output errors (defaults to the presentation writer).
	ErrWriter io.Writer
}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with
// generator names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.GenerationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum generator name width for proper alignment
	maxNameLen := 9     // "Generator" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := formatTableDuration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sGenerator%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.Underline(), ui.Reset(), padRight("", maxNameLen-9),
		ui.Underline(), ui.Reset(), padRight("", maxDurationLen-8),
		ui.Underline(), ui.Reset())

	// Print each result row
	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.Error(), res.Err, ui.Reset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.Success(), ui.Reset())
		}
		duration := formatTableDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.Accent(), res.Name, ui.Reset(), padRight("", maxNameLen-len(res.Name)),
			ui.Warning(), duration, ui.Reset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// formatTableDuration formats a duration for the comparison table, flooring
// sub-microsecond timings.
func formatTableDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns a string of spaces with the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentSequence displays the final generated sequence using the CLI's
// unified output function. File output errors are reported but do not alter
// the presented sequence.
func (p CLIResultPresenter) PresentSequence(result orchestration.GenerationResult, opts orchestration.PresentationOptions, out io.Writer) {
	config := OutputConfig{
		OutputFile: p.OutputFile,
		Quiet:      p.Quiet,
		Verbose:    opts.Verbose,
	}
	if err := DisplaySequenceWithConfig(out, result.Sequence, result.Duration, p.Algo, config); err != nil {
		errOut := p.ErrWriter
		if errOut == nil {
			errOut = out
		}
		fmt.Fprintf(errOut, "%sFailed to write output file: %v%s\n", ui.Error(), err, ui.Reset())
	}
}

// HandleError handles generation errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleGenerationError(err, duration, out, CLIColorProvider{})
}
