package orchestration

import (
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/agbru/fibseq/internal/progress"
)

// GenerationResult encapsulates the outcome of a single sequence generation.
// It serves as the shared domain type between orchestration and presentation layers.
type GenerationResult struct {
	// Name is the identifier of the generator used (e.g., "Iterative Pair").
	Name string
	// Sequence is the generated sequence. It is nil if an error occurred.
	Sequence []*big.Int
	// Duration is the time taken to complete the generation.
	Duration time.Duration
	// Err contains any error that occurred during the generation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	N       uint64
	Verbose bool
}

// ProgressReporter defines the interface for displaying generation progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinner, progress
// bar, TUI panel) while orchestration focuses on coordinating the generators.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from generators.
	//   - numGenerators: The number of concurrent generators being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numGenerators int, out io.Writer)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting generation results.
// This decouples the orchestration layer from presentation concerns, allowing
// different output surfaces (CLI, TUI) without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []GenerationResult, out io.Writer)

	// PresentSequence displays the final generated sequence.
	PresentSequence(result GenerationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles generation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
