package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/progress"
	"github.com/agbru/fibseq/internal/sequence"
)

// tracerName identifies this package's spans. Without a configured SDK the
// tracer is a no-op, so instrumentation costs nothing in the default CLI run.
const tracerName = "github.com/agbru/fibseq/internal/orchestration"

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking generator
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ExecuteGenerations orchestrates the concurrent execution of one or more
// sequence generations.
//
// It manages the lifecycle of the generator goroutines, collects their
// results, and coordinates the display of progress updates. This function is
// the core of the application's concurrency model.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - generators: A slice of generators to execute.
//   - n: The number of terms to generate.
//   - opts: Generation options shared by all generators.
//   - progressReporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []GenerationResult: A slice containing the result of each generation.
func ExecuteGenerations(ctx context.Context, generators []sequence.Generator, n uint64, opts sequence.Options, progressReporter ProgressReporter, out io.Writer) []GenerationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]GenerationResult, len(generators))
	progressChan := make(chan progress.Update, len(generators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(generators), out)

	tracer := otel.Tracer(tracerName)

	for i, gen := range generators {
		idx, generator := i, gen
		g.Go(func() error {
			genCtx, span := tracer.Start(ctx, "sequence.Generate",
				trace.WithAttributes(
					attribute.String("generator", generator.Name()),
					attribute.Int64("terms", int64(n)),
				))
			defer span.End()

			startTime := time.Now()
			seq, err := generator.Generate(genCtx, progressChan, idx, n, opts)
			if err != nil {
				span.RecordError(err)
			}
			results[idx] = GenerationResult{
				Name: generator.Name(), Sequence: seq, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple generators and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful generations, and displays a comparative table. It handles the
// logic for determining global success or failure based on the individual
// outcomes.
//
// Parameters:
//   - results: The slice of generation results to analyze.
//   - presOpts: The presentation options.
//   - presenter: The result presenter for display formatting.
//   - errHandler: The handler mapping errors to exit codes.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []GenerationResult, presOpts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *GenerationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	if len(results) > 1 {
		presenter.PresentComparisonTable(results, out)
	}

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No generator could complete the sequence.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && !sequence.Equal(res.Sequence, firstValidResult.Sequence) {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the generated sequences.\n")
		return apperrors.ExitErrorMismatch
	}

	if len(results) > 1 {
		fmt.Fprintf(out, "\nGlobal Status: Success. All generated sequences are consistent.\n")
	}
	presenter.PresentSequence(*firstValidResult, presOpts, out)
	return apperrors.ExitSuccess
}
