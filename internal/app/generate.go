package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/fibseq/internal/cli"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/orchestration"
	"github.com/agbru/fibseq/internal/sequence"
)

// runGenerate orchestrates the execution of the CLI generation command.
func (a *Application) runGenerate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	generatorsToRun := orchestration.GetGeneratorsToRun(a.Config.Algo, a.Factory)

	a.Logger.Debug("starting generation",
		logging.Uint64("n", a.Config.N),
		logging.String("algo", a.Config.Algo),
		logging.Int("generators", len(generatorsToRun)))

	// Skip verbose output in quiet mode
	if !a.Config.Quiet && a.Config.Verbose {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(generatorsToRun, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	results := orchestration.ExecuteGenerations(ctx, generatorsToRun, a.Config.N, sequence.Options{}, progressReporter, progressOut)

	exitCode := a.analyzeResults(results, out)
	a.Logger.Debug("generation finished", logging.Int("exit_code", exitCode))
	return exitCode
}

// analyzeResults presents the generation results. Quiet mode bypasses the
// comparison report entirely: the fastest successful sequence is printed one
// term per line, nothing else.
func (a *Application) analyzeResults(results []orchestration.GenerationResult, out io.Writer) int {
	presenter := cli.CLIResultPresenter{
		OutputFile: a.Config.OutputFile,
		Algo:       a.Config.Algo,
		Quiet:      a.Config.Quiet,
		ErrWriter:  a.ErrWriter,
	}

	if a.Config.Quiet {
		if best := findBestResult(results); best != nil {
			presenter.PresentSequence(*best, orchestration.PresentationOptions{N: a.Config.N}, out)
			return apperrors.ExitSuccess
		}
		// All generators failed; report the first error.
		return presenter.HandleError(results[0].Err, results[0].Duration, a.ErrWriter)
	}

	presOpts := orchestration.PresentationOptions{
		N:       a.Config.N,
		Verbose: a.Config.Verbose,
	}
	return orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, out)
}

// findBestResult returns the fastest successful result, or nil when every
// generator failed.
func findBestResult(results []orchestration.GenerationResult) *orchestration.GenerationResult {
	var best *orchestration.GenerationResult
	for i := range results {
		if results[i].Err == nil {
			if best == nil || results[i].Duration < best.Duration {
				best = &results[i]
			}
		}
	}
	return best
}
