package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fibseq/internal/config"
	"github.com/agbru/fibseq/internal/sequence"
	"github.com/agbru/fibseq/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the number of terms to generate, the timeout, and environment
// details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Generating the first %s%d%s Fibonacci terms with a timeout of %s%s%s.\n",
		ui.Accent(), cfg.N, ui.Reset(), ui.Warning(), cfg.Timeout, ui.Reset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.Info(), runtime.NumCPU(), ui.Reset(), ui.Info(), runtime.Version(), ui.Reset())
}

// PrintExecutionMode displays the execution mode (single algorithm vs comparison).
//
// Parameters:
//   - generators: The slice of generators that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(generators []sequence.Generator, out io.Writer) {
	var modeDesc string
	if len(generators) > 1 {
		modeDesc = "Parallel comparison of all algorithms"
	} else {
		modeDesc = fmt.Sprintf("Single generation with the %s%s%s algorithm",
			ui.Success(), generators[0].Name(), ui.Reset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
