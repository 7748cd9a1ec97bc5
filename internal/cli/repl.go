// Interactive REPL (Read-Eval-Print Loop) for exploring Fibonacci sequences.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/agbru/fibseq/internal/progress"
	"github.com/agbru/fibseq/internal/sequence"
	"github.com/agbru/fibseq/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the default algorithm to use for generations.
	DefaultAlgo string
	// Timeout is the maximum duration for each generation.
	Timeout time.Duration
	// Verbose displays full term values without truncation.
	Verbose bool
}

// REPL represents an interactive Fibonacci sequence session.
type REPL struct {
	config      REPLConfig
	factory     sequence.GeneratorFactory
	currentAlgo string
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - factory: The generator factory.
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(factory sequence.GeneratorFactory, config REPLConfig) *REPL {
	currentAlgo := config.DefaultAlgo
	if currentAlgo == "" || currentAlgo == "all" {
		// Pick the first available algorithm as default
		if names := factory.List(); len(names) > 0 {
			currentAlgo = names[0]
		}
	}

	return &REPL{
		config:      config,
		factory:     factory,
		currentAlgo: currentAlgo,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.Success()+"fib> "+ui.Reset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.Error(), err, ui.Reset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.Info(), ui.Reset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 Fibonacci Sequence - Interactive Mode%s              %s║%s\n",
		ui.Info(), ui.Reset(), ui.Bold(), ui.Reset(), ui.Info(), ui.Reset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.Info(), ui.Reset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.Bold(), ui.Reset())
	fmt.Fprintf(r.out, "  %sgen <n>%s       - Generate the first n terms with current algorithm\n", ui.Warning(), ui.Reset())
	fmt.Fprintf(r.out, "  %salgo <name>%s   - Change algorithm (%s)\n", ui.Warning(), ui.Reset(), r.getAlgoList())
	fmt.Fprintf(r.out, "  %scompare <n>%s   - Compare all algorithms for n terms\n", ui.Warning(), ui.Reset())
	fmt.Fprintf(r.out, "  %slist%s          - List available algorithms\n", ui.Warning(), ui.Reset())
	fmt.Fprintf(r.out, "  %sstatus%s        - Display current configuration\n", ui.Warning(), ui.Reset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.Warning(), ui.Reset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Exit interactive mode\n", ui.Warning(), ui.Reset(), ui.Warning(), ui.Reset())
}

// getAlgoList returns a comma-separated list of available algorithms.
func (r *REPL) getAlgoList() string {
	return strings.Join(r.factory.List(), ", ")
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "gen", "g":
		r.cmdGen(args)
	case "algo", "a":
		r.cmdAlgo(args)
	case "compare", "cmp":
		r.cmdCompare(args)
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.Success(), ui.Reset())
		return false
	default:
		// Try to interpret as a number for quick generation
		if n, err := strconv.ParseUint(cmd, 10, 64); err == nil {
			r.generate(n)
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.Error(), cmd, ui.Reset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.Warning(), ui.Reset())
		}
	}

	return true
}

// cmdGen handles the "gen" command.
func (r *REPL) cmdGen(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: gen <n>%s\n", ui.Error(), ui.Reset())
		return
	}

	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.Error(), args[0], ui.Reset())
		return
	}

	r.generate(n)
}

// generate produces a sequence with the current algorithm.
func (r *REPL) generate(n uint64) {
	gen, err := r.factory.Get(r.currentAlgo)
	if err != nil {
		fmt.Fprintf(r.out, "%sAlgorithm not found: %s%s\n", ui.Error(), r.currentAlgo, ui.Reset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	fmt.Fprintf(r.out, "Generating the first %s%d%s terms with %s%s%s...\n",
		ui.Accent(), n, ui.Reset(),
		ui.Info(), gen.Name(), ui.Reset())

	// Create a progress channel
	progressChan := make(chan progress.Update, 10)

	// Use DisplayProgress to show a spinner and progress bar
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	start := time.Now()
	seq, err := gen.Generate(ctx, progressChan, 0, n, sequence.Options{})
	duration := time.Since(start)
	close(progressChan)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.Error(), err, ui.Reset())
		return
	}

	fmt.Fprintln(r.out)
	DisplaySequence(r.out, seq, duration, OutputConfig{Verbose: r.config.Verbose})
	fmt.Fprintf(r.out, "Time: %s%s%s\n\n", ui.Success(), FormatExecutionDuration(duration), ui.Reset())
}

// cmdAlgo handles the "algo" command.
func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\n", ui.Error(), ui.Reset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", r.getAlgoList())
		return
	}

	name := strings.ToLower(args[0])
	gen, err := r.factory.Get(name)
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown algorithm: %s%s\n", ui.Error(), name, ui.Reset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", r.getAlgoList())
		return
	}

	r.currentAlgo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ui.Success(), gen.Name(), ui.Reset())
}

// cmdCompare handles the "compare" command.
func (r *REPL) cmdCompare(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: compare <n>%s\n", ui.Error(), ui.Reset())
		return
	}

	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.Error(), args[0], ui.Reset())
		return
	}

	fmt.Fprintf(r.out, "\n%sComparison for the first %d terms:%s\n", ui.Bold(), n, ui.Reset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.Info(), ui.Reset())

	var firstSeq []*big.Int

	for _, name := range r.factory.List() {
		gen, err := r.factory.Get(name)
		if err != nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)

		// Discard progress updates for comparison runs
		progressChan := make(chan progress.Update, 10)
		go func() {
			for range progressChan {
			}
		}()

		start := time.Now()
		seq, err := gen.Generate(ctx, progressChan, 0, n, sequence.Options{})
		duration := time.Since(start)
		close(progressChan)
		cancel()

		if err != nil {
			fmt.Fprintf(r.out, "  %s%-12s%s: %sError - %v%s\n",
				ui.Warning(), name, ui.Reset(),
				ui.Error(), err, ui.Reset())
			continue
		}

		if firstSeq == nil {
			firstSeq = seq
		}

		// Check consistency
		status := ui.Success() + "✓" + ui.Reset()
		if !sequence.Equal(seq, firstSeq) {
			status = ui.Error() + "✗ INCONSISTENT" + ui.Reset()
		}

		fmt.Fprintf(r.out, "  %s%-12s%s: %s%12s%s %s\n",
			ui.Warning(), name, ui.Reset(),
			ui.Info(), FormatExecutionDuration(duration), ui.Reset(),
			status)
	}

	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ui.Info(), ui.Reset())
}

// cmdList handles the "list" command.
func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable algorithms:%s\n", ui.Bold(), ui.Reset())
	for _, name := range r.factory.List() {
		gen, err := r.factory.Get(name)
		if err != nil {
			continue
		}
		marker := "  "
		if name == r.currentAlgo {
			marker = ui.Success() + "► " + ui.Reset()
		}
		fmt.Fprintf(r.out, "%s%s%-10s%s - %s\n", marker, ui.Warning(), name, ui.Reset(), gen.Name())
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.Bold(), ui.Reset())
	fmt.Fprintf(r.out, "  Algorithm:  %s%s%s\n", ui.Info(), r.currentAlgo, ui.Reset())
	fmt.Fprintf(r.out, "  Timeout:    %s%s%s\n", ui.Info(), r.config.Timeout, ui.Reset())
	verboseStatus := "no"
	if r.config.Verbose {
		verboseStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Verbose:    %s%s%s\n", ui.Info(), verboseStatus, ui.Reset())
	fmt.Fprintln(r.out)
}
