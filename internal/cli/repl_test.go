package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fibseq/internal/sequence"
	"github.com/agbru/fibseq/internal/ui"
)

func newTestREPL(input string) (*REPL, *bytes.Buffer) {
	ui.InitTheme(true)
	r := NewREPL(sequence.NewDefaultFactory(), REPLConfig{
		DefaultAlgo: "iterative",
		Timeout:     10 * time.Second,
	})
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	return r, &out
}

func TestREPL_ExitCommand(t *testing.T) {
	r, out := newTestREPL("exit\n")
	r.Start()
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Error("Expected goodbye message on exit")
	}
}

func TestREPL_EOF(t *testing.T) {
	r, out := newTestREPL("")
	r.Start()
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Error("Expected goodbye message on EOF")
	}
}

func TestREPL_GenCommand(t *testing.T) {
	r, out := newTestREPL("gen 10\nexit\n")
	r.Start()
	output := out.String()
	if !strings.Contains(output, "First 10 Fibonacci numbers:") {
		t.Errorf("Expected sequence header, got:\n%s", output)
	}
	if !strings.Contains(output, "F(9) = 34") {
		t.Errorf("Expected F(9) = 34, got:\n%s", output)
	}
}

func TestREPL_BareNumber(t *testing.T) {
	r, out := newTestREPL("5\nexit\n")
	r.Start()
	output := out.String()
	if !strings.Contains(output, "First 5 Fibonacci numbers:") {
		t.Errorf("Bare number should trigger generation, got:\n%s", output)
	}
}

func TestREPL_GenInvalidValue(t *testing.T) {
	r, out := newTestREPL("gen abc\nexit\n")
	r.Start()
	if !strings.Contains(out.String(), "Invalid value") {
		t.Error("Expected invalid value message")
	}
}

func TestREPL_AlgoCommand(t *testing.T) {
	r, out := newTestREPL("algo doubling\nstatus\nexit\n")
	r.Start()
	output := out.String()
	if !strings.Contains(output, "Algorithm changed to") {
		t.Errorf("Expected algorithm change confirmation, got:\n%s", output)
	}
	if !strings.Contains(output, "doubling") {
		t.Errorf("Status should report the new algorithm, got:\n%s", output)
	}
}

func TestREPL_AlgoUnknown(t *testing.T) {
	r, out := newTestREPL("algo nope\nexit\n")
	r.Start()
	if !strings.Contains(out.String(), "Unknown algorithm") {
		t.Error("Expected unknown algorithm message")
	}
}

func TestREPL_CompareCommand(t *testing.T) {
	r, out := newTestREPL("compare 20\nexit\n")
	r.Start()
	output := out.String()
	if !strings.Contains(output, "Comparison for the first 20 terms") {
		t.Errorf("Expected comparison header, got:\n%s", output)
	}
	if strings.Contains(output, "INCONSISTENT") {
		t.Errorf("Generators should agree, got:\n%s", output)
	}
}

func TestREPL_ListCommand(t *testing.T) {
	r, out := newTestREPL("list\nexit\n")
	r.Start()
	output := out.String()
	for _, algo := range []string{"iterative", "doubling"} {
		if !strings.Contains(output, algo) {
			t.Errorf("List should mention %q, got:\n%s", algo, output)
		}
	}
}

func TestREPL_UnknownCommand(t *testing.T) {
	r, out := newTestREPL("frobnicate\nexit\n")
	r.Start()
	if !strings.Contains(out.String(), "Unknown command") {
		t.Error("Expected unknown command message")
	}
}

func TestNewREPL_AllFallsBackToFirstAlgo(t *testing.T) {
	r := NewREPL(sequence.NewDefaultFactory(), REPLConfig{DefaultAlgo: "all"})
	if r.currentAlgo == "all" || r.currentAlgo == "" {
		t.Errorf("Expected a concrete default algorithm, got %q", r.currentAlgo)
	}
}
