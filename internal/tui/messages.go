package tui

import (
	"time"

	"github.com/agbru/fibseq/internal/orchestration"
)

// ProgressMsg carries a progress update from a running generator.
type ProgressMsg struct {
	GeneratorIndex  int
	Value           float64
	AverageProgress float64
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the comparison table data.
type ComparisonResultsMsg struct {
	Results []orchestration.GenerationResult
}

// SequenceResultMsg carries the final generated sequence.
type SequenceResultMsg struct {
	Result  orchestration.GenerationResult
	N       uint64
	Verbose bool
}

// ErrorMsg carries a generation error.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives the periodic refresh of the header clock and system stats.
type TickMsg time.Time

// SysStatsMsg carries a system-wide CPU and memory sample plus a process
// heap reading.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
	HeapAlloc  uint64
}

// GenerationCompleteMsg signals that the orchestration finished.
type GenerationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals that the execution context was canceled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
