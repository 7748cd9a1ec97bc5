package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibseq/internal/config"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/format"
	"github.com/agbru/fibseq/internal/metrics"
	"github.com/agbru/fibseq/internal/orchestration"
	"github.com/agbru/fibseq/internal/sequence"
	"github.com/agbru/fibseq/internal/sysmon"
)

// Layout constants for the TUI dashboard.
const (
	headerHeight  = 1
	footerHeight  = 1
	minBodyHeight = 4
	tickInterval  = 500 * time.Millisecond
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generators []sequence.Generator
	generation uint64
	done       bool
	exitCode   int
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	terms  viewport.Model
	keymap KeyMap

	ExecutionState

	parentCtx context.Context
	config    config.AppConfig
	ref       *programRef

	startTime time.Time
	elapsed   time.Duration
	progress  float64
	cpu       float64
	mem       float64
	heap      uint64
	failed    bool
	results   []orchestration.GenerationResult

	width  int
	height int
	ready  bool
}

// NewModel creates a new TUI model.
func NewModel(parentCtx context.Context, generators []sequence.Generator, cfg config.AppConfig) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	return Model{
		keymap: DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:        ctx,
			cancel:     cancel,
			generators: generators,
			exitCode:   apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		ref:       &programRef{},
		startTime: time.Now(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startGenerationCmd(m.ref, m.ctx, m.generators, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		m.progress = msg.AverageProgress
		return m, nil

	case ProgressDoneMsg:
		m.progress = 1.0
		return m, nil

	case ComparisonResultsMsg:
		m.results = msg.Results
		return m, nil

	case SequenceResultMsg:
		m.terms.SetContent(renderTerms(msg))
		return m, nil

	case ErrorMsg:
		m.terms.SetContent(statusErrorStyle.Render(fmt.Sprintf("Error: %v", msg.Err)))
		m.failed = true
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		m.elapsed = time.Since(m.startTime)
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.cpu = msg.CPUPercent
		m.mem = msg.MemPercent
		m.heap = msg.HeapAlloc
		return m, nil

	case GenerationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.elapsed = time.Since(m.startTime)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Restart):
		if m.cancel != nil {
			m.cancel()
		}

		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		m.terms.SetContent("")
		m.results = nil
		m.progress = 0
		m.failed = false
		m.done = false
		m.exitCode = apperrors.ExitSuccess
		m.startTime = time.Now()
		m.elapsed = 0

		return m, tea.Batch(
			tickCmd(),
			startGenerationCmd(m.ref, m.ctx, m.generators, m.config, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)

	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down),
		key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		var cmd tea.Cmd
		m.terms, cmd = m.terms.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.viewHeader()
	body := panelStyle.Width(m.width - 2).Render(m.terms.View())
	footer := m.viewFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// viewHeader renders the single-line header with status, elapsed time, and
// system stats.
func (m Model) viewHeader() string {
	status := statusRunningStyle.Render("RUNNING")
	if m.failed {
		status = statusErrorStyle.Render("ERROR")
	} else if m.done {
		status = statusDoneStyle.Render("DONE")
	}

	left := fmt.Sprintf("%s  %s  %s",
		titleStyle.Render(fmt.Sprintf("fibseq · first %d terms", m.config.N)),
		status,
		elapsedStyle.Render(m.elapsed.Truncate(100*time.Millisecond).String()))

	right := fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		statLabelStyle.Render("progress"),
		statValueStyle.Render(fmt.Sprintf("%3.0f%%", m.progress*100)),
		statLabelStyle.Render("cpu"),
		statValueStyle.Render(fmt.Sprintf("%4.1f%%", m.cpu)),
		statLabelStyle.Render("mem"),
		statValueStyle.Render(fmt.Sprintf("%4.1f%%", m.mem)),
		statLabelStyle.Render("heap"),
		statValueStyle.Render(format.FormatBytes(m.heap)))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// viewFooter renders the key binding hints.
func (m Model) viewFooter() string {
	bindings := []key.Binding{m.keymap.Up, m.keymap.Down, m.keymap.Restart, m.keymap.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts,
			footerKeyStyle.Render(b.Help().Key)+" "+footerDescStyle.Render(b.Help().Desc))
	}
	return " " + strings.Join(parts, "  ")
}

func (m *Model) layoutPanels() {
	bodyHeight := m.height - headerHeight - footerHeight - 2 // panel borders
	if bodyHeight < minBodyHeight {
		bodyHeight = minBodyHeight
	}
	if !m.ready {
		m.terms = viewport.New(m.width-4, bodyHeight)
		m.ready = true
		return
	}
	m.terms.Width = m.width - 4
	m.terms.Height = bodyHeight
}

// renderTerms formats the generated sequence as one styled line per term.
func renderTerms(msg SequenceResultMsg) string {
	var b strings.Builder
	for i, term := range msg.Result.Sequence {
		value := term.String()
		if !msg.Verbose {
			value = format.TruncateNumber(value, 20)
		}
		b.WriteString(termIndexStyle.Render(fmt.Sprintf("F(%d) = ", i)))
		b.WriteString(termValueStyle.Render(value))
		b.WriteString("\n")
	}
	b.WriteString(statLabelStyle.Render(
		fmt.Sprintf("\n%d terms · %s · %s",
			len(msg.Result.Sequence),
			msg.Result.Name,
			format.FormatExecutionDuration(msg.Result.Duration))))
	return b.String()
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, generators []sequence.Generator, cfg config.AppConfig) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, generators, cfg)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startGenerationCmd returns a tea.Cmd that launches the orchestration.
func startGenerationCmd(ref *programRef, ctx context.Context, generators []sequence.Generator, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progressReporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteGenerations(ctx, generators, cfg.N, sequence.Options{}, progressReporter, io.Discard)
		presOpts := orchestration.PresentationOptions{
			N:       cfg.N,
			Verbose: cfg.Verbose,
		}
		exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, io.Discard)

		return GenerationCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after the tick interval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var memCollector = metrics.NewMemoryCollector()

// sampleSysStatsCmd reads system-wide CPU and memory stats plus the process
// heap size and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		snap := memCollector.Snapshot()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
			HeapAlloc:  snap.HeapAlloc,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
