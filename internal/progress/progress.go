// Package progress defines the progress reporting types shared by the
// sequence generators and the presentation layers (CLI spinner, TUI).
package progress

// Update carries a single progress notification from a generator.
type Update struct {
	// GeneratorIndex identifies which generator sent the update when several
	// run concurrently (0-based, matching the orchestration slice order).
	GeneratorIndex int
	// Value is the normalized progress, from 0.0 to 1.0.
	Value float64
}

// Callback receives normalized progress values from a running generation.
type Callback func(value float64)

// Send delivers an update to the channel without blocking the generator.
// Updates are best-effort: if the consumer is slow and the buffer is full,
// the update is dropped rather than stalling the computation.
func Send(ch chan<- Update, generatorIndex int, value float64) {
	if ch == nil {
		return
	}
	select {
	case ch <- Update{GeneratorIndex: generatorIndex, Value: value}:
	default:
	}
}

// Fraction returns done/total clamped to [0, 1], guarding against a zero
// total for empty sequences.
func Fraction(done, total uint64) float64 {
	if total == 0 {
		return 1.0
	}
	f := float64(done) / float64(total)
	if f > 1.0 {
		f = 1.0
	}
	return f
}
