// Package orchestration coordinates the concurrent execution of sequence
// generators and the analysis of their results. It depends only on domain
// types and interfaces, keeping presentation concerns (CLI, TUI) out of the
// execution path.
package orchestration
