package orchestration

import (
	"github.com/agbru/fibseq/internal/sequence"
)

// GetGeneratorsToRun determines which generators should be executed based on
// the algorithm selection. Returns generators in alphabetically sorted order
// for consistent, reproducible behavior.
//
// Parameters:
//   - algo: The selected registry key, or "all" for comparison mode.
//   - factory: The generator factory to retrieve implementations from.
//
// Returns:
//   - []sequence.Generator: A slice of generators to execute.
func GetGeneratorsToRun(algo string, factory sequence.GeneratorFactory) []sequence.Generator {
	if algo == "all" {
		return factory.GetAll()
	}
	if gen, err := factory.Get(algo); err == nil {
		return []sequence.Generator{gen}
	}
	return nil
}
