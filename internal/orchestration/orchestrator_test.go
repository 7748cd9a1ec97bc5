package orchestration

import (
	"context"
	"errors"
	"io"
	"math/big"
	"testing"
	"time"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/progress"
	"github.com/agbru/fibseq/internal/sequence"
)

// MockResultPresenter is a mock implementation of ResultPresenter and
// ErrorHandler for testing.
type MockResultPresenter struct{}

func (MockResultPresenter) PresentComparisonTable(results []GenerationResult, out io.Writer) {}
func (MockResultPresenter) PresentSequence(result GenerationResult, opts PresentationOptions, out io.Writer) {
}
func (MockResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.ExitErrorGeneric
}

// MockGenerator is a mock implementation of sequence.Generator used for
// testing the orchestration logic without invoking real algorithms.
type MockGenerator struct {
	NameFunc     func() string
	GenerateFunc func(ctx context.Context, n uint64) ([]*big.Int, error)
}

// Name returns the mocked name of the generator.
func (m *MockGenerator) Name() string {
	if m.NameFunc != nil {
		return m.NameFunc()
	}
	return "Mock"
}

// Generate invokes the mocked GenerateFunc.
func (m *MockGenerator) Generate(ctx context.Context, progressChan chan<- progress.Update, index int, n uint64, opts sequence.Options) ([]*big.Int, error) {
	if m.GenerateFunc != nil {
		progress.Send(progressChan, index, 1.0)
		return m.GenerateFunc(ctx, n)
	}
	return []*big.Int{}, nil
}

func seqOf(values ...int64) []*big.Int {
	s := make([]*big.Int, len(values))
	for i, v := range values {
		s[i] = big.NewInt(v)
	}
	return s
}

// TestExecuteGenerations verifies that the orchestrator correctly runs
// generators and aggregates their results.
func TestExecuteGenerations(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		generators  []sequence.Generator
		expectedLen int
		expectError bool
	}{
		{
			name: "Single success",
			generators: []sequence.Generator{
				&MockGenerator{
					GenerateFunc: func(ctx context.Context, n uint64) ([]*big.Int, error) {
						return seqOf(0, 1, 1), nil
					},
				},
			},
			expectedLen: 1,
			expectError: false,
		},
		{
			name: "Single failure",
			generators: []sequence.Generator{
				&MockGenerator{
					GenerateFunc: func(ctx context.Context, n uint64) ([]*big.Int, error) {
						return nil, errors.New("mock error")
					},
				},
			},
			expectedLen: 1,
			expectError: true,
		},
		{
			name: "Multiple generators",
			generators: []sequence.Generator{
				&MockGenerator{
					GenerateFunc: func(ctx context.Context, n uint64) ([]*big.Int, error) {
						return seqOf(0, 1, 1), nil
					},
				},
				&MockGenerator{
					GenerateFunc: func(ctx context.Context, n uint64) ([]*big.Int, error) {
						return seqOf(0, 1, 1), nil
					},
				},
			},
			expectedLen: 2,
			expectError: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			results := ExecuteGenerations(context.Background(), tt.generators, 3, sequence.Options{}, NullProgressReporter{}, io.Discard)
			if len(results) != tt.expectedLen {
				t.Fatalf("expected %d results, got %d", tt.expectedLen, len(results))
			}
			if tt.expectError {
				if results[0].Err == nil {
					t.Errorf("expected error, got nil")
				}
			} else {
				for i, res := range results {
					if res.Err != nil {
						t.Errorf("result %d: unexpected error: %v", i, res.Err)
					}
				}
			}
		})
	}
}

// TestAnalyzeComparisonResults verifies the logic for comparing results from
// multiple generators. It checks for consistent results, handling of failures,
// and detection of mismatches.
func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		results        []GenerationResult
		expectedStatus int
	}{
		{
			name: "All success",
			results: []GenerationResult{
				{Name: "A", Sequence: seqOf(0, 1, 1, 2, 3), Duration: time.Millisecond, Err: nil},
				{Name: "B", Sequence: seqOf(0, 1, 1, 2, 3), Duration: 2 * time.Millisecond, Err: nil},
			},
			expectedStatus: apperrors.ExitSuccess,
		},
		{
			name: "Mismatch",
			results: []GenerationResult{
				{Name: "A", Sequence: seqOf(0, 1, 1, 2, 3), Duration: time.Millisecond, Err: nil},
				{Name: "B", Sequence: seqOf(0, 1, 2, 3, 5), Duration: time.Millisecond, Err: nil},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
		},
		{
			name: "Length mismatch",
			results: []GenerationResult{
				{Name: "A", Sequence: seqOf(0, 1, 1), Duration: time.Millisecond, Err: nil},
				{Name: "B", Sequence: seqOf(0, 1, 1, 2), Duration: time.Millisecond, Err: nil},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
		},
		{
			name: "All failure",
			results: []GenerationResult{
				{Name: "A", Sequence: nil, Duration: time.Millisecond, Err: errors.New("fail")},
				{Name: "B", Sequence: nil, Duration: time.Millisecond, Err: errors.New("fail")},
			},
			expectedStatus: apperrors.ExitErrorGeneric,
		},
		{
			name: "Mixed success/failure",
			results: []GenerationResult{
				{Name: "A", Sequence: seqOf(0, 1, 1, 2, 3), Duration: time.Millisecond, Err: nil},
				{Name: "B", Sequence: nil, Duration: time.Millisecond, Err: errors.New("fail")},
			},
			expectedStatus: apperrors.ExitSuccess,
		},
		{
			name: "Single success",
			results: []GenerationResult{
				{Name: "A", Sequence: seqOf(0, 1, 1, 2, 3), Duration: time.Millisecond, Err: nil},
			},
			expectedStatus: apperrors.ExitSuccess,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status := AnalyzeComparisonResults(tt.results, PresentationOptions{}, MockResultPresenter{}, MockResultPresenter{}, io.Discard)
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
			}
		})
	}
}

// TestExecuteGenerations_RealGenerators cross-checks the orchestrator with the
// actual registered generators against the analysis path.
func TestExecuteGenerations_RealGenerators(t *testing.T) {
	t.Parallel()
	factory := sequence.NewDefaultFactory()
	generators := GetGeneratorsToRun("all", factory)
	if len(generators) < 2 {
		t.Fatalf("expected at least 2 generators, got %d", len(generators))
	}

	results := ExecuteGenerations(context.Background(), generators, 10, sequence.Options{}, NullProgressReporter{}, io.Discard)
	status := AnalyzeComparisonResults(results, PresentationOptions{N: 10}, MockResultPresenter{}, MockResultPresenter{}, io.Discard)
	if status != apperrors.ExitSuccess {
		t.Errorf("expected success status, got %d", status)
	}
}
