package sequence

import (
	"context"
	"math/big"
	"testing"
	"time"
)

// first10 is the reference prefix of the Fibonacci sequence.
var first10 = []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}

// generate is a test shorthand that runs a generator with background context
// and no progress channel.
func generate(t *testing.T, g Generator, n uint64) []*big.Int {
	t.Helper()
	seq, err := g.Generate(context.Background(), nil, 0, n, Options{})
	if err != nil {
		t.Fatalf("%s: Generate(%d) returned error: %v", g.Name(), n, err)
	}
	return seq
}

func allGenerators() []Generator {
	return []Generator{
		&IterativeGenerator{},
		&DoublingGenerator{},
	}
}

func TestGenerate_First10(t *testing.T) {
	for _, g := range allGenerators() {
		t.Run(g.Name(), func(t *testing.T) {
			seq := generate(t, g, 10)
			if len(seq) != 10 {
				t.Fatalf("len = %d, want 10", len(seq))
			}
			for i, want := range first10 {
				if seq[i].Cmp(big.NewInt(want)) != 0 {
					t.Errorf("seq[%d] = %s, want %d", i, seq[i], want)
				}
			}
		})
	}
}

func TestGenerate_EdgeCases(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want []int64
	}{
		{"zero terms", 0, []int64{}},
		{"one term", 1, []int64{0}},
		{"two terms", 2, []int64{0, 1}},
		{"three terms", 3, []int64{0, 1, 1}},
	}

	for _, g := range allGenerators() {
		for _, tt := range tests {
			t.Run(g.Name()+"/"+tt.name, func(t *testing.T) {
				seq := generate(t, g, tt.n)
				if len(seq) != len(tt.want) {
					t.Fatalf("len = %d, want %d", len(seq), len(tt.want))
				}
				for i, want := range tt.want {
					if seq[i].Cmp(big.NewInt(want)) != 0 {
						t.Errorf("seq[%d] = %s, want %d", i, seq[i], want)
					}
				}
			})
		}
	}
}

// TestGenerate_Uint64Handoff covers the transition from the native uint64
// fast path to big.Int arithmetic. F(93) is the largest term that fits in a
// uint64, so lengths straddling that index exercise both sides of the switch.
func TestGenerate_Uint64Handoff(t *testing.T) {
	f93, _ := new(big.Int).SetString("12200160415121876738", 10)
	f94, _ := new(big.Int).SetString("19740274219868223167", 10)
	f100, _ := new(big.Int).SetString("354224848179261915075", 10)

	for _, g := range allGenerators() {
		t.Run(g.Name(), func(t *testing.T) {
			seq := generate(t, g, 101)
			if got := seq[93]; got.Cmp(f93) != 0 {
				t.Errorf("seq[93] = %s, want %s", got, f93)
			}
			if got := seq[94]; got.Cmp(f94) != 0 {
				t.Errorf("seq[94] = %s, want %s", got, f94)
			}
			if got := seq[100]; got.Cmp(f100) != 0 {
				t.Errorf("seq[100] = %s, want %s", got, f100)
			}
		})
	}
}

// TestGenerate_CrossCheck verifies that both implementations produce
// identical sequences across a range of lengths, including the handoff
// boundary of the iterative fast path.
func TestGenerate_CrossCheck(t *testing.T) {
	iter := &IterativeGenerator{}
	dbl := &DoublingGenerator{}

	for _, n := range []uint64{0, 1, 2, 3, 10, 91, 92, 93, 94, 95, 200, 1000} {
		a := generate(t, iter, n)
		b := generate(t, dbl, n)
		if !Equal(a, b) {
			t.Errorf("n=%d: iterative and doubling sequences differ", n)
		}
	}
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, g := range allGenerators() {
		t.Run(g.Name(), func(t *testing.T) {
			_, err := g.Generate(ctx, nil, 0, 100000, Options{CheckInterval: 1})
			if err == nil {
				t.Fatal("expected context error, got nil")
			}
			if err != context.Canceled {
				t.Errorf("err = %v, want context.Canceled", err)
			}
		})
	}
}

func TestGenerate_DeadlineExceeded(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	g := &IterativeGenerator{}
	_, err := g.Generate(ctx, nil, 0, 100000, Options{CheckInterval: 1})
	if err != context.DeadlineExceeded {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}

func TestEqual(t *testing.T) {
	mk := func(vals ...int64) []*big.Int {
		seq := make([]*big.Int, len(vals))
		for i, v := range vals {
			seq[i] = big.NewInt(v)
		}
		return seq
	}

	tests := []struct {
		name string
		a, b []*big.Int
		want bool
	}{
		{"both empty", mk(), mk(), true},
		{"identical", mk(0, 1, 1, 2), mk(0, 1, 1, 2), true},
		{"length mismatch", mk(0, 1), mk(0, 1, 1), false},
		{"value mismatch", mk(0, 1, 2), mk(0, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFactory(t *testing.T) {
	factory := NewDefaultFactory()

	t.Run("List returns sorted keys", func(t *testing.T) {
		keys := factory.List()
		want := []string{"doubling", "iterative"}
		if len(keys) != len(want) {
			t.Fatalf("List() = %v, want %v", keys, want)
		}
		for i := range want {
			if keys[i] != want[i] {
				t.Errorf("List()[%d] = %q, want %q", i, keys[i], want[i])
			}
		}
	})

	t.Run("Get returns registered generator", func(t *testing.T) {
		gen, err := factory.Get("iterative")
		if err != nil {
			t.Fatalf("Get(iterative) error: %v", err)
		}
		if _, ok := gen.(*IterativeGenerator); !ok {
			t.Errorf("Get(iterative) = %T, want *IterativeGenerator", gen)
		}
	})

	t.Run("Get rejects unknown key", func(t *testing.T) {
		if _, err := factory.Get("binet"); err == nil {
			t.Error("Get(binet) should return an error")
		}
	})

	t.Run("GetAll returns all generators", func(t *testing.T) {
		if got := len(factory.GetAll()); got != 2 {
			t.Errorf("len(GetAll()) = %d, want 2", got)
		}
	})
}
