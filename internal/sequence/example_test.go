package sequence

import (
	"context"
	"fmt"
)

// ExampleIterativeGenerator_Generate demonstrates producing the reference
// prefix of the sequence.
func ExampleIterativeGenerator_Generate() {
	gen := &IterativeGenerator{}

	seq, err := gen.Generate(context.Background(), nil, 0, 10, Options{})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	for i, term := range seq {
		fmt.Printf("F(%d) = %s\n", i, term)
	}
	// Output:
	// F(0) = 0
	// F(1) = 1
	// F(2) = 1
	// F(3) = 2
	// F(4) = 3
	// F(5) = 5
	// F(6) = 8
	// F(7) = 13
	// F(8) = 21
	// F(9) = 34
}

// ExampleNewDefaultFactory demonstrates obtaining pre-registered generators
// by name.
func ExampleNewDefaultFactory() {
	factory := NewDefaultFactory()

	// List available generators.
	fmt.Println(factory.List())

	gen, err := factory.Get("doubling")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	seq, err := gen.Generate(context.Background(), nil, 0, 5, Options{})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(seq)
	// Output:
	// [doubling iterative]
	// [0 1 1 2 3]
}
