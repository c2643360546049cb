// Package refine_test provides runnable examples for figure refinement.
package refine_test

import (
	"fmt"

	"github.com/spiralgen/spiralgen/core"
	"github.com/spiralgen/spiralgen/derive"
	"github.com/spiralgen/spiralgen/refine"
)

// ExampleRefine demonstrates the default pipeline: derive a figure from
// bytes, then shrink it to a compact self-avoiding shape.
// Complexity: dominated by the refinement's collision probes.
func ExampleRefine() {
	// 1) Derive the unrefined figure for one byte.
	fig, err := derive.Derive([]byte{0x6D}, derive.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("before: total_length=%d remaining=%d\n", fig.TotalLength(), fig.LinesRemaining)

	// 2) Refine in place with the default ShrinkFromEnd policy.
	if err = refine.Refine(fig, refine.DefaultOptions()); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Every line of this small figure shrinks all the way to length 1.
	fmt.Printf("after: total_length=%d remaining=%d\n", fig.TotalLength(), fig.LinesRemaining)
	// Output:
	// before: total_length=13 remaining=8
	// after: total_length=9 remaining=0
}

// ExampleRefine_progress demonstrates observing refinement progress through
// the callback, e.g. for a terminal progress indicator.
func ExampleRefine_progress() {
	fig, err := derive.Derive([]byte{0x6D}, derive.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The callback fires once per solved line, on the refining goroutine.
	solved := 0
	opts := refine.DefaultOptions()
	opts.Progress = func(*core.Figure) { solved++ }
	if err = refine.Refine(fig, opts); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("callbacks=%d\n", solved)
	// Output: callbacks=8
}
