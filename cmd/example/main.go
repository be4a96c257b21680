// Command example demonstrates the finite-domain variable layer: domain
// construction, bound pruning, change classification, equality joins,
// bound relations, and the notification sink.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/solverforge/fdvar/pkg/fdvar"
)

func main() {
	fmt.Println("=== Finite-Domain Variables Example ===")

	// 1. Construct domains from ranges and explicit value sets.
	fmt.Println("\n1. Construction:")
	x, err := fdvar.NewIntVar(1, 10)
	if err != nil {
		fmt.Fprintln(os.Stderr, "new variable:", err)
		os.Exit(1)
	}
	y, err := fdvar.NewIntVarFromValues([]int{2, 4, 7, 7, 3})
	if err != nil {
		fmt.Fprintln(os.Stderr, "new variable:", err)
		os.Exit(1)
	}
	fmt.Printf("   x = %v (size %d)\n", x, x.Size())
	fmt.Printf("   y = %v (size %d, duplicates collapsed)\n", y, y.Size())

	// 2. Bound pruning reports which side moved.
	fmt.Println("\n2. Bound pruning:")
	ch, err := x.StrictUpperBound(8)
	if err != nil {
		fmt.Fprintln(os.Stderr, "prune:", err)
		os.Exit(1)
	}
	fmt.Printf("   x < 8  -> x = %v, change = %v\n", x, ch)
	ch, err = x.WeakLowerBound(3)
	if err != nil {
		fmt.Fprintln(os.Stderr, "prune:", err)
		os.Exit(1)
	}
	fmt.Printf("   x >= 3 -> x = %v, change = %v\n", x, ch)

	// 3. Merging classifications across several prunings.
	fmt.Println("\n3. Change merging:")
	merged := fdvar.MinBoundChange.Merge(fdvar.MaxBoundChange)
	fmt.Printf("   MinBoundChange + MaxBoundChange = %v\n", merged)
	fmt.Printf("   NoChange is neutral: %v\n", fdvar.NoChange.Merge(merged))

	// 4. Equality intersects both domains in place.
	fmt.Println("\n4. Equality join:")
	chX, chY, err := x.Equal(y)
	if err != nil {
		fmt.Fprintln(os.Stderr, "equal:", err)
		os.Exit(1)
	}
	fmt.Printf("   x = %v (change %v), y = %v (change %v)\n", x, chX, y, chY)

	// 5. Bound relations between variables.
	fmt.Println("\n5. Relations:")
	a, _ := fdvar.NewIntVar(1, 9)
	b, _ := fdvar.NewIntVar(1, 9)
	chA, chB, err := fdvar.LessThan[int](a, b)
	if err != nil {
		fmt.Fprintln(os.Stderr, "less-than:", err)
		os.Exit(1)
	}
	fmt.Printf("   a < b  -> a = %v (%v), b = %v (%v)\n", a, chA, b, chB)

	// 6. Cloning gives an independent branch for search.
	fmt.Println("\n6. Branching:")
	branch := a.Clone()
	if _, err := branch.SetValue(3); err != nil {
		fmt.Fprintln(os.Stderr, "assign:", err)
		os.Exit(1)
	}
	fmt.Printf("   branch = %v, trunk untouched: a = %v\n", branch, a)

	// 7. Observed variables report every effective change to a sink.
	fmt.Println("\n7. Notification:")
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(zerolog.DebugLevel)
	failures := &fdvar.FirstFailure{}
	sink := fdvar.NewLogNotifier(logger, failures)

	v, _ := fdvar.NewIntVar(1, 5)
	ov := fdvar.Observe(0, v, sink)
	if _, err := ov.RemoveValue(3); err != nil {
		fmt.Fprintln(os.Stderr, "remove:", err)
		os.Exit(1)
	}
	if _, err := ov.SetValue(4); err != nil {
		fmt.Fprintln(os.Stderr, "assign:", err)
		os.Exit(1)
	}

	// Driving the domain empty converts the wipeout into a model-level
	// failure and records the offending variable.
	if _, err := ov.SetValue(1); err != nil {
		fmt.Printf("   wipeout surfaced as: %v\n", err)
	}
	if id, ok := failures.First(); ok {
		fmt.Printf("   first failed variable: %d\n", id)
	}

	fmt.Println("\n=== Done ===")
}
