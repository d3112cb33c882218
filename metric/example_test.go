package metric_test

import (
	"fmt"

	"github.com/katalvlaran/jsdiv/metric"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAccumulator
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Score an entire "dataset" that arrives in two mini-batches of binary
//	distributions, reporting the mean divergence over all five samples.
//
// Use case:
//
//	Epoch-level drift between a model head and a reference distribution.
func ExampleAccumulator() {
	acc, err := metric.New(metric.DefaultOptions()) // Mean reduction
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	batches := [][2][][]float64{
		{{{0.1, 0.9}, {0.2, 0.8}, {0.3, 0.7}}, {{0.3, 0.7}, {0.4, 0.6}, {0.5, 0.5}}},
		{{{0.6, 0.4}, {0.25, 0.75}}, {{0.5, 0.5}, {0.75, 0.25}}},
	}
	for _, b := range batches {
		if err = acc.Update(b[0], b[1]); err != nil {
			fmt.Println("error:", err)

			return
		}
	}

	fmt.Printf("samples=%d mean=%.4f\n", acc.Count(), acc.Compute().Value)
	// Output:
	// samples=5 mean=0.0427
}

// ExampleAccumulator_perSample keeps every value instead of reducing,
// e.g. to feed a histogram or pick out the most divergent samples.
func ExampleAccumulator_perSample() {
	acc, err := metric.New(metric.Options{Reduction: metric.None})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	p := [][]float64{{0.1, 0.9}, {0.2, 0.8}, {0.3, 0.7}}
	q := [][]float64{{0.3, 0.7}, {0.4, 0.6}, {0.5, 0.5}}
	if err = acc.Update(p, q); err != nil {
		fmt.Println("error:", err)

		return
	}

	for i, v := range acc.Compute().PerSample {
		fmt.Printf("sample %d: %.4f\n", i, v)
	}
	// Output:
	// sample 0: 0.0324
	// sample 1: 0.0242
	// sample 2: 0.0210
}

// ExampleAccumulator_merge combines two independently accumulated workers,
// the single-process analog of a distributed reduction.
func ExampleAccumulator_merge() {
	opts := metric.Options{Reduction: metric.Sum}
	workerA, _ := metric.New(opts)
	workerB, _ := metric.New(opts)

	_ = workerA.Update([][]float64{{0.1, 0.9}}, [][]float64{{0.3, 0.7}})
	_ = workerB.Update([][]float64{{0.2, 0.8}}, [][]float64{{0.4, 0.6}})

	if err := workerA.Merge(workerB); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("samples=%d sum=%.4f\n", workerA.Count(), workerA.Compute().Value)
	// Output:
	// samples=2 sum=0.0566
}
