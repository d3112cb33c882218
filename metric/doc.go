// Package metric accumulates Jensen-Shannon divergence across mini-batches
// and reduces it to a scalar or a per-sample sequence on demand.
//
// 🚀 What does it add over package jsd?
//
//	jsd.Divergence scores one pair of batches. In practice distributions
//	arrive in mini-batches — an epoch of a dataset, a stream of windows —
//	and the interesting number is the statistic over everything seen.
//	The Accumulator folds each batch into running state and answers at
//	any point, without retaining the inputs.
//
// ✨ Key features:
//   - Reductions: Mean (sample-weighted), Sum, None (per-sample sequence)
//   - Probability or log-probability inputs (Options.LogProb)
//   - Compute is a pure read: call it as often as you like, mid-stream
//   - Reset for compute-then-clear cycles, Merge for combining workers
//   - One-shot JensenShannon for the single-batch case
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/jsdiv/metric"
//
//	acc, err := metric.New(metric.DefaultOptions()) // LogProb=false, Mean
//	if err != nil {
//	  // handle ErrBadReduction
//	}
//	for each mini-batch (p, q):
//	    if err := acc.Update(p, q); err != nil {
//	        // handle jsd shape errors; state is untouched on error
//	    }
//	res := acc.Compute() // res.Value for Mean/Sum, res.PerSample for None
//
// Concurrency: an Accumulator is plain single-threaded state with no
// internal locking. Either confine it to one goroutine, or give each worker
// its own and combine them with Merge (sum-of-scalars for Mean/Sum,
// concatenation for None).
//
// Memory: Mean/Sum hold O(1) state; None grows by N values per Update,
// unboundedly — pair it with a periodic Compute-then-Reset cycle.
package metric
