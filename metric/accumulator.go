package metric

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/jsdiv/jsd"
)

// Accumulator folds per-sample Jensen-Shannon divergence values into running
// state across Update calls. Exactly one representation is live, keyed by the
// reduction mode: the (sum, total) scalars for Mean/Sum, the batches list for
// None. State only grows under Update; Compute never mutates.
//
// Not safe for concurrent use; see the package documentation.
type Accumulator struct {
	opts Options

	sum     float64     // running Σ of per-sample values (Mean/Sum only)
	total   int         // samples folded so far
	batches [][]float64 // per-Update value slices, in call order (None only)
}

// New constructs an empty Accumulator: scalar 0 / count 0 for Mean/Sum,
// an empty sequence for None.
//
// Errors: ErrBadReduction when opts.Reduction is outside {Mean, Sum, None, ""}.
func New(opts Options) (*Accumulator, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Accumulator{opts: opts}, nil
}

// Options returns the configuration the accumulator was constructed with.
func (a *Accumulator) Options() Options {
	return a.opts
}

// Count returns the number of samples folded so far.
func (a *Accumulator) Count() int {
	return a.total
}

// Update scores the (N,d) batch pair with jsd.Divergence and folds the
// result: None appends the per-sample slice, Mean/Sum add the batch sum to
// the running scalar. On error the accumulator state is untouched.
//
// Errors: jsd.ErrEmptyBatch, jsd.ErrRaggedBatch, jsd.ErrShapeMismatch.
//
// Complexity: Time O(N·d), Space O(N) in None mode, O(1) otherwise.
func (a *Accumulator) Update(p, q [][]float64) error {
	values, err := jsd.Divergence(p, q, a.opts.LogProb)
	if err != nil {
		return err
	}

	if a.opts.reduceNone() {
		a.batches = append(a.batches, values)
	} else {
		a.sum += floats.Sum(values)
	}
	a.total += len(values)

	return nil
}

// Compute reduces the current state without mutating it, so it may be called
// repeatedly and mid-stream; each call reflects every Update so far.
//
//   - Mean: Result.Value = Σ values / samples. NaN before the first Update
//     (0/0), matching the undefined mean of an empty population.
//   - Sum:  Result.Value = Σ values.
//   - None: Result.PerSample = all values concatenated in Update order,
//     freshly allocated (never aliases internal state).
func (a *Accumulator) Compute() Result {
	if a.opts.reduceNone() {
		flat := make([]float64, 0, a.total)
		for _, batch := range a.batches {
			flat = append(flat, batch...)
		}

		return Result{PerSample: flat}
	}

	if a.opts.Reduction == Sum {
		return Result{Value: a.sum}
	}

	return Result{Value: a.sum / float64(a.total)}
}

// Reset returns the accumulator to its freshly constructed (empty) state,
// keeping its Options. Use it for compute-then-clear cycles, e.g. once per
// epoch, or to bound None-mode memory growth.
func (a *Accumulator) Reset() {
	a.sum = 0
	a.total = 0
	a.batches = nil
}

// Merge folds the state of another accumulator into a, the combinator for
// workers that accumulated independently over disjoint shards: scalars and
// counts are summed for Mean/Sum, sequences are concatenated for None (so
// ordering across workers follows merge order). The other accumulator is
// not modified.
//
// Errors: ErrNilAccumulator; ErrConfigMismatch when Options differ.
func (a *Accumulator) Merge(other *Accumulator) error {
	if other == nil {
		return ErrNilAccumulator
	}
	if a.opts != other.opts {
		return ErrConfigMismatch
	}

	if a.opts.reduceNone() {
		a.batches = append(a.batches, other.batches...)
	} else {
		a.sum += other.sum
	}
	a.total += other.total

	return nil
}
