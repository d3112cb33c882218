package metric

import "errors"

// Sentinel errors for accumulator configuration and merging.
var (
	// ErrBadReduction is returned when Options.Reduction is outside the
	// accepted set {Mean, Sum, None, ""}.
	ErrBadReduction = errors.New("metric: unsupported reduction mode")

	// ErrNilAccumulator is returned when Merge receives a nil accumulator.
	ErrNilAccumulator = errors.New("metric: nil accumulator")

	// ErrConfigMismatch is returned when Merge is asked to combine
	// accumulators constructed with different Options.
	ErrConfigMismatch = errors.New("metric: accumulator options mismatch")
)

// Reduction selects how per-sample divergence values are folded across
// Update calls and what Compute returns.
type Reduction string

const (
	// Mean returns the sample-weighted average over every sample seen.
	Mean Reduction = "mean"

	// Sum returns the plain sum over every sample seen.
	Sum Reduction = "sum"

	// None keeps every per-sample value and returns them unreduced,
	// in Update order. The zero value "" behaves identically.
	None Reduction = "none"
)

// Options configures an Accumulator. The zero value is valid: weight-mode
// inputs with the per-sample (None) reduction.
//
// Fields:
//   - LogProb   — false: rows are nonnegative weights, normalized per row.
//     true: rows are log-probabilities, taken as-is.
//   - Reduction — Mean, Sum, or None/"" (per-sample sequence).
type Options struct {
	LogProb   bool
	Reduction Reduction
}

// DefaultOptions returns the canonical configuration:
// probability-weight inputs (LogProb=false) and the Mean reduction.
func DefaultOptions() Options {
	return Options{
		LogProb:   false,
		Reduction: Mean,
	}
}

// validate rejects reductions outside the enumerated set.
func (o Options) validate() error {
	switch o.Reduction {
	case Mean, Sum, None, "":
		return nil
	default:
		return ErrBadReduction
	}
}

// reduceNone reports whether the per-sample (unreduced) path is active.
func (o Options) reduceNone() bool {
	return o.Reduction == None || o.Reduction == ""
}

// Result holds the outcome of Compute, keyed by the reduction mode:
//   - Mean/Sum: Value carries the scalar, PerSample is nil.
//   - None/"":  PerSample carries every value in Update order (possibly
//     empty, never nil), Value is 0.
type Result struct {
	Value     float64
	PerSample []float64
}

// Scalar reports whether the result carries a reduced scalar in Value.
func (r Result) Scalar() bool {
	return r.PerSample == nil
}
