package jsd

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxDivergence is the upper bound of the Jensen-Shannon divergence of two
// probability distributions under the natural logarithm: ln 2. The bound is
// attained by distributions with disjoint support.
const MaxDivergence = math.Ln2

// Divergence computes the per-sample Jensen-Shannon divergence between two
// batches p and q of identical shape (N,d): one d-dimensional categorical
// distribution per row, one divergence value per row.
//
// Input modes:
//   - logProb=false: rows are unnormalized nonnegative weights. Each row is
//     divided by its sum to obtain a valid distribution before computing.
//   - logProb=true: rows are log-probabilities and are taken as-is; the
//     caller guarantees each row exponentiates-and-sums to 1.
//
// Algorithm (per row i, in log space for stability):
//  1. logm[j] = logsumexp(logp[j], logq[j]) − ln 2   — the mixture (P+Q)/2
//  2. KL(P‖M) = Σ_j p[j]·(logp[j] − logm[j]), with 0·log 0 = 0
//  3. out[i]  = ½·KL(P‖M) + ½·KL(Q‖M), clamped at 0 against FP drift
//
// Returns a length-N slice; out[i] ∈ [0, MaxDivergence] for valid inputs.
//
// Errors: ErrEmptyBatch, ErrRaggedBatch, ErrShapeMismatch. No row-sum
// validation is performed beyond the normalization step of the weight mode.
//
// Complexity: Time O(N·d), Space O(d) scratch + O(N) result.
func Divergence(p, q [][]float64, logProb bool) ([]float64, error) {
	n, d, err := validateShape(p, q)
	if err != nil {
		return nil, err
	}

	var (
		out = make([]float64, n) // one divergence value per row
		pp  = make([]float64, d) // row of p as probabilities
		lp  = make([]float64, d) // row of p as log-probabilities
		qq  = make([]float64, d) // row of q as probabilities
		lq  = make([]float64, d) // row of q as log-probabilities
		lse [2]float64           // two-element log-sum-exp scratch
	)
	for i := 0; i < n; i++ {
		logView(pp, lp, p[i], logProb)
		logView(qq, lq, q[i], logProb)

		var acc float64 // ½·KL(P‖M) + ½·KL(Q‖M) for row i
		for j := 0; j < d; j++ {
			lse[0], lse[1] = lp[j], lq[j]
			logm := floats.LogSumExp(lse[:]) - math.Ln2
			// 0·log 0 = 0: cells absent from a distribution contribute nothing.
			if pp[j] > 0 {
				acc += 0.5 * pp[j] * (lp[j] - logm)
			}
			if qq[j] > 0 {
				acc += 0.5 * qq[j] * (lq[j] - logm)
			}
		}
		// The divergence is mathematically non-negative; sub-epsilon negatives
		// are rounding residue of the logm round trip.
		if acc < 0 {
			acc = 0
		}
		out[i] = acc
	}

	return out, nil
}

// logView fills prob and logp with the probability and log-probability view
// of row. Weight mode normalizes by the row sum; log mode exponentiates.
// Zero weights map to (0, −Inf), which the caller skips via 0·log 0 = 0.
func logView(prob, logp, row []float64, logProb bool) {
	if logProb {
		for j, v := range row {
			logp[j] = v
			prob[j] = math.Exp(v)
		}
		return
	}
	sum := floats.Sum(row)
	for j, v := range row {
		prob[j] = v / sum
		logp[j] = math.Log(prob[j])
	}
}

// validateShape enforces the (N,d) contract on both batches and returns the
// common dimensions. Each batch must be rectangular (2-dimensional) on its
// own; the two must then agree exactly.
func validateShape(p, q [][]float64) (n, d int, err error) {
	if len(p) == 0 || len(q) == 0 || len(p[0]) == 0 || len(q[0]) == 0 {
		return 0, 0, ErrEmptyBatch
	}
	n, d = len(p), len(p[0])
	for _, row := range p {
		if len(row) != d {
			return 0, 0, ErrRaggedBatch
		}
	}
	dq := len(q[0])
	for _, row := range q {
		if len(row) != dq {
			return 0, 0, ErrRaggedBatch
		}
	}
	if len(q) != n || dq != d {
		return 0, 0, ErrShapeMismatch
	}

	return n, d, nil
}
