// Package jsd computes the per-sample Jensen-Shannon divergence between
// two batches of categorical distributions.
//
// 🚀 What is the Jensen-Shannon divergence?
//
//	For distributions P and Q with mixture M = (P+Q)/2:
//
//	    JS(P‖Q) = ½·KL(P‖M) + ½·KL(Q‖M)
//
//	Unlike the raw KL divergence it is symmetric (JS(P‖Q) = JS(Q‖P)) and
//	bounded: 0 ≤ JS ≤ ln 2 (natural log base). It is widely used to compare
//	model output distributions, detect drift between datasets, and score
//	generative models.
//
// ✨ Key properties of this implementation:
//   - Batched: inputs are (N,d) slices, one d-dimensional row per sample
//   - Two input modes: raw nonnegative weights (rows are normalized for
//     you) or log-probabilities (taken as-is)
//   - Stable mixture via log-sum-exp; no catastrophic cancellation
//   - 0·log 0 = 0 convention, so sparse rows are handled exactly
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/jsdiv/jsd"
//
//	p := [][]float64{{0.1, 0.9}, {0.2, 0.8}}
//	q := [][]float64{{0.3, 0.7}, {0.4, 0.6}}
//	values, err := jsd.Divergence(p, q, false)
//	if err != nil {
//	  // handle ErrEmptyBatch / ErrRaggedBatch / ErrShapeMismatch
//	}
//	// values[i] is the divergence of row i, in [0, jsd.MaxDivergence]
//
// Complexity: Time O(N·d), Space O(d) scratch plus the O(N) result.
//
// For running accumulation across mini-batches (mean/sum/per-sample
// reduction, merging of workers), see the sibling package metric.
package jsd
