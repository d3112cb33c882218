package metric

// JensenShannon scores a single (N,d) batch pair and reduces it per opts in
// one call — the functional form of the Accumulator, for when there is no
// stream to fold. Equivalent to New + Update + Compute on a throwaway
// accumulator.
//
// Errors: ErrBadReduction from opts, or the jsd shape sentinels.
//
// Complexity: Time O(N·d), Space O(N).
func JensenShannon(p, q [][]float64, opts Options) (Result, error) {
	acc, err := New(opts)
	if err != nil {
		return Result{}, err
	}
	if err = acc.Update(p, q); err != nil {
		return Result{}, err
	}

	return acc.Compute(), nil
}
