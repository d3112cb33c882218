package jsd

import "errors"

var (
	// ErrEmptyBatch indicates a batch with no rows, or rows with no columns.
	ErrEmptyBatch = errors.New("jsd: batch must have at least one row and one column")
	// ErrRaggedBatch indicates rows of differing lengths within one batch.
	ErrRaggedBatch = errors.New("jsd: all rows of a batch must have the same length")
	// ErrShapeMismatch indicates the two batches disagree in rows or columns.
	ErrShapeMismatch = errors.New("jsd: p and q must have identical (N,d) shape")
)
