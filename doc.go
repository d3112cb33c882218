// Package jsdiv measures how far apart two batches of categorical
// probability distributions are, using the Jensen-Shannon divergence —
// a symmetric, bounded cousin of the KL divergence.
//
// 🚀 What is jsdiv?
//
//	A small, deterministic library that brings together:
//		• A pure per-sample divergence kernel over (N,d) batches
//		• Probability and log-probability input modes
//		• A running accumulator with mean / sum / per-sample reduction
//		• Merge support for combining independently accumulated workers
//
// ✨ Why choose jsdiv?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Numerically careful – log-sum-exp mixture, 0·log 0 = 0 convention
//   - Pure Go – no cgo, no hidden machinery
//   - Honest errors – sentinel errors, checked via errors.Is, no panics
//
// Under the hood, everything is organized under two subpackages:
//
//	jsd/    — the stateless divergence kernel and its shape validation
//	metric/ — the stateful accumulator: Update, Compute, Reset, Merge
//
// Quick sketch:
//
//	acc, _ := metric.New(metric.DefaultOptions())
//	// for each mini-batch (p, q):
//	_ = acc.Update(p, q)
//	res := acc.Compute() // scalar mean over every sample seen
//
// Dive into each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/jsdiv
package jsdiv
