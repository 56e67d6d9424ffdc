// Package lvlclust is a batch library for size-constrained clustering:
// partitioning N data points so that every cluster holds at least k points,
// optionally under a maximum seed-to-member radius, optionally restricting
// seeding to designated primary points.
//
// 🚀 What is lvlclust?
//
//	A deterministic, in-memory clustering engine built on a compressed
//	directed-graph algebra:
//
//	  • Digraph algebra: CSR digraphs with union, row-capped difference,
//	    transpose, and adjacency products
//	  • Seed finding: maximal independent seed sets of a nearest-neighbor
//	    graph under six greedy orderings
//	  • Batched clustering: streams points through a pluggable k-NN backend
//	    and forms clusters on the fly
//
// ✨ Why choose lvlclust?
//
//   - Guaranteed sizes      — every cluster reaches the caller's minimum k
//   - Reproducible          — deterministic output, with stable tie-breaking
//     on request
//   - Pluggable metrics     — any backend speaking the knn interface;
//     a brute-force Euclidean reference ships in-repo
//   - Pure Go               — no cgo, no hidden dependencies
//
// Everything is organized under five subpackages:
//
//	core/    — index types, sentinels, and the error carrier
//	digraph/ — CSR container and the digraph algebra
//	seeds/   — seed finder with bucket-sorted in-degree orderings
//	knn/     — nearest-neighbor backend interface + brute-force reference
//	cluster/ — clustering container, batched clusterer, NNG pipeline
//
// Quick ASCII example:
//
//	    0↔1   2↔3   4↔5
//
//	three mutual nearest-neighbor pairs; ClusterBatches with k=2 yields
//	three clusters {0,1}, {2,3}, {4,5}.
//
// Runnable walkthroughs live in the example_test.go files of cluster/ and
// digraph/.
//
//	go get github.com/katalvlaran/lvlclust
package lvlclust
