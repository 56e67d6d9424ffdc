// Package knn defines the nearest-neighbor search collaborator the batched
// clusterer streams its queries through, plus a brute-force Euclidean
// reference backend.
//
// What:
//
//   - Searcher / Index: the two-stage contract — open an index over the data
//     set (optionally restricted to an active subset), issue batched k-NN
//     queries, close. A query is "ok" only when k neighbors satisfy the
//     radius bound; failing queries are dropped from the ok list rather
//     than reported as errors.
//   - BruteSearcher: an exhaustive-scan implementation over [][]float64
//     points under the Euclidean metric, with distance ties broken by
//     ascending point index for reproducibility.
//
// Why:
//
//   - The clustering engine is metric-agnostic; production deployments plug
//     in spatial trees or approximate indexes behind the same interface.
//     The brute-force backend is the correctness reference and the test
//     backbone.
//
// Contract:
//
//	Search(queries, k, radius) returns ok — the subsequence of queries with
//	at least k neighbors within radius — and a flat ok×k neighbor list in
//	ascending distance. The query point itself is its own nearest neighbor
//	whenever it is active. A radius that is zero, negative, or NaN means
//	unconstrained.
//
// Errors:
//
//   - core.DistSearchError: backend-internal failure, including a query
//     point outside the data set (the only source of this kind in the
//     library).
//   - core.InvalidInput: rows of differing dimension, a mismatched active
//     mask, k below one, closed index.
package knn
