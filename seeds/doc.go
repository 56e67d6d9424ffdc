// Package seeds selects cluster seeds from a nearest-neighbor digraph: a
// maximal set of mutually non-adjacent vertices, each with outgoing arcs,
// produced greedily under a configurable vertex ordering.
//
// What:
//
//   - Find: the single entry point, with six strategies. Lexical scans
//     vertices in index order; InwardsOrder / InwardsUpdating /
//     InwardsAltUpdating scan by ascending in-degree, optionally decrementing
//     degrees on-line as seeds consume their neighborhoods; ExclusionOrder /
//     ExclusionUpdating order by in-degree of the derived exclusion graph
//     NNG ∪ (NNG·NNGᵀ), which links every pair of vertices whose joint
//     selection would conflict.
//   - A bucket-sorted in-degree index supporting O(1) on-line decrements,
//     with an optional stable mode that breaks ties within a bucket by
//     ascending vertex id.
//
// Why:
//
//   - Each seed founds a cluster from its closed neighborhood; low in-degree
//     vertices are claimed by few others, so visiting them first wastes
//     fewer points and yields more clusters.
//
// Guarantees, for every strategy:
//
//   - No two returned seeds are adjacent in the NNG.
//   - Every returned seed has outgoing arcs.
//   - Every vertex with outgoing arcs is a seed, lies in a seed's closed
//     neighborhood, or has a head that does; it need not be adjacent to a
//     seed itself.
//   - Output is deterministic given the digraph (bit-identical across runs;
//     WithStableOrder additionally pins tie-breaking under updating modes).
//
// Complexity:
//
//   - Lexical: O(V + A). Inwards variants: O(V + A) build plus O(1) per
//     decrement (O(bucket) under WithStableOrder). Exclusion variants add
//     the product construction, O(V + Σ in-degree·out-degree).
//
// Errors:
//
//   - core.InvalidInput: nil or unsound digraph, bad option values.
//   - core.TooLargeProblem: more seeds than MaxClusterLabel.
package seeds
