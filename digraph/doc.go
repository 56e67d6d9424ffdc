// Package digraph implements the compressed directed-graph container the
// clustering engine rides on, plus the algebraic operations that compose
// nearest-neighbor graphs into derived structures.
//
// What:
//
//   - Digraph: a CSR (compressed sparse row) container — Vertices, a
//     TailPtr offset array of length V+1, and a flat Head arc array.
//   - Constructors Init/Empty, capacity management via ResizeArcs/Free, and
//     validity predicates (IsInitialized, IsSound, IsEmptyGraph, IsBalanced).
//   - Algebra: Union, UnionAndDelete, Difference (row-capped), Transpose,
//     and AdjacencyProduct, all deduplicating heads per output row.
//   - FromString/String: a compact '#'/'.' grid codec for fixtures.
//
// Why:
//
//   - k-nearest-neighbor graphs over millions of points need positional,
//     allocation-tight storage; CSR gives O(1) row access and one flat arc
//     array per graph.
//   - Seed finding works on derived graphs (transposes, exclusion products);
//     the algebra builds those without intermediate per-row allocations.
//
// Allocation protocol:
//
//	Every algebra operation sizes its output optimistically (a cheap upper
//	bound on arcs), falls back to an exact dry-run count when the bound
//	exceeds capacity, writes, then resizes down to the exact arc count.
//
// Ordering contract:
//
//	Operations preserve head order within a row (order of first appearance),
//	except Transpose, whose rows list tails in reverse source-scan order.
//	That reversed order is part of the contract: seed-finder output depends
//	on it.
//
// Complexity:
//
//   - Union/UnionAndDelete: O(V + ΣA), Memory O(V + A_out).
//   - Difference: O(V + A_min + A_sub), Transpose: O(V + A),
//     AdjacencyProduct: O(V + Σ out-degrees over product terms).
//
// Errors:
//
//   - core.TooLargeDigraph: vertex or arc capacity outside index range.
//   - core.NoMemory: exact output size exceeds the configured arc limit.
//   - core.InvalidInput: nil/uninitialized operands, mismatched vertex
//     counts, contradictory flags.
package digraph
