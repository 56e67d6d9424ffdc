// Package cluster assembles size-constrained clusterings: a label container
// with owned-or-borrowed storage, a batched clusterer that streams points
// through a nearest-neighbor backend, and a pipeline that clusters a
// prebuilt nearest-neighbor digraph through the seed finder.
//
// What:
//
//   - Clustering: N points, K dense cluster labels in [0, K), and a label
//     buffer that is either owned by the container or borrowed from the
//     caller (external buffers are never released by Free).
//   - ClusterBatches: forms clusters of at least sizeConstraint points by
//     scanning unassigned points in batches; a point seeds a new cluster
//     exactly when its whole k-neighborhood is still unassigned.
//   - NNGClustering: finds seeds on a nearest-neighbor digraph and labels
//     each seed's closed neighborhood, optionally attaching leftover points
//     to any adjacent cluster.
//
// Why:
//
//   - Blocking and matching designs need every group to reach a minimum
//     cardinality; classic centroid clusterers cannot promise that.
//
// Semantics worth knowing:
//
//   - Under AnyNeighbor, a non-seed point takes a preliminary label from its
//     first assigned neighbor; a later seed claiming that point overwrites
//     the label. Points stay NALabel only when batched with no assigned
//     neighbor in reach (or never batched at all, e.g. non-primary points
//     under Ignore).
//   - A failing call leaves NumClusters() == 0 and the label contents
//     unspecified; discard or re-run.
//
// Errors:
//
//   - core.InvalidInput: mismatched sizes, bad options, broken containers.
//   - core.NoSolution: fewer than sizeConstraint points, no primary points,
//     or an infeasible radius constraint.
//   - core.TooLargeProblem: more clusters than MaxClusterLabel.
//   - core.DistSearchError: propagated from the backend untouched.
package cluster
