package knn

import (
	"github.com/katalvlaran/lvlclust/core"
)

// Searcher builds nearest-neighbor indexes over an opaque data set. The
// clusterer owns one Index per clustering call: opened, queried in batches,
// and closed before return.
type Searcher interface {
	// Open builds an index. A nil active mask makes every point searchable;
	// otherwise only points with active[i] true may appear as neighbors.
	Open(active []bool) (Index, error)

	// Len returns the number of points in the data set.
	Len() int
}

// Index answers batched k-nearest-neighbor queries.
type Index interface {
	// Search resolves the k nearest neighbors of each query point. ok is
	// the subsequence of queries that found k neighbors within radius;
	// neighbors holds, for each ok query in order, its k neighbors by
	// ascending distance. A radius ≤ 0 or NaN is unconstrained.
	Search(queries []core.PointIndex, k int, radius float64) (ok []core.PointIndex, neighbors []core.PointIndex, err error)

	// Close releases the index. The index is unusable afterwards.
	Close() error
}
