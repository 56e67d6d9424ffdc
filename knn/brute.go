package knn

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlclust/core"
)

// BruteSearcher is the exhaustive-scan Euclidean reference backend. It holds
// the point coordinates by reference; callers must not mutate them while an
// index is open.
type BruteSearcher struct {
	points [][]float64
}

// NewBruteSearcher wraps the given coordinate rows. All rows must share one
// dimensionality.
func NewBruteSearcher(points [][]float64) (*BruteSearcher, error) {
	dims := 0
	if len(points) > 0 {
		dims = len(points[0])
	}
	for i, p := range points {
		if len(p) != dims {
			return nil, core.Errorf(core.InvalidInput,
				"point %d has %d coordinates; want %d", i, len(p), dims)
		}
	}

	return &BruteSearcher{points: points}, nil
}

// Len returns the number of points.
func (s *BruteSearcher) Len() int { return len(s.points) }

// Open builds a brute-force index over the active subset.
func (s *BruteSearcher) Open(active []bool) (Index, error) {
	if active != nil && len(active) != len(s.points) {
		return nil, core.Errorf(core.InvalidInput,
			"active mask covers %d of %d points", len(active), len(s.points))
	}

	return &bruteIndex{searcher: s, active: active}, nil
}

// bruteIndex scans every active point per query.
type bruteIndex struct {
	searcher *BruteSearcher
	active   []bool
	closed   bool
}

// candidate pairs a point with its squared distance to the current query.
type candidate struct {
	point core.PointIndex
	dist2 float64
}

// Search implements Index by exhaustive scan. Ties in distance break by
// ascending point index so results are reproducible across runs.
func (ix *bruteIndex) Search(queries []core.PointIndex, k int, radius float64) ([]core.PointIndex, []core.PointIndex, error) {
	if ix.closed {
		return nil, nil, core.NewError(core.InvalidInput, "search on closed index")
	}
	if k < 1 {
		return nil, nil, core.Errorf(core.InvalidInput, "neighbor count %d must be positive", k)
	}
	points := ix.searcher.points
	radius2 := math.Inf(1)
	if radius > 0 && !math.IsNaN(radius) {
		radius2 = radius * radius
	}

	ok := make([]core.PointIndex, 0, len(queries))
	neighbors := make([]core.PointIndex, 0, len(queries)*k)
	candidates := make([]candidate, 0, len(points))

	for _, q := range queries {
		if int64(q) >= int64(len(points)) {
			return nil, nil, core.Errorf(core.DistSearchError, "query point %d outside data set", q)
		}
		candidates = candidates[:0]
		from := points[q]
		for p := range points {
			if ix.active != nil && !ix.active[p] {
				continue
			}
			d2 := sqDist(from, points[p])
			if d2 <= radius2 {
				candidates = append(candidates, candidate{point: core.PointIndex(p), dist2: d2})
			}
		}
		if len(candidates) < k {
			continue
		}
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].dist2 != candidates[j].dist2 {
				return candidates[i].dist2 < candidates[j].dist2
			}

			return candidates[i].point < candidates[j].point
		})
		ok = append(ok, q)
		for _, c := range candidates[:k] {
			neighbors = append(neighbors, c.point)
		}
	}

	return ok, neighbors, nil
}

// Close marks the index unusable.
func (ix *bruteIndex) Close() error {
	ix.closed = true

	return nil
}

// sqDist returns the squared Euclidean distance between two rows.
func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}
