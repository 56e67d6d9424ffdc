package cluster

import (
	"sort"

	"github.com/katalvlaran/lvlclust/core"
	"github.com/katalvlaran/lvlclust/knn"
)

// ClusterBatches partitions the searcher's data set into clusters of at
// least sizeConstraint points. Unassigned (and, when restricted, primary)
// points stream through the backend in batches; a point whose whole
// k-neighborhood is still unassigned founds a cluster from it, any other
// point is handled per the unassigned method. On failure the clustering
// reports zero clusters and its label contents are unspecified.
func ClusterBatches(c *Clustering, s knn.Searcher, sizeConstraint int, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		if c != nil {
			c.numClusters = 0
		}

		return o.err
	}
	if err := validateBatchRun(c, s, sizeConstraint, &o); err != nil {
		if c != nil {
			c.numClusters = 0
		}

		return err
	}
	c.numClusters = 0

	err := runBatches(c, s, sizeConstraint, &o)
	if err != nil {
		c.numClusters = 0
	}

	return err
}

// validateBatchRun rejects impossible runs before touching the backend.
func validateBatchRun(c *Clustering, s knn.Searcher, sizeConstraint int, o *Options) error {
	if c == nil || s == nil {
		return core.NewError(core.InvalidInput, "nil clustering or searcher")
	}
	if err := c.Check(); err != nil {
		return err
	}
	if s.Len() != c.numPoints {
		return core.Errorf(core.InvalidInput,
			"searcher indexes %d points; clustering holds %d", s.Len(), c.numPoints)
	}
	if sizeConstraint < 2 {
		return core.Errorf(core.InvalidInput, "size constraint %d must be at least 2", sizeConstraint)
	}
	if c.numPoints < sizeConstraint {
		return core.Errorf(core.NoSolution,
			"%d points cannot satisfy size constraint %d", c.numPoints, sizeConstraint)
	}
	if o.Primary != nil && len(o.Primary) != c.numPoints {
		return core.Errorf(core.InvalidInput,
			"primary mask covers %d of %d points", len(o.Primary), c.numPoints)
	}

	return nil
}

// runBatches is the streaming loop behind ClusterBatches.
func runBatches(c *Clustering, s knn.Searcher, k int, o *Options) error {
	for i := range c.labels {
		c.labels[i] = core.NALabel
	}
	assigned := make([]bool, c.numPoints)

	// neighbors, like seeds, come only from the primary subset
	index, err := s.Open(o.Primary)
	if err != nil {
		return err
	}

	radius := 0.0
	if o.UseRadius {
		radius = o.Radius
	}
	batch := make([]core.PointIndex, 0, o.BatchSize)
	var numClusters int64
	anyQueried := false

	for cursor := 0; cursor < c.numPoints; {
		batch = batch[:0]
		for cursor < c.numPoints && len(batch) < o.BatchSize {
			p := cursor
			cursor++
			if assigned[p] || (o.Primary != nil && !o.Primary[p]) {
				continue
			}
			c.labels[p] = core.NALabel
			batch = append(batch, core.PointIndex(p))
		}
		if len(batch) == 0 {
			continue
		}
		anyQueried = true

		ok, neighbors, err := index.Search(batch, k, radius)
		if err != nil {
			index.Close()

			return err
		}
		if o.Stable {
			for i := range ok {
				tuple := neighbors[i*k : (i+1)*k]
				sort.Slice(tuple, func(a, b int) bool { return tuple[a] < tuple[b] })
			}
		}

		for i, q := range ok {
			tuple := neighbors[i*k : (i+1)*k]
			if label, found := firstAssignedLabel(c, assigned, tuple); found {
				// q cannot seed; an assigned neighbor blocks its k-tuple
				if o.Unassigned == AnyNeighbor {
					c.labels[q] = label
				}

				continue
			}
			if numClusters >= int64(core.MaxClusterLabel) {
				index.Close()

				return core.Errorf(core.TooLargeProblem,
					"cluster count exceeds %d", uint32(core.MaxClusterLabel))
			}
			label := core.ClusterLabel(numClusters)
			numClusters++
			for _, x := range tuple {
				c.labels[x] = label
				assigned[x] = true
			}
			// the k-tuple may or may not contain q itself; either way q
			// carries the new label exactly once
			if !assigned[q] {
				c.labels[q] = label
				assigned[q] = true
			}
		}
	}
	if err = index.Close(); err != nil {
		return err
	}

	if numClusters == 0 {
		switch {
		case !anyQueried:
			return core.NewError(core.NoSolution, "no primary points to seed clusters")
		case o.UseRadius:
			return core.Errorf(core.NoSolution,
				"no cluster seedable within radius %v", o.Radius)
		default:
			return core.Errorf(core.NoSolution,
				"size constraint %d cannot be met", k)
		}
	}
	c.numClusters = int(numClusters)

	return nil
}

// firstAssignedLabel returns the label of the first already-assigned point
// in the tuple, scanning in tuple order.
func firstAssignedLabel(c *Clustering, assigned []bool, tuple []core.PointIndex) (core.ClusterLabel, bool) {
	for _, x := range tuple {
		if assigned[x] {
			return c.labels[x], true
		}
	}

	return core.NALabel, false
}
