package cluster

import (
	"github.com/katalvlaran/lvlclust/core"
	"github.com/katalvlaran/lvlclust/digraph"
	"github.com/katalvlaran/lvlclust/seeds"
)

// NNGClustering clusters a prebuilt nearest-neighbor digraph: seeds are
// selected under the given method, each seed's closed neighborhood becomes
// a cluster, and, under AnyNeighbor, every leftover point with an already
// clustered neighbor joins that neighbor's cluster. Under Ignore leftovers
// stay NALabel. On failure the clustering reports zero clusters.
func NNGClustering(c *Clustering, nng *digraph.Digraph, method seeds.Method, unassigned UnassignedMethod, seedOpts ...seeds.Option) error {
	if err := nngClustering(c, nng, method, unassigned, seedOpts); err != nil {
		if c != nil {
			c.numClusters = 0
		}

		return err
	}

	return nil
}

func nngClustering(c *Clustering, nng *digraph.Digraph, method seeds.Method, unassigned UnassignedMethod, seedOpts []seeds.Option) error {
	if c == nil {
		return core.NewError(core.InvalidInput, "nil clustering")
	}
	if err := c.Check(); err != nil {
		return err
	}
	if !nng.IsSound() {
		return core.NewError(core.InvalidInput, "clustering needs a sound digraph")
	}
	if nng.Vertices != c.numPoints {
		return core.Errorf(core.InvalidInput,
			"digraph spans %d vertices; clustering holds %d points", nng.Vertices, c.numPoints)
	}
	if unassigned != Ignore && unassigned != AnyNeighbor {
		return core.Errorf(core.InvalidInput, "unknown unassigned method %d", unassigned)
	}

	result, err := seeds.Find(nng, method, seedOpts...)
	if err != nil {
		return err
	}
	if result.Count() == 0 {
		return core.NewError(core.NoSolution, "nearest-neighbor graph yields no seedable vertex")
	}

	for i := range c.labels {
		c.labels[i] = core.NALabel
	}
	// closed neighborhoods of seeds are disjoint: a vertex claimed by one
	// seed disqualifies every later candidate pointing at it
	for i, s := range result.Seeds() {
		label := core.ClusterLabel(i)
		c.labels[s] = label
		for _, x := range nng.Row(int(s)) {
			c.labels[x] = label
		}
	}

	if unassigned == AnyNeighbor {
		for v := 0; v < c.numPoints; v++ {
			if c.labels[v] != core.NALabel {
				continue
			}
			for _, x := range nng.Row(v) {
				if c.labels[x] != core.NALabel {
					c.labels[v] = c.labels[x]

					break
				}
			}
		}
	}
	c.numClusters = result.Count()

	return nil
}
