package seeds

import (
	"github.com/katalvlaran/lvlclust/core"
	"github.com/katalvlaran/lvlclust/digraph"
)

// Find selects seeds from the nearest-neighbor digraph nng under the given
// method. Every returned seed has outgoing arcs, no two seeds are adjacent,
// and every vertex with outgoing arcs ends up a seed, inside a seed's closed
// neighborhood, or pointing into one.
func Find(nng *digraph.Digraph, method Method, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !nng.IsSound() {
		return nil, core.NewError(core.InvalidInput, "seed finding needs a sound digraph")
	}

	switch method {
	case Lexical:
		return findLexical(nng, o)
	case InwardsOrder:
		return findInwards(nng, false, false, o)
	case InwardsUpdating:
		return findInwards(nng, true, false, o)
	case InwardsAltUpdating:
		return findInwards(nng, true, true, o)
	case ExclusionOrder:
		return findExclusion(nng, false, o)
	case ExclusionUpdating:
		return findExclusion(nng, true, o)
	default:
		return nil, core.Errorf(core.NotImplemented, "seed method %d", method)
	}
}

// qualifies reports whether v can seed a cluster: it has outgoing arcs and
// neither it nor any of its heads is marked.
func qualifies(nng *digraph.Digraph, marks []bool, v int) bool {
	if nng.OutDegree(v) == 0 || marks[v] {
		return false
	}
	for _, x := range nng.Row(v) {
		if marks[x] {
			return false
		}
	}

	return true
}

// markNeighborhood claims v and every head of v for the new seed.
func markNeighborhood(nng *digraph.Digraph, marks []bool, v int) {
	marks[v] = true
	for _, x := range nng.Row(v) {
		marks[x] = true
	}
}

// findLexical scans vertices in index order.
func findLexical(nng *digraph.Digraph, o Options) (*Result, error) {
	marks := make([]bool, nng.Vertices)
	res := newResult(o.SeedCapacity)
	for v := 0; v < nng.Vertices; v++ {
		if qualifies(nng, marks, v) {
			if err := res.add(core.PointIndex(v)); err != nil {
				return nil, err
			}
			markNeighborhood(nng, marks, v)
		}
	}

	return res, nil
}

// findInwards scans by ascending NNG in-degree. Under updating, selecting a
// seed decrements the in-degree of every second-order neighbor still in
// play; under alt, passing an unmarked non-seed additionally decrements its
// own targets, since its outgoing arcs can no longer produce a seed.
func findInwards(nng *digraph.Digraph, updating, alt bool, o Options) (*Result, error) {
	si := buildSortIndex(nng, updating, o.Stable)
	marks := make([]bool, nng.Vertices)
	res := newResult(o.SeedCapacity)

	// eligible vertices can still have their effective in-degree lowered:
	// unmarked, with outgoing arcs, and in front of the cursor.
	eligible := func(y core.PointIndex, cur int) bool {
		return !marks[y] && nng.OutDegree(int(y)) > 0 && si.position(y) > cur
	}

	for cur := 0; cur < nng.Vertices; cur++ {
		v := int(si.sorted[cur])
		if qualifies(nng, marks, v) {
			if err := res.add(core.PointIndex(v)); err != nil {
				return nil, err
			}
			markNeighborhood(nng, marks, v)
			if updating {
				for _, x := range nng.Row(v) {
					for _, y := range nng.Row(int(x)) {
						if eligible(y, cur) {
							si.decrement(y, cur)
						}
					}
				}
			}
		} else if alt && !marks[v] {
			// v was disqualified by a marked neighbor; its arcs vanish
			for _, y := range nng.Row(v) {
				if eligible(y, cur) {
					si.decrement(y, cur)
				}
			}
		}
	}

	return res, nil
}

// findExclusion orders vertices by ascending in-degree of the exclusion
// graph NNG ∪ (NNG·NNGᵀ): two vertices are linked whenever one is a
// neighbor of the other or they share a neighbor, so any excluded vertex
// can simply be skipped without inspecting marks.
func findExclusion(nng *digraph.Digraph, updating bool, o Options) (*Result, error) {
	excl, notExcluded, err := exclusionGraph(nng)
	if err != nil {
		return nil, err
	}

	si := buildSortIndex(excl, updating, o.Stable)
	res := newResult(o.SeedCapacity)

	for cur := 0; cur < excl.Vertices; cur++ {
		v := si.sorted[cur]
		if !notExcluded[v] {
			continue
		}
		if err = res.add(v); err != nil {
			return nil, err
		}
		notExcluded[v] = false

		if !updating {
			for _, x := range excl.Row(int(v)) {
				notExcluded[x] = false
			}

			continue
		}

		// Two passes: first record the newly excluded vertices, reusing the
		// seed's own out-row as scratch (it is never read again), then
		// decrement only against vertices that stayed live. This avoids
		// wasted decrements on vertices about to be excluded themselves.
		row := excl.Row(int(v))
		live := 0
		for _, x := range row {
			if notExcluded[x] {
				notExcluded[x] = false
				row[live] = x
				live++
			}
		}
		for _, x := range row[:live] {
			for _, y := range excl.Row(int(x)) {
				if notExcluded[y] {
					si.decrement(y, cur)
				}
			}
		}
	}
	excl.Free()

	return res, nil
}

// exclusionGraph builds NNG ∪ (NNG·NNGᵀ) with forced self-loops in the
// product, pruning the outgoing arcs of vertices that can never seed
// (out-degree zero) so they do not perturb the in-degree ordering. The
// prune is skipped when every vertex qualifies.
func exclusionGraph(nng *digraph.Digraph) (*digraph.Digraph, []bool, error) {
	notExcluded := make([]bool, nng.Vertices)
	allQualify := true
	for v := 0; v < nng.Vertices; v++ {
		notExcluded[v] = nng.OutDegree(v) > 0
		allQualify = allQualify && notExcluded[v]
	}

	nngT, err := digraph.Transpose(nng)
	if err != nil {
		return nil, nil, err
	}
	product, err := digraph.AdjacencyProduct(nng, nngT, true, false)
	nngT.Free()
	if err != nil {
		return nil, nil, err
	}

	operands := []*digraph.Digraph{nng, product}
	var excl *digraph.Digraph
	if allQualify {
		excl, err = digraph.Union(operands)
	} else {
		excl, err = digraph.UnionAndDelete(operands, notExcluded)
	}
	product.Free()
	if err != nil {
		return nil, nil, err
	}

	return excl, notExcluded, nil
}
