package seeds

import (
	"github.com/katalvlaran/lvlclust/core"
	"github.com/katalvlaran/lvlclust/digraph"
)

// sortIndex orders vertices by ascending current in-degree using one bucket
// sort, and supports O(1) on-line decrements.
//
// Invariants while indices are built:
//   - sorted[vertexIndex[v]] == v for every v.
//   - count[sorted[p]] is nondecreasing over positions p still in front of
//     the scan cursor.
//   - bucketIndex[c] is the first slot of the bucket of vertices whose
//     current in-degree is c; buckets are contiguous, ascending in c.
type sortIndex struct {
	count       []int
	sorted      []core.PointIndex
	vertexIndex []int
	bucketIndex []int
	stable      bool
}

// buildSortIndex counts in-degrees and bucket-sorts the vertices in
// O(V + A). The back-pointer structures are built only when makeIndices is
// set; without them the index is scan-only.
func buildSortIndex(dg *digraph.Digraph, makeIndices, stable bool) *sortIndex {
	vertices := dg.Vertices
	si := &sortIndex{
		count:  make([]int, vertices),
		sorted: make([]core.PointIndex, vertices),
		stable: stable,
	}
	for _, x := range dg.Head[:dg.TailPtr[vertices]] {
		si.count[x]++
	}
	maxCount := 0
	for _, c := range si.count {
		if c > maxCount {
			maxCount = c
		}
	}

	// bucket starts by prefix-summing the degree histogram
	bucketIndex := make([]int, maxCount+1)
	for _, c := range si.count {
		bucketIndex[c]++
	}
	next := 0
	for c := 0; c <= maxCount; c++ {
		size := bucketIndex[c]
		bucketIndex[c] = next
		next += size
	}

	// place vertices in ascending id order: ties within a bucket start out
	// broken by id
	fill := make([]int, maxCount+1)
	copy(fill, bucketIndex)
	if makeIndices {
		si.vertexIndex = make([]int, vertices)
	}
	for v := 0; v < vertices; v++ {
		pos := fill[si.count[v]]
		fill[si.count[v]]++
		si.sorted[pos] = core.PointIndex(v)
		if makeIndices {
			si.vertexIndex[v] = pos
		}
	}
	if makeIndices {
		si.bucketIndex = bucketIndex
	}

	return si
}

// position returns v's current slot in the sorted order.
func (si *sortIndex) position(v core.PointIndex) int {
	return si.vertexIndex[v]
}

// decrement lowers v's effective in-degree by one and repositions it: v
// swaps with the first vertex of its bucket (or the slot just past the
// cursor, when the bucket head has already been consumed), the bucket start
// advances, and v joins the tail of the next-lower bucket.
func (si *sortIndex) decrement(v core.PointIndex, cur int) {
	c := si.count[v]
	if c == 0 {
		return
	}
	pos := si.vertexIndex[v]
	target := si.bucketIndex[c]
	if target <= cur {
		target = cur + 1
	}
	if target != pos {
		u := si.sorted[target]
		si.sorted[target], si.sorted[pos] = v, u
		si.vertexIndex[v] = target
		si.vertexIndex[u] = pos
	}
	si.bucketIndex[c] = target + 1
	si.count[v] = c - 1
	if si.stable {
		if target != pos {
			// the displaced bucket head landed mid-bucket; re-sort it
			si.restoreBucketOrder(pos, cur)
		}
		si.restoreBucketOrder(si.vertexIndex[v], cur)
	}
}

// restoreBucketOrder re-sorts the vertex at pos into ascending-id position
// within its bucket, touching only slots in front of the cursor. Costs
// O(bucket); paid only in stable mode.
func (si *sortIndex) restoreBucketOrder(pos, cur int) {
	v := si.sorted[pos]
	c := si.count[v]
	for p := pos; p > cur+1; p-- {
		u := si.sorted[p-1]
		if si.count[u] != c || u < v {
			break
		}
		si.swap(p, p-1)
	}
	for p := si.vertexIndex[v]; p+1 < len(si.sorted); p++ {
		u := si.sorted[p+1]
		if si.count[u] != c || u > v {
			break
		}
		si.swap(p, p+1)
	}
}

// swap exchanges two slots, maintaining the back-pointers.
func (si *sortIndex) swap(p, q int) {
	si.sorted[p], si.sorted[q] = si.sorted[q], si.sorted[p]
	si.vertexIndex[si.sorted[p]] = p
	si.vertexIndex[si.sorted[q]] = q
}
