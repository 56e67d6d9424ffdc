package digraph

import (
	"github.com/katalvlaran/lvlclust/core"
)

// Digraph is a compressed-sparse-row directed graph over Vertices vertices.
// Row v's heads occupy Head[TailPtr[v]:TailPtr[v+1]]; len(Head) is the arc
// capacity, which may exceed the arc count TailPtr[Vertices].
//
// A Digraph exclusively owns its TailPtr and Head arrays; algebra operations
// allocate fresh outputs and never alias their operands.
type Digraph struct {
	Vertices int
	TailPtr  []core.ArcIndex
	Head     []core.PointIndex
}

// Init allocates a digraph with capacity for maxArcs arcs and rows left for
// the caller to fill. Returns core.TooLargeDigraph when vertices or maxArcs
// fall outside index range.
func Init(vertices, maxArcs int) (*Digraph, error) {
	if vertices < 0 || int64(vertices) > int64(core.MaxPointIndex) {
		return nil, core.Errorf(core.TooLargeDigraph, "vertex count %d outside index range", vertices)
	}
	if maxArcs < 0 || int64(maxArcs) > int64(core.MaxArcIndex) {
		return nil, core.Errorf(core.TooLargeDigraph, "arc capacity %d outside index range", maxArcs)
	}
	dg := &Digraph{
		Vertices: vertices,
		TailPtr:  make([]core.ArcIndex, vertices+1),
	}
	if maxArcs > 0 {
		dg.Head = make([]core.PointIndex, maxArcs)
	}

	return dg, nil
}

// Empty allocates a digraph with capacity for maxArcs arcs and every row
// well-defined and empty (all offsets zero).
func Empty(vertices, maxArcs int) (*Digraph, error) {
	return Init(vertices, maxArcs)
}

// ResizeArcs changes the arc capacity to newCap, preserving rows and the
// head prefix common to both capacities. A newCap of zero releases the head
// array entirely.
func (g *Digraph) ResizeArcs(newCap int) error {
	if !g.IsInitialized() {
		return core.NewError(core.InvalidInput, "resize of uninitialized digraph")
	}
	if newCap < 0 || int64(newCap) > int64(core.MaxArcIndex) {
		return core.Errorf(core.TooLargeDigraph, "arc capacity %d outside index range", newCap)
	}
	if newCap == len(g.Head) {
		return nil
	}
	if newCap == 0 {
		g.Head = nil

		return nil
	}
	head := make([]core.PointIndex, newCap)
	copy(head, g.Head)
	g.Head = head

	return nil
}

// Free releases both arrays and leaves the null digraph. Safe on nil.
func (g *Digraph) Free() {
	if g == nil {
		return
	}
	*g = Digraph{}
}

// IsInitialized reports whether g is a structurally allocated digraph:
// a TailPtr of length Vertices+1, counts within index range, and a head
// array present exactly when the arc capacity is nonzero.
func (g *Digraph) IsInitialized() bool {
	if g == nil || g.TailPtr == nil {
		return false
	}
	if g.Vertices < 0 || int64(g.Vertices) > int64(core.MaxPointIndex) {
		return false
	}
	if len(g.TailPtr) != g.Vertices+1 {
		return false
	}
	if int64(len(g.Head)) > int64(core.MaxArcIndex) {
		return false
	}
	if (len(g.Head) == 0) != (g.Head == nil) {
		return false
	}

	return true
}

// IsSound reports whether g additionally satisfies the row invariants:
// TailPtr[0] is zero, offsets are nondecreasing, the arc count fits the
// capacity, and every stored head names a vertex.
func (g *Digraph) IsSound() bool {
	if !g.IsInitialized() {
		return false
	}
	if g.TailPtr[0] != 0 {
		return false
	}
	for v := 0; v < g.Vertices; v++ {
		if g.TailPtr[v] > g.TailPtr[v+1] {
			return false
		}
	}
	if int(g.TailPtr[g.Vertices]) > len(g.Head) {
		return false
	}
	for _, x := range g.Head[:g.TailPtr[g.Vertices]] {
		if int64(x) >= int64(g.Vertices) {
			return false
		}
	}

	return true
}

// IsEmptyGraph reports whether g is initialized and holds no arcs.
func (g *Digraph) IsEmptyGraph() bool {
	if !g.IsInitialized() {
		return false
	}
	for _, tp := range g.TailPtr {
		if tp != 0 {
			return false
		}
	}

	return true
}

// IsBalanced reports whether g is sound and every row holds exactly
// arcsPerVertex heads.
func (g *Digraph) IsBalanced(arcsPerVertex int) bool {
	if !g.IsSound() {
		return false
	}
	for v := 0; v <= g.Vertices; v++ {
		if int64(g.TailPtr[v]) != int64(v)*int64(arcsPerVertex) {
			return false
		}
	}

	return true
}

// ArcCount returns the number of arcs stored in g.
func (g *Digraph) ArcCount() int {
	return int(g.TailPtr[g.Vertices])
}

// Row returns the head slice of vertex v. The slice aliases g's storage and
// must not be retained across mutations of g.
func (g *Digraph) Row(v int) []core.PointIndex {
	return g.Head[g.TailPtr[v]:g.TailPtr[v+1]]
}

// OutDegree returns the number of arcs leaving v.
func (g *Digraph) OutDegree(v int) int {
	return int(g.TailPtr[v+1] - g.TailPtr[v])
}

// Equal reports whether g and other hold the same arc set per row,
// insensitive to head order and duplicates.
func Equal(g, other *Digraph) bool {
	if !g.IsInitialized() || !other.IsInitialized() {
		return false
	}
	if g.Vertices != other.Vertices {
		return false
	}
	seenG := make([]int, g.Vertices)
	seenO := make([]int, g.Vertices)
	for i := 0; i < g.Vertices; i++ {
		seenG[i], seenO[i] = -1, -1
	}
	for v := 0; v < g.Vertices; v++ {
		for _, x := range g.Row(v) {
			seenG[x] = v
		}
		for _, x := range other.Row(v) {
			if seenG[x] != v {
				return false
			}
			seenO[x] = v
		}
		for _, x := range g.Row(v) {
			if seenO[x] != v {
				return false
			}
		}
	}

	return true
}

// Identical reports whether g and other match slot for slot: same vertex
// count, same capacity, same offsets, and same head array contents
// including spare capacity.
func Identical(g, other *Digraph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Vertices != other.Vertices || len(g.Head) != len(other.Head) {
		return false
	}
	if (g.TailPtr == nil) != (other.TailPtr == nil) {
		return false
	}
	for i := range g.TailPtr {
		if g.TailPtr[i] != other.TailPtr[i] {
			return false
		}
	}
	for i := range g.Head {
		if g.Head[i] != other.Head[i] {
			return false
		}
	}

	return true
}
