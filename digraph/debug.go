package digraph

import (
	"strings"

	"github.com/katalvlaran/lvlclust/core"
)

// FromString builds a digraph from a '#'/'.' grid, one row per '/' separator:
// row v, column x holds '#' when the arc v→x exists. Every row must be
// exactly as long as the number of rows. Intended for fixtures and examples.
//
//	FromString("##./.#./...") // 0→{0,1}, 1→{1}, 2→{}
func FromString(grid string) (*Digraph, error) {
	rows := strings.Split(grid, "/")
	v := len(rows)
	if grid == "" {
		v = 0
		rows = nil
	}
	arcs := 0
	for _, row := range rows {
		if len(row) != v {
			return nil, core.Errorf(core.InvalidInput, "digraph grid row %q is not %d columns wide", row, v)
		}
		for _, ch := range row {
			switch ch {
			case '#':
				arcs++
			case '.':
			default:
				return nil, core.Errorf(core.InvalidInput, "digraph grid holds %q; want '#' or '.'", ch)
			}
		}
	}
	dg, err := Init(v, arcs)
	if err != nil {
		return nil, err
	}
	n := core.ArcIndex(0)
	for tail, row := range rows {
		for head, ch := range row {
			if ch == '#' {
				dg.Head[n] = core.PointIndex(head)
				n++
			}
		}
		dg.TailPtr[tail+1] = n
	}

	return dg, nil
}

// String renders g in the FromString grid form. Duplicate heads collapse to
// a single '#'; an uninitialized digraph renders as "<nil digraph>".
func (g *Digraph) String() string {
	if !g.IsInitialized() {
		return "<nil digraph>"
	}
	var b strings.Builder
	b.Grow(g.Vertices * (g.Vertices + 1))
	line := make([]byte, g.Vertices)
	for v := 0; v < g.Vertices; v++ {
		for i := range line {
			line[i] = '.'
		}
		for _, x := range g.Row(v) {
			line[x] = '#'
		}
		if v > 0 {
			b.WriteByte('/')
		}
		b.Write(line)
	}

	return b.String()
}
