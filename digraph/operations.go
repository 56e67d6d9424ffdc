package digraph

import (
	"github.com/katalvlaran/lvlclust/core"
)

// Option tunes an algebra operation.
type Option func(*opOptions)

// opOptions carries resolved algebra settings.
type opOptions struct {
	arcLimit int64
	err      error
}

// defaultOpOptions allows outputs up to the full index range.
func defaultOpOptions() opOptions {
	return opOptions{arcLimit: int64(core.MaxArcIndex)}
}

// WithArcLimit caps the arc capacity an operation may allocate for its
// output. A bound above the cap forces the exact dry-run count; an exact
// count above the cap fails with core.NoMemory. Zero or negative limits are
// rejected as core.InvalidInput.
func WithArcLimit(limit int) Option {
	return func(o *opOptions) {
		if limit <= 0 {
			o.err = core.Errorf(core.InvalidInput, "arc limit %d must be positive", limit)

			return
		}
		if int64(limit) < o.arcLimit {
			o.arcLimit = int64(limit)
		}
	}
}

// resolveOptions folds opts over the defaults.
func resolveOptions(opts []Option) (opOptions, error) {
	o := defaultOpOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// checkOperands validates a non-empty operand list over a common vertex
// count and returns that count.
func checkOperands(dgs []*Digraph) (int, error) {
	if len(dgs) == 0 {
		return 0, core.NewError(core.InvalidInput, "no operand digraphs")
	}
	for _, dg := range dgs {
		if !dg.IsInitialized() {
			return 0, core.NewError(core.InvalidInput, "uninitialized operand digraph")
		}
		if dg.Vertices != dgs[0].Vertices {
			return 0, core.Errorf(core.InvalidInput,
				"operand vertex counts differ: %d vs %d", dgs[0].Vertices, dg.Vertices)
		}
	}

	return dgs[0].Vertices, nil
}

// allocOutput implements the two-pass allocation protocol: allocate at the
// optimistic bound when it fits the limit, otherwise obtain the exact arc
// count from the dry-run and retry once.
func allocOutput(vertices int, bound, limit int64, dryRun func() int64) (*Digraph, error) {
	if bound <= limit {
		return Init(vertices, int(bound))
	}
	exact := dryRun()
	if exact > int64(core.MaxArcIndex) {
		return nil, core.Errorf(core.TooLargeDigraph, "output needs %d arcs", exact)
	}
	if exact > limit {
		return nil, core.Errorf(core.NoMemory, "output needs %d arcs; arc limit is %d", exact, limit)
	}

	return Init(vertices, int(exact))
}

// resetMarkers restores the per-row deduplication scratch to "no row".
func resetMarkers(markers []core.PointIndex) {
	for i := range markers {
		markers[i] = core.NAPoint
	}
}

// emitHeads appends row's heads not yet marked for the current output row,
// marking each. A nil out counts without writing.
func emitHeads(row []core.PointIndex, mark core.PointIndex, markers []core.PointIndex, out *Digraph, n int64) int64 {
	for _, x := range row {
		if markers[x] != mark {
			markers[x] = mark
			if out != nil {
				out.Head[n] = x
			}
			n++
		}
	}

	return n
}

// Union produces the row-wise set union of the operand digraphs: output row
// v holds the union of row v across all operands, in order of first
// appearance.
func Union(dgs []*Digraph, opts ...Option) (*Digraph, error) {
	return unionDigraphs(dgs, nil, opts)
}

// UnionAndDelete is Union restricted to tails flagged in tailsToKeep: rows
// of dropped tails come out empty, while TailPtr still advances so every
// row's range stays well-defined.
func UnionAndDelete(dgs []*Digraph, tailsToKeep []bool, opts ...Option) (*Digraph, error) {
	if tailsToKeep == nil {
		return nil, core.NewError(core.InvalidInput, "nil tails-to-keep mask")
	}

	return unionDigraphs(dgs, tailsToKeep, opts)
}

func unionDigraphs(dgs []*Digraph, keep []bool, opts []Option) (*Digraph, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	vertices, err := checkOperands(dgs)
	if err != nil {
		return nil, err
	}
	if keep != nil && len(keep) != vertices {
		return nil, core.Errorf(core.InvalidInput,
			"tails-to-keep mask covers %d of %d vertices", len(keep), vertices)
	}

	var bound int64
	for _, dg := range dgs {
		bound += int64(dg.ArcCount())
	}
	markers := make([]core.PointIndex, vertices)
	resetMarkers(markers)

	out, err := allocOutput(vertices, bound, o.arcLimit, func() int64 {
		n := unionPass(dgs, keep, markers, nil)
		resetMarkers(markers)

		return n
	})
	if err != nil {
		return nil, err
	}
	n := unionPass(dgs, keep, markers, out)
	if err = out.ResizeArcs(int(n)); err != nil {
		out.Free()

		return nil, err
	}

	return out, nil
}

// unionPass runs one union sweep; out == nil counts, otherwise writes.
func unionPass(dgs []*Digraph, keep []bool, markers []core.PointIndex, out *Digraph) int64 {
	var n int64
	for tail := 0; tail < dgs[0].Vertices; tail++ {
		if keep == nil || keep[tail] {
			mark := core.PointIndex(tail)
			for _, dg := range dgs {
				n = emitHeads(dg.Row(tail), mark, markers, out, n)
			}
		}
		if out != nil {
			out.TailPtr[tail+1] = core.ArcIndex(n)
		}
	}

	return n
}

// Difference produces, per row, the first maxOut heads of the minuend row
// that are absent from the subtrahend row, preserving minuend order.
func Difference(minuend, subtrahend *Digraph, maxOut int, opts ...Option) (*Digraph, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	vertices, err := checkOperands([]*Digraph{minuend, subtrahend})
	if err != nil {
		return nil, err
	}
	if maxOut <= 0 {
		return nil, core.Errorf(core.InvalidInput, "row cap %d must be positive", maxOut)
	}

	markers := make([]core.PointIndex, vertices)
	resetMarkers(markers)
	bound := int64(minuend.ArcCount())

	out, err := allocOutput(vertices, bound, o.arcLimit, func() int64 {
		n := differencePass(minuend, subtrahend, maxOut, markers, nil)
		resetMarkers(markers)

		return n
	})
	if err != nil {
		return nil, err
	}
	n := differencePass(minuend, subtrahend, maxOut, markers, out)
	if err = out.ResizeArcs(int(n)); err != nil {
		out.Free()

		return nil, err
	}

	return out, nil
}

// differencePass marks each subtrahend row, then copies unmarked minuend
// heads up to the row cap. Copied heads are marked too, so duplicates
// within a minuend row collapse.
func differencePass(minuend, subtrahend *Digraph, maxOut int, markers []core.PointIndex, out *Digraph) int64 {
	var n int64
	for tail := 0; tail < minuend.Vertices; tail++ {
		mark := core.PointIndex(tail)
		for _, x := range subtrahend.Row(tail) {
			markers[x] = mark
		}
		kept := 0
		for _, x := range minuend.Row(tail) {
			if markers[x] == mark {
				continue
			}
			markers[x] = mark
			if out != nil {
				out.Head[n] = x
			}
			n++
			kept++
			if kept == maxOut {
				break
			}
		}
		if out != nil {
			out.TailPtr[tail+1] = core.ArcIndex(n)
		}
	}

	return n
}

// Transpose reverses every arc of dg. The arc count is exact, so no dry-run
// is ever needed. Heads within a transposed row appear in reverse order of
// the source scan; downstream orderings depend on this, so it is part of
// the contract.
func Transpose(dg *Digraph, opts ...Option) (*Digraph, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if !dg.IsInitialized() {
		return nil, core.NewError(core.InvalidInput, "uninitialized operand digraph")
	}
	arcs := int64(dg.ArcCount())
	if arcs > o.arcLimit {
		return nil, core.Errorf(core.NoMemory, "output needs %d arcs; arc limit is %d", arcs, o.arcLimit)
	}
	out, err := Init(dg.Vertices, int(arcs))
	if err != nil {
		return nil, err
	}

	// in-degree histogram in the output offsets
	tp := out.TailPtr
	for _, x := range dg.Head[:arcs] {
		tp[x]++
	}
	// prefix-sum to per-row end offsets
	for x := 1; x <= dg.Vertices; x++ {
		tp[x] += tp[x-1]
	}
	// decremented write: offsets land on row starts when the scan completes
	for tail := 0; tail < dg.Vertices; tail++ {
		for _, x := range dg.Row(tail) {
			tp[x]--
			out.Head[tp[x]] = core.PointIndex(tail)
		}
	}

	return out, nil
}

// AdjacencyProduct composes a and b row-wise: output row v is the
// deduplicated concatenation, in a-scan order, of b's rows over the heads of
// a's row v. forceLoops prepends b's row v as if a held the self-loop v→v
// (real self-loops in a are then redundant and skipped); ignoreLoops skips
// self-loops in a instead. The flags are mutually exclusive.
func AdjacencyProduct(a, b *Digraph, forceLoops, ignoreLoops bool, opts ...Option) (*Digraph, error) {
	if forceLoops && ignoreLoops {
		return nil, core.NewError(core.InvalidInput, "forceLoops and ignoreLoops are mutually exclusive")
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	vertices, err := checkOperands([]*Digraph{a, b})
	if err != nil {
		return nil, err
	}

	var bound int64
	for tail := 0; tail < vertices; tail++ {
		if forceLoops {
			bound += int64(b.OutDegree(tail))
		}
		for _, x := range a.Row(tail) {
			if int(x) == tail && (forceLoops || ignoreLoops) {
				continue
			}
			bound += int64(b.OutDegree(int(x)))
		}
	}
	markers := make([]core.PointIndex, vertices)
	resetMarkers(markers)

	out, err := allocOutput(vertices, bound, o.arcLimit, func() int64 {
		n := productPass(a, b, forceLoops, ignoreLoops, markers, nil)
		resetMarkers(markers)

		return n
	})
	if err != nil {
		return nil, err
	}
	n := productPass(a, b, forceLoops, ignoreLoops, markers, out)
	if err = out.ResizeArcs(int(n)); err != nil {
		out.Free()

		return nil, err
	}

	return out, nil
}

// productPass runs one adjacency-product sweep; out == nil counts.
func productPass(a, b *Digraph, forceLoops, ignoreLoops bool, markers []core.PointIndex, out *Digraph) int64 {
	var n int64
	for tail := 0; tail < a.Vertices; tail++ {
		mark := core.PointIndex(tail)
		if forceLoops {
			n = emitHeads(b.Row(tail), mark, markers, out, n)
		}
		for _, x := range a.Row(tail) {
			if int(x) == tail && (forceLoops || ignoreLoops) {
				continue
			}
			n = emitHeads(b.Row(int(x)), mark, markers, out, n)
		}
		if out != nil {
			out.TailPtr[tail+1] = core.ArcIndex(n)
		}
	}

	return n
}
