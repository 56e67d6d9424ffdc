package seeds

import (
	"github.com/katalvlaran/lvlclust/core"
)

// Method selects the vertex ordering a Find run scans under.
type Method int

const (
	// Lexical scans vertices in index order.
	Lexical Method = iota

	// InwardsOrder scans by ascending NNG in-degree, fixed at build time.
	InwardsOrder

	// InwardsUpdating is InwardsOrder with on-line decrements: when a seed
	// consumes its neighborhood, the in-degrees of vertices those neighbors
	// point at are decremented and the ordering repositions them.
	InwardsUpdating

	// InwardsAltUpdating additionally decrements when the scan passes an
	// unmarked non-seed, whose outgoing arcs can no longer matter.
	InwardsAltUpdating

	// ExclusionOrder scans by ascending in-degree of the exclusion graph
	// NNG ∪ (NNG·NNGᵀ), restricted to vertices with outgoing arcs.
	ExclusionOrder

	// ExclusionUpdating is ExclusionOrder with on-line decrements driven by
	// newly excluded vertices.
	ExclusionUpdating
)

// String names the method for diagnostics.
func (m Method) String() string {
	switch m {
	case Lexical:
		return "lexical"
	case InwardsOrder:
		return "inwards-order"
	case InwardsUpdating:
		return "inwards-updating"
	case InwardsAltUpdating:
		return "inwards-alt-updating"
	case ExclusionOrder:
		return "exclusion-order"
	case ExclusionUpdating:
		return "exclusion-updating"
	default:
		return "unknown"
	}
}

// Option tunes a Find run.
type Option func(*Options)

// Options holds resolved seed-finder settings.
type Options struct {
	// Stable breaks ties within an in-degree bucket by ascending vertex id
	// after every on-line decrement, at O(bucket) extra cost. It pins
	// updating-mode output across otherwise order-perturbing decrements.
	Stable bool

	// SeedCapacity is the initial capacity of the seed list.
	SeedCapacity int

	err error
}

// DefaultOptions returns unstable ordering and a modest initial capacity.
func DefaultOptions() Options {
	return Options{SeedCapacity: 128}
}

// WithStableOrder turns on stable tie-breaking within in-degree buckets.
func WithStableOrder() Option {
	return func(o *Options) { o.Stable = true }
}

// WithSeedCapacity sets the initial seed-list capacity; n must be positive.
func WithSeedCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = core.Errorf(core.InvalidInput, "seed capacity %d must be positive", n)

			return
		}
		o.SeedCapacity = n
	}
}

// growthSlack is the additive term of the seed-list growth schedule.
const growthSlack = 1024

// Result is the growable seed list a Find run produces.
type Result struct {
	seeds []core.PointIndex
}

// newResult allocates a seed list with the given initial capacity, capped
// at MaxClusterLabel.
func newResult(capacity int) *Result {
	if int64(capacity) > int64(core.MaxClusterLabel) {
		capacity = int(int64(core.MaxClusterLabel))
	}

	return &Result{seeds: make([]core.PointIndex, 0, capacity)}
}

// add appends a seed, growing by an eighth plus slack, capped at
// MaxClusterLabel seeds.
func (r *Result) add(v core.PointIndex) error {
	if int64(len(r.seeds)) >= int64(core.MaxClusterLabel) {
		return core.Errorf(core.TooLargeProblem, "seed count exceeds %d", uint32(core.MaxClusterLabel))
	}
	if len(r.seeds) == cap(r.seeds) {
		newCap := int64(cap(r.seeds)) + int64(cap(r.seeds))>>3 + growthSlack
		if newCap > int64(core.MaxClusterLabel) {
			newCap = int64(core.MaxClusterLabel)
		}
		grown := make([]core.PointIndex, len(r.seeds), int(newCap))
		copy(grown, r.seeds)
		r.seeds = grown
	}
	r.seeds = append(r.seeds, v)

	return nil
}

// Count returns the number of seeds found.
func (r *Result) Count() int { return len(r.seeds) }

// Seeds returns the seed vertices in selection order. The slice is owned by
// the Result; callers must not modify it.
func (r *Result) Seeds() []core.PointIndex { return r.seeds }
