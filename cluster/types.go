package cluster

import (
	"math"

	"github.com/katalvlaran/lvlclust/core"
)

// UnassignedMethod states what happens to a batched point whose
// neighborhood already touches an existing cluster.
type UnassignedMethod int

const (
	// Ignore leaves such points unassigned (NALabel).
	Ignore UnassignedMethod = iota

	// AnyNeighbor gives such points a preliminary label copied from their
	// first assigned neighbor; a later seed may overwrite it.
	AnyNeighbor
)

// String names the method for diagnostics.
func (m UnassignedMethod) String() string {
	switch m {
	case Ignore:
		return "ignore"
	case AnyNeighbor:
		return "any-neighbor"
	default:
		return "unknown"
	}
}

// defaultBatchSize bounds one backend query when the caller does not tune it.
const defaultBatchSize = 256

// Option tunes a clustering run.
type Option func(*Options)

// Options holds resolved clustering settings.
type Options struct {
	// Unassigned selects the fate of non-seed batched points.
	Unassigned UnassignedMethod

	// UseRadius/Radius bound the distance from a seed to any member.
	UseRadius bool
	Radius    float64

	// Primary restricts seeding to flagged points; nil allows every point.
	Primary []bool

	// BatchSize is the number of points per backend query.
	BatchSize int

	// Stable sorts each returned k-tuple by ascending point index so that
	// self-loop handling and preliminary labels are deterministic even when
	// the backend breaks distance ties arbitrarily.
	Stable bool

	err error
}

// DefaultOptions returns Ignore semantics, no radius, and a moderate batch.
func DefaultOptions() Options {
	return Options{BatchSize: defaultBatchSize}
}

// WithUnassignedMethod selects Ignore or AnyNeighbor.
func WithUnassignedMethod(m UnassignedMethod) Option {
	return func(o *Options) {
		if m != Ignore && m != AnyNeighbor {
			o.err = core.Errorf(core.InvalidInput, "unknown unassigned method %d", m)

			return
		}
		o.Unassigned = m
	}
}

// WithRadius bounds every cluster member to lie within r of its seed; r
// must be positive and finite.
func WithRadius(r float64) Option {
	return func(o *Options) {
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			o.err = core.Errorf(core.InvalidInput, "radius %v must be positive and finite", r)

			return
		}
		o.UseRadius = true
		o.Radius = r
	}
}

// WithPrimaryPoints restricts seeding to points flagged in mask.
func WithPrimaryPoints(mask []bool) Option {
	return func(o *Options) { o.Primary = mask }
}

// WithBatchSize sets the number of points per backend query; n must be
// positive.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = core.Errorf(core.InvalidInput, "batch size %d must be positive", n)

			return
		}
		o.BatchSize = n
	}
}

// WithStableBatches sorts each returned k-tuple by ascending point index.
func WithStableBatches() Option {
	return func(o *Options) { o.Stable = true }
}
