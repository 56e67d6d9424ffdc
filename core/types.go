package core

import "math"

// PointIndex identifies a data point. Valid identifiers lie in
// [0, MaxPointIndex); NAPoint is reserved as the "no point" sentinel.
type PointIndex uint32

// ClusterLabel identifies a cluster. Valid labels lie in
// [0, MaxClusterLabel); NALabel marks an unassigned point.
type ClusterLabel uint32

// ArcIndex addresses a slot in a digraph's head array. Valid offsets lie in
// [0, MaxArcIndex].
type ArcIndex uint32

const (
	// MaxPointIndex is the exclusive upper bound on valid point identifiers.
	MaxPointIndex = math.MaxUint32

	// NAPoint marks "no point"; it never identifies a data point.
	NAPoint PointIndex = MaxPointIndex

	// MaxClusterLabel is the exclusive upper bound on valid cluster labels.
	MaxClusterLabel = math.MaxUint32

	// NALabel marks a point not assigned to any cluster.
	NALabel ClusterLabel = MaxClusterLabel

	// MaxArcIndex is the inclusive upper bound on arc-array offsets, and
	// therefore the largest arc capacity a digraph can hold.
	MaxArcIndex = math.MaxUint32
)
