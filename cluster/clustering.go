package cluster

import (
	"github.com/katalvlaran/lvlclust/core"
)

// Clustering holds a partition of numPoints data points into numClusters
// densely numbered clusters. The label buffer is owned unless the caller
// supplied it (or reclaimed it via MakeLabelsExternal); external buffers
// are never released here.
type Clustering struct {
	numPoints      int
	numClusters    int
	labels         []core.ClusterLabel
	externalLabels bool
}

// NewEmpty builds an unassigned clustering over numPoints points. A nil
// labels slice lets the container allocate and own its buffer; a non-nil
// slice of exactly numPoints entries is borrowed and stays caller-owned.
// Every label starts as NALabel.
func NewEmpty(numPoints int, labels []core.ClusterLabel) (*Clustering, error) {
	if numPoints < 0 || int64(numPoints) > int64(core.MaxPointIndex) {
		return nil, core.Errorf(core.TooLargeProblem, "point count %d outside index range", numPoints)
	}
	external := labels != nil
	if external && len(labels) != numPoints {
		return nil, core.Errorf(core.InvalidInput,
			"label buffer holds %d of %d points", len(labels), numPoints)
	}
	if !external {
		labels = make([]core.ClusterLabel, numPoints)
	}
	for i := range labels {
		labels[i] = core.NALabel
	}

	return &Clustering{
		numPoints:      numPoints,
		labels:         labels,
		externalLabels: external,
	}, nil
}

// NewFromLabels wraps an existing assignment of numPoints points into
// numClusters clusters. With deepCopy the labels are copied into an owned
// buffer; otherwise the slice is borrowed and stays caller-owned.
func NewFromLabels(numPoints, numClusters int, labels []core.ClusterLabel, deepCopy bool) (*Clustering, error) {
	if numPoints < 0 || int64(numPoints) > int64(core.MaxPointIndex) {
		return nil, core.Errorf(core.TooLargeProblem, "point count %d outside index range", numPoints)
	}
	if numClusters < 0 || int64(numClusters) > int64(core.MaxClusterLabel) {
		return nil, core.Errorf(core.TooLargeProblem, "cluster count %d outside label range", numClusters)
	}
	if labels == nil || len(labels) != numPoints {
		return nil, core.Errorf(core.InvalidInput,
			"label buffer holds %d of %d points", len(labels), numPoints)
	}
	c := &Clustering{numPoints: numPoints, numClusters: numClusters}
	if deepCopy {
		c.labels = make([]core.ClusterLabel, numPoints)
		copy(c.labels, labels)
	} else {
		c.labels = labels
		c.externalLabels = true
	}
	if err := c.Check(); err != nil {
		return nil, err
	}

	return c, nil
}

// Free releases owned storage and resets the container. Borrowed label
// buffers are left untouched for their owners. Safe on nil.
func (c *Clustering) Free() {
	if c == nil {
		return
	}
	*c = Clustering{}
}

// Check validates the container: a label buffer covering every point, and
// every label either NALabel or inside [0, numClusters).
func (c *Clustering) Check() error {
	if c == nil || c.numPoints < 0 {
		return core.NewError(core.InvalidInput, "nil or negative-size clustering")
	}
	if len(c.labels) != c.numPoints {
		return core.Errorf(core.InvalidInput,
			"label buffer holds %d of %d points", len(c.labels), c.numPoints)
	}
	for i, lbl := range c.labels {
		if lbl != core.NALabel && int64(lbl) >= int64(c.numClusters) {
			return core.Errorf(core.InvalidInput,
				"point %d labeled %d; clustering holds %d clusters", i, lbl, c.numClusters)
		}
	}

	return nil
}

// NumPoints returns the number of data points.
func (c *Clustering) NumPoints() int { return c.numPoints }

// NumClusters returns the number of clusters; zero after a failed run.
func (c *Clustering) NumClusters() int { return c.numClusters }

// Labels exposes the label buffer: Labels()[p] is p's cluster, or NALabel.
// The slice aliases the container's storage.
func (c *Clustering) Labels() []core.ClusterLabel { return c.labels }

// MakeLabelsExternal hands ownership of the label buffer to the caller:
// Free will no longer consider it owned. Returns the buffer.
func (c *Clustering) MakeLabelsExternal() []core.ClusterLabel {
	c.externalLabels = true

	return c.labels
}
