package neuron

import (
	"github.com/cockroachdb/errors"

	"github.com/arborlab/morpho"
	"github.com/arborlab/morpho/units"
)

// Dotprops is a point cloud where every point carries the dominant direction
// of its local neighbourhood (Vect, unit norm) and a confidence for that
// direction (Alpha, in [0, 1]). Dotprops are constructed once and not
// modified afterwards.
//
// K records the neighbour count used to estimate tangents. K == 0 marks an
// edge-derived cloud: Alpha is nil and Length holds per-edge lengths instead.
type Dotprops struct {
	meta   Meta
	K      int
	Points [][3]float64
	Vect   [][3]float64
	Alpha  []float64
	Length []float64
}

// NewDotprops builds a neighbourhood-derived dotprops cloud. Points, Vect and
// Alpha must have equal lengths.
func NewDotprops(meta Meta, k int, points, vect [][3]float64, alpha []float64) (*Dotprops, error) {
	if len(vect) != len(points) {
		return nil, errors.Wrapf(morpho.ErrValidation,
			"got %d points but %d vectors", len(points), len(vect))
	}
	if alpha != nil && len(alpha) != len(points) {
		return nil, errors.Wrapf(morpho.ErrValidation,
			"got %d points but %d alpha values", len(points), len(alpha))
	}
	if k <= 0 {
		return nil, errors.Wrap(morpho.ErrValidation, "k must be > 0 for neighbourhood dotprops")
	}
	return &Dotprops{meta: meta.withID(), K: k, Points: points, Vect: vect, Alpha: alpha}, nil
}

// NewEdgeDotprops builds a dotprops cloud derived from skeleton edges rather
// than point neighbourhoods: no K, no Alpha, one length per edge.
func NewEdgeDotprops(meta Meta, points, vect [][3]float64, length []float64) (*Dotprops, error) {
	if len(vect) != len(points) || len(length) != len(points) {
		return nil, errors.Wrapf(morpho.ErrValidation,
			"got %d points, %d vectors, %d lengths", len(points), len(vect), len(length))
	}
	return &Dotprops{meta: meta.withID(), Points: points, Vect: vect, Length: length}, nil
}

func (d *Dotprops) ID() string            { return d.meta.ID }
func (d *Dotprops) Name() string          { return d.meta.Name }
func (d *Dotprops) Units() units.Quantity { return d.meta.Units }

// Meta returns the cloud's identity block.
func (d *Dotprops) Meta() Meta { return d.meta }

// Len returns the number of points.
func (d *Dotprops) Len() int { return len(d.Points) }
