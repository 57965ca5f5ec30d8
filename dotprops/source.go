// Package dotprops builds dotprops representations: for every sample point,
// the dominant direction of its k-nearest-neighbour neighbourhood and an
// anisotropy confidence derived from the neighbourhood's inertia matrix.
package dotprops

import (
	"github.com/cockroachdb/errors"

	"github.com/arborlab/morpho"
	"github.com/arborlab/morpho/neuron"
)

// Source is the closed set of inputs Build accepts: a raw coordinate matrix,
// a columnar table, a skeleton or a mesh. Supporting a new input kind means
// adding a variant here; Build never falls back to runtime type inspection.
type Source interface {
	isSource()
}

// Table is a columnar point table. Columns named exactly "x", "y" and "z"
// must be present; other columns are ignored.
type Table struct {
	Columns map[string][]float64
}

type matrixSource struct{ m [][]float64 }
type tableSource struct{ t Table }
type skeletonSource struct{ n *neuron.Skeleton }
type meshSource struct{ n *neuron.Mesh }

func (matrixSource) isSource()   {}
func (tableSource) isSource()    {}
func (skeletonSource) isSource() {}
func (meshSource) isSource()     {}

// FromMatrix wraps a raw N x 3 coordinate matrix.
func FromMatrix(m [][]float64) Source { return matrixSource{m: m} }

// FromTable wraps a columnar table with x/y/z columns.
func FromTable(t Table) Source { return tableSource{t: t} }

// FromSkeleton wraps a tree-structured neuron.
func FromSkeleton(n *neuron.Skeleton) Source { return skeletonSource{n: n} }

// FromMesh wraps a surface neuron.
func FromMesh(n *neuron.Mesh) Source { return meshSource{n: n} }

// tablePoints validates and extracts the x/y/z columns of a table.
func tablePoints(t Table) ([][3]float64, error) {
	var cols [3][]float64
	for i, name := range [3]string{"x", "y", "z"} {
		c, ok := t.Columns[name]
		if !ok {
			return nil, errors.Wrapf(morpho.ErrValidation, "table must contain %q, %q and %q columns", "x", "y", "z")
		}
		cols[i] = c
	}
	if len(cols[1]) != len(cols[0]) || len(cols[2]) != len(cols[0]) {
		return nil, errors.Wrapf(morpho.ErrValidation,
			"column lengths differ: x=%d y=%d z=%d", len(cols[0]), len(cols[1]), len(cols[2]))
	}
	pts := make([][3]float64, len(cols[0]))
	for i := range pts {
		pts[i] = [3]float64{cols[0][i], cols[1][i], cols[2][i]}
	}
	return pts, nil
}

// matrixPoints validates the shape of a raw matrix: every row must have
// exactly three columns.
func matrixPoints(m [][]float64) ([][3]float64, error) {
	pts := make([][3]float64, len(m))
	for i, row := range m {
		if len(row) != 3 {
			return nil, errors.Wrapf(morpho.ErrValidation,
				"expected input of shape (N, 3), row %d has %d columns", i, len(row))
		}
		pts[i] = [3]float64{row[0], row[1], row[2]}
	}
	return pts, nil
}
