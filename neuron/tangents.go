package neuron

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/arborlab/morpho"
)

// EdgeTangents derives one (point, tangent, length) triple per child->parent
// edge of a skeleton. The point is the edge midpoint, the tangent the unit
// direction from child to parent, the length the edge length. Roots
// contribute no edge. Zero-length edges keep a zero tangent.
func EdgeTangents(s *Skeleton) (points, vect [][3]float64, length []float64, err error) {
	byID := make(map[int64]Node, len(s.Nodes))
	for _, n := range s.Nodes {
		byID[n.ID] = n
	}

	points = make([][3]float64, 0, len(s.Nodes))
	vect = make([][3]float64, 0, len(s.Nodes))
	length = make([]float64, 0, len(s.Nodes))

	for _, child := range s.Nodes {
		if child.Parent < 0 {
			continue
		}
		parent, ok := byID[child.Parent]
		if !ok {
			return nil, nil, nil, errors.Wrapf(morpho.ErrValidation,
				"node %d references missing parent %d", child.ID, child.Parent)
		}

		dx := parent.X - child.X
		dy := parent.Y - child.Y
		dz := parent.Z - child.Z
		l := math.Sqrt(dx*dx + dy*dy + dz*dz)

		v := [3]float64{}
		if l > 0 {
			v = [3]float64{dx / l, dy / l, dz / l}
		}

		points = append(points, [3]float64{
			(child.X + parent.X) / 2,
			(child.Y + parent.Y) / 2,
			(child.Z + parent.Z) / 2,
		})
		vect = append(vect, v)
		length = append(length, l)
	}
	return points, vect, length, nil
}
