package dotprops

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// tangents estimates, for every point, the dominant direction of its k
// nearest neighbours and an anisotropy confidence.
//
// Per point: gather the k nearest neighbours, centre them on their centroid,
// accumulate the 3x3 inertia matrix of the centred offsets, and take its SVD.
// The tangent is the right singular vector of the largest singular value; the
// confidence is (s0-s1)/(s0+s1+s2), which approaches 1 for a locally linear
// cloud and 0 for an isotropic one. A zero-variance neighbourhood (all
// neighbours coincident) has confidence 0 by definition rather than raising a
// division fault.
func tangents(pts [][3]float64, k int) (vect [][3]float64, alpha []float64, err error) {
	neighbors := nearest(pts, k)

	vect = make([][3]float64, len(pts))
	alpha = make([]float64, len(pts))

	var svd mat.SVD
	var v mat.Dense
	inertia := mat.NewDense(3, 3, nil)

	for i, ni := range neighbors {
		var cx, cy, cz float64
		for _, j := range ni {
			cx += pts[j][0]
			cy += pts[j][1]
			cz += pts[j][2]
		}
		nf := float64(len(ni))
		cx /= nf
		cy /= nf
		cz /= nf

		// Inertia = sum over neighbours of outer(d, d) with d the offset
		// from the neighbourhood centroid. Symmetric PSD, so six sums.
		var xx, xy, xz, yy, yz, zz float64
		for _, j := range ni {
			dx := pts[j][0] - cx
			dy := pts[j][1] - cy
			dz := pts[j][2] - cz
			xx += dx * dx
			xy += dx * dy
			xz += dx * dz
			yy += dy * dy
			yz += dy * dz
			zz += dz * dz
		}
		inertia.SetRow(0, []float64{xx, xy, xz})
		inertia.SetRow(1, []float64{xy, yy, yz})
		inertia.SetRow(2, []float64{xz, yz, zz})

		if ok := svd.Factorize(inertia, mat.SVDFull); !ok {
			return nil, nil, errors.Newf("svd did not converge for point %d", i)
		}
		s := svd.Values(nil)
		svd.VTo(&v)

		// First right singular vector: the neighbourhood's principal axis.
		vect[i] = [3]float64{v.At(0, 0), v.At(1, 0), v.At(2, 0)}

		if sum := s[0] + s[1] + s[2]; sum > 0 {
			alpha[i] = (s[0] - s[1]) / sum
		}
	}
	return vect, alpha, nil
}
