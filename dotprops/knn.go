package dotprops

import "gonum.org/v1/gonum/spatial/kdtree"

// kdPoint wraps a coordinate with its row index so neighbour queries can
// report positions in the original matrix.
type kdPoint struct {
	p   [3]float64
	idx int
}

// Compare returns the signed distance of p from the plane through c
// perpendicular to dimension d.
func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdPoint)
	return p.p[d] - q.p[d]
}

// Dims returns the number of dimensions described by p.
func (p kdPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between p and c.
func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(kdPoint)
	dx := p.p[0] - q.p[0]
	dy := p.p[1] - q.p[1]
	dz := p.p[2] - q.p[2]
	return dx*dx + dy*dy + dz*dz
}

// kdPoints is a collection of kdPoint values that satisfies kdtree.Interface.
type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p kdPoints) Len() int                              { return len(p) }
func (p kdPoints) Pivot(d kdtree.Dim) int                { return kdPlane{Dim: d, kdPoints: p}.Pivot() }
func (p kdPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// kdPlane is required to help sort kdPoints over a given dimension.
type kdPlane struct {
	kdtree.Dim
	kdPoints
}

func (p kdPlane) Less(i, j int) bool {
	return p.kdPoints[i].p[p.Dim] < p.kdPoints[j].p[p.Dim]
}
func (p kdPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.kdPoints = p.kdPoints[start:end]
	return p
}
func (p kdPlane) Swap(i, j int) {
	p.kdPoints[i], p.kdPoints[j] = p.kdPoints[j], p.kdPoints[i]
}

// nearest returns, for every point, the indices of its k nearest neighbours
// (itself included, at squared Euclidean distance zero). k must not exceed
// len(pts); neighbour order within a set is unspecified.
func nearest(pts [][3]float64, k int) [][]int {
	data := make(kdPoints, len(pts))
	for i, p := range pts {
		data[i] = kdPoint{p: p, idx: i}
	}
	// New partitions data in place, so walk the reordered slice and key
	// results by each point's original row index.
	tree := kdtree.New(data, false)

	out := make([][]int, len(pts))
	for _, q := range data {
		keep := kdtree.NewNKeeper(k)
		tree.NearestSet(keep, q)
		idx := make([]int, 0, k)
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			idx = append(idx, c.Comparable.(kdPoint).idx)
		}
		out[q.idx] = idx
	}
	return out
}
