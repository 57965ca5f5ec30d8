package dotprops

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/arborlab/morpho"
	"github.com/arborlab/morpho/neuron"
	"github.com/arborlab/morpho/units"
)

// Options controls dotprops construction.
type Options struct {
	// K is the number of nearest neighbours used for tangent estimation.
	// K <= 0 is only valid for skeleton input, where tangents come from
	// child->parent edges instead of neighbourhoods.
	K int

	// Resample, when positive, re-samples skeletons to this resolution in
	// native coordinate units before building, and thins mesh vertex clouds
	// by dropping vertices closer together than it. Thinning only ever
	// reduces density; up-sampling a mesh is not supported.
	Resample float64

	// ResampleIn expresses the resolution as a unit string such as
	// "1 micron", resolved against the source neuron's units. When set it
	// overrides Resample.
	ResampleIn string

	// Progress shows a progress bar in BuildList. Cosmetic only.
	Progress bool
}

// Build computes a dotprops cloud from a single source.
//
// Skeletons with K <= 0 take the edge-tangent path: one point/vector/length
// triple per child->parent edge, no alpha, no K. Every other source requires
// K > 0 and runs the neighbourhood pipeline: validate and clean coordinates,
// clamp K to the point count, then estimate a tangent and confidence per
// point. Metadata (id, name, units) carries over from neuron sources and is
// absent for raw matrices and tables.
func Build(src Source, opts Options) (*neuron.Dotprops, error) {
	switch s := src.(type) {
	case skeletonSource:
		return buildSkeleton(s.n, opts)
	case meshSource:
		return buildMesh(s.n, opts)
	case tableSource:
		pts, err := tablePoints(s.t)
		if err != nil {
			return nil, err
		}
		return buildPoints(pts, opts.K, neuron.Meta{})
	case matrixSource:
		pts, err := matrixPoints(s.m)
		if err != nil {
			return nil, err
		}
		return buildPoints(pts, opts.K, neuron.Meta{})
	case nil:
		return nil, errors.Wrap(morpho.ErrValidation, "nil source")
	default:
		return nil, errors.Wrapf(morpho.ErrValidation, "unsupported source type %T", src)
	}
}

// BuildList builds dotprops for every neuron in a list, order preserved. The
// first failure aborts the whole list.
func BuildList(l neuron.List, opts Options) (neuron.List, error) {
	var bar *pterm.ProgressbarPrinter
	if opts.Progress && len(l) > 1 {
		bar, _ = pterm.DefaultProgressbar.WithTotal(len(l)).WithTitle("Dotprops").Start()
	}
	defer func() {
		if bar != nil {
			_, _ = bar.Stop()
		}
	}()

	out := make(neuron.List, 0, len(l))
	for _, n := range l {
		var src Source
		switch v := n.(type) {
		case *neuron.Skeleton:
			src = FromSkeleton(v)
		case *neuron.Mesh:
			src = FromMesh(v)
		default:
			return nil, errors.Wrapf(morpho.ErrValidation, "cannot build dotprops from %T", n)
		}
		dp, err := Build(src, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, dp)
		if bar != nil {
			bar.Increment()
		}
	}
	return out, nil
}

func buildSkeleton(n *neuron.Skeleton, opts Options) (*neuron.Dotprops, error) {
	res, err := resolveResample(opts, n)
	if err != nil {
		return nil, err
	}
	if res > 0 {
		if n, err = n.Resample(res); err != nil {
			return nil, err
		}
	}

	if opts.K <= 0 {
		// Terminal edge-tangent branch: never touches the SVD pipeline.
		points, vect, length, err := neuron.EdgeTangents(n)
		if err != nil {
			return nil, err
		}
		return neuron.NewEdgeDotprops(n.Meta(), points, vect, length)
	}

	return buildPoints(n.Points(), opts.K, n.Meta())
}

func buildMesh(n *neuron.Mesh, opts Options) (*neuron.Dotprops, error) {
	if opts.K <= 0 {
		return nil, errors.Wrap(morpho.ErrValidation,
			"k must be > 0 when building dotprops from non-skeleton input")
	}
	res, err := resolveResample(opts, n)
	if err != nil {
		return nil, err
	}
	pts := n.Vertices
	if res > 0 {
		pts = RemoveClose(pts, res)
	}
	return buildPoints(pts, opts.K, n.Meta())
}

// resolveResample turns the resample options into a resolution in the
// neuron's native coordinate units.
func resolveResample(opts Options, n neuron.Neuron) (float64, error) {
	if opts.ResampleIn == "" {
		return opts.Resample, nil
	}
	q, err := units.Parse(opts.ResampleIn)
	if err != nil {
		return 0, err
	}
	return units.ToSpace(q, n, units.Raise)
}

// buildPoints runs the neighbourhood pipeline on a cleaned coordinate set.
func buildPoints(pts [][3]float64, k int, meta neuron.Meta) (*neuron.Dotprops, error) {
	if k <= 0 {
		return nil, errors.Wrap(morpho.ErrValidation,
			"k must be > 0 when building dotprops from non-skeleton input")
	}

	clean := dropNonFinite(pts)
	if len(clean) == 0 {
		return nil, errors.Wrap(morpho.ErrValidation, "no finite points to build dotprops from")
	}

	// Never ask for more neighbours than there are points.
	if k > len(clean) {
		k = len(clean)
	}

	vect, alpha, err := tangents(clean, k)
	if err != nil {
		return nil, err
	}
	return neuron.NewDotprops(meta, k, clean, vect, alpha)
}

// dropNonFinite removes rows containing NaN or infinite coordinates.
func dropNonFinite(pts [][3]float64) [][3]float64 {
	clean := pts[:0:0]
	for _, p := range pts {
		finite := true
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				finite = false
				break
			}
		}
		if finite {
			clean = append(clean, p)
		}
	}
	return clean
}
