package units

import (
	"github.com/cockroachdb/errors"

	"github.com/arborlab/morpho"
)

// OnError selects what ToSpace does when the target has no usable units.
type OnError string

const (
	// Raise fails with a domain error.
	Raise OnError = "raise"
	// Ignore returns the input magnitude unchanged.
	Ignore OnError = "ignore"
)

// Spatial is anything with a native coordinate space, described by the scale
// factor from one coordinate unit to a physical unit (e.g. 8 nanometer per
// voxel). A dimensionless Quantity means the scale is unknown.
type Spatial interface {
	Units() Quantity
}

type fixedSpace struct{ u Quantity }

func (f fixedSpace) Units() Quantity { return f.u }

// FixedSpace wraps bare units as a Spatial, for callers that have a scale but
// no entity to hang it on.
func FixedSpace(u Quantity) Spatial { return fixedSpace{u} }

// ToSpace converts q into target's native coordinate units and returns the
// resulting dimensionless scale factor.
//
// Plain numbers pass through unchanged. Dimensionless quantities return their
// magnitude directly. If the target's units are unknown, onError decides
// between a domain error (Raise) and returning q's magnitude as-is (Ignore).
// The result is smart-rounded to suppress floating point representation noise.
func ToSpace(q Quantity, target Spatial, onError OnError) (float64, error) {
	if onError != Raise && onError != Ignore {
		return 0, errors.Wrapf(morpho.ErrValidation, `on_error must be "raise" or "ignore", got %q`, onError)
	}
	if target == nil {
		return 0, errors.Wrap(morpho.ErrValidation, "target must expose units")
	}
	if q.plain {
		return q.magnitude, nil
	}

	space := target.Units()
	if space.Dimensionless() || space.Plain() {
		if onError == Raise {
			return 0, errors.Wrapf(morpho.ErrDomain,
				"target units unknown or dimensionless, unable to convert %q", q.String())
		}
		return q.magnitude, nil
	}

	// Input like "1" wrapped in quantity machinery: just the magnitude.
	if q.Dimensionless() {
		return q.magnitude, nil
	}

	if !q.sameDims(space) {
		return 0, errors.Wrapf(morpho.ErrDomain, "cannot convert %q to %q", q.String(), space.String())
	}

	return RoundSmart(q.SI() / space.SI()), nil
}
