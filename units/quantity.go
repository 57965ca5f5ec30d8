// Package units parses physical quantities and converts them into the native
// coordinate space of spatial entities such as neurons.
package units

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/unit"

	"github.com/arborlab/morpho"
)

// length records a supported length unit: its SI scale and canonical symbol.
type length struct {
	scale  float64
	symbol string
}

// lengthUnits maps accepted spellings to their SI scale. Plurals are handled
// by Parse, not listed here.
var lengthUnits = map[string]length{
	"nm":         {1e-9, "nanometer"},
	"nanometer":  {1e-9, "nanometer"},
	"nanometre":  {1e-9, "nanometer"},
	"um":         {1e-6, "micrometer"},
	"µm":         {1e-6, "micrometer"},
	"micron":     {1e-6, "micrometer"},
	"micrometer": {1e-6, "micrometer"},
	"micrometre": {1e-6, "micrometer"},
	"mm":         {1e-3, "millimeter"},
	"millimeter": {1e-3, "millimeter"},
	"millimetre": {1e-3, "millimeter"},
	"cm":         {1e-2, "centimeter"},
	"centimeter": {1e-2, "centimeter"},
	"centimetre": {1e-2, "centimeter"},
	"m":          {1, "meter"},
	"meter":      {1, "meter"},
	"metre":      {1, "meter"},
	"km":         {1e3, "kilometer"},
	"kilometer":  {1e3, "kilometer"},
	"kilometre":  {1e3, "kilometer"},
	"angstrom":   {1e-10, "angstrom"},
	"Å":          {1e-10, "angstrom"},
}

// Quantity is a magnitude with a dimension, or a plain number with no unit
// semantics at all. The zero value is a dimensionless zero.
type Quantity struct {
	magnitude float64
	scale     float64 // SI multiplier for one magnitude unit
	symbol    string
	dims      unit.Dimensions
	plain     bool
}

// Number wraps a bare number. It passes through unit conversion unchanged.
func Number(v float64) Quantity {
	return Quantity{magnitude: v, scale: 1, plain: true}
}

// Length builds a length quantity from a magnitude and a unit spelling such
// as "nm" or "micron".
func Length(v float64, symbol string) (Quantity, error) {
	u, ok := lengthUnits[symbol]
	if !ok {
		u, ok = lengthUnits[strings.TrimSuffix(symbol, "s")]
	}
	if !ok {
		return Quantity{}, errors.Wrapf(morpho.ErrValidation, "unknown unit %q", symbol)
	}
	return Quantity{
		magnitude: v,
		scale:     u.scale,
		symbol:    u.symbol,
		dims:      unit.Dimensions{unit.LengthDim: 1},
	}, nil
}

// Parse reads a quantity string such as "1 nanometer", "8 nm", "micron" (an
// implicit magnitude of 1) or a bare numeral, which parses dimensionless.
func Parse(s string) (Quantity, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	switch len(fields) {
	case 1:
		if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
			return Quantity{magnitude: v, scale: 1}, nil
		}
		return Length(1, fields[0])
	case 2:
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Quantity{}, errors.Wrapf(morpho.ErrValidation, "bad magnitude in %q", s)
		}
		return Length(v, fields[1])
	}
	return Quantity{}, errors.Wrapf(morpho.ErrValidation, "cannot parse quantity %q", s)
}

// MustParse is Parse for statically known inputs; it panics on error.
func MustParse(s string) Quantity {
	q, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return q
}

// Plain reports whether q is a bare number with no unit semantics.
func (q Quantity) Plain() bool { return q.plain }

// Dimensionless reports whether q carries no physical dimension. Plain
// numbers are not dimensionless quantities; they bypass unit logic entirely.
func (q Quantity) Dimensionless() bool { return !q.plain && len(q.dims) == 0 }

// Magnitude returns the numeric value in the unit the quantity was stated in.
func (q Quantity) Magnitude() float64 { return q.magnitude }

// SI returns the magnitude scaled to SI base units.
func (q Quantity) SI() float64 {
	if q.scale == 0 {
		return q.magnitude
	}
	return q.magnitude * q.scale
}

func (q Quantity) sameDims(o Quantity) bool {
	if len(q.dims) != len(o.dims) {
		return false
	}
	for d, p := range q.dims {
		if o.dims[d] != p {
			return false
		}
	}
	return true
}

func (q Quantity) String() string {
	if q.symbol == "" {
		return strconv.FormatFloat(q.magnitude, 'g', -1, 64)
	}
	return fmt.Sprintf("%g %s", q.magnitude, q.symbol)
}
