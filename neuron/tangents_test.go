package neuron

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"

	"github.com/arborlab/morpho"
)

func TestEdgeTangents_Chain(t *testing.T) {
	// Straight chain along x: 0 -> 2 -> 6.
	s := NewSkeleton(Meta{Name: "chain"}, []Node{
		{ID: 1, Parent: -1, X: 0},
		{ID: 2, Parent: 1, X: 2},
		{ID: 3, Parent: 2, X: 6},
	})

	points, vect, length, err := EdgeTangents(s)
	if err != nil {
		t.Fatalf("EdgeTangents: %v", err)
	}

	wantPoints := [][3]float64{{1, 0, 0}, {4, 0, 0}}
	if diff := cmp.Diff(wantPoints, points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	// Both tangents point from child back to parent, along -x.
	wantVect := [][3]float64{{-1, 0, 0}, {-1, 0, 0}}
	if diff := cmp.Diff(wantVect, vect); diff != "" {
		t.Errorf("vect mismatch (-want +got):\n%s", diff)
	}
	wantLength := []float64{2, 4}
	if diff := cmp.Diff(wantLength, length); diff != "" {
		t.Errorf("length mismatch (-want +got):\n%s", diff)
	}
}

func TestEdgeTangents_UnitNorm(t *testing.T) {
	s := NewSkeleton(Meta{}, []Node{
		{ID: 1, Parent: -1, X: 0, Y: 0, Z: 0},
		{ID: 2, Parent: 1, X: 1, Y: 2, Z: 2},
		{ID: 3, Parent: 2, X: 4, Y: 2, Z: -2},
	})
	_, vect, _, err := EdgeTangents(s)
	if err != nil {
		t.Fatalf("EdgeTangents: %v", err)
	}
	for i, v := range vect {
		norm := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		if math.Abs(norm-1) > 1e-12 {
			t.Errorf("vect[%d] norm = %v, want 1", i, norm)
		}
	}
}

func TestEdgeTangents_ZeroLengthEdge(t *testing.T) {
	s := NewSkeleton(Meta{}, []Node{
		{ID: 1, Parent: -1, X: 1, Y: 1, Z: 1},
		{ID: 2, Parent: 1, X: 1, Y: 1, Z: 1},
	})
	_, vect, length, err := EdgeTangents(s)
	if err != nil {
		t.Fatalf("EdgeTangents: %v", err)
	}
	if length[0] != 0 {
		t.Errorf("length = %v, want 0", length[0])
	}
	if vect[0] != [3]float64{} {
		t.Errorf("vect = %v, want zero vector", vect[0])
	}
}

func TestEdgeTangents_MissingParent(t *testing.T) {
	s := NewSkeleton(Meta{}, []Node{
		{ID: 1, Parent: 99, X: 0},
	})
	_, _, _, err := EdgeTangents(s)
	if !errors.Is(err, morpho.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestEdgeTangents_RootOnly(t *testing.T) {
	s := NewSkeleton(Meta{}, []Node{{ID: 1, Parent: -1}})
	points, _, _, err := EdgeTangents(s)
	if err != nil {
		t.Fatalf("EdgeTangents: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("got %d edges from a root-only skeleton, want 0", len(points))
	}
}
