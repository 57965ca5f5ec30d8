package dotprops

import "testing"

func TestRemoveClose_ThinsCluster(t *testing.T) {
	pts := [][3]float64{
		{0, 0, 0},
		{0.2, 0, 0},
		{0, 0.2, 0},
		{5, 5, 5},
		{5.1, 5, 5},
	}
	got := RemoveClose(pts, 1)
	if len(got) != 2 {
		t.Fatalf("kept %d points, want 2", len(got))
	}
	// Greedy in input order: the first member of each cluster survives.
	if got[0] != pts[0] || got[1] != pts[3] {
		t.Errorf("kept %v, want first point of each cluster", got)
	}
}

func TestRemoveClose_NeverGrows(t *testing.T) {
	pts := [][3]float64{{0, 0, 0}, {10, 0, 0}}
	got := RemoveClose(pts, 0.5)
	if len(got) != len(pts) {
		t.Errorf("kept %d points, want %d (all separated)", len(got), len(pts))
	}
}

func TestRemoveClose_ZeroResolutionKeepsAll(t *testing.T) {
	pts := [][3]float64{{0, 0, 0}, {0, 0, 0}}
	if got := RemoveClose(pts, 0); len(got) != 2 {
		t.Errorf("kept %d points, want 2 with resolution 0", len(got))
	}
}

func TestRemoveClose_BoundarySpansCells(t *testing.T) {
	// Points in adjacent grid cells but within resolution of each other.
	pts := [][3]float64{{0.95, 0, 0}, {1.05, 0, 0}}
	if got := RemoveClose(pts, 1); len(got) != 1 {
		t.Errorf("kept %d points, want 1", len(got))
	}
}
