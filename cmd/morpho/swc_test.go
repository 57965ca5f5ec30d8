package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arborlab/morpho/units"
)

const sampleSWC = `# generated test neuron
# id type x y z radius parent
1 1 0.0 0.0 0.0 1.0 -1
2 3 2.0 0.0 0.0 0.5 1
3 3 4.0 1.0 0.0 0.5 2
`

func writeSWC(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.swc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadSWC(t *testing.T) {
	path := writeSWC(t, sampleSWC)

	s, err := readSWC(path, units.MustParse("8 nm"))
	if err != nil {
		t.Fatalf("readSWC: %v", err)
	}
	if len(s.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(s.Nodes))
	}
	if s.Name() != "sample" {
		t.Errorf("Name() = %q, want %q", s.Name(), "sample")
	}
	if s.Nodes[0].Parent != -1 {
		t.Errorf("root parent = %d, want -1", s.Nodes[0].Parent)
	}
	if s.Nodes[2].X != 4 || s.Nodes[2].Y != 1 {
		t.Errorf("node 3 at (%v, %v), want (4, 1)", s.Nodes[2].X, s.Nodes[2].Y)
	}
	if s.Units().String() != "8 nanometer" {
		t.Errorf("Units() = %q, want %q", s.Units().String(), "8 nanometer")
	}
}

func TestReadSWC_BadColumnCount(t *testing.T) {
	path := writeSWC(t, "1 1 0 0 0\n")
	if _, err := readSWC(path, units.Quantity{}); err == nil {
		t.Error("readSWC accepted a malformed row")
	}
}

func TestReadSWC_Empty(t *testing.T) {
	path := writeSWC(t, "# nothing here\n")
	if _, err := readSWC(path, units.Quantity{}); err == nil {
		t.Error("readSWC accepted a file with no nodes")
	}
}
