// Package neuron holds the spatial entity types the morpho core operates on:
// tree-structured skeletons, surface meshes, dotprops clouds and ordered
// lists of any of them.
package neuron

import (
	"github.com/google/uuid"

	"github.com/arborlab/morpho/units"
)

// Neuron is any spatial entity with identity and a native coordinate space.
type Neuron interface {
	ID() string
	Name() string
	Units() units.Quantity
}

// Meta carries the identity and coordinate scale shared by all neuron kinds.
// Units express the physical size of one coordinate unit (e.g. 8 nanometer
// per voxel); a dimensionless zero value means the scale is unknown.
type Meta struct {
	ID    string
	Name  string
	Units units.Quantity
}

// withID returns m with a generated ID if none is set.
func (m Meta) withID() Meta {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return m
}

// Node is one skeleton sample point. Parent is the node ID of the parent
// sample, or -1 for a root.
type Node struct {
	ID     int64
	Parent int64
	X      float64
	Y      float64
	Z      float64
	Radius float64
}

// Skeleton is a tree-structured neuron: nodes linked child to parent.
type Skeleton struct {
	meta  Meta
	Nodes []Node
}

// NewSkeleton builds a skeleton from meta and nodes. A missing meta ID is
// generated.
func NewSkeleton(meta Meta, nodes []Node) *Skeleton {
	return &Skeleton{meta: meta.withID(), Nodes: nodes}
}

func (s *Skeleton) ID() string            { return s.meta.ID }
func (s *Skeleton) Name() string          { return s.meta.Name }
func (s *Skeleton) Units() units.Quantity { return s.meta.Units }

// Meta returns the skeleton's identity block.
func (s *Skeleton) Meta() Meta { return s.meta }

// Points returns the node coordinates as an N x 3 matrix.
func (s *Skeleton) Points() [][3]float64 {
	pts := make([][3]float64, len(s.Nodes))
	for i, n := range s.Nodes {
		pts[i] = [3]float64{n.X, n.Y, n.Z}
	}
	return pts
}

// Mesh is a surface neuron, reduced here to its vertex cloud.
type Mesh struct {
	meta     Meta
	Vertices [][3]float64
}

// NewMesh builds a mesh neuron from meta and vertices. A missing meta ID is
// generated.
func NewMesh(meta Meta, vertices [][3]float64) *Mesh {
	return &Mesh{meta: meta.withID(), Vertices: vertices}
}

func (m *Mesh) ID() string            { return m.meta.ID }
func (m *Mesh) Name() string          { return m.meta.Name }
func (m *Mesh) Units() units.Quantity { return m.meta.Units }

// Meta returns the mesh's identity block.
func (m *Mesh) Meta() Meta { return m.meta }
