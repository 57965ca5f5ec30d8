// Package morpho computes dotprops representations (point clouds carrying a
// local tangent direction and a confidence per point) from neuron geometry,
// maps physical quantities into a neuron's native coordinate space, and
// applies functions across neuron collections sequentially or in parallel.
//
// The core packages are:
//
//   - dotprops: k-nearest-neighbour + SVD tangent estimation
//   - units: quantity parsing and neuron-space conversion
//   - batch: argument broadcasting and worker-pool fan-out
//   - neuron: the skeleton, mesh, dotprops and list entity types
package morpho
