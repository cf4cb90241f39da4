// Package mesh defines the read-only view of the half-edge polygonal mesh
// that the force-compute core borrows from its caller. Construction,
// mutation, topology changes (beyond the single edge-flip the real mesh
// exposes) and persistence all live outside this package.
package mesh

import "github.com/frenebo/VMTutorial-pjk/geom"

// Vertex is a single mesh vertex: a stable integer id and a mutable
// position. The core never mutates a vertex's position; only the caller
// (e.g. an integrator, between compute calls) does.
type Vertex interface {
	Id() int
	Pos() geom.Vec2
}

// HalfEdge is a directed side of an Edge. Every Edge owns exactly two
// opposing HalfEdges.
type HalfEdge interface {
	Id() int
	From() Vertex
	To() Vertex
	Edge() Edge
	Face() Face
	// Next returns the next half-edge bounding the same face, in cyclic
	// order.
	Next() HalfEdge
}

// Edge is shared by exactly two HalfEdges (one per adjacent Face, or one
// real plus one boundary half-edge on the mesh border).
type Edge interface {
	Id() int
	HalfEdge() HalfEdge
}

// Face is a cell: an ordered cyclic sequence of bounding half-edges.
type Face interface {
	Id() int
	// Circulator returns the face's bounding half-edges in cyclic order,
	// starting from an unspecified but fixed half-edge.
	Circulator() []HalfEdge
}

// Mesh is the read-only surface the core borrows for the duration of a
// single compute_all_vertex_forces call. The mesh MUST NOT be mutated while
// a compute is in flight.
type Mesh interface {
	NumVertices() int
	Vertices() []Vertex
	Edges() []Edge
	Faces() []Face

	// Area returns the signed polygon area of f's boundary (positive for a
	// counter-clockwise winding), via the shoelace formula.
	Area(f Face) float64

	// Perimeter returns the sum of the lengths of f's bounding edges.
	Perimeter(f Face) float64

	// Length returns the Euclidean length of e.
	Length(e Edge) float64
}
