// Package force implements the force-contribution contract and the
// built-in force types, including the pixelated electric field's edge
// tracer. Grounded on ele.Element (ele/element.go) for the "uniform
// operation set every concrete type implements" shape, and on
// force_compute.hpp's Force base class for the exact operation names.
package force

import (
	"github.com/frenebo/VMTutorial-pjk/geom"
	"github.com/frenebo/VMTutorial-pjk/mesh"
)

// Type is one of the recognised force-type tags: a closed set.
type Type string

const (
	TypeArea                  Type = "area"
	TypePerimeter             Type = "perimeter"
	TypeConstVertexPropulsion Type = "const_vertex_propulsion"
	TypeEFieldUniform         Type = "force_efield_on_cell_boundary_uniform"
	TypeEFieldPixelated       Type = "force_efield_on_cell_boundary_pixelated"
)

// Force is the contract every force contribution implements.
type Force interface {
	// Type returns this force's string type tag.
	Type() Type

	// SetGlobalParams merges the given parameter maps into the force's
	// private store. An unknown key is rejected with an error; callers
	// must treat that as fatal.
	SetGlobalParams(num map[string]float64, str map[string]string, in map[string]int, arr map[string][]float64, verbose bool) error

	// SetFaceParamsFacewise writes a per-face parameter record for each
	// (fids[i], params[i]) pair. Fails if len(fids) != len(params).
	SetFaceParamsFacewise(fids []int, params []map[string]float64, verbose bool) error

	// SetVertexParamsVertexwise is the vertex-keyed symmetric counterpart.
	SetVertexParamsVertexwise(vids []int, params []map[string]float64, verbose bool) error

	// ComputeAllVertexForces computes this force's contribution to every
	// vertex of m, as a pure function of m's current geometry and this
	// force's stored parameters. The returned slice has exactly
	// m.NumVertices() entries, indexed by vertex id, and is freshly
	// allocated and zeroed before accumulation.
	ComputeAllVertexForces(m mesh.Mesh, verbose bool) ([]geom.Vec2, error)

	// Tension returns this force's contribution to the line tension of he:
	// the signed projection of its accumulated per-endpoint force onto
	// he's unit direction. Forces with no natural half-edge tension
	// (const_vertex_propulsion) return 0. Grounded on force_compute.hpp's
	// tension(HalfEdge&).
	Tension(m mesh.Mesh, he mesh.HalfEdge, verbose bool) (float64, error)
}

// ProjectTension turns a full per-vertex force field into a single
// half-edge's line tension: the signed projection of the average of its
// two endpoints' forces onto the half-edge's unit direction. Shared by the
// Tension methods of the area, perimeter and both electric-field forces
// (const_vertex_propulsion returns 0 without it), grounded on
// force_compute.hpp's tension(HalfEdge&).
func ProjectTension(he mesh.HalfEdge, vtxForces []geom.Vec2) float64 {
	dir := he.To().Pos().Sub(he.From().Pos()).Unit()
	avg := vtxForces[he.From().Id()].Add(vtxForces[he.To().Id()]).Scale(0.5)
	return avg.Dot(dir)
}
