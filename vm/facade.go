// Package vm is the thin top-level object an integrator or scripting host
// holds: it owns a force registry and a mesh reference and exposes the
// operations that host needs, nothing more. Grounded on fem.FEM (fem/fem.go)
// as the "one object the caller drives" shape, and on force_compute.cpp's
// pybind11 export surface for the exact method list.
package vm

import (
	"github.com/frenebo/VMTutorial-pjk/compute"
	"github.com/frenebo/VMTutorial-pjk/force"
	"github.com/frenebo/VMTutorial-pjk/geom"
	"github.com/frenebo/VMTutorial-pjk/mesh"
)

// Sim holds the mesh an integrator is driving and the force registry
// computing against it. The mesh is mutated entirely outside this package;
// Sim only ever reads it.
type Sim struct {
	Mesh     mesh.Mesh
	registry *compute.Registry
}

// New returns a Sim with an empty force registry over m.
func New(m mesh.Mesh) *Sim {
	return &Sim{Mesh: m, registry: compute.New()}
}

// AddForce registers a force under forceID, constructed fresh from the
// built-in factory by forceType.
func (s *Sim) AddForce(forceID string, forceType force.Type, verbose bool) error {
	f, err := force.New(forceType)
	if err != nil {
		return err
	}
	return s.registry.AddForce(forceID, f, verbose)
}

// DeleteForce removes the force registered under forceID.
func (s *Sim) DeleteForce(forceID string, verbose bool) error {
	return s.registry.DeleteForce(forceID, verbose)
}

// SetGlobalParams dispatches to the global parameter setter of the force
// registered under forceID.
func (s *Sim) SetGlobalParams(forceID string, num map[string]float64, str map[string]string, in map[string]int, arr map[string][]float64, verbose bool) error {
	return s.registry.SetGlobalParams(forceID, num, str, in, arr, verbose)
}

// SetFaceParamsFacewise dispatches to the per-face parameter setter of the
// force registered under forceID.
func (s *Sim) SetFaceParamsFacewise(forceID string, fids []int, params []map[string]float64, verbose bool) error {
	return s.registry.SetFaceParamsFacewise(forceID, fids, params, verbose)
}

// SetVertexParamsVertexwise dispatches to the per-vertex parameter setter
// of the force registered under forceID.
func (s *Sim) SetVertexParamsVertexwise(forceID string, vids []int, params []map[string]float64, verbose bool) error {
	return s.registry.SetVertexParamsVertexwise(forceID, vids, params, verbose)
}

// GetInstantaneousForces returns every registered force's own per-vertex
// contribution over s.Mesh as it stands right now, keyed by force id and
// NOT summed, exactly as compute.Registry.GetPerForceVertexForces returns
// them; GetResultantForces gives the per-vertex sum.
func (s *Sim) GetInstantaneousForces(verbose bool) (map[string][]geom.Vec2, error) {
	return s.registry.GetPerForceVertexForces(s.Mesh, verbose)
}

// GetResultantForces returns the per-vertex sum of every registered force's
// contribution: the resultant an integrator would actually step with,
// backed directly by compute.Registry.ComputeAllVertexForces.
func (s *Sim) GetResultantForces(verbose bool) ([]geom.Vec2, error) {
	return s.registry.ComputeAllVertexForces(s.Mesh, verbose)
}

// GetVertexForce returns the summed force at a single vertex.
func (s *Sim) GetVertexForce(vid int, verbose bool) (geom.Vec2, error) {
	return s.registry.ComputeVertexForce(s.Mesh, vid, verbose)
}

// Tension returns the summed line-tension contribution of every registered
// force for he.
func (s *Sim) Tension(he mesh.HalfEdge, verbose bool) (float64, error) {
	return s.registry.Tension(s.Mesh, he, verbose)
}

// StartForceComputeTimers (re)arms per-force timing for subsequent compute
// calls.
func (s *Sim) StartForceComputeTimers(verbose bool) {
	s.registry.StartForceComputeTimers()
}

// GetForceComputeTimersMillis returns the accumulated per-force
// millisecond totals since the last StartForceComputeTimers call.
func (s *Sim) GetForceComputeTimersMillis(verbose bool) map[string]float64 {
	return s.registry.GetTimersMillis()
}
