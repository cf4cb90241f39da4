// Package compute implements the force registry / orchestrator: named
// insertion and removal of force contributions, parameter dispatch by
// force id, per-vertex aggregation, and optional per-force timing. Grounded
// directly on force_compute.hpp's ForceCompute class (same method set),
// using ele/factory.go's registration idiom and fem/fem.go's top-level
// orchestration style for the surrounding Go plumbing.
package compute

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/frenebo/VMTutorial-pjk/force"
	"github.com/frenebo/VMTutorial-pjk/geom"
	"github.com/frenebo/VMTutorial-pjk/mesh"
)

// Registry holds every force contribution currently wired into a
// simulation, keyed by a string force id the caller chooses when adding
// it. Insertion order is preserved so repeated computes are deterministic.
type Registry struct {
	order  []string
	forces map[string]force.Force
	timers *timerTable
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		forces: make(map[string]force.Force),
		timers: newTimerTable(),
	}
}

// AddForce registers f under forceID. Fails if forceID is already taken: a
// registry-level precondition, not a panic, since a caller choosing ids is
// ordinary runtime bookkeeping rather than a programming mistake in this
// package (contrast force/factory.go's init-time registerBuiltin, which does
// panic).
func (r *Registry) AddForce(forceID string, f force.Force, verbose bool) error {
	if _, ok := r.forces[forceID]; ok {
		return chk.Err("compute.AddForce: force id %q already registered (type %q)", forceID, r.forces[forceID].Type())
	}
	r.forces[forceID] = f
	r.order = append(r.order, forceID)
	if verbose {
		io.Pf("compute: add_force id=%q type=%q\n", forceID, f.Type())
	}
	return nil
}

// DeleteForce removes the force registered under forceID. Fails if no such
// id is registered.
func (r *Registry) DeleteForce(forceID string, verbose bool) error {
	if _, ok := r.forces[forceID]; !ok {
		return chk.Err("compute.DeleteForce: no force registered under id %q", forceID)
	}
	delete(r.forces, forceID)
	for i, id := range r.order {
		if id == forceID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if verbose {
		io.Pf("compute: delete_force id=%q\n", forceID)
	}
	return nil
}

// get resolves forceID or returns the same precondition error every
// dispatch method below reports under its own operation name.
func (r *Registry) get(op string, forceID string) (force.Force, error) {
	f, ok := r.forces[forceID]
	if !ok {
		return nil, chk.Err("compute.%s: no force registered under id %q", op, forceID)
	}
	return f, nil
}

// SetGlobalParams dispatches to the global parameter setter of the force
// registered under forceID.
func (r *Registry) SetGlobalParams(forceID string, num map[string]float64, str map[string]string, in map[string]int, arr map[string][]float64, verbose bool) error {
	f, err := r.get("SetGlobalParams", forceID)
	if err != nil {
		return err
	}
	return f.SetGlobalParams(num, str, in, arr, verbose)
}

// SetFaceParamsFacewise dispatches to the per-face parameter setter of the
// force registered under forceID.
func (r *Registry) SetFaceParamsFacewise(forceID string, fids []int, params []map[string]float64, verbose bool) error {
	f, err := r.get("SetFaceParamsFacewise", forceID)
	if err != nil {
		return err
	}
	return f.SetFaceParamsFacewise(fids, params, verbose)
}

// SetVertexParamsVertexwise dispatches to the per-vertex parameter setter
// of the force registered under forceID.
func (r *Registry) SetVertexParamsVertexwise(forceID string, vids []int, params []map[string]float64, verbose bool) error {
	f, err := r.get("SetVertexParamsVertexwise", forceID)
	if err != nil {
		return err
	}
	return f.SetVertexParamsVertexwise(vids, params, verbose)
}

// ComputeAllVertexForces sums the per-vertex contribution of every
// registered force over m, in registration order, timing each force's call
// when StartForceComputeTimers has armed the timer table.
func (r *Registry) ComputeAllVertexForces(m mesh.Mesh, verbose bool) ([]geom.Vec2, error) {
	total := geom.ZeroVecs(m.NumVertices())
	for _, id := range r.order {
		f := r.forces[id]
		t0 := time.Now()
		contrib, err := f.ComputeAllVertexForces(m, verbose)
		r.timers.record(id, time.Since(t0))
		if err != nil {
			return nil, chk.Err("compute.ComputeAllVertexForces: force id %q (type %q): %v", id, f.Type(), err)
		}
		if verbose {
			io.Pf("compute: force id=%q type=%q contributed\n", id, f.Type())
		}
		geom.SumVecs(total, contrib)
	}
	return total, nil
}

// GetPerForceVertexForces returns every registered force's own per-vertex
// contribution, keyed by force id, without summing them: used by
// diagnostics that need to see each force's share separately.
func (r *Registry) GetPerForceVertexForces(m mesh.Mesh, verbose bool) (map[string][]geom.Vec2, error) {
	out := make(map[string][]geom.Vec2, len(r.order))
	for _, id := range r.order {
		f := r.forces[id]
		contrib, err := f.ComputeAllVertexForces(m, verbose)
		if err != nil {
			return nil, chk.Err("compute.GetPerForceVertexForces: force id %q (type %q): %v", id, f.Type(), err)
		}
		out[id] = contrib
	}
	return out, nil
}

// ComputeVertexForce returns the summed force at a single vertex, asking
// every registered force for its whole-mesh contribution and indexing into
// it: no cheaper than ComputeAllVertexForces, just a narrower return value
// for a caller that only wants one vertex. Grounded on the original's
// per-vertex ForceCompute::compute(Vertex&) path.
func (r *Registry) ComputeVertexForce(m mesh.Mesh, vid int, verbose bool) (geom.Vec2, error) {
	if vid < 0 || vid >= m.NumVertices() {
		return geom.Vec2{}, chk.Err("compute.ComputeVertexForce: vertex id %d out of range [0,%d)", vid, m.NumVertices())
	}
	total, err := r.ComputeAllVertexForces(m, verbose)
	if err != nil {
		return geom.Vec2{}, err
	}
	return total[vid], nil
}

// Tension sums the line-tension contribution of every registered force for
// he.
func (r *Registry) Tension(m mesh.Mesh, he mesh.HalfEdge, verbose bool) (float64, error) {
	var total float64
	for _, id := range r.order {
		f := r.forces[id]
		t, err := f.Tension(m, he, verbose)
		if err != nil {
			return 0, chk.Err("compute.Tension: force id %q (type %q): %v", id, f.Type(), err)
		}
		total += t
	}
	return total, nil
}

// StartForceComputeTimers (re)arms the per-force timer table; every
// subsequent ComputeAllVertexForces call accumulates into it until the next
// StartForceComputeTimers call.
func (r *Registry) StartForceComputeTimers() {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	r.timers.start(ids)
}

// GetTimersMillis returns a snapshot of the accumulated per-force
// millisecond totals since the last StartForceComputeTimers call. Empty if
// timers were never started.
func (r *Registry) GetTimersMillis() map[string]float64 {
	return r.timers.snapshot()
}
