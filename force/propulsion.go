package force

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"

	"github.com/frenebo/VMTutorial-pjk/geom"
	"github.com/frenebo/VMTutorial-pjk/mesh"
)

func init() {
	registerBuiltin(TypeConstVertexPropulsion, func() Force { return NewConstVertexPropulsionForce() })
}

// ConstVertexPropulsionForce adds, to each vertex with an assigned constant
// force vector (per-vertex params "fx","fy"), that vector directly; a
// vertex with no assigned vector contributes nothing. Grounded on
// force_const_vertex_propulsion, named in force_compute.hpp's add_force.
type ConstVertexPropulsionForce struct {
	params *ParamStore
}

// NewConstVertexPropulsionForce returns a force with no vertices assigned.
func NewConstVertexPropulsionForce() *ConstVertexPropulsionForce {
	return &ConstVertexPropulsionForce{params: NewParamStore()}
}

func (f *ConstVertexPropulsionForce) Type() Type { return TypeConstVertexPropulsion }

func (f *ConstVertexPropulsionForce) SetGlobalParams(num map[string]float64, str map[string]string, in map[string]int, arr map[string][]float64, verbose bool) error {
	if len(num) > 0 || len(str) > 0 || len(in) > 0 || len(arr) > 0 {
		return chk.Err("const_vertex_propulsion: has no global parameters; set fx/fy per vertex instead")
	}
	return nil
}

func (f *ConstVertexPropulsionForce) SetFaceParamsFacewise(fids []int, params []map[string]float64, verbose bool) error {
	if len(fids) != 0 {
		return chk.Err("const_vertex_propulsion: does not accept per-face parameters")
	}
	return nil
}

func (f *ConstVertexPropulsionForce) SetVertexParamsVertexwise(vids []int, params []map[string]float64, verbose bool) error {
	if verbose {
		io.Pf("const_vertex_propulsion: set_vertex_params_vertexwise on %d vertices\n", len(vids))
	}
	for _, p := range params {
		for k := range p {
			if k != "fx" && k != "fy" {
				return chk.Err("const_vertex_propulsion: unknown per-vertex parameter %q", k)
			}
		}
	}
	return f.params.SetVertexwise("const_vertex_propulsion.SetVertexParamsVertexwise", vids, params)
}

func (f *ConstVertexPropulsionForce) ComputeAllVertexForces(m mesh.Mesh, verbose bool) ([]geom.Vec2, error) {
	out := geom.ZeroVecs(m.NumVertices())
	for _, v := range m.Vertices() {
		vid := v.Id()
		out[vid] = geom.Vec2{
			X: f.params.VertexScalar(vid, "fx", 0),
			Y: f.params.VertexScalar(vid, "fy", 0),
		}
	}
	return out, nil
}

// Tension is always 0: a self-propulsion force has no face dependence, so
// it has no half-edge to project onto.
func (f *ConstVertexPropulsionForce) Tension(m mesh.Mesh, he mesh.HalfEdge, verbose bool) (float64, error) {
	return 0, nil
}

// RandomizePropulsionDirections assigns every vertex in vids a propulsion
// vector of the given magnitude and a direction drawn uniformly from
// [0, 2*pi), using gosl/rnd the way inp/sim.go draws per-entity parameters
// from a named random distribution. Its test checks that every listed
// vertex receives a vector of the requested magnitude.
func (f *ConstVertexPropulsionForce) RandomizePropulsionDirections(vids []int, magnitude float64, seed int) {
	rnd.Init(seed)
	params := make([]map[string]float64, len(vids))
	for i := range vids {
		theta := rnd.Float64(0, 2*math.Pi)
		params[i] = map[string]float64{
			"fx": magnitude * math.Cos(theta),
			"fy": magnitude * math.Sin(theta),
		}
	}
	f.params.SetVertexwise("const_vertex_propulsion.RandomizePropulsionDirections", vids, params)
}
