package force

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/frenebo/VMTutorial-pjk/geom"
	"github.com/frenebo/VMTutorial-pjk/mesh"
)

func init() {
	registerBuiltin(TypeEFieldUniform, func() Force { return NewEFieldUniformForce() })
}

// EFieldUniformForce: each face has a charge Q(f) and a global field vector
// E; the force Q(f)*E is distributed uniformly over the face's perimeter,
// each half-edge of length l receiving (Q(f)/P(f))*l*E split evenly
// between its two endpoints.
type EFieldUniformForce struct {
	params *ParamStore
}

// NewEFieldUniformForce returns a force with no parameters set.
func NewEFieldUniformForce() *EFieldUniformForce {
	return &EFieldUniformForce{params: NewParamStore()}
}

func (f *EFieldUniformForce) Type() Type { return TypeEFieldUniform }

func (f *EFieldUniformForce) SetGlobalParams(num map[string]float64, str map[string]string, in map[string]int, arr map[string][]float64, verbose bool) error {
	for k := range num {
		if k != "E_x" && k != "E_y" {
			return chk.Err("force_efield_on_cell_boundary_uniform: unknown global numeric parameter %q", k)
		}
	}
	if len(str) > 0 || len(in) > 0 || len(arr) > 0 {
		return chk.Err("force_efield_on_cell_boundary_uniform: does not accept string, integer or array parameters")
	}
	if verbose {
		io.Pforan("force_efield_on_cell_boundary_uniform: set_global_params num=%v\n", num)
	}
	f.params.SetGlobal(num, nil, nil, nil)
	return nil
}

func (f *EFieldUniformForce) SetFaceParamsFacewise(fids []int, params []map[string]float64, verbose bool) error {
	for _, p := range params {
		for k := range p {
			if k != "charge" {
				return chk.Err("force_efield_on_cell_boundary_uniform: unknown per-face parameter %q", k)
			}
		}
	}
	if verbose {
		io.Pf("force_efield_on_cell_boundary_uniform: set_face_params_facewise on %d faces\n", len(fids))
	}
	return f.params.SetFacewise("force_efield_on_cell_boundary_uniform.SetFaceParamsFacewise", fids, params)
}

func (f *EFieldUniformForce) SetVertexParamsVertexwise(vids []int, params []map[string]float64, verbose bool) error {
	if len(vids) != 0 {
		return chk.Err("force_efield_on_cell_boundary_uniform: does not accept per-vertex parameters")
	}
	return nil
}

func (f *EFieldUniformForce) ComputeAllVertexForces(m mesh.Mesh, verbose bool) ([]geom.Vec2, error) {
	out := geom.ZeroVecs(m.NumVertices())
	field := geom.Vec2{X: f.params.Num["E_x"], Y: f.params.Num["E_y"]}

	for _, face := range m.Faces() {
		fid := face.Id()
		if _, ok := f.params.FaceParams[fid]; !ok {
			continue // face has no assigned charge: no contribution
		}
		charge := f.params.FaceScalar(fid, "charge", 0)
		perim := m.Perimeter(face)
		if perim == 0 {
			continue
		}
		density := charge / perim
		if verbose {
			io.Pf("force_efield_on_cell_boundary_uniform: face %d charge=%g density=%g\n", fid, charge, density)
		}
		for _, he := range face.Circulator() {
			length := he.To().Pos().Sub(he.From().Pos()).Len()
			halfForce := field.Scale(density * length * 0.5)
			out[he.From().Id()] = out[he.From().Id()].Add(halfForce)
			out[he.To().Id()] = out[he.To().Id()].Add(halfForce)
		}
	}
	return out, nil
}

func (f *EFieldUniformForce) Tension(m mesh.Mesh, he mesh.HalfEdge, verbose bool) (float64, error) {
	vtxForces, err := f.ComputeAllVertexForces(m, verbose)
	if err != nil {
		return 0, err
	}
	return ProjectTension(he, vtxForces), nil
}
