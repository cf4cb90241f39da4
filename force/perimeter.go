package force

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/frenebo/VMTutorial-pjk/geom"
	"github.com/frenebo/VMTutorial-pjk/mesh"
)

func init() {
	registerBuiltin(TypePerimeter, func() Force { return NewPerimeterForce() })
}

// PerimeterForce contributes, per face f with rest perimeter P0(f) and
// stiffness gamma(f) (per-face overrides falling back to the global
// scalars P0, gamma), the negative gradient of (1/2) gamma (P(f)-P0(f))^2
// with respect to each of f's vertex positions via dP/dx_v: the sum, over
// v's two incident half-edges of f, of the unit vector from the
// neighbouring vertex toward v.
type PerimeterForce struct {
	params *ParamStore
}

// NewPerimeterForce returns a PerimeterForce with no parameters set.
func NewPerimeterForce() *PerimeterForce {
	return &PerimeterForce{params: NewParamStore()}
}

func (f *PerimeterForce) Type() Type { return TypePerimeter }

func (f *PerimeterForce) SetGlobalParams(num map[string]float64, str map[string]string, in map[string]int, arr map[string][]float64, verbose bool) error {
	for k := range num {
		if k != "P0" && k != "gamma" {
			return chk.Err("perimeter: unknown global numeric parameter %q", k)
		}
	}
	if len(str) > 0 || len(in) > 0 || len(arr) > 0 {
		return chk.Err("perimeter: does not accept string, integer or array parameters")
	}
	if verbose {
		io.Pforan("perimeter: set_global_params num=%v\n", num)
	}
	f.params.SetGlobal(num, nil, nil, nil)
	return nil
}

func (f *PerimeterForce) SetFaceParamsFacewise(fids []int, params []map[string]float64, verbose bool) error {
	if verbose {
		io.Pf("perimeter: set_face_params_facewise on %d faces\n", len(fids))
	}
	return f.params.SetFacewise("perimeter.SetFaceParamsFacewise", fids, params)
}

func (f *PerimeterForce) SetVertexParamsVertexwise(vids []int, params []map[string]float64, verbose bool) error {
	if len(vids) != 0 {
		return chk.Err("perimeter: does not accept per-vertex parameters")
	}
	return nil
}

func (f *PerimeterForce) ComputeAllVertexForces(m mesh.Mesh, verbose bool) ([]geom.Vec2, error) {
	out := geom.ZeroVecs(m.NumVertices())
	globalP0 := f.params.Num["P0"]
	globalGamma := f.params.Num["gamma"]

	for _, face := range m.Faces() {
		fid := face.Id()
		p0 := f.params.FaceScalar(fid, "P0", globalP0)
		gamma := f.params.FaceScalar(fid, "gamma", globalGamma)
		perim := m.Perimeter(face)
		coeff := -gamma * (perim - p0)

		loop := face.Circulator()
		if verbose {
			io.Pf("perimeter: face %d perim=%g p0=%g gamma=%g\n", fid, perim, p0, gamma)
		}
		for _, he := range loop {
			from := he.From().Pos()
			to := he.To().Pos()
			// he contributes a unit vector from `from` toward `to` to
			// dP/dx_to, and the opposite unit vector (from `to` toward
			// `from`) to dP/dx_from.
			dir := to.Sub(from).Unit()
			out[he.To().Id()] = out[he.To().Id()].Add(dir.Scale(coeff))
			out[he.From().Id()] = out[he.From().Id()].Add(dir.Scale(-coeff))
		}
	}
	return out, nil
}

func (f *PerimeterForce) Tension(m mesh.Mesh, he mesh.HalfEdge, verbose bool) (float64, error) {
	vtxForces, err := f.ComputeAllVertexForces(m, verbose)
	if err != nil {
		return 0, err
	}
	return ProjectTension(he, vtxForces), nil
}
