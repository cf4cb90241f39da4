package force

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/frenebo/VMTutorial-pjk/geom"
	"github.com/frenebo/VMTutorial-pjk/mesh"
)

func init() {
	registerBuiltin(TypeArea, func() Force { return NewAreaForce() })
}

// AreaForce contributes, per face f with rest area A0(f) and stiffness
// kappa(f) (per-face overrides falling back to the global scalars A0,
// kappa), the negative gradient of (1/2) kappa (A(f)-A0(f))^2 with respect
// to each of f's vertex positions. The shoelace-gradient closed form is original
// (no gofem FEM element computes a polygon-area gradient).
type AreaForce struct {
	params *ParamStore
}

// NewAreaForce returns an AreaForce with no parameters set.
func NewAreaForce() *AreaForce {
	return &AreaForce{params: NewParamStore()}
}

func (f *AreaForce) Type() Type { return TypeArea }

func (f *AreaForce) SetGlobalParams(num map[string]float64, str map[string]string, in map[string]int, arr map[string][]float64, verbose bool) error {
	for k := range num {
		if k != "A0" && k != "kappa" {
			return chk.Err("area: unknown global numeric parameter %q", k)
		}
	}
	if len(str) > 0 || len(in) > 0 || len(arr) > 0 {
		return chk.Err("area: does not accept string, integer or array parameters")
	}
	if verbose {
		io.Pforan("area: set_global_params num=%v\n", num)
	}
	f.params.SetGlobal(num, nil, nil, nil)
	return nil
}

func (f *AreaForce) SetFaceParamsFacewise(fids []int, params []map[string]float64, verbose bool) error {
	if verbose {
		io.Pf("area: set_face_params_facewise on %d faces\n", len(fids))
	}
	return f.params.SetFacewise("area.SetFaceParamsFacewise", fids, params)
}

func (f *AreaForce) SetVertexParamsVertexwise(vids []int, params []map[string]float64, verbose bool) error {
	if len(vids) != 0 {
		return chk.Err("area: does not accept per-vertex parameters")
	}
	return nil
}

func (f *AreaForce) ComputeAllVertexForces(m mesh.Mesh, verbose bool) ([]geom.Vec2, error) {
	out := geom.ZeroVecs(m.NumVertices())
	globalA0 := f.params.Num["A0"]
	globalKappa := f.params.Num["kappa"]

	for _, face := range m.Faces() {
		fid := face.Id()
		a0 := f.params.FaceScalar(fid, "A0", globalA0)
		kappa := f.params.FaceScalar(fid, "kappa", globalKappa)
		area := m.Area(face)
		// force is -dE/dv, E = 0.5*kappa*(A-A0)^2, so the gradient of A is
		// scaled by -kappa*(A-A0): a cell larger than its rest area pulls
		// its vertices inward.
		coeff := -kappa * (area - a0)

		loop := face.Circulator()
		if verbose {
			io.Pf("area: face %d area=%g a0=%g kappa=%g\n", fid, area, a0, kappa)
		}
		for _, he := range loop {
			dFrom, dTo := areaGradientTerms(he)
			out[he.From().Id()] = out[he.From().Id()].Add(dFrom.Scale(coeff))
			out[he.To().Id()] = out[he.To().Id()].Add(dTo.Scale(coeff))
		}
	}
	return out, nil
}

func (f *AreaForce) Tension(m mesh.Mesh, he mesh.HalfEdge, verbose bool) (float64, error) {
	vtxForces, err := f.ComputeAllVertexForces(m, verbose)
	if err != nil {
		return 0, err
	}
	return ProjectTension(he, vtxForces), nil
}

// areaGradientTerms returns the gradient, with respect to he.From() and
// he.To() respectively, of he's own term in the shoelace sum
// A = 0.5*sum(x_k*y_{k+1} - x_{k+1}*y_k). Summed over every half-edge of a
// face, these two contributions per half-edge give the complete dA/dv for
// every vertex v of the face (each vertex is the "from" of one half-edge
// and the "to" of its predecessor).
func areaGradientTerms(he mesh.HalfEdge) (dFrom, dTo geom.Vec2) {
	from := he.From().Pos()
	to := he.To().Pos()
	// term = from.X*to.Y - to.X*from.Y
	dFrom = geom.Vec2{X: to.Y, Y: -to.X}.Scale(0.5)
	dTo = geom.Vec2{X: -from.Y, Y: from.X}.Scale(0.5)
	return
}
