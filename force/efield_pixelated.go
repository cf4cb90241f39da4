package force

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/frenebo/VMTutorial-pjk/geom"
	"github.com/frenebo/VMTutorial-pjk/mesh"
)

func init() {
	registerBuiltin(TypeEFieldPixelated, func() Force { return NewEFieldPixelatedForce() })
}

// EFieldPixelatedForce is EFieldUniformForce with a spatially varying field
// sampled on a rectilinear grid: each cell edge is traced through the grid
// (TracePixels) to build a per-edge integrated-field-times-length cache,
// which is then distributed onto half-edges exactly like the uniform
// force. Grounded on force_efield_on_cell_boundary_pixelated.cpp.
type EFieldPixelatedForce struct {
	params  *ParamStore
	grid    *geom.GridSpec // nil until set_global_params configures one
	fieldX  []float64
	fieldY  []float64
}

// NewEFieldPixelatedForce returns an unconfigured force: no grid, no field.
func NewEFieldPixelatedForce() *EFieldPixelatedForce {
	return &EFieldPixelatedForce{params: NewParamStore()}
}

func (f *EFieldPixelatedForce) Type() Type { return TypeEFieldPixelated }

// The numeric/integer/array keys set_global_params recognises for this
// force's grid and flattened field.
const (
	keyOriginX  = "origin_x"
	keyOriginY  = "origin_y"
	keySpacingX = "spacing_x"
	keySpacingY = "spacing_y"
	keyNCellsX  = "ncells_x"
	keyNCellsY  = "ncells_y"
	keyFieldX   = "field_flattened_x"
	keyFieldY   = "field_flattened_y"
)

func (f *EFieldPixelatedForce) SetGlobalParams(num map[string]float64, str map[string]string, in map[string]int, arr map[string][]float64, verbose bool) error {
	for k := range num {
		switch k {
		case keyOriginX, keyOriginY, keySpacingX, keySpacingY:
		default:
			return chk.Err("force_efield_on_cell_boundary_pixelated: unknown global numeric parameter %q", k)
		}
	}
	for k := range in {
		switch k {
		case keyNCellsX, keyNCellsY:
		default:
			return chk.Err("force_efield_on_cell_boundary_pixelated: unknown global integer parameter %q", k)
		}
	}
	for k := range arr {
		switch k {
		case keyFieldX, keyFieldY:
		default:
			return chk.Err("force_efield_on_cell_boundary_pixelated: unknown global array parameter %q", k)
		}
	}
	if len(str) > 0 {
		return chk.Err("force_efield_on_cell_boundary_pixelated: does not accept string parameters")
	}

	f.params.SetGlobal(num, nil, in, arr)

	if ox, oy, sx, sy, nx, ny, ok := f.gridFieldsPresent(); ok {
		if sx <= 0 || sy <= 0 {
			return chk.Err("force_efield_on_cell_boundary_pixelated: spacing_x/spacing_y must be > 0, got %g,%g", sx, sy)
		}
		if nx < 1 || ny < 1 {
			return chk.Err("force_efield_on_cell_boundary_pixelated: ncells_x/ncells_y must be >= 1, got %d,%d", nx, ny)
		}
		f.grid = &geom.GridSpec{OriginX: ox, OriginY: oy, SpacingX: sx, SpacingY: sy, NCellsX: nx, NCellsY: ny}
	}

	if fx, ok := f.params.Arr[keyFieldX]; ok {
		if f.grid == nil {
			return chk.Err("force_efield_on_cell_boundary_pixelated: field_flattened_x set before the grid (origin, spacing, ncells) was complete")
		}
		if len(fx) != f.grid.NCellsX*f.grid.NCellsY {
			return chk.Err("force_efield_on_cell_boundary_pixelated: field_flattened_x has length %d, expected %d", len(fx), f.grid.NCellsX*f.grid.NCellsY)
		}
		f.fieldX = fx
	}
	if fy, ok := f.params.Arr[keyFieldY]; ok {
		if f.grid == nil {
			return chk.Err("force_efield_on_cell_boundary_pixelated: field_flattened_y set before the grid (origin, spacing, ncells) was complete")
		}
		if len(fy) != f.grid.NCellsX*f.grid.NCellsY {
			return chk.Err("force_efield_on_cell_boundary_pixelated: field_flattened_y has length %d, expected %d", len(fy), f.grid.NCellsX*f.grid.NCellsY)
		}
		f.fieldY = fy
	}

	if verbose {
		io.Pforan("force_efield_on_cell_boundary_pixelated: set_global_params - grid configured=%v\n", f.grid != nil)
	}
	return nil
}

// gridFieldsPresent reports whether all six grid-spec scalars have been
// set, and returns them.
func (f *EFieldPixelatedForce) gridFieldsPresent() (ox, oy, sx, sy float64, nx, ny int, ok bool) {
	var okOx, okOy, okSx, okSy, okNx, okNy bool
	ox, okOx = f.params.Num[keyOriginX]
	oy, okOy = f.params.Num[keyOriginY]
	sx, okSx = f.params.Num[keySpacingX]
	sy, okSy = f.params.Num[keySpacingY]
	nx, okNx = f.params.Int[keyNCellsX]
	ny, okNy = f.params.Int[keyNCellsY]
	ok = okOx && okOy && okSx && okSy && okNx && okNy
	return
}

func (f *EFieldPixelatedForce) SetFaceParamsFacewise(fids []int, params []map[string]float64, verbose bool) error {
	for _, p := range params {
		for k := range p {
			if k != "charge" {
				return chk.Err("force_efield_on_cell_boundary_pixelated: unknown per-face parameter %q", k)
			}
		}
	}
	if verbose {
		io.Pf("force_efield_on_cell_boundary_pixelated: set_face_params_facewise on %d faces\n", len(fids))
	}
	return f.params.SetFacewise("force_efield_on_cell_boundary_pixelated.SetFaceParamsFacewise", fids, params)
}

func (f *EFieldPixelatedForce) SetVertexParamsVertexwise(vids []int, params []map[string]float64, verbose bool) error {
	if len(vids) != 0 {
		return chk.Err("force_efield_on_cell_boundary_pixelated: does not accept per-vertex parameters")
	}
	return nil
}

// fieldAt returns the field vector sampled at pixel gc. gc must address a
// real pixel; callers check grid.Contains first.
func (f *EFieldPixelatedForce) fieldAt(gc geom.GridCoord) geom.Vec2 {
	idx := f.grid.FlatIndex(gc)
	if idx < 0 || idx >= len(f.fieldX) || idx >= len(f.fieldY) {
		chk.Panic("force_efield_on_cell_boundary_pixelated: flattened index %d for pixel %v out of range (len=%d,%d)", idx, gc, len(f.fieldX), len(f.fieldY))
	}
	return geom.Vec2{X: f.fieldX[idx], Y: f.fieldY[idx]}
}

// integrateFieldOverEdge computes I(e) = integral_e E(r) dl.
func (f *EFieldPixelatedForce) integrateFieldOverEdge(p0, p1 geom.Vec2, verbose bool) geom.Vec2 {
	pixels, lengths := TracePixels(*f.grid, p0, p1, verbose)
	sum := geom.Vec2{}
	for i, gc := range pixels {
		if !f.grid.Contains(gc) {
			continue
		}
		sum = sum.Add(f.fieldAt(gc).Scale(lengths[i]))
	}
	return sum
}

func (f *EFieldPixelatedForce) ComputeAllVertexForces(m mesh.Mesh, verbose bool) ([]geom.Vec2, error) {
	if f.grid == nil || f.fieldX == nil || f.fieldY == nil {
		return nil, chk.Err("force_efield_on_cell_boundary_pixelated: compute_all_vertex_forces called before grid/field were configured")
	}
	out := geom.ZeroVecs(m.NumVertices())

	// Collect the distinct edges incident to any charged face, then cache
	// each one's integrated field exactly once. This edge cache is local
	// to this call and dropped at its end.
	edgesToCompute := make(map[int]mesh.Edge)
	edgeByFace := make(map[int][]mesh.HalfEdge)
	for _, face := range m.Faces() {
		fid := face.Id()
		if _, ok := f.params.FaceParams[fid]; !ok {
			continue
		}
		loop := face.Circulator()
		edgeByFace[fid] = loop
		for _, he := range loop {
			e := he.Edge()
			edgesToCompute[e.Id()] = e
		}
	}

	edgeIds := make([]int, 0, len(edgesToCompute))
	for id := range edgesToCompute {
		edgeIds = append(edgeIds, id)
	}
	sort.Ints(edgeIds)

	cache := make(map[int]geom.Vec2, len(edgeIds))
	for _, eid := range edgeIds {
		e := edgesToCompute[eid]
		he := e.HalfEdge()
		p0, p1 := he.From().Pos(), he.To().Pos()
		cache[eid] = f.integrateFieldOverEdge(p0, p1, verbose)
	}

	// Distribute each face's charge density onto its bounding half-edges.
	for fid, loop := range edgeByFace {
		charge := f.params.FaceScalar(fid, "charge", 0)
		perim := m.Perimeter(findFaceById(m, fid))
		if perim == 0 {
			continue
		}
		density := charge / perim
		if verbose {
			io.Pf("force_efield_on_cell_boundary_pixelated: face %d charge=%g density=%g\n", fid, charge, density)
		}
		for _, he := range loop {
			integrated := cache[he.Edge().Id()]
			forceOnHalfEdge := integrated.Scale(density)
			half := forceOnHalfEdge.Scale(0.5)
			out[he.From().Id()] = out[he.From().Id()].Add(half)
			out[he.To().Id()] = out[he.To().Id()].Add(half)
		}
	}
	return out, nil
}

// findFaceById re-resolves a face by id. The registry and this force both
// only ever see faces by iterating m.Faces(), so this is O(|F|); acceptable
// given the core never calls it more than once per (face visited while
// distributing) per compute.
func findFaceById(m mesh.Mesh, fid int) mesh.Face {
	for _, f := range m.Faces() {
		if f.Id() == fid {
			return f
		}
	}
	chk.Panic("force_efield_on_cell_boundary_pixelated: face %d vanished from mesh mid-compute", fid)
	return nil
}

func (f *EFieldPixelatedForce) Tension(m mesh.Mesh, he mesh.HalfEdge, verbose bool) (float64, error) {
	vtxForces, err := f.ComputeAllVertexForces(m, verbose)
	if err != nil {
		return 0, err
	}
	return ProjectTension(he, vtxForces), nil
}
