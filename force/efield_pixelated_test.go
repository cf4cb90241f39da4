package force

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/frenebo/VMTutorial-pjk/geom"
)

func Test_efield_pixelated01(tst *testing.T) {
	chk.PrintTitle("efield_pixelated01: single pixel equals the uniform-field force")

	m := squareMesh(geom.Vec2{X: 1, Y: 0})
	f := NewEFieldPixelatedForce()
	if err := f.SetGlobalParams(nil, nil, map[string]int{"ncells_x": 1, "ncells_y": 1}, nil, false); err != nil {
		tst.Fatalf("SetGlobalParams (ncells): %v", err)
	}
	if err := f.SetGlobalParams(map[string]float64{"origin_x": 0, "origin_y": 0, "spacing_x": 10, "spacing_y": 10}, nil, nil, nil, false); err != nil {
		tst.Fatalf("SetGlobalParams (grid): %v", err)
	}
	if err := f.SetGlobalParams(nil, nil, nil, map[string][]float64{"field_flattened_x": {3}, "field_flattened_y": {4}}, false); err != nil {
		tst.Fatalf("SetGlobalParams (field): %v", err)
	}
	if err := f.SetFaceParamsFacewise([]int{0}, []map[string]float64{{"charge": 1.0}}, false); err != nil {
		tst.Fatalf("SetFaceParamsFacewise: %v", err)
	}

	out, err := f.ComputeAllVertexForces(m, false)
	if err != nil {
		tst.Fatalf("ComputeAllVertexForces: %v", err)
	}

	uf := NewEFieldUniformForce()
	if err := uf.SetGlobalParams(map[string]float64{"E_x": 3, "E_y": 4}, nil, nil, nil, false); err != nil {
		tst.Fatalf("uniform SetGlobalParams: %v", err)
	}
	if err := uf.SetFaceParamsFacewise([]int{0}, []map[string]float64{{"charge": 1.0}}, false); err != nil {
		tst.Fatalf("uniform SetFaceParamsFacewise: %v", err)
	}
	want, err := uf.ComputeAllVertexForces(m, false)
	if err != nil {
		tst.Fatalf("uniform ComputeAllVertexForces: %v", err)
	}

	for i := range out {
		chk.Scalar(tst, "pixelated.x == uniform.x", 1e-12, out[i].X, want[i].X)
		chk.Scalar(tst, "pixelated.y == uniform.y", 1e-12, out[i].Y, want[i].Y)
	}
}

func Test_efield_pixelated02(tst *testing.T) {
	chk.PrintTitle("efield_pixelated02: spatially constant field matches uniform force")

	m := squareMesh(geom.Vec2{X: 1, Y: 0})
	f := NewEFieldPixelatedForce()
	field := make([]float64, 9)
	fieldY := make([]float64, 9)
	for i := range field {
		field[i] = 2.5
		fieldY[i] = -1.5
	}
	if err := f.SetGlobalParams(
		map[string]float64{"origin_x": -1, "origin_y": -1, "spacing_x": 1, "spacing_y": 1},
		nil,
		map[string]int{"ncells_x": 3, "ncells_y": 3},
		map[string][]float64{"field_flattened_x": field, "field_flattened_y": fieldY},
		false,
	); err != nil {
		tst.Fatalf("SetGlobalParams: %v", err)
	}
	if err := f.SetFaceParamsFacewise([]int{0}, []map[string]float64{{"charge": 3.0}}, false); err != nil {
		tst.Fatalf("SetFaceParamsFacewise: %v", err)
	}

	out, err := f.ComputeAllVertexForces(m, false)
	if err != nil {
		tst.Fatalf("ComputeAllVertexForces: %v", err)
	}

	uf := NewEFieldUniformForce()
	if err := uf.SetGlobalParams(map[string]float64{"E_x": 2.5, "E_y": -1.5}, nil, nil, nil, false); err != nil {
		tst.Fatalf("uniform SetGlobalParams: %v", err)
	}
	if err := uf.SetFaceParamsFacewise([]int{0}, []map[string]float64{{"charge": 3.0}}, false); err != nil {
		tst.Fatalf("uniform SetFaceParamsFacewise: %v", err)
	}
	want, err := uf.ComputeAllVertexForces(m, false)
	if err != nil {
		tst.Fatalf("uniform ComputeAllVertexForces: %v", err)
	}

	for i := range out {
		chk.Scalar(tst, "pixelated.x == uniform.x", 1e-9, out[i].X, want[i].X)
		chk.Scalar(tst, "pixelated.y == uniform.y", 1e-9, out[i].Y, want[i].Y)
	}
}

func Test_efield_pixelated03(tst *testing.T) {
	chk.PrintTitle("efield_pixelated03: compute before grid configured is a precondition failure")

	m := squareMesh(geom.Vec2{X: 1, Y: 0})
	f := NewEFieldPixelatedForce()
	if err := f.SetFaceParamsFacewise([]int{0}, []map[string]float64{{"charge": 1.0}}, false); err != nil {
		tst.Fatalf("SetFaceParamsFacewise: %v", err)
	}
	if _, err := f.ComputeAllVertexForces(m, false); err == nil {
		tst.Fatalf("expected a precondition error for an unconfigured grid")
	}
}

func Test_efield_pixelated04(tst *testing.T) {
	chk.PrintTitle("efield_pixelated04: mismatched flattened-field length is rejected")

	f := NewEFieldPixelatedForce()
	if err := f.SetGlobalParams(nil, nil, map[string]int{"ncells_x": 2, "ncells_y": 2}, nil, false); err != nil {
		tst.Fatalf("SetGlobalParams (ncells): %v", err)
	}
	if err := f.SetGlobalParams(map[string]float64{"origin_x": 0, "origin_y": 0, "spacing_x": 1, "spacing_y": 1}, nil, nil, nil, false); err != nil {
		tst.Fatalf("SetGlobalParams (grid): %v", err)
	}
	err := f.SetGlobalParams(nil, nil, nil, map[string][]float64{"field_flattened_x": {1, 2, 3}, "field_flattened_y": {1, 2, 3}}, false)
	if err == nil {
		tst.Fatalf("expected an error: field_flattened_x has 3 entries but ncells_x*ncells_y=4")
	}
}
