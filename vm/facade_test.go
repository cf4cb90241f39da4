package vm

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/frenebo/VMTutorial-pjk/force"
	"github.com/frenebo/VMTutorial-pjk/geom"
	"github.com/frenebo/VMTutorial-pjk/mesh"
)

func unitSquare() *mesh.ArenaMesh {
	return mesh.NewPolygonMesh(
		[]geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		[][]int{{0, 1, 2, 3}},
	)
}

func Test_facade01(tst *testing.T) {
	chk.PrintTitle("facade01: GetInstantaneousForces returns per-force contributions, not summed")

	sim := New(unitSquare())
	if err := sim.AddForce("a", force.TypeArea, false); err != nil {
		tst.Fatalf("AddForce area: %v", err)
	}
	if err := sim.AddForce("p", force.TypePerimeter, false); err != nil {
		tst.Fatalf("AddForce perimeter: %v", err)
	}
	if err := sim.SetGlobalParams("a", map[string]float64{"A0": 0.5, "kappa": 1.0}, nil, nil, nil, false); err != nil {
		tst.Fatalf("SetGlobalParams area: %v", err)
	}
	if err := sim.SetGlobalParams("p", map[string]float64{"P0": 3.0, "gamma": 1.0}, nil, nil, nil, false); err != nil {
		tst.Fatalf("SetGlobalParams perimeter: %v", err)
	}

	perForce, err := sim.GetInstantaneousForces(false)
	if err != nil {
		tst.Fatalf("GetInstantaneousForces: %v", err)
	}
	if len(perForce) != 2 {
		tst.Fatalf("expected contributions from 2 forces, got %d", len(perForce))
	}

	resultant, err := sim.GetResultantForces(false)
	if err != nil {
		tst.Fatalf("GetResultantForces: %v", err)
	}
	for i := range resultant {
		want := perForce["a"][i].Add(perForce["p"][i])
		chk.Scalar(tst, "resultant.x", 1e-13, resultant[i].X, want.X)
		chk.Scalar(tst, "resultant.y", 1e-13, resultant[i].Y, want.Y)
	}
}

func Test_facade02(tst *testing.T) {
	chk.PrintTitle("facade02: duplicate add is a precondition failure")

	sim := New(unitSquare())
	if err := sim.AddForce("a", force.TypeArea, false); err != nil {
		tst.Fatalf("AddForce: %v", err)
	}
	if err := sim.AddForce("a", force.TypeArea, false); err == nil {
		tst.Fatalf("expected a precondition failure re-adding force id \"a\"")
	}
	if err := sim.DeleteForce("a", false); err != nil {
		tst.Fatalf("DeleteForce: %v", err)
	}
	if err := sim.AddForce("a", force.TypeArea, false); err != nil {
		tst.Fatalf("re-add after delete should succeed: %v", err)
	}
}

func Test_facade03(tst *testing.T) {
	chk.PrintTitle("facade03: unrecognised force type is rejected")

	sim := New(unitSquare())
	if err := sim.AddForce("a", force.Type("not_a_real_force"), false); err == nil {
		tst.Fatalf("expected a precondition failure for an unrecognised force type")
	}
}
