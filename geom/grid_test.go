package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {
	chk.PrintTitle("grid01: GridOf/VecOf round-trip and boundary floor rule")

	g := GridSpec{OriginX: 0, OriginY: 0, SpacingX: 10, SpacingY: 10, NCellsX: 2, NCellsY: 2}

	c := g.GridOf(Vec2{X: 5, Y: 15})
	if c.I != 0 || c.J != 1 {
		tst.Fatalf("GridOf(5,15) = %v, want (0,1)", c)
	}

	// a point exactly on a grid line maps to the pixel to its upper-right.
	onLine := g.GridOf(Vec2{X: 10, Y: 0})
	if onLine.I != 1 || onLine.J != 0 {
		tst.Fatalf("GridOf on grid line = %v, want (1,0)", onLine)
	}

	origin := g.VecOf(GridCoord{I: 1, J: 1})
	chk.Scalar(tst, "VecOf(1,1).x", 1e-17, origin.X, 10)
	chk.Scalar(tst, "VecOf(1,1).y", 1e-17, origin.Y, 10)

	if !g.Contains(GridCoord{I: 0, J: 0}) {
		tst.Fatalf("grid must contain (0,0)")
	}
	if g.Contains(GridCoord{I: 2, J: 0}) {
		tst.Fatalf("grid must not contain (2,0) when NCellsX=2")
	}
	if g.Contains(GridCoord{I: -1, J: 0}) {
		tst.Fatalf("grid must not contain negative coords")
	}
}

func Test_grid02(tst *testing.T) {
	chk.PrintTitle("grid02: FlatIndex is row-major i*ncells_y+j")

	g := GridSpec{NCellsX: 3, NCellsY: 2}
	if g.FlatIndex(GridCoord{I: 0, J: 0}) != 0 {
		tst.Fatalf("FlatIndex(0,0) should be 0")
	}
	if g.FlatIndex(GridCoord{I: 1, J: 0}) != 2 {
		tst.Fatalf("FlatIndex(1,0) should be 2")
	}
	if g.FlatIndex(GridCoord{I: 0, J: 1}) != 1 {
		tst.Fatalf("FlatIndex(0,1) should be 1")
	}
}
