package force

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"

	"github.com/frenebo/VMTutorial-pjk/geom"
)

func Test_tracer01(tst *testing.T) {
	chk.PrintTitle("tracer01: edge crossing a single column boundary")

	g := geom.GridSpec{OriginX: 0, OriginY: 0, SpacingX: 1, SpacingY: 1, NCellsX: 2, NCellsY: 1}
	p0 := geom.Vec2{X: 0.25, Y: 0.5}
	p1 := geom.Vec2{X: 1.75, Y: 0.5}

	pixels, lengths := TracePixels(g, p0, p1, chk.Verbose)

	if len(pixels) != 2 {
		tst.Fatalf("expected 2 pixels, got %d: %v", len(pixels), pixels)
	}
	if pixels[0] != (geom.GridCoord{I: 0, J: 0}) || pixels[1] != (geom.GridCoord{I: 1, J: 0}) {
		tst.Fatalf("expected pixels [(0,0),(1,0)], got %v", pixels)
	}
	chk.Scalar(tst, "length[0]", 1e-12, lengths[0], 0.75)
	chk.Scalar(tst, "length[1]", 1e-12, lengths[1], 0.75)
}

func Test_tracer02(tst *testing.T) {
	chk.PrintTitle("tracer02: edge entirely inside one pixel")

	g := geom.GridSpec{OriginX: 0, OriginY: 0, SpacingX: 10, SpacingY: 10, NCellsX: 1, NCellsY: 1}
	p0 := geom.Vec2{X: 1, Y: 1}
	p1 := geom.Vec2{X: 4, Y: 5}

	pixels, lengths := TracePixels(g, p0, p1, false)
	if len(pixels) != 1 || pixels[0] != (geom.GridCoord{I: 0, J: 0}) {
		tst.Fatalf("expected a single pixel (0,0), got %v", pixels)
	}
	chk.Scalar(tst, "length", 1e-12, lengths[0], p1.Sub(p0).Len())
}

func Test_tracer03(tst *testing.T) {
	chk.PrintTitle("tracer03: edge-tracer partition sums to the full edge length")

	g := geom.GridSpec{OriginX: 0, OriginY: 0, SpacingX: 0.37, SpacingY: 0.41, NCellsX: 20, NCellsY: 20}
	p0 := geom.Vec2{X: 0.1, Y: 0.2}
	p1 := geom.Vec2{X: 6.8, Y: 5.3}

	pixels, lengths := TracePixels(g, p0, p1, false)
	var sum float64
	for _, l := range lengths {
		sum += l
	}
	chk.Scalar(tst, "sum of segment lengths", 1e-9, sum, p1.Sub(p0).Len())

	if chk.Verbose {
		plt.Reset()
		xs, ys := make([]float64, len(pixels)), make([]float64, len(pixels))
		for i, gc := range pixels {
			v := g.VecOf(gc)
			xs[i], ys[i] = v.X, v.Y
		}
		plt.Plot(xs, ys, "'b.-'")
		plt.SaveD("/tmp/vmtutorial-pjk", "tracer03.png")
	}
}

func Test_tracer04(tst *testing.T) {
	chk.PrintTitle("tracer04: pixel membership at each segment's midpoint")

	g := geom.GridSpec{OriginX: -1, OriginY: 2, SpacingX: 0.5, SpacingY: 0.73, NCellsX: 25, NCellsY: 25}
	p0 := geom.Vec2{X: -0.8, Y: 2.1}
	p1 := geom.Vec2{X: 9.4, Y: 10.9}

	pixels, _ := TracePixels(g, p0, p1, false)
	points := make([]geom.Vec2, len(pixels)+1)
	points[0] = p0
	points[len(points)-1] = p1
	for k := 0; k < len(pixels)-1; k++ {
		points[k+1] = crossingPoint(g, pixels[k], pixels[k+1], p0, p1)
	}
	for i, gc := range pixels {
		mid := points[i].Add(points[i+1]).Scale(0.5)
		want := g.GridOf(mid)
		if want != gc {
			tst.Fatalf("midpoint of segment %d (pixel %v) falls in pixel %v instead", i, gc, want)
		}
	}
}
