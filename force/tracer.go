package force

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/frenebo/VMTutorial-pjk/geom"
)

// TracePixels walks the segment p0->p1 through grid and returns, in
// traversal order, every pixel it crosses along with the length of the
// segment lying within that pixel. Grounded line-for-line on
// _get_edge_pixel_intersections/_get_edge_lengths_passing_thru_pixels in
// force_efield_on_cell_boundary_pixelated.cpp. On an exact tie between a
// row and a column crossing, the column crossing is taken first.
func TracePixels(grid geom.GridSpec, p0, p1 geom.Vec2, verbose bool) ([]geom.GridCoord, []float64) {
	g0 := grid.GridOf(p0)
	g1 := grid.GridOf(p1)

	if g0 == g1 {
		if verbose {
			io.Pf("force: TracePixels - entire segment lies in pixel %v\n", g0)
		}
		return []geom.GridCoord{g0}, []float64{p1.Sub(p0).Len()}
	}

	colLines, colT := crossingLines(g0.I, g1.I, grid.SpacingX, grid.OriginX, p0.X, p1.X)
	rowLines, rowT := crossingLines(g0.J, g1.J, grid.SpacingY, grid.OriginY, p0.Y, p1.Y)

	pixels := []geom.GridCoord{g0}
	current := g0
	ci, ri := 0, 0
	for ci < len(colLines) || ri < len(rowLines) {
		takeRow := false
		switch {
		case ci == len(colLines):
			takeRow = true
		case ri == len(rowLines):
			takeRow = false
		default:
			// tie (rowT[ri] == colT[ci]) resolves to the column crossing.
			takeRow = rowT[ri] < colT[ci]
		}

		var next geom.GridCoord
		if takeRow {
			rowVal := rowLines[ri]
			switch rowVal {
			case current.J:
				next = geom.GridCoord{I: current.I, J: current.J - 1}
			case current.J + 1:
				next = geom.GridCoord{I: current.I, J: current.J + 1}
			default:
				chk.Panic("force: TracePixels - row crossing %d does not border current pixel %v", rowVal, current)
			}
			ri++
		} else {
			colVal := colLines[ci]
			switch colVal {
			case current.I:
				next = geom.GridCoord{I: current.I - 1, J: current.J}
			case current.I + 1:
				next = geom.GridCoord{I: current.I + 1, J: current.J}
			default:
				chk.Panic("force: TracePixels - column crossing %d does not border current pixel %v", colVal, current)
			}
			ci++
		}
		current = next
		pixels = append(pixels, current)
	}

	if current != g1 {
		chk.Panic("force: TracePixels - traversal ended at %v, expected to terminate at %v", current, g1)
	}

	points := make([]geom.Vec2, len(pixels)+1)
	points[0] = p0
	points[len(points)-1] = p1
	for k := 0; k < len(pixels)-1; k++ {
		points[k+1] = crossingPoint(grid, pixels[k], pixels[k+1], p0, p1)
	}

	lengths := make([]float64, len(pixels))
	for k := range pixels {
		lengths[k] = points[k+1].Sub(points[k]).Len()
	}
	if verbose {
		for k, gc := range pixels {
			io.Pf("force: TracePixels - pixel %v, length %g\n", gc, lengths[k])
		}
	}
	return pixels, lengths
}

// crossingLines returns the grid-line indices crossed when moving from
// start to end along one axis, together with each crossing's relative
// position t in [0,1] along the edge (edgeStart -> edgeEnd in world
// coordinates). When start==end the edge never leaves its starting cell
// along this axis and both returned slices are empty. Grounded on
// _get_crossings_generalized plus the column/row relative-position setup in
// _get_edge_pixel_intersections.
func crossingLines(start, end int, spacing, origin, edgeStart, edgeEnd float64) (lines []int, t []float64) {
	switch {
	case start == end:
		return nil, nil
	case start < end:
		for i := start + 1; i <= end; i++ {
			lines = append(lines, i)
		}
	default:
		for i := start; i > end; i-- {
			lines = append(lines, i)
		}
	}
	t = make([]float64, len(lines))
	for k, line := range lines {
		worldCoord := origin + float64(line)*spacing
		t[k] = (worldCoord - edgeStart) / (edgeEnd - edgeStart)
	}
	return lines, t
}

// crossingPoint reconstructs the absolute world coordinate where the
// traversal moves from pixel `this` to the adjacent pixel `next`, clamping
// the interpolated off-axis coordinate into the shared pixel edge's
// [0,spacing] extent to absorb floating-point drift.
func crossingPoint(grid geom.GridSpec, this, next geom.GridCoord, p0, p1 geom.Vec2) geom.Vec2 {
	switch {
	case this.I != next.I && this.J == next.J:
		colLine := this.I
		if next.I > this.I {
			colLine = next.I
		}
		x := grid.OriginX + float64(colLine)*grid.SpacingX
		t := (x - p0.X) / (p1.X - p0.X)
		yAbs := p0.Y + t*(p1.Y-p0.Y)
		rowOriginY := grid.OriginY + float64(this.J)*grid.SpacingY
		relY := clamp(yAbs-rowOriginY, 0, grid.SpacingY)
		return geom.Vec2{X: x, Y: rowOriginY + relY}
	case this.J != next.J && this.I == next.I:
		rowLine := this.J
		if next.J > this.J {
			rowLine = next.J
		}
		y := grid.OriginY + float64(rowLine)*grid.SpacingY
		t := (y - p0.Y) / (p1.Y - p0.Y)
		xAbs := p0.X + t*(p1.X-p0.X)
		colOriginX := grid.OriginX + float64(this.I)*grid.SpacingX
		relX := clamp(xAbs-colOriginX, 0, grid.SpacingX)
		return geom.Vec2{X: colOriginX + relX, Y: y}
	default:
		chk.Panic("force: crossingPoint - consecutive traversed pixels %v -> %v are not simple neighbours", this, next)
		return geom.Vec2{}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
