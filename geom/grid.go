package geom

import "math"

// GridCoord addresses a single pixel of a GridSpec by its column (i) and row
// (j) index. Negative components and components beyond the spec's
// ncells are legal to construct (the tracer walks through them) but do not
// address a real pixel.
type GridCoord struct {
	I, J int
}

// GridSpec describes a rectilinear grid of field samples: pixel (i,j)
// occupies [OriginX+i*SpacingX, OriginX+(i+1)*SpacingX) x
// [OriginY+j*SpacingY, OriginY+(j+1)*SpacingY).
type GridSpec struct {
	OriginX, OriginY   float64
	SpacingX, SpacingY float64
	NCellsX, NCellsY   int
}

// VecOf returns the lower-left corner of pixel gc, in world coordinates.
func (g GridSpec) VecOf(gc GridCoord) Vec2 {
	return Vec2{
		X: g.OriginX + float64(gc.I)*g.SpacingX,
		Y: g.OriginY + float64(gc.J)*g.SpacingY,
	}
}

// GridOf returns the pixel coordinate containing v. A point exactly on a
// grid line maps to the pixel to its upper-right, because floor is used
// directly on the normalised offset.
func (g GridSpec) GridOf(v Vec2) GridCoord {
	relX := (v.X - g.OriginX) / g.SpacingX
	relY := (v.Y - g.OriginY) / g.SpacingY
	return GridCoord{
		I: int(math.Floor(relX)),
		J: int(math.Floor(relY)),
	}
}

// Contains reports whether gc addresses a real pixel of the grid.
func (g GridSpec) Contains(gc GridCoord) bool {
	return gc.I >= 0 && gc.I < g.NCellsX && gc.J >= 0 && gc.J < g.NCellsY
}

// FlatIndex returns the row-major flattened-field index for gc, as used by
// the field_flattened_x/field_flattened_y parameter arrays: i*ncells_y+j.
func (g GridSpec) FlatIndex(gc GridCoord) int {
	return gc.I*g.NCellsY + gc.J
}
