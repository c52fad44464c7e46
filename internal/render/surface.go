package render

import (
	"image/color"
	"math"
)

// Surface is the drawing target the animation paints on.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	Size() (width, height int)
}

// Culled reports whether a circle cannot touch a width×height surface.
// Non-finite input is always culled; coordinates far outside the surface would
// otherwise overflow float32 drawing APIs.
func Culled(x, y, r float64, width, height int) bool {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(r) || math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsInf(r, 0) {
		return true
	}
	r = math.Abs(r)
	return x+r < 0 || y+r < 0 || x-r > float64(width) || y-r > float64(height)
}
