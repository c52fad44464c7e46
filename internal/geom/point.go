package geom

import (
	"image/color"
	"math"
)

// Epsilon is the default per-axis tolerance used by Equal.
const Epsilon = 1e-8

// Painter is the drawing primitive a Point needs from a surface.
type Painter interface {
	FillCircle(x, y, r float64, c color.Color)
}

// Point is an immutable 2D coordinate carrying the radius it is drawn with.
type Point struct {
	X, Y   float64
	Radius float64
}

// Pt creates a Point.
func Pt(x, y, radius float64) Point {
	return Point{X: x, Y: y, Radius: radius}
}

// Polar converts (r, angle) around origin to a Cartesian point.
func Polar(origin Point, r, angle, radius float64) Point {
	return Point{
		X:      origin.X + r*math.Cos(angle),
		Y:      origin.Y + r*math.Sin(angle),
		Radius: radius,
	}
}

// Degenerate returns a point marking an undefined position (a formula singularity).
// Its coordinates are NaN so every consumer sees it as non-finite.
func Degenerate(radius float64) Point {
	return Point{X: math.NaN(), Y: math.NaN(), Radius: radius}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rotate returns p rotated about pivot by deg degrees (counter-clockwise in a y-up frame).
func (p Point) Rotate(pivot Point, deg float64) Point {
	sin, cos := math.Sincos(DegToRad(deg))
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{
		X:      pivot.X + cos*dx - sin*dy,
		Y:      pivot.Y + sin*dx + cos*dy,
		Radius: p.Radius,
	}
}

// Equals compares X and Y independently within eps.
func (p Point) Equals(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

// Equal is Equals with Epsilon.
func (p Point) Equal(q Point) bool {
	return p.Equals(q, Epsilon)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Draw paints p as a filled white circle. Non-finite points are skipped.
func (p Point) Draw(dst Painter) {
	if !p.IsFinite() {
		return
	}
	dst.FillCircle(p.X, p.Y, p.Radius, color.White)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
