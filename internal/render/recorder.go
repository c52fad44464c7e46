package render

import (
	"image/color"
)

// Circle is one recorded FillCircle call.
type Circle struct {
	X, Y, R float64
	Color   color.Color
}

// Recorder is an in-memory Surface that keeps a draw list.
type Recorder struct {
	Width, Height int

	circles []Circle
	clears  int
}

// NewRecorder creates a Recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Clear() {
	r.circles = r.circles[:0]
	r.clears++
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.Color) {
	r.circles = append(r.circles, Circle{X: x, Y: y, R: radius, Color: c})
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Circles returns the draw list since the last Clear.
func (r *Recorder) Circles() []Circle {
	return append([]Circle(nil), r.circles...)
}

// Clears returns how many times Clear was called.
func (r *Recorder) Clears() int {
	return r.clears
}
