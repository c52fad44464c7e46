package spiral

import (
	"github.com/iburimskiy/spiral-animation/internal/geom"
)

// Spiral owns an ordered point sequence produced by a Generator.
// It never regenerates; Rotate only transforms the points it already has.
type Spiral struct {
	points []geom.Point
}

// New builds a spiral by running gen once.
func New(gen Generator, resolution int, scale, angularStep float64, origin geom.Point) *Spiral {
	return &Spiral{points: gen.Generate(resolution, scale, angularStep, origin)}
}

// Build picks the generator for f from gens and runs it once.
func Build(gens map[Family]Generator, f Family, resolution int, scale, angularStep float64, origin geom.Point) *Spiral {
	return New(GeneratorFor(gens, f), resolution, scale, angularStep, origin)
}

// Points returns a copy of the current sequence.
func (s *Spiral) Points() []geom.Point {
	return append([]geom.Point(nil), s.points...)
}

func (s *Spiral) Len() int {
	return len(s.points)
}

// Visible counts the points Draw would actually paint.
func (s *Spiral) Visible() int {
	n := 0
	for _, p := range s.points {
		if p.IsFinite() {
			n++
		}
	}
	return n
}

// Draw paints every point in sequence order.
func (s *Spiral) Draw(dst geom.Painter) {
	for _, p := range s.points {
		p.Draw(dst)
	}
}

// Rotate replaces the sequence with every point rotated about pivot by deg degrees.
func (s *Spiral) Rotate(pivot geom.Point, deg float64) {
	rotated := make([]geom.Point, len(s.points))
	for i, p := range s.points {
		rotated[i] = p.Rotate(pivot, deg)
	}
	s.points = rotated
}
