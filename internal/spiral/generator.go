package spiral

import (
	"math"

	"github.com/iburimskiy/spiral-animation/internal/geom"
)

// Generator converts a polar spiral formula into an ordered point sequence.
// Generate returns exactly max(resolution, 0) points. Numeric singularities
// surface as non-finite points and are never reported as errors.
type Generator interface {
	Generate(resolution int, scale, angularStep float64, origin geom.Point) []geom.Point
}

// PointRadius is the radius given to generated points unless overridden.
const PointRadius = 20

// ArchimedeanGenerator implements r = scale * angle, angle = step * i.
type ArchimedeanGenerator struct {
	Radius float64
}

func (g ArchimedeanGenerator) Generate(resolution int, scale, angularStep float64, origin geom.Point) []geom.Point {
	points := make([]geom.Point, 0, max(resolution, 0))
	for i := 0; i < resolution; i++ {
		angle := angularStep * float64(i)
		points = append(points, geom.Polar(origin, scale*angle, angle, g.Radius))
	}
	return points
}

// HyperbolicGenerator implements r = scale / angle, angle = step * i.
// The formula is undefined at angle 0; that point is emitted as geom.Degenerate.
type HyperbolicGenerator struct {
	Radius float64
}

func (g HyperbolicGenerator) Generate(resolution int, scale, angularStep float64, origin geom.Point) []geom.Point {
	points := make([]geom.Point, 0, max(resolution, 0))
	for i := 0; i < resolution; i++ {
		angle := angularStep * float64(i)
		if angle == 0 {
			points = append(points, geom.Degenerate(g.Radius))
			continue
		}
		points = append(points, geom.Polar(origin, scale/angle, angle, g.Radius))
	}
	return points
}

// LogarithmicGenerator implements r = scale * angle, angle = exp(step * i).
// Radii overflow quickly; overflowed points come out non-finite.
type LogarithmicGenerator struct {
	Radius float64
}

func (g LogarithmicGenerator) Generate(resolution int, scale, angularStep float64, origin geom.Point) []geom.Point {
	points := make([]geom.Point, 0, max(resolution, 0))
	for i := 0; i < resolution; i++ {
		angle := math.Exp(angularStep * float64(i))
		points = append(points, geom.Polar(origin, scale*angle, angle, g.Radius))
	}
	return points
}

// Generators maps every family to its generator, all using radius for their points.
func Generators(radius float64) map[Family]Generator {
	return map[Family]Generator{
		Archimedean: ArchimedeanGenerator{Radius: radius},
		Hyperbolic:  HyperbolicGenerator{Radius: radius},
		Logarithmic: LogarithmicGenerator{Radius: radius},
	}
}

var defaultGenerators = Generators(PointRadius)

// GeneratorFor looks f up in gens. Unknown families fall back to Archimedean,
// and a nil map means the default-radius set.
func GeneratorFor(gens map[Family]Generator, f Family) Generator {
	if gens == nil {
		gens = defaultGenerators
	}
	if g, ok := gens[f]; ok {
		return g
	}
	if g, ok := gens[Archimedean]; ok {
		return g
	}
	return defaultGenerators[Archimedean]
}
