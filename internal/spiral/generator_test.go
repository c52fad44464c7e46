package spiral

import (
	"math"
	"testing"

	"github.com/iburimskiy/spiral-animation/internal/geom"
	"github.com/stretchr/testify/require"
)

var center = geom.Pt(512, 256, 0)

func TestGenerateLength(t *testing.T) {
	for family, gen := range Generators(PointRadius) {
		for _, n := range []int{-3, 0, 1, 2, 17, 500} {
			points := gen.Generate(n, 3, 1, center)
			require.Len(t, points, max(n, 0), "family=%s n=%d", family, n)
		}
	}
}

func TestGenerateCarriesRadius(t *testing.T) {
	for _, gen := range Generators(7) {
		for _, p := range gen.Generate(5, 1, 0.5, center) {
			require.Equal(t, 7.0, p.Radius)
		}
	}
}

func TestArchimedeanStartsAtOrigin(t *testing.T) {
	points := ArchimedeanGenerator{Radius: 1}.Generate(3, 1, 1, center)
	require.True(t, points[0].Equal(center))
	// angle 1, r 1
	require.True(t, points[1].Equal(geom.Pt(center.X+math.Cos(1), center.Y+math.Sin(1), 0)))
	// angle 2, r 2
	require.True(t, points[2].Equal(geom.Pt(center.X+2*math.Cos(2), center.Y+2*math.Sin(2), 0)))
}

func TestArchimedeanRadiusGrowsLinearly(t *testing.T) {
	points := ArchimedeanGenerator{}.Generate(50, 3, 0.25, center)
	for i, p := range points {
		require.InDelta(t, 3*0.25*float64(i), p.Distance(center), 1e-9)
	}
}

func TestHyperbolicSingularityIsDetected(t *testing.T) {
	points := HyperbolicGenerator{Radius: 1}.Generate(4, 3, 1, center)
	require.Len(t, points, 4)
	require.False(t, points[0].IsFinite(), "index 0 must be flagged, got %v", points[0])
	for i := 1; i < len(points); i++ {
		require.True(t, points[i].IsFinite())
		require.InDelta(t, 3/float64(i), points[i].Distance(center), 1e-9)
	}
}

func TestHyperbolicZeroStepIsAllDegenerate(t *testing.T) {
	for _, p := range (HyperbolicGenerator{}).Generate(10, 3, 0, center) {
		require.False(t, p.IsFinite())
	}
}

func TestLogarithmic(t *testing.T) {
	points := LogarithmicGenerator{}.Generate(3, 2, 1, center)
	for i, p := range points {
		angle := math.Exp(float64(i))
		want := geom.Pt(center.X+2*angle*math.Cos(angle), center.Y+2*angle*math.Sin(angle), 0)
		require.True(t, p.Equal(want), "i=%d got %v want %v", i, p, want)
	}
}

func TestLogarithmicOverflowIsNonFinite(t *testing.T) {
	points := LogarithmicGenerator{}.Generate(800, 3, 1, center)
	require.Len(t, points, 800)
	require.False(t, points[799].IsFinite())
}

func TestNaNParametersProduceNonFinitePoints(t *testing.T) {
	for family, gen := range Generators(1) {
		points := gen.Generate(5, math.NaN(), 1, center)
		for i := 1; i < len(points); i++ {
			require.False(t, points[i].IsFinite(), "family=%s i=%d", family, i)
		}
	}
}

func TestGeneratorFor(t *testing.T) {
	gens := Generators(7)
	require.Equal(t, ArchimedeanGenerator{Radius: 7}, GeneratorFor(gens, Archimedean))
	require.Equal(t, HyperbolicGenerator{Radius: 7}, GeneratorFor(gens, Hyperbolic))
	require.Equal(t, LogarithmicGenerator{Radius: 7}, GeneratorFor(gens, Logarithmic))
	require.Equal(t, ArchimedeanGenerator{Radius: 7}, GeneratorFor(gens, Family(42)))
	require.Equal(t, HyperbolicGenerator{Radius: PointRadius}, GeneratorFor(nil, Hyperbolic))
	require.Equal(t, ArchimedeanGenerator{Radius: PointRadius}, GeneratorFor(map[Family]Generator{}, Logarithmic))
}
