package anim

import (
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/spiral-animation/internal/spiral"
)

// Param names one user-adjustable input.
type Param int

const (
	ParamScale Param = iota
	ParamGrowth
	ParamPoints
	ParamAngularStep
	ParamFamily
	ParamRefresh
)

var paramNames = [...]string{
	ParamScale:       "a",
	ParamGrowth:      "b",
	ParamPoints:      "points",
	ParamAngularStep: "theta",
	ParamFamily:      "spiral",
	ParamRefresh:     "refresh",
}

func (p Param) String() string {
	if p >= 0 && int(p) < len(paramNames) {
		return paramNames[p]
	}
	return fmt.Sprintf("Param(%d)", int(p))
}

// ParseParam resolves an input name such as "theta" to a Param.
func ParseParam(name string) (Param, error) {
	for i, n := range paramNames {
		if n == name {
			return Param(i), nil
		}
	}
	return 0, fmt.Errorf("unknown parameter %q", name)
}

// DefaultMaxPoints caps the point count a single spiral may hold.
const DefaultMaxPoints = 100_000

// Params is the full parameter state of the animation.
type Params struct {
	Family          spiral.Family
	Scale           float64
	Growth          float64
	AngularStep     float64
	PointCount      int
	RefreshInterval time.Duration
}

// DefaultParams returns the start-up parameters.
func DefaultParams() Params {
	return Params{
		Family:          spiral.Archimedean,
		Scale:           3,
		Growth:          1,
		AngularStep:     1,
		PointCount:      500,
		RefreshInterval: 70 * time.Millisecond,
	}
}

// Get returns the numeric value of p. Family is reported by index.
func (ps Params) Get(p Param) float64 {
	switch p {
	case ParamScale:
		return ps.Scale
	case ParamGrowth:
		return ps.Growth
	case ParamPoints:
		return float64(ps.PointCount)
	case ParamAngularStep:
		return ps.AngularStep
	case ParamFamily:
		return float64(ps.Family)
	case ParamRefresh:
		return float64(ps.RefreshInterval / time.Millisecond)
	}
	return math.NaN()
}

// with returns ps with p set to value, applying the numeric coercion rules.
// It reports false when value is rejected and ps is unchanged.
func (ps Params) with(p Param, value float64, maxPoints int) (Params, bool) {
	switch p {
	case ParamScale:
		ps.Scale = value
	case ParamGrowth:
		ps.Growth = value
	case ParamAngularStep:
		ps.AngularStep = value
	case ParamPoints:
		ps.PointCount = coercePoints(value, maxPoints)
	case ParamFamily:
		if math.IsNaN(value) || value < 0 || value >= float64(len(spiral.Families())) {
			return ps, false
		}
		ps.Family = spiral.Family(int(value))
	case ParamRefresh:
		if math.IsNaN(value) || value < 1 || value > float64(time.Hour/time.Millisecond) {
			return ps, false
		}
		ps.RefreshInterval = time.Duration(value) * time.Millisecond
	default:
		return ps, false
	}
	return ps, true
}

func coercePoints(value float64, maxPoints int) int {
	switch {
	case math.IsNaN(value) || value <= 0:
		return 0
	case value >= float64(maxPoints):
		return maxPoints
	}
	return int(value)
}
