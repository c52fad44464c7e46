// Package ui holds the input-side glue shared by the window and terminal
// front ends: numeric coercion, input enablement per family and stepwise
// parameter adjustment.
package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/iburimskiy/spiral-animation/internal/anim"
	"github.com/iburimskiy/spiral-animation/internal/spiral"
)

// Inputs lists the adjustable inputs in the order they are cycled through.
var Inputs = []anim.Param{
	anim.ParamScale,
	anim.ParamGrowth,
	anim.ParamPoints,
	anim.ParamAngularStep,
	anim.ParamFamily,
	anim.ParamRefresh,
}

// Coerce converts raw input text to a number. Unparsable text becomes NaN.
func Coerce(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Enabled reports whether input p has any effect for family f.
// The secondary factor b is not read by any of the current formulas.
func Enabled(p anim.Param, f spiral.Family) bool {
	if p == anim.ParamGrowth {
		return false
	}
	return true
}

var steps = map[anim.Param]float64{
	anim.ParamScale:       0.5,
	anim.ParamGrowth:      0.1,
	anim.ParamPoints:      10,
	anim.ParamAngularStep: 0.01,
	anim.ParamRefresh:     10,
}

// Step returns the increment used by Nudge for p.
func Step(p anim.Param) float64 {
	return steps[p]
}

// Nudge moves input p one step in direction dir (+1 or -1). Family cycles
// forward for either direction. Disabled inputs are left alone.
func Nudge(c *anim.Controller, p anim.Param, dir int) {
	params := c.Params()
	if !Enabled(p, params.Family) {
		return
	}
	if p == anim.ParamFamily {
		c.SetFamily(params.Family.Next())
		return
	}
	value := params.Get(p) + float64(dir)*Step(p)
	// keep the refresh interval positive when stepping down
	if p == anim.ParamRefresh && value < 1 {
		value = 1
	}
	c.SetParameter(p, value)
}

// Selection tracks which input the keyboard currently edits.
type Selection struct {
	index int
}

// Current returns the selected input.
func (s *Selection) Current() anim.Param {
	return Inputs[s.index]
}

// Move advances the selection by dir, skipping inputs disabled for f.
func (s *Selection) Move(dir int, f spiral.Family) {
	for range Inputs {
		s.index = (s.index + dir + len(Inputs)) % len(Inputs)
		if Enabled(Inputs[s.index], f) {
			return
		}
	}
}
