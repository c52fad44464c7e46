package anim

import (
	"github.com/iburimskiy/spiral-animation/internal/geom"
	"github.com/iburimskiy/spiral-animation/internal/render"
	"github.com/iburimskiy/spiral-animation/internal/spiral"

	"github.com/rs/zerolog"
)

// DefaultStepDegrees is the rotation applied on every tick.
const DefaultStepDegrees = 90.0

// Controller owns the active spiral, its parameters and the repeating tick
// that rotates and redraws it. It is not safe for concurrent use; the host
// loop drives it together with its Scheduler from a single goroutine.
type Controller struct {
	surface render.Surface
	sched   Scheduler
	params  Params

	generators  map[spiral.Family]spiral.Generator
	center      geom.Point
	stepDegrees float64
	maxPoints   int

	spiral     *spiral.Spiral
	task       Task
	generation uint64
	ticks      uint64

	onRestart []func(Params)
	log       zerolog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithStepDegrees sets the per-tick rotation.
func WithStepDegrees(deg float64) Option {
	return func(c *Controller) {
		c.stepDegrees = deg
	}
}

// WithPointRadius sets the radius of every generated point.
func WithPointRadius(radius float64) Option {
	return func(c *Controller) {
		c.generators = spiral.Generators(radius)
	}
}

// WithMaxPoints caps the point count accepted by SetParameter.
func WithMaxPoints(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxPoints = n
		}
	}
}

// WithLogger sets the logger used for restart events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// OnRestart registers fn to run after every restart with the new parameters.
func OnRestart(fn func(Params)) Option {
	return func(c *Controller) {
		c.onRestart = append(c.onRestart, fn)
	}
}

// New creates a Controller. The surface size is read once; its center is both
// the spiral origin and the rotation pivot. Call Restart to start animating.
func New(surface render.Surface, sched Scheduler, params Params, opts ...Option) *Controller {
	w, h := surface.Size()
	c := &Controller{
		surface:     surface,
		sched:       sched,
		params:      params,
		generators:  spiral.Generators(spiral.PointRadius),
		center:      geom.Pt(float64(w)/2, float64(h)/2, 0),
		stepDegrees: DefaultStepDegrees,
		maxPoints:   DefaultMaxPoints,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.params.PointCount = coercePoints(float64(c.params.PointCount), c.maxPoints)
	if c.params.RefreshInterval <= 0 {
		c.params.RefreshInterval = DefaultParams().RefreshInterval
	}
	return c
}

// Params returns a copy of the current parameters.
func (c *Controller) Params() Params {
	return c.params
}

// Center returns the origin and rotation pivot.
func (c *Controller) Center() geom.Point {
	return c.center
}

// Spiral returns the active spiral, nil before the first Restart.
func (c *Controller) Spiral() *spiral.Spiral {
	return c.spiral
}

// Generation counts restarts.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Ticks counts ticks of the current generation.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

// SetParameter updates one parameter and restarts the animation. Values the
// parameter cannot hold (a non-positive refresh interval, an unknown family
// index) leave the state unchanged but still restart.
func (c *Controller) SetParameter(name Param, value float64) {
	next, ok := c.params.with(name, value, c.maxPoints)
	if !ok {
		c.log.Debug().Str("param", name.String()).Float64("value", value).Msg("parameter value rejected")
	}
	c.params = next
	c.Restart()
}

// SetFamily switches the spiral family and restarts the animation.
func (c *Controller) SetFamily(f spiral.Family) {
	c.SetParameter(ParamFamily, float64(f))
}

// Restart cancels the pending tick, rebuilds the spiral from the current
// parameters, draws it once and schedules a new repeating tick.
func (c *Controller) Restart() {
	c.Stop()
	c.surface.Clear()

	c.spiral = spiral.Build(c.generators, c.params.Family,
		c.params.PointCount, c.params.Scale, c.params.AngularStep, c.center)
	c.spiral.Draw(c.surface)

	c.generation++
	c.ticks = 0
	c.task = c.sched.Every(c.params.RefreshInterval, c.tick)

	c.log.Debug().
		Uint64("generation", c.generation).
		Stringer("family", c.params.Family).
		Int("points", c.params.PointCount).
		Int("visible", c.spiral.Visible()).
		Float64("scale", c.params.Scale).
		Float64("theta", c.params.AngularStep).
		Dur("refresh", c.params.RefreshInterval).
		Msg("animation restarted")

	for _, fn := range c.onRestart {
		fn(c.params)
	}
}

// Stop cancels the repeating tick. The last frame stays on the surface.
func (c *Controller) Stop() {
	if c.task != nil {
		c.task.Cancel()
		c.task = nil
	}
}

// Redraw repaints the current spiral onto dst without rotating it.
func (c *Controller) Redraw(dst geom.Painter) {
	if c.spiral != nil {
		c.spiral.Draw(dst)
	}
}

func (c *Controller) tick() {
	c.ticks++
	c.surface.Clear()
	c.spiral.Rotate(c.center, c.stepDegrees)
	c.spiral.Draw(c.surface)
}
