package anim

import (
	"time"
)

// Task is a scheduled repeating callback.
type Task interface {
	Cancel()
}

// Scheduler runs fn every interval until the returned Task is cancelled.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// MaxCatchUp bounds how many times one task may fire during a single Advance.
// A host loop that stalls longer than MaxCatchUp intervals drops the backlog
// and resynchronizes instead of replaying it.
const MaxCatchUp = 4

// FrameClock is a cooperative Scheduler driven by the host frame loop.
// All callbacks run inside Advance, on the caller's goroutine, one at a time.
type FrameClock struct {
	now   time.Duration
	tasks []*clockTask
}

type clockTask struct {
	clock     *FrameClock
	interval  time.Duration
	deadline  time.Duration
	fn        func()
	cancelled bool
}

func (t *clockTask) Cancel() {
	if t.cancelled {
		return
	}
	t.cancelled = true
	t.clock.remove(t)
}

// NewFrameClock creates a clock at time zero.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Now returns the elapsed clock time.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

func (c *FrameClock) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := &clockTask{
		clock:    c,
		interval: interval,
		deadline: c.now + interval,
		fn:       fn,
	}
	c.tasks = append(c.tasks, t)
	return t
}

// Advance moves the clock forward by dt and fires every due task.
// Tasks scheduled from inside a callback first fire on a later Advance.
func (c *FrameClock) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	c.now += dt

	due := append([]*clockTask(nil), c.tasks...)
	for _, t := range due {
		fired := 0
		for !t.cancelled && t.deadline <= c.now {
			if fired == MaxCatchUp {
				t.deadline = c.now + t.interval
				break
			}
			t.deadline += t.interval
			fired++
			t.fn()
		}
	}
}

// Active returns the number of live tasks.
func (c *FrameClock) Active() int {
	return len(c.tasks)
}

func (c *FrameClock) remove(t *clockTask) {
	for i, task := range c.tasks {
		if task == t {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return
		}
	}
}
