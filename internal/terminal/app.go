package terminal

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/iburimskiy/spiral-animation/internal/anim"
	"github.com/iburimskiy/spiral-animation/internal/config"
	"github.com/iburimskiy/spiral-animation/internal/render"
	"github.com/iburimskiy/spiral-animation/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	spiralStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
)

var runeActions = map[rune]ui.Action{
	'q': ui.ActionQuit,
	'f': ui.ActionNextFamily,
	'1': ui.ActionArchimedean,
	'2': ui.ActionHyperbolic,
	'3': ui.ActionLogarithmic,
	' ': ui.ActionRestart,
	's': ui.ActionSnapshot,
}

var keyActions = map[tcell.Key]ui.Action{
	tcell.KeyEscape: ui.ActionQuit,
	tcell.KeyCtrlC:  ui.ActionQuit,
	tcell.KeyTab:    ui.ActionSelectNext,
	tcell.KeyDown:   ui.ActionSelectNext,
	tcell.KeyUp:     ui.ActionSelectPrev,
	tcell.KeyRight:  ui.ActionIncrease,
	tcell.KeyLeft:   ui.ActionDecrease,
}

// App runs the animation inside a terminal screen.
type App struct {
	cfg     config.Config
	screen  tcell.Screen
	surface *Surface
	clock   *anim.FrameClock
	ctrl    *anim.Controller
	sel     ui.Selection

	restartedAt time.Duration
	status      string
}

// New creates the terminal front end on an initialized screen. The screen
// size is read once; the spiral does not follow later resizes.
func New(cfg config.Config, screen tcell.Screen) *App {
	cols, rows := screen.Size()
	a := &App{
		cfg:     cfg,
		screen:  screen,
		surface: NewSurface(cols, rows, config.CellWidth, config.CellHeight),
		clock:   anim.NewFrameClock(),
	}
	a.ctrl = anim.New(a.surface, a.clock, cfg.Params(),
		anim.WithStepDegrees(cfg.StepDegrees),
		anim.WithPointRadius(cfg.PointRadius),
		anim.WithMaxPoints(cfg.MaxPoints),
		anim.WithLogger(log.Logger),
		anim.OnRestart(func(anim.Params) { a.restartedAt = a.clock.Now() }),
	)
	return a
}

// Controller exposes the animation controller driven by this front end.
func (a *App) Controller() *anim.Controller {
	return a.ctrl
}

// Run drives the animation until ctx is done or the user quits.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.ctrl.Restart()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			a.ctrl.Stop()
			return nil

		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				a.ctrl.Stop()
				return nil
			}

		case now := <-ticker.C:
			a.clock.Advance(now.Sub(last))
			last = now
			a.draw()
		}
	}
}

// handleEvent returns false when the user asked to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, ok := keyActions[ev.Key()]
		if ev.Key() == tcell.KeyRune {
			action, ok = runeActions[ev.Rune()]
		}
		if !ok {
			return true
		}
		return a.handle(action)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handle(action ui.Action) bool {
	if ui.Apply(a.ctrl, &a.sel, action) {
		return true
	}
	switch action {
	case ui.ActionQuit:
		return false
	case ui.ActionSnapshot:
		if err := a.snapshot(); err != nil {
			log.Error().Err(err).Msg("snapshot failed")
			a.status = "Error: " + err.Error()
		}
	}
	return true
}

// snapshot writes the current frame at the configured pixel size to the working directory.
func (a *App) snapshot() error {
	path := fmt.Sprintf("spiral-%s-%d.png", a.ctrl.Params().Family, a.ctrl.Generation())
	w, h := a.surface.Size()
	r := render.NewRaster(w, h, color.Black)
	a.ctrl.Redraw(r)
	if err := r.WriteFile(path); err != nil {
		return err
	}
	a.status = "saved " + path
	return nil
}

func (a *App) draw() {
	a.surface.Flush(a.screen, spiralStyle)
	lines := ui.StatusLines(a.ctrl, &a.sel, a.clock.Now()-a.restartedAt)
	if a.status != "" {
		lines = append(lines, a.status)
	}
	for row, line := range lines {
		a.drawText(1, row, line)
	}
	a.screen.Show()
}

func (a *App) drawText(x, y int, text string) {
	for i, r := range []rune(text) {
		a.screen.SetContent(x+i, y, r, nil, hudStyle)
	}
}
