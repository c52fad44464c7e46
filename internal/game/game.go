package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/iburimskiy/spiral-animation/internal/anim"
	"github.com/iburimskiy/spiral-animation/internal/config"
	"github.com/iburimskiy/spiral-animation/internal/render"
	"github.com/iburimskiy/spiral-animation/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"
)

// Cue is an optional side channel notified on every restart.
type Cue interface {
	Play(p anim.Params)
	ToggleMute() bool
	Level() float64
}

var background = color.RGBA{A: 255}

var keyActions = []struct {
	key    ebiten.Key
	action ui.Action
}{
	{ebiten.KeyEscape, ui.ActionQuit},
	{ebiten.KeyQ, ui.ActionQuit},
	{ebiten.KeyTab, ui.ActionSelectNext},
	{ebiten.KeyArrowDown, ui.ActionSelectNext},
	{ebiten.KeyArrowUp, ui.ActionSelectPrev},
	{ebiten.KeyArrowRight, ui.ActionIncrease},
	{ebiten.KeyArrowLeft, ui.ActionDecrease},
	{ebiten.KeyF, ui.ActionNextFamily},
	{ebiten.KeyDigit1, ui.ActionArchimedean},
	{ebiten.KeyDigit2, ui.ActionHyperbolic},
	{ebiten.KeyDigit3, ui.ActionLogarithmic},
	{ebiten.KeySpace, ui.ActionRestart},
	{ebiten.KeyEnter, ui.ActionEnterValue},
	{ebiten.KeyS, ui.ActionSnapshot},
	{ebiten.KeyM, ui.ActionMute},
}

type Game struct {
	cfg     config.Config
	canvas  *canvas
	surface render.Surface
	clock   *anim.FrameClock
	ctrl    *anim.Controller
	dialogs dialogs
	cue     Cue
	sel     ui.Selection

	restartedAt time.Duration
	started     bool
	muted       bool
	status      string
	lastErr     error
}

// New creates the window front end. cue may be nil.
func New(cfg config.Config, cue Cue) *Game {
	c := newCanvas(cfg.Width, cfg.Height)
	g := newGame(cfg, c, zenityDialogs{}, cue)
	g.canvas = c
	return g
}

func newGame(cfg config.Config, surface render.Surface, d dialogs, cue Cue) *Game {
	g := &Game{
		cfg:     cfg,
		surface: surface,
		clock:   anim.NewFrameClock(),
		dialogs: d,
		cue:     cue,
	}
	g.ctrl = anim.New(surface, g.clock, cfg.Params(),
		anim.WithStepDegrees(cfg.StepDegrees),
		anim.WithPointRadius(cfg.PointRadius),
		anim.WithMaxPoints(cfg.MaxPoints),
		anim.WithLogger(log.Logger),
		anim.OnRestart(g.onRestart),
	)
	return g
}

// Controller exposes the animation controller driven by this front end.
func (g *Game) Controller() *anim.Controller {
	return g.ctrl
}

func (g *Game) onRestart(p anim.Params) {
	g.restartedAt = g.clock.Now()
	if g.cue != nil {
		g.cue.Play(p)
	}
}

func (g *Game) Update() error {
	// The first restart waits for the game loop so the canvas is drawable.
	if !g.started {
		g.started = true
		g.ctrl.Restart()
	}

	for _, binding := range keyActions {
		if !inpututil.IsKeyJustPressed(binding.key) {
			continue
		}
		if err := g.handle(binding.action); err != nil {
			return err
		}
	}

	g.clock.Advance(frameStep(ebiten.TPS()))
	return nil
}

// frameStep is the simulated time one Update covers. TPS is negative under
// ebiten.SyncWithFPS, which still runs Update once per frame.
func frameStep(tps int) time.Duration {
	return time.Second / time.Duration(max(tps, 1))
}

// handle runs one user action. Only ActionQuit returns an error.
func (g *Game) handle(a ui.Action) error {
	if ui.Apply(g.ctrl, &g.sel, a) {
		return nil
	}
	switch a {
	case ui.ActionQuit:
		g.ctrl.Stop()
		return ebiten.Termination
	case ui.ActionEnterValue:
		g.setErr(g.enterValue())
	case ui.ActionSnapshot:
		g.setErr(g.snapshot())
	case ui.ActionMute:
		if g.cue != nil {
			g.muted = g.cue.ToggleMute()
		}
	}
	return nil
}

func (g *Game) setErr(err error) {
	g.lastErr = err
	if err != nil {
		log.Error().Err(err).Msg("action failed")
	}
}

// enterValue asks for an exact value of the selected input.
func (g *Game) enterValue() error {
	p := g.sel.Current()
	params := g.ctrl.Params()

	if p == anim.ParamFamily {
		f, err := g.dialogs.Family(params.Family)
		if err != nil {
			return ignoreCancel(err)
		}
		g.ctrl.SetFamily(f)
		return nil
	}

	text, err := g.dialogs.Entry("Spiral parameter", fmt.Sprintf("Value for %s", p), ui.FormatValue(params, p))
	if err != nil {
		return ignoreCancel(err)
	}
	value := ui.Coerce(text)
	if p == anim.ParamRefresh {
		if d, err := time.ParseDuration(text); err == nil {
			value = float64(d / time.Millisecond)
		}
	}
	g.ctrl.SetParameter(p, value)
	return nil
}

// snapshot saves the current frame as PNG through a save dialog.
func (g *Game) snapshot() error {
	path, err := g.dialogs.SavePath(fmt.Sprintf("spiral-%s-%d.png", g.ctrl.Params().Family, g.ctrl.Generation()))
	if err != nil {
		return ignoreCancel(err)
	}
	r := render.NewRaster(g.cfg.Width, g.cfg.Height, background)
	g.ctrl.Redraw(r)
	if err := r.WriteFile(path); err != nil {
		return err
	}
	g.status = "saved " + path
	log.Info().Str("path", path).Msg("snapshot saved")
	return nil
}

func ignoreCancel(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if g.canvas != nil {
		screen.DrawImage(g.canvas.img, nil)
	}
	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := ui.StatusLines(g.ctrl, &g.sel, g.clock.Now()-g.restartedAt)
	y := config.HUDMarginY
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.HUDMarginX, y)
		y += config.HUDLineHeight
	}

	if g.cue != nil {
		g.drawLevelBar(screen, config.HUDMarginX, y+4)
		y += config.HUDLineHeight
	}

	status := g.status
	if g.lastErr != nil {
		status = "Error: " + g.lastErr.Error()
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, config.HUDMarginX, y+4)
	}
}

func (g *Game) drawLevelBar(screen *ebiten.Image, x, y int) {
	vector.StrokeRect(screen, float32(x), float32(y), config.LevelBarWidth, config.LevelBarHeight, 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)
	if g.muted {
		return
	}
	level := clamp01(g.cue.Level())
	r, gv, b := hsvToRgb(120-level*120, 0.8, 0.9)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(level*config.LevelBarWidth), config.LevelBarHeight, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
