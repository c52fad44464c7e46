package terminal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iburimskiy/spiral-animation/internal/config"
	"github.com/iburimskiy/spiral-animation/internal/spiral"
	"github.com/iburimskiy/spiral-animation/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load(nil, "")
	require.NoError(t, err)
	cfg.Points = 50
	cfg.Scale = 1
	return cfg
}

func TestAppKeys(t *testing.T) {
	screen := newRecordingScreen(80, 24)
	a := New(testConfig(t), screen)
	a.ctrl.Restart()

	require.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone)))
	require.Equal(t, spiral.Hyperbolic, a.ctrl.Params().Family)

	require.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	require.Equal(t, 1.5, a.ctrl.Params().Scale)

	require.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	require.False(t, a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	require.False(t, a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestAppDraw(t *testing.T) {
	screen := newRecordingScreen(80, 24)
	a := New(testConfig(t), screen)
	a.ctrl.Restart()
	a.draw()

	require.Equal(t, 1, screen.shown)
	require.Equal(t, '>', screen.content[[2]int{1, 0}])
	// spiral origin sits in the middle cell
	require.True(t, a.surface.Lit(40, 12))
}

func TestAppSnapshot(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	a := New(testConfig(t), newRecordingScreen(20, 10))
	a.ctrl.Restart()
	require.True(t, a.handle(ui.ActionSnapshot))
	_, err = os.Stat(filepath.Join(dir, "spiral-archimedean-1.png"))
	require.NoError(t, err)
	require.Contains(t, a.status, "saved")
}

func TestAppRunStopsOnContext(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 12)

	a := New(testConfig(t), screen)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
	require.Equal(t, uint64(1), a.ctrl.Generation())
	require.Greater(t, a.ctrl.Ticks(), uint64(0))
}
