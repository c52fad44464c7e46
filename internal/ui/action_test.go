package ui

import (
	"testing"
	"time"

	"github.com/iburimskiy/spiral-animation/internal/anim"
	"github.com/iburimskiy/spiral-animation/internal/spiral"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	c, clock := newController()
	var sel Selection

	require.True(t, Apply(c, &sel, ActionIncrease))
	require.Equal(t, 3.5, c.Params().Scale)

	require.True(t, Apply(c, &sel, ActionSelectNext))
	require.Equal(t, anim.ParamPoints, sel.Current())
	require.True(t, Apply(c, &sel, ActionDecrease))
	require.Equal(t, 490, c.Params().PointCount)

	require.True(t, Apply(c, &sel, ActionLogarithmic))
	require.Equal(t, spiral.Logarithmic, c.Params().Family)
	require.True(t, Apply(c, &sel, ActionNextFamily))
	require.Equal(t, spiral.Archimedean, c.Params().Family)
	require.True(t, Apply(c, &sel, ActionHyperbolic))
	require.Equal(t, spiral.Hyperbolic, c.Params().Family)
	require.True(t, Apply(c, &sel, ActionArchimedean))

	gen := c.Generation()
	require.True(t, Apply(c, &sel, ActionRestart))
	require.Equal(t, gen+1, c.Generation())
	require.Equal(t, 1, clock.Active())

	for _, a := range []Action{ActionNone, ActionQuit, ActionEnterValue, ActionSnapshot, ActionMute} {
		require.False(t, Apply(c, &sel, a))
	}
}

func TestStatusLines(t *testing.T) {
	c, _ := newController()
	var sel Selection
	lines := StatusLines(c, &sel, 75*time.Second)

	require.Len(t, lines, len(Inputs)+1)
	require.Equal(t, "> a       3", lines[0])
	require.Equal(t, "  b       1 (off)", lines[1])
	require.Equal(t, "  points  500", lines[2])
	require.Equal(t, "  spiral  archimedean", lines[4])
	require.Equal(t, "  refresh 70ms", lines[5])
	require.Equal(t, "gen 1  visible 500/500  01:15", lines[6])
}

func TestFormatValue(t *testing.T) {
	ps := anim.DefaultParams()
	ps.AngularStep = 0.125
	require.Equal(t, "0.125", FormatValue(ps, anim.ParamAngularStep))
	require.Equal(t, "archimedean", FormatValue(ps, anim.ParamFamily))
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "00:00", FormatDuration(0))
	require.Equal(t, "02:05", FormatDuration(125*time.Second))
}
