package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iburimskiy/spiral-animation/internal/anim"
	"github.com/iburimskiy/spiral-animation/internal/spiral"
)

// Action is a front-end independent user command.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionSelectNext
	ActionSelectPrev
	ActionIncrease
	ActionDecrease
	ActionNextFamily
	ActionArchimedean
	ActionHyperbolic
	ActionLogarithmic
	ActionRestart
	ActionEnterValue
	ActionSnapshot
	ActionMute
)

// Apply performs the actions that only touch the controller and selection.
// It reports false for actions the front end must handle itself.
func Apply(c *anim.Controller, sel *Selection, a Action) bool {
	switch a {
	case ActionSelectNext:
		sel.Move(1, c.Params().Family)
	case ActionSelectPrev:
		sel.Move(-1, c.Params().Family)
	case ActionIncrease:
		Nudge(c, sel.Current(), 1)
	case ActionDecrease:
		Nudge(c, sel.Current(), -1)
	case ActionNextFamily:
		c.SetFamily(c.Params().Family.Next())
	case ActionArchimedean:
		c.SetFamily(spiral.Archimedean)
	case ActionHyperbolic:
		c.SetFamily(spiral.Hyperbolic)
	case ActionLogarithmic:
		c.SetFamily(spiral.Logarithmic)
	case ActionRestart:
		c.Restart()
	default:
		return false
	}
	return true
}

// FormatValue renders the current value of p for display and entry dialogs.
func FormatValue(ps anim.Params, p anim.Param) string {
	switch p {
	case anim.ParamFamily:
		return ps.Family.String()
	case anim.ParamPoints:
		return strconv.Itoa(ps.PointCount)
	case anim.ParamRefresh:
		return ps.RefreshInterval.String()
	}
	return strconv.FormatFloat(ps.Get(p), 'g', 6, 64)
}

// StatusLines builds the HUD text: one line per input with the selected one
// marked, then a summary line.
func StatusLines(c *anim.Controller, sel *Selection, uptime time.Duration) []string {
	ps := c.Params()
	lines := make([]string, 0, len(Inputs)+1)
	for _, p := range Inputs {
		marker := "  "
		if p == sel.Current() {
			marker = "> "
		}
		suffix := ""
		if !Enabled(p, ps.Family) {
			suffix = " (off)"
		}
		lines = append(lines, fmt.Sprintf("%s%-7s %s%s", marker, p, FormatValue(ps, p), suffix))
	}
	visible, total := 0, 0
	if s := c.Spiral(); s != nil {
		visible, total = s.Visible(), s.Len()
	}
	lines = append(lines, fmt.Sprintf("gen %d  visible %d/%d  %s", c.Generation(), visible, total, FormatDuration(uptime)))
	return lines
}

// FormatDuration formats a duration as MM:SS
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
