package terminal

import (
	"image/color"
	"math"

	"github.com/iburimskiy/spiral-animation/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Surface maps a pixel-space drawing area onto a grid of terminal cells.
// Each cell covers cellW×cellH pixels and is lit when a circle covers its center.
type Surface struct {
	cols, rows   int
	cellW, cellH int
	cells        []bool
}

// NewSurface creates a surface of cols×rows cells.
func NewSurface(cols, rows, cellW, cellH int) *Surface {
	return &Surface{
		cols:  cols,
		rows:  rows,
		cellW: cellW,
		cellH: cellH,
		cells: make([]bool, cols*rows),
	}
}

func (s *Surface) Clear() {
	clear(s.cells)
}

func (s *Surface) Size() (int, int) {
	return s.cols * s.cellW, s.rows * s.cellH
}

func (s *Surface) FillCircle(x, y, r float64, _ color.Color) {
	w, h := s.Size()
	if render.Culled(x, y, r, w, h) {
		return
	}
	r = math.Abs(r)

	cw, ch := float64(s.cellW), float64(s.cellH)
	c0 := max(0, int(math.Floor((x-r)/cw)))
	c1 := min(s.cols-1, int(math.Floor((x+r)/cw)))
	r0 := max(0, int(math.Floor((y-r)/ch)))
	r1 := min(s.rows-1, int(math.Floor((y+r)/ch)))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx := (float64(col) + 0.5) * cw
			cy := (float64(row) + 0.5) * ch
			if math.Hypot(cx-x, cy-y) <= r {
				s.cells[row*s.cols+col] = true
			}
		}
	}
	// small circles still mark the cell holding their center
	if col, row := int(x/cw), int(y/ch); x >= 0 && y >= 0 && col < s.cols && row < s.rows {
		s.cells[row*s.cols+col] = true
	}
}

// Lit reports whether the cell at col, row is covered.
func (s *Surface) Lit(col, row int) bool {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return false
	}
	return s.cells[row*s.cols+col]
}

// Flush copies the cell grid onto screen.
func (s *Surface) Flush(screen tcell.Screen, style tcell.Style) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			r := ' '
			if s.cells[row*s.cols+col] {
				r = '█'
			}
			screen.SetContent(col, row, r, nil, style)
		}
	}
}
