package game

import (
	"image/color"

	"github.com/iburimskiy/spiral-animation/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is an offscreen ebiten image the animation draws into between frames.
// Draw copies it to the screen, so ticks may run from Update.
type canvas struct {
	img           *ebiten.Image
	width, height int
}

func newCanvas(width, height int) *canvas {
	return &canvas{
		img:    ebiten.NewImage(width, height),
		width:  width,
		height: height,
	}
}

func (c *canvas) Clear() {
	c.img.Clear()
}

func (c *canvas) FillCircle(x, y, r float64, clr color.Color) {
	if render.Culled(x, y, r, c.width, c.height) {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), clr, true)
}

func (c *canvas) Size() (int, int) {
	return c.width, c.height
}
