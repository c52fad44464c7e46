package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so four segments approximate a circle.
const kappa = 0.5522847498

// Raster is a software Surface backed by an RGBA image. Circles are accumulated
// into one rasterizer per fill color and composited by Image.
type Raster struct {
	background color.Color
	width      int
	height     int
	layers     map[color.RGBA]*vector.Rasterizer
	order      []color.RGBA
}

// NewRaster creates a Raster of the given size with a background fill.
func NewRaster(width, height int, background color.Color) *Raster {
	return &Raster{
		background: background,
		width:      width,
		height:     height,
		layers:     map[color.RGBA]*vector.Rasterizer{},
	}
}

func (r *Raster) Size() (int, int) {
	return r.width, r.height
}

func (r *Raster) Clear() {
	r.layers = map[color.RGBA]*vector.Rasterizer{}
	r.order = r.order[:0]
}

func (r *Raster) FillCircle(x, y, radius float64, c color.Color) {
	if Culled(x, y, radius, r.width, r.height) || radius <= 0 {
		return
	}
	key := color.RGBAModel.Convert(c).(color.RGBA)
	z, ok := r.layers[key]
	if !ok {
		z = vector.NewRasterizer(r.width, r.height)
		r.layers[key] = z
		r.order = append(r.order, key)
	}

	cx, cy, rr := float32(x), float32(y), float32(radius)
	k := rr * kappa
	z.MoveTo(cx+rr, cy)
	z.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	z.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	z.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	z.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	z.ClosePath()
}

// Image composites the background and every accumulated layer.
func (r *Raster) Image() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	for _, key := range r.order {
		r.layers[key].Draw(dst, dst.Bounds(), image.NewUniform(key), image.Point{})
	}
	return dst
}

// WritePNG encodes the composited image to w.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteFile writes the composited image to path as PNG.
func (r *Raster) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := r.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
