package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Palette holds the colors used to paint a frame.
type Palette struct {
	Background color.NRGBA
	Shadow     color.NRGBA
	Panel      color.NRGBA
	Outline    color.NRGBA
	Caption    color.NRGBA
	Value      color.NRGBA
}

// DefaultPalette is the light blue-grey scheme of the desktop window.
var DefaultPalette = Palette{
	Background: color.NRGBA{0xE6, 0xEB, 0xF3, 0xFF},
	Shadow:     color.NRGBA{0xD0, 0xD3, 0xDB, 0xFF},
	Panel:      color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF},
	Outline:    color.NRGBA{0xA0, 0xA8, 0xB4, 0xFF},
	Caption:    color.NRGBA{0x55, 0x55, 0x55, 0xFF},
	Value:      color.NRGBA{0x33, 0x33, 0x33, 0xFF},
}

// Panel styling, in canvas units.
const (
	CornerRadius  = 15.0
	ShadowOffset  = 5.0
	OutlineWidth  = 2.0
	minPanelInset = 2 * OutlineWidth
)

// Canvas is the paint target, filled with the palette background.
type Canvas struct {
	Width   int
	Height  int
	Img     *image.NRGBA
	palette Palette
}

// NewCanvas allocates a w×h canvas filled with the background color.
func NewCanvas(w, h int, p Palette) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, max(0, w), max(0, h)))
	draw.Draw(img, img.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)
	return &Canvas{Width: img.Rect.Dx(), Height: img.Rect.Dy(), Img: img, palette: p}
}

// FillRoundedRect fills a rectangle with rounded corners, antialiased.
// Coordinates outside the canvas are clipped.
func (c *Canvas) FillRoundedRect(x1, y1, x2, y2, radius float64, col color.Color) {
	if c.Width == 0 || c.Height == 0 || x2 <= x1 || y2 <= y1 {
		return
	}
	radius = min(radius, (x2-x1)/2, (y2-y1)/2)

	cx := func(v float64) float32 { return float32(clamp(v, 0, float64(c.Width))) }
	cy := func(v float64) float32 { return float32(clamp(v, 0, float64(c.Height))) }

	z := vector.NewRasterizer(c.Width, c.Height)
	z.MoveTo(cx(x1+radius), cy(y1))
	z.LineTo(cx(x2-radius), cy(y1))
	z.QuadTo(cx(x2), cy(y1), cx(x2), cy(y1+radius))
	z.LineTo(cx(x2), cy(y2-radius))
	z.QuadTo(cx(x2), cy(y2), cx(x2-radius), cy(y2))
	z.LineTo(cx(x1+radius), cy(y2))
	z.QuadTo(cx(x1), cy(y2), cx(x1), cy(y2-radius))
	z.LineTo(cx(x1), cy(y1+radius))
	z.QuadTo(cx(x1), cy(y1), cx(x1+radius), cy(y1))
	z.ClosePath()
	z.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{})
}

// DrawPanel paints a drop shadow, an outline and a white body.
func (c *Canvas) DrawPanel(x1, y1, x2, y2 float64) {
	p := c.palette
	c.FillRoundedRect(x1+ShadowOffset, y1+ShadowOffset, x2+ShadowOffset, y2+ShadowOffset, CornerRadius, p.Shadow)
	c.FillRoundedRect(x1, y1, x2, y2, CornerRadius, p.Outline)
	if x2-x1 > minPanelInset && y2-y1 > minPanelInset {
		c.FillRoundedRect(x1+OutlineWidth, y1+OutlineWidth, x2-OutlineWidth, y2-OutlineWidth, CornerRadius-OutlineWidth, p.Panel)
	}
}

// DrawImageCentered composites img over the canvas centered on (x, y).
func (c *Canvas) DrawImageCentered(img image.Image, x, y float64) {
	b := img.Bounds()
	minX := int(x - float64(b.Dx())/2 + 0.5)
	minY := int(y - float64(b.Dy())/2 + 0.5)
	dst := image.Rect(minX, minY, minX+b.Dx(), minY+b.Dy())
	draw.Draw(c.Img, dst, img, b.Min, draw.Over)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
