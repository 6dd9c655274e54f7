package raster

import (
	"image"
	"image/color"

	"chance-dice/internal/fonts"
	"chance-dice/internal/render"
	"chance-dice/internal/segment"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Faces supplies the face to draw a text item with.
type Faces interface {
	Face(role segment.Role, size fonts.Size) font.Face
	Metrics(role segment.Role, size fonts.Size) (ascent, descent float64)
}

// Paint draws a frame onto a fresh canvas sized to the frame.
// An empty frame yields a background-only image.
func Paint(f render.Frame, faces Faces, p Palette) *image.NRGBA {
	c := NewCanvas(int(f.Width), int(f.Height), p)
	c.DrawFrame(f, faces)
	return c.Img
}

// DrawFrame paints panel outlines, then images, then text.
func (c *Canvas) DrawFrame(f render.Frame, faces Faces) {
	for _, r := range f.Regions {
		c.DrawPanel(r.X1, r.Y1, r.X2, r.Y2)
	}
	for _, plan := range f.Plans {
		if plan.Picture != nil && plan.Picture.Image != nil {
			c.DrawImageCentered(plan.Picture.Image, plan.Picture.X, plan.Picture.Y)
		}
		for _, t := range plan.Texts {
			col := c.palette.Value
			if t.Size == fonts.SizeCaption {
				col = c.palette.Caption
			}
			c.DrawText(t, faces, col)
		}
	}
}

// DrawText draws one text item. Y is the vertical middle of the line.
func (c *Canvas) DrawText(t render.Text, faces Faces, col color.Color) {
	if t.Text == "" {
		return
	}
	ascent, descent := faces.Metrics(t.Role, t.Size)

	x := t.X
	if t.Anchor == render.AnchorCenter {
		x -= t.Width / 2
	}
	baseline := t.Y + (ascent-descent)/2

	d := &font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(col),
		Face: faces.Face(t.Role, t.Size),
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(baseline)},
	}
	d.DrawString(t.Text)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
