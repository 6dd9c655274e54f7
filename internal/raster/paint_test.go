package raster

import (
	"image"
	"image/color"
	"testing"

	"chance-dice/internal/dice"
	"chance-dice/internal/fonts"
	"chance-dice/internal/layout"
	"chance-dice/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type solidImages struct{}

func (solidImages) Get(_ dice.AssetID, w, h int) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, w/2, h/2))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0xFF, 0, 0, 0xFF
	}
	return img, nil
}

func TestNewCanvas_FillsBackground(t *testing.T) {
	c := NewCanvas(10, 8, DefaultPalette)
	assert.Equal(t, DefaultPalette.Background, c.Img.NRGBAAt(0, 0))
	assert.Equal(t, DefaultPalette.Background, c.Img.NRGBAAt(9, 7))

	empty := NewCanvas(-3, 0, DefaultPalette)
	assert.Equal(t, 0, empty.Width)
	assert.NotPanics(t, func() { empty.DrawPanel(0, 0, 10, 10) })
}

func TestDrawPanel(t *testing.T) {
	c := NewCanvas(200, 200, DefaultPalette)
	c.DrawPanel(20, 20, 120, 140)

	assert.Equal(t, DefaultPalette.Panel, c.Img.NRGBAAt(70, 80), "body")
	assert.Equal(t, DefaultPalette.Outline, c.Img.NRGBAAt(70, 20), "top edge")
	assert.Equal(t, DefaultPalette.Shadow, c.Img.NRGBAAt(70, 143), "shadow below")
	assert.Equal(t, DefaultPalette.Background, c.Img.NRGBAAt(20, 20), "rounded corner")
	assert.Equal(t, DefaultPalette.Background, c.Img.NRGBAAt(180, 180))
}

func TestFillRoundedRect_ClipsOffCanvas(t *testing.T) {
	c := NewCanvas(50, 50, DefaultPalette)
	assert.NotPanics(t, func() {
		c.FillRoundedRect(-100, -100, 200, 200, 15, color.Black)
	})
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xFF}, c.Img.NRGBAAt(25, 25))
}

func TestPaint(t *testing.T) {
	faces, err := fonts.Embedded()
	require.NoError(t, err)
	defer faces.Close()

	r := render.NewRenderer(faces, solidImages{}, nil)
	frame := r.Frame(1200, 800, dice.RollResult{
		Duration:     dice.Crotchet,
		Pitch:        "C#/Db",
		Chord:        "maj",
		Augmentation: "Dot",
	})
	img := Paint(frame, faces, DefaultPalette)
	assert.Equal(t, image.Rect(0, 0, 1200, 800), img.Bounds())

	// duration image is centered in the first panel
	cx, cy := frame.Regions[layout.DurationPanel].Center()
	assert.Equal(t, color.NRGBA{0xFF, 0, 0, 0xFF}, img.NRGBAAt(int(cx), int(cy)))

	// some value ink lands inside the chord panel's value line
	chord := frame.Regions[layout.ChordPanel]
	_, vy := chord.Center()
	assert.True(t, hasColorNear(img, chord, vy+render.ValueOffset, DefaultPalette.Panel), "chord text not drawn")
}

func TestPaint_EmptyFrame(t *testing.T) {
	faces, err := fonts.Embedded()
	require.NoError(t, err)
	defer faces.Close()

	img := Paint(render.Frame{Width: 30, Height: 20}, faces, DefaultPalette)
	assert.Equal(t, DefaultPalette.Background, img.NRGBAAt(15, 10))
}

// hasColorNear reports whether any pixel on the row y inside region differs from bg.
func hasColorNear(img *image.NRGBA, region layout.Region, y float64, bg color.NRGBA) bool {
	for dy := -5; dy <= 5; dy++ {
		for x := int(region.X1) + 10; x < int(region.X2)-10; x++ {
			if img.NRGBAAt(x, int(y)+dy) != bg {
				return true
			}
		}
	}
	return false
}
