package render

import (
	"image"

	"chance-dice/internal/dice"
	"chance-dice/internal/fonts"
	"chance-dice/internal/layout"
	"chance-dice/internal/segment"
)

// Anchor says how a text item's X relates to the drawn string.
// Y is always the vertical middle of the line.
type Anchor int

const (
	AnchorCenter Anchor = iota // X is the horizontal middle
	AnchorWest                 // X is the left edge
)

// Text is one string to draw with a single face.
type Text struct {
	Text   string
	Role   segment.Role
	Size   fonts.Size
	X, Y   float64
	Anchor Anchor
	Width  float64 // measured advance with the item's own face
}

// Picture is a scaled image drawn centered on (X, Y).
type Picture struct {
	Asset dice.AssetID
	X, Y  float64
	Image *image.NRGBA
}

// Plan is everything drawn inside one panel.
type Plan struct {
	Region  layout.Region
	Texts   []Text
	Picture *Picture // nil when there is no image to show
}

// Frame is a full render pass: the panel outlines and their contents.
// A frame with no regions means the canvas was too small to lay out.
type Frame struct {
	Width, Height float64
	Regions       []layout.Region
	Plans         []Plan
}

// Empty reports whether the frame has nothing to draw.
func (f Frame) Empty() bool {
	return len(f.Regions) == 0
}
