package layout

// Region is a display rectangle in canvas units.
type Region struct {
	X1, Y1, X2, Y2 float64
}

// Width of the region.
func (r Region) Width() float64 { return r.X2 - r.X1 }

// Height of the region.
func (r Region) Height() float64 { return r.Y2 - r.Y1 }

// Center returns the midpoint.
func (r Region) Center() (x, y float64) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Overlaps reports whether r and o share any interior area.
func (r Region) Overlaps(o Region) bool {
	return r.X1 < o.X2 && o.X1 < r.X2 && r.Y1 < o.Y2 && o.Y1 < r.Y2
}

// Panel order and spacing.
const (
	Count       = 4
	PaddingX    = 50.0
	SpacingX    = 40.0
	AspectRatio = 1.2 // height / width
)

// Indices into the slice returned by Regions.
const (
	DurationPanel = iota
	PitchPanel
	ChordPanel
	AugmentationPanel
)

// Regions splits a canvas into Count equal panels laid out in a row and
// centered as a group. It returns nil when the canvas is too small to hold
// a panel of positive size.
func Regions(canvasW, canvasH float64) []Region {
	if canvasW <= 0 || canvasH <= 0 {
		return nil
	}

	dieW := (canvasW - 2*PaddingX - (Count-1)*SpacingX) / Count
	dieH := dieW * AspectRatio
	if dieW <= 0 || dieH <= 0 {
		return nil
	}

	totalW := dieW*Count + (Count-1)*SpacingX
	startX := (canvasW - totalW) / 2
	startY := (canvasH - dieH) / 2

	out := make([]Region, 0, Count)
	x := startX
	for i := 0; i < Count; i++ {
		out = append(out, Region{X1: x, Y1: startY, X2: x + dieW, Y2: startY + dieH})
		x += dieW + SpacingX
	}
	return out
}
