package render

import (
	"errors"
	"image"

	"chance-dice/internal/asset"
	"chance-dice/internal/dice"
	"chance-dice/internal/fonts"
	"chance-dice/internal/layout"
	"chance-dice/internal/segment"

	"go.uber.org/zap"
)

// Panel geometry, in canvas units.
const (
	CaptionOffset = 20.0 // caption center below the panel top
	ValueOffset   = 10.0 // value line below the panel center
	ImageFill     = 0.8  // share of the panel an image may fill
)

// Measurer measures text with the face for a role and size.
type Measurer interface {
	Measure(role segment.Role, size fonts.Size, text string) float64
}

// Images returns an asset fitted into a target box.
type Images interface {
	Get(id dice.AssetID, targetW, targetH int) (*image.NRGBA, error)
}

// Renderer turns roll results into per-panel plans.
type Renderer struct {
	fonts  Measurer
	images Images
	log    *zap.SugaredLogger
}

// NewRenderer creates a Renderer. A nil log discards warnings.
func NewRenderer(m Measurer, images Images, log *zap.SugaredLogger) *Renderer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Renderer{fonts: m, images: images, log: log}
}

// Frame lays out a w×h canvas and renders result into it.
func (r *Renderer) Frame(w, h float64, result dice.RollResult) Frame {
	regions := layout.Regions(w, h)
	if len(regions) == 0 {
		r.log.Debugw("canvas too small, skipping render", "width", w, "height", h)
	}
	return Frame{
		Width:   w,
		Height:  h,
		Regions: regions,
		Plans:   r.RenderAll(result, regions),
	}
}

// RenderAll renders each die into its region, in panel order. Dice without
// a face are skipped. Fewer than layout.Count regions renders nothing.
func (r *Renderer) RenderAll(result dice.RollResult, regions []layout.Region) []Plan {
	if len(regions) < layout.Count {
		return nil
	}

	var plans []Plan
	if result.Duration != "" {
		plans = append(plans, r.RenderDuration(result.Duration, regions[layout.DurationPanel]))
	}
	if result.Pitch != "" {
		plans = append(plans, r.RenderPitch(result.Pitch, regions[layout.PitchPanel]))
	}
	if result.Chord != "" {
		plans = append(plans, r.RenderSimpleValue("Chord", string(result.Chord), regions[layout.ChordPanel]))
	}
	if result.Augmentation != "" {
		plans = append(plans, r.RenderSimpleValue("Augmentation", string(result.Augmentation), regions[layout.AugmentationPanel]))
	}
	return plans
}

// RenderDuration places the duration image in the middle of the panel and a
// caption at the top. If the image can't be loaded only the caption is kept.
func (r *Renderer) RenderDuration(face dice.Face, region layout.Region) Plan {
	plan := Plan{Region: region, Texts: []Text{r.caption("Duration", region)}}

	id, ok := dice.ImageAssetFor(face)
	if !ok {
		r.log.Warnw("no image for duration", "face", string(face))
		return plan
	}

	targetW := int(region.Width() * ImageFill)
	targetH := int(region.Height() * ImageFill)
	img, err := r.images.Get(id, targetW, targetH)
	if err != nil {
		if errors.Is(err, asset.ErrAssetMissing) {
			r.log.Warnw("duration image missing", "asset", string(id), "error", err)
		} else {
			r.log.Warnw("duration image unusable", "asset", string(id), "error", err)
		}
		return plan
	}

	cx, cy := region.Center()
	plan.Picture = &Picture{Asset: id, X: cx, Y: cy, Image: img}
	return plan
}

// RenderSimpleValue draws label as a caption and value centered just below
// the middle of the panel.
func (r *Renderer) RenderSimpleValue(label, value string, region layout.Region) Plan {
	cx, cy := region.Center()
	return Plan{
		Region: region,
		Texts: []Text{
			r.caption(label, region),
			{
				Text:   value,
				Role:   segment.RoleDefault,
				Size:   fonts.SizeValue,
				X:      cx,
				Y:      cy + ValueOffset,
				Anchor: AnchorCenter,
				Width:  r.fonts.Measure(segment.RoleDefault, fonts.SizeValue, value),
			},
		},
	}
}

// RenderPitch splits the pitch into font runs, measures each with its own
// face, and lays them out left to right so the whole line is centered.
func (r *Renderer) RenderPitch(face dice.Face, region layout.Region) Plan {
	cx, cy := region.Center()
	plan := Plan{Region: region, Texts: []Text{r.caption("Pitch", region)}}

	segs := segment.Split(string(face))
	widths := make([]float64, len(segs))
	total := 0.0
	for i, sg := range segs {
		widths[i] = r.fonts.Measure(sg.Role, fonts.SizeValue, sg.Text)
		total += widths[i]
	}

	x := cx - total/2
	for i, sg := range segs {
		plan.Texts = append(plan.Texts, Text{
			Text:   sg.Text,
			Role:   sg.Role,
			Size:   fonts.SizeValue,
			X:      x,
			Y:      cy + ValueOffset,
			Anchor: AnchorWest,
			Width:  widths[i],
		})
		x += widths[i]
	}
	return plan
}

func (r *Renderer) caption(label string, region layout.Region) Text {
	cx, _ := region.Center()
	text := label + ":"
	return Text{
		Text:   text,
		Role:   segment.RoleDefault,
		Size:   fonts.SizeCaption,
		X:      cx,
		Y:      region.Y1 + CaptionOffset,
		Anchor: AnchorCenter,
		Width:  r.fonts.Measure(segment.RoleDefault, fonts.SizeCaption, text),
	}
}
