package asset

import (
	"image"

	"golang.org/x/image/draw"
)

// MinDim is the smallest edge a fitted image is scaled up to.
const MinDim = 60

// FitSize computes the drawn size of a srcW×srcH image inside a
// targetW×targetH box.
//
// The image is aspect-fitted first. If either edge then falls under MinDim
// the whole image is scaled up until both edges reach it, and finally each
// edge is clamped to the target independently. For very elongated sources
// the clamp distorts the aspect ratio.
func FitSize(srcW, srcH, targetW, targetH int) (w, h int) {
	if targetW <= 0 || targetH <= 0 {
		return 0, 0
	}

	ratio := min(float64(targetW)/float64(max(1, srcW)), float64(targetH)/float64(max(1, srcH)))
	w = int(float64(srcW) * ratio)
	h = int(float64(srcH) * ratio)

	if w < MinDim || h < MinDim {
		up := max(float64(MinDim)/float64(max(1, w)), float64(MinDim)/float64(max(1, h)))
		w = int(float64(w) * up)
		h = int(float64(h) * up)
	}

	w = max(1, min(w, targetW))
	h = max(1, min(h, targetH))
	return w, h
}

// Resize scales img to w×h with CatmullRom filtering in premultiplied alpha,
// which keeps transparent edges free of dark halos.
func Resize(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	// Unpremultiply alpha
	result := image.NewNRGBA(dst.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := dst.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(dst.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp8(float64(dst.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float64(dst.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float64(dst.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = dst.Pix[si+3]
		}
	}

	return result
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
