package asset

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"chance-dice/internal/dice"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// decoders picks the decoder by file extension. image.Decode is not used:
// the tga package registers an empty magic string, which would claim every
// stream before the real formats get a chance.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".tga":  tga.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": webp.Decode,
}

// Load opens and decodes an asset from src into NRGBA.
func Load(src Source, id dice.AssetID) (*image.NRGBA, error) {
	rc, ext, err := src.Open(id)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return decode(rc, ext, id)
}

func decode(r io.Reader, ext string, id dice.AssetID) (*image.NRGBA, error) {
	dec, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("asset: decode %s: unknown extension %q", id, ext)
	}
	img, err := dec(r)
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", id, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("asset: decode %s: empty image", id)
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA with its origin at (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
