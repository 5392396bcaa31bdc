package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const photoMaxWidth = 1200

// EncodeWebP decodes an uploaded JPEG/PNG, scales it down to at most
// photoMaxWidth (never up) and re-encodes as lossy WebP.
func EncodeWebP(src []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > photoMaxWidth {
		ratio := float64(photoMaxWidth) / float64(bounds.Dx())
		h := int(float64(bounds.Dy()) * ratio)

		dst := image.NewRGBA(image.Rect(0, 0, photoMaxWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 82}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
