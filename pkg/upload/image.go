package upload

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder

	"golang.org/x/image/draw"
)

const (
	maxPhotoDimension = 512
	photoJPEGQuality  = 85
)

// ResizePhoto downscales a profile photo so its longest side is at most
// maxPhotoDimension and re-encodes it as JPEG. Images already within the
// bound are re-encoded unchanged in size.
func ResizePhoto(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth, newHeight := width, height
	if width > maxPhotoDimension || height > maxPhotoDimension {
		if width > height {
			newWidth = maxPhotoDimension
			newHeight = height * maxPhotoDimension / width
		} else {
			newHeight = maxPhotoDimension
			newWidth = width * maxPhotoDimension / height
		}
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: photoJPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
