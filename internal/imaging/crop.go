package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// MimePNG is the MIME type of every encoded image this package produces.
const MimePNG = "image/png"

// CropRegion cuts region out of img and optionally rescales it.
//
// The region is clipped to the image first. A scale of 0 or 1 keeps the
// original size; any other positive scale resamples with Lanczos, which is
// what OCR wants for small screenshot text.
func CropRegion(img image.Image, region Region, scale float64) (image.Image, error) {
	rect, err := clip(img, &region)
	if err != nil {
		return nil, err
	}
	if scale < 0 {
		return nil, fmt.Errorf("scale must not be negative, got %g", scale)
	}

	cropped := imaging.Crop(img, rect)
	if scale != 0 && scale != 1 {
		w := int(float64(cropped.Bounds().Dx()) * scale)
		h := int(float64(cropped.Bounds().Dy()) * scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %g shrinks the region to nothing", scale)
		}
		cropped = imaging.Resize(cropped, w, h, imaging.Lanczos)
	}
	return cropped, nil
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeBase64PNG encodes img as base64 PNG for JSON transport.
func encodeBase64PNG(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
