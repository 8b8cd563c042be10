package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
)

// MaxRenderSize bounds each side of a rendered control, in pixels.
const MaxRenderSize = 4096

// markerRadius is the radius of the palette marker ring, in pixels.
const markerRadius = 5

// RenderResult is a rendered picker control as base64 PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Marker is the selected point inside the saturation/value palette.
type Marker struct {
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

// RenderPalette draws the saturation/value square for one hue.
//
// Saturation runs 0 to 100 left to right and value runs 100 to 0 top to
// bottom, so the top right corner is the fully saturated color of the hue.
// The square is computed once per whole percentage (101x101) and resampled
// to width x height.
//
// Parameters:
//   - hue: Hue in degrees; wraps modulo 360
//   - width, height: Output size in pixels, 1 to MaxRenderSize
//   - marker: Optional point to ring; nil draws no marker
func RenderPalette(hue float64, width, height int, marker *Marker) (*RenderResult, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	const steps = int(colorspace.MaxSVL) + 1
	base := image.NewNRGBA(image.Rect(0, 0, steps, steps))
	for y := 0; y < steps; y++ {
		for x := 0; x < steps; x++ {
			c := colorspace.FromHSVValues(hue, float64(x), colorspace.MaxSVL-float64(y))
			base.Set(x, y, c)
		}
	}

	out := imaging.Resize(base, width, height, imaging.Linear)
	if marker != nil {
		px := int(math.Round(marker.Saturation / colorspace.MaxSVL * float64(width-1)))
		py := int(math.Round((colorspace.MaxSVL - marker.Value) / colorspace.MaxSVL * float64(height-1)))
		drawRing(out, px, py, markerRadius, markerColor(marker.Value))
	}

	return encodeRender(out)
}

// RenderHueSlider draws the hue strip, red at both ends. The strip is
// computed at one pixel per degree and stretched to width x height.
//
// A non-nil hue draws a vertical marker at that position.
func RenderHueSlider(width, height int, hue *float64) (*RenderResult, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	const steps = int(colorspace.MaxHue) + 1
	base := image.NewRGBA(image.Rect(0, 0, steps, 1))
	for x := 0; x < steps; x++ {
		base.Set(x, 0, colorspace.FromHSVValues(float64(x), colorspace.MaxSVL, colorspace.MaxSVL))
	}

	out := transform.Resize(base, width, height, transform.Linear)
	if hue != nil {
		h := math.Max(0, math.Min(*hue, colorspace.MaxHue))
		px := int(math.Round(h / colorspace.MaxHue * float64(width-1)))
		for y := 0; y < height; y++ {
			out.Set(px, y, color.White)
			if px+1 < width {
				out.Set(px+1, y, color.Black)
			}
		}
	}

	return encodeRender(out)
}

func checkSize(width, height int) error {
	if width < 1 || height < 1 || width > MaxRenderSize || height > MaxRenderSize {
		return fmt.Errorf("size %dx%d outside 1..%d", width, height, MaxRenderSize)
	}
	return nil
}

// markerColor keeps the ring visible: white over dark colors, black over
// light ones.
func markerColor(value float64) color.Color {
	if value < colorspace.MaxSVL/2 {
		return color.White
	}
	return color.Black
}

type settable interface {
	image.Image
	Set(x, y int, c color.Color)
}

// drawRing draws a one pixel wide circle, clipped to the image.
func drawRing(img settable, cx, cy, r int, c color.Color) {
	bounds := img.Bounds()
	outer := float64(r) + 0.5
	inner := float64(r) - 0.5
	for dy := -r - 1; dy <= r+1; dy++ {
		for dx := -r - 1; dx <= r+1; dx++ {
			d := math.Hypot(float64(dx), float64(dy))
			if d < inner || d > outer {
				continue
			}
			if p := image.Pt(cx+dx, cy+dy); p.In(bounds) {
				img.Set(p.X, p.Y, c)
			}
		}
	}
}

func encodeRender(img image.Image) (*RenderResult, error) {
	data, err := encodeBase64PNG(img)
	if err != nil {
		return nil, err
	}
	return &RenderResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: data,
		MimeType:    MimePNG,
	}, nil
}
