package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// ColorResult is a sampled pixel in every picker format.
//
// The five strings are the canonical display forms of the colorspace
// package, so a sampled color can be pasted straight into a picker field.
// RGBA keeps the raw pixel, alpha included; the strings ignore alpha.
type ColorResult struct {
	Hex  string    `json:"hex"`  // "#rrggbb"
	RGB  string    `json:"rgb"`  // "r, g, b"
	CMYK string    `json:"cmyk"` // "c%, m%, y%, k%"
	HSV  string    `json:"hsv"`  // "h°, s%, v%"
	HSL  string    `json:"hsl"`  // "h°, s%, l%"
	RGBA RGBAColor `json:"rgba"` // Raw 8-bit pixel

	color colorspace.Color
}

// NewColorResult describes an image color.
func NewColorResult(c color.Color) ColorResult {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cs := colorspace.FromImageColor(c)
	return ColorResult{
		Hex:   cs.HexValue(),
		RGB:   cs.RGBValue(),
		CMYK:  cs.CMYKValue(),
		HSV:   cs.HSVValue(),
		HSL:   cs.HSLValue(),
		RGBA:  RGBAColor{R: n.R, G: n.G, B: n.B, A: n.A},
		color: cs,
	}
}

// Color returns the sampled color as a colorspace.Color.
func (r ColorResult) Color() colorspace.Color {
	return r.color
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in every picker format.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Alpha
//
// Semi-transparent pixels are un-premultiplied before conversion, so the
// format strings describe the pixel's own color rather than its blend with
// black. RGBA.A still reports the opacity.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	result := NewColorResult(img.At(x, y))
	return &result, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate (0-based)
	Y     int    // Y coordinate (0-based)
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples from multiple points, in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point in one call.
//
// Returns an error, and no partial results, if any point is outside the image.
//
// # Example
//
//	points := []imaging.LabeledPoint{
//	    {X: 10, Y: 20, Label: "background"},
//	    {X: 50, Y: 100, Label: "text"},
//	}
//	result, err := imaging.SampleColorsMulti(img, points)
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// clip returns the part of region that lies inside img, or the whole image
// when region is nil. An empty intersection is an error.
func clip(img image.Image, region *Region) (image.Rectangle, error) {
	bounds := img.Bounds()
	if region == nil {
		return bounds, nil
	}
	rect := region.Rect().Intersect(bounds)
	if rect.Empty() {
		return image.Rectangle{}, fmt.Errorf("region (%d,%d)-(%d,%d) does not overlap the image",
			region.X1, region.Y1, region.X2, region.Y2)
	}
	return rect, nil
}

// ColorFrequency is one palette entry with its share of the analyzed pixels.
type ColorFrequency struct {
	Percentage float64     `json:"percentage"` // Share of pixels (0-100)
	Color      ColorResult `json:"color"`      // Quantized color
}

// DominantColorsResult lists the most common colors, most common first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the count most common colors from an image or region.
//
// Parameters:
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return.
//   - region: Optional region to analyze. It is clipped to the image; nil
//     means the whole image.
//
// # Color Quantization
//
// Each channel is rounded down to a multiple of 16 so that near-identical
// pixels are counted together:
//
//	quantized = (original / 16) * 16
//
// Fully transparent pixels are skipped.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	bounds, err := clip(img, region)
	if err != nil {
		return nil, err
	}

	counts := make(map[color.NRGBA]int)
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if n.A == 0 {
				continue
			}
			key := color.NRGBA{R: n.R / 16 * 16, G: n.G / 16 * 16, B: n.B / 16 * 16, A: 255}
			counts[key]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, cnt := range counts {
		colors = append(colors, ColorFrequency{
			Percentage: float64(cnt) / float64(total) * 100,
			Color:      NewColorResult(c),
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Color.Hex < colors[j].Color.Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// AverageColor returns the mean color of a region, ignoring fully
// transparent pixels. A nil region averages the whole image.
func AverageColor(img image.Image, region *Region) (*ColorResult, error) {
	bounds, err := clip(img, region)
	if err != nil {
		return nil, err
	}

	var sumR, sumG, sumB, n float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			sumR += float64(c.R)
			sumG += float64(c.G)
			sumB += float64(c.B)
			n++
		}
	}
	if n == 0 {
		return nil, fmt.Errorf("region has no opaque pixels")
	}

	avg := colorspace.FromRGBValues(sumR/n, sumG/n, sumB/n)
	result := NewColorResult(avg)
	return &result, nil
}
