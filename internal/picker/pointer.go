package picker

import (
	"errors"
	"math"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
)

// ErrEmptyArea is returned when a pointer is mapped onto a slider or palette
// with no width or height.
var ErrEmptyArea = errors.New("pointer area has no extent")

// SliderHue maps a click at x on a hue strip of the given width to a hue.
//
// Parameters:
//   - x: Pointer offset from the left edge of the strip
//   - width: Strip width in the same units as x
//
// Returns:
//   - round(x / width * 360), clamped to [0, 360]
func SliderHue(x, width float64) (float64, error) {
	if !(width > 0) {
		return 0, ErrEmptyArea
	}
	return clampTo(math.Round(x/width*colorspace.MaxHue), colorspace.MaxHue), nil
}

// SliderDragHue moves startHue by a horizontal drag of dx. The delta is
// rounded on its own, then added, and the sum is clamped to [0, 360].
func SliderDragHue(startHue, dx, width float64) (float64, error) {
	if !(width > 0) {
		return 0, ErrEmptyArea
	}
	delta := math.Round(dx / width * colorspace.MaxHue)
	return clampTo(startHue+delta, colorspace.MaxHue), nil
}

// PaletteSaturationValue maps a click inside the saturation/value square.
// Saturation grows to the right, value grows upward, so the top right corner
// is (100, 100).
//
// Parameters:
//   - x, y: Pointer offset from the top left corner of the square
//   - width, height: Size of the square
//
// Returns:
//   - saturation: round(x / width * 100), clamped to [0, 100]
//   - value: 100 - round(y / height * 100), clamped to [0, 100]
func PaletteSaturationValue(x, y, width, height float64) (s, v float64, err error) {
	if !(width > 0) || !(height > 0) {
		return 0, 0, ErrEmptyArea
	}
	s = math.Round(x / width * colorspace.MaxSVL)
	v = colorspace.MaxSVL - math.Round(y/height*colorspace.MaxSVL)
	return clampTo(s, colorspace.MaxSVL), clampTo(v, colorspace.MaxSVL), nil
}

// PaletteDrag moves (startS, startV) by a drag of (dx, dy) inside the square.
// Dragging down lowers the value.
func PaletteDrag(startS, startV, dx, dy, width, height float64) (s, v float64, err error) {
	if !(width > 0) || !(height > 0) {
		return 0, 0, ErrEmptyArea
	}
	s = startS + math.Round(dx/width*colorspace.MaxSVL)
	v = startV - math.Round(dy/height*colorspace.MaxSVL)
	return clampTo(s, colorspace.MaxSVL), clampTo(v, colorspace.MaxSVL), nil
}

func clampTo(v, limit float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > limit:
		return limit
	}
	return v
}
