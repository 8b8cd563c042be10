package colorspace

import (
	"math"
	"strconv"
)

// Component bounds shared by the validators and the converters.
const (
	MaxHue  = 360.0 // hue upper bound; accepted by validators, wrapped to 0 on construction
	MaxSVL  = 100.0 // saturation, value and lightness upper bound (percent)
	MaxRGB  = 255.0 // 8-bit channel upper bound
	MaxCMYK = 100.0 // cyan, magenta, yellow and black upper bound (percent)

	minComponent = 0.0
)

// wrapHue maps any hue onto [0, 360). Non-finite input becomes 0.
func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, MaxHue)
	if h < 0 {
		h += MaxHue
	}
	// a tiny negative remainder plus 360 can round up to exactly 360
	if h >= MaxHue {
		h = 0
	}
	return h
}

// clamp limits v to [lo, hi]. NaN becomes lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatComponent renders a component the way every canonical string does:
// rounded half away from zero and printed as an integer.
func formatComponent(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}

// formatHue is formatComponent for hues; 359.6 prints as "0", never "360".
func formatHue(h float64) string {
	return formatComponent(wrapHue(math.Round(h)))
}

func inRange(v, lo, hi float64) bool {
	return lo <= v && v <= hi
}
