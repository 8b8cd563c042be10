package colorspace

import (
	"math"
)

// HSV is a color in the hue/saturation/value cylinder, the pivot
// representation of the engine. Hue is in degrees [0, 360); saturation and
// value are percentages.
type HSV struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

// ParseHSV parses "h°, s%, v%". Ranges are not checked; see IsValidHSV.
func ParseHSV(s string) (HSV, error) {
	v, err := parseComponents(FormatHSV, hsvPattern, s)
	if err != nil {
		return HSV{}, err
	}
	return HSV{Hue: v[0], Saturation: v[1], Value: v[2]}, nil
}

// String returns the canonical "h°, s%, v%" form, e.g. "250°, 100%, 50%".
func (c HSV) String() string {
	return formatHue(c.Hue) + "°, " + formatComponent(c.Saturation) + "%, " + formatComponent(c.Value) + "%"
}

func (c HSV) normalized() HSV {
	return HSV{
		Hue:        wrapHue(c.Hue),
		Saturation: clamp(c.Saturation, minComponent, MaxSVL),
		Value:      clamp(c.Value, minComponent, MaxSVL),
	}
}

// HSVFromRGB converts RGB to HSV.
//
// The hue comes from the 60° segment formula of whichever channel is the
// maximum; an achromatic color has hue 0 and a black one saturation 0. The
// result is not rounded, which keeps RGB -> HSV -> RGB exact.
func HSVFromRGB(rgb RGB) HSV {
	r, g, b := rgb.normalized()

	cmax := math.Max(r, math.Max(g, b))
	cmin := math.Min(r, math.Min(g, b))
	diff := cmax - cmin

	var h float64
	switch {
	case cmax == cmin:
		h = 0
	case cmax == r:
		h = 60*((g-b)/diff) + 360
	case cmax == g:
		h = 60*((b-r)/diff) + 120
	default:
		h = 60*((r-g)/diff) + 240
	}

	var s float64
	if cmax != 0 {
		s = diff / cmax * MaxSVL
	}

	return HSV{
		Hue:        wrapHue(h),
		Saturation: s,
		Value:      cmax * MaxSVL,
	}
}

// HSVFromHSL converts HSL to HSV, rounding saturation and value to whole
// percentages. Hue passes through.
//
// Black with zero saturation (l + s = 0 after the lightness remap) has no
// defined HSV saturation; it maps to saturation 0 and value 0.
func HSVFromHSL(hsl HSL) HSV {
	l := hsl.Lightness * 2 / MaxSVL
	s := hsl.Saturation / MaxSVL
	if l <= 1 {
		s *= l
	} else {
		s *= 2 - l
	}

	v := (l + s) / 2
	var sv float64
	if l+s != 0 {
		sv = 2 * s / (l + s)
	}

	return HSV{
		Hue:        hsl.Hue,
		Saturation: math.Round(sv * MaxSVL),
		Value:      math.Round(v * MaxSVL),
	}
}
