package colorspace

import (
	"math"
)

// HSL is a color in the hue/saturation/lightness model. It is always derived
// from HSV (or parsed directly); it is never used as a pivot for RGB.
type HSL struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// ParseHSL parses "h°, s%, l%". It shares its grammar with ParseHSV.
func ParseHSL(s string) (HSL, error) {
	v, err := parseComponents(FormatHSL, hsvPattern, s)
	if err != nil {
		return HSL{}, err
	}
	return HSL{Hue: v[0], Saturation: v[1], Lightness: v[2]}, nil
}

// String returns the canonical "h°, s%, l%" form, e.g. "300°, 50%, 20%".
func (c HSL) String() string {
	return formatHue(c.Hue) + "°, " + formatComponent(c.Saturation) + "%, " + formatComponent(c.Lightness) + "%"
}

func (c HSL) normalized() HSL {
	return HSL{
		Hue:        wrapHue(c.Hue),
		Saturation: clamp(c.Saturation, minComponent, MaxSVL),
		Lightness:  clamp(c.Lightness, minComponent, MaxSVL),
	}
}

// HSLFromHSV remaps value to lightness with l = (2-s)v/2 and recomputes the
// saturation for the double cone. Saturation and lightness are rounded to
// whole percentages; hue passes through.
//
// At lightness 0 the HSV saturation is kept, and at lightness 1 (white) the
// saturation is 0.
func HSLFromHSV(hsv HSV) HSL {
	s := hsv.Saturation / MaxSVL
	v := hsv.Value / MaxSVL

	l := (2 - s) * v / 2

	sl := s
	switch {
	case l == 0:
		// saturation passes through
	case l == 1:
		sl = 0
	case l < 0.5:
		sl = s * v / (l * 2)
	default:
		sl = s * v / (2 - l*2)
	}

	return HSL{
		Hue:        hsv.Hue,
		Saturation: math.Round(sl * MaxSVL),
		Lightness:  math.Round(l * MaxSVL),
	}
}
