package colorspace

import (
	"math"
)

// CMYK is a color in the subtractive cyan/magenta/yellow/black model, each
// component a percentage.
type CMYK struct {
	Cyan    float64 `json:"cyan"`
	Magenta float64 `json:"magenta"`
	Yellow  float64 `json:"yellow"`
	Black   float64 `json:"black"`
}

// ParseCMYK parses "c%, m%, y%, k%". Ranges are not checked; see IsValidCMYK.
func ParseCMYK(s string) (CMYK, error) {
	v, err := parseComponents(FormatCMYK, cmykPattern, s)
	if err != nil {
		return CMYK{}, err
	}
	return CMYK{Cyan: v[0], Magenta: v[1], Yellow: v[2], Black: v[3]}, nil
}

// String returns the canonical "c%, m%, y%, k%" form.
func (c CMYK) String() string {
	return formatComponent(c.Cyan) + "%, " + formatComponent(c.Magenta) + "%, " +
		formatComponent(c.Yellow) + "%, " + formatComponent(c.Black) + "%"
}

func (c CMYK) clamped() CMYK {
	return CMYK{
		Cyan:    clamp(c.Cyan, minComponent, MaxCMYK),
		Magenta: clamp(c.Magenta, minComponent, MaxCMYK),
		Yellow:  clamp(c.Yellow, minComponent, MaxCMYK),
		Black:   clamp(c.Black, minComponent, MaxCMYK),
	}
}

// CMYKFromRGB converts RGB to CMYK with k = 1 - max(r, g, b) and
// c = (1-r-k)/(1-k), and likewise for m and y.
//
// Pure black (k = 1) is defined as 0%, 0%, 0%, 100%. Results are not rounded
// so that RGB -> CMYK -> RGB reproduces the input.
func CMYKFromRGB(rgb RGB) CMYK {
	r, g, b := rgb.normalized()

	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{Black: MaxCMYK}
	}

	return CMYK{
		Cyan:    (1 - r - k) / (1 - k) * MaxCMYK,
		Magenta: (1 - g - k) / (1 - k) * MaxCMYK,
		Yellow:  (1 - b - k) / (1 - k) * MaxCMYK,
		Black:   k * MaxCMYK,
	}
}
