package colorspace

import (
	"math"
)

// RGB is a color in the 8-bit red/green/blue model. Channels range over
// [0, 255]; they are float64 so fractional values survive chained math, but
// every converter that produces RGB rounds to whole channels.
type RGB struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// ParseRGB parses "r, g, b". Ranges are not checked; see IsValidRGB.
func ParseRGB(s string) (RGB, error) {
	v, err := parseComponents(FormatRGB, rgbPattern, s)
	if err != nil {
		return RGB{}, err
	}
	return RGB{Red: v[0], Green: v[1], Blue: v[2]}, nil
}

// String returns the canonical "r, g, b" form, e.g. "18, 52, 86".
func (c RGB) String() string {
	return formatComponent(c.Red) + ", " + formatComponent(c.Green) + ", " + formatComponent(c.Blue)
}

// CSS returns the color as a CSS function, e.g. "rgb(18, 52, 86)".
func (c RGB) CSS() string {
	return "rgb(" + c.String() + ")"
}

func (c RGB) clamped() RGB {
	return RGB{
		Red:   clamp(c.Red, minComponent, MaxRGB),
		Green: clamp(c.Green, minComponent, MaxRGB),
		Blue:  clamp(c.Blue, minComponent, MaxRGB),
	}
}

// normalized returns the channels scaled to [0, 1].
func (c RGB) normalized() (r, g, b float64) {
	return c.Red / MaxRGB, c.Green / MaxRGB, c.Blue / MaxRGB
}

// rgbFromUnit scales unit channels to [0, 255] and rounds each one.
func rgbFromUnit(r, g, b float64) RGB {
	return RGB{
		Red:   math.Round(r * MaxRGB),
		Green: math.Round(g * MaxRGB),
		Blue:  math.Round(b * MaxRGB),
	}
}

// RGBFromHSV converts HSV to RGB with the hexagonal-cone algorithm.
//
// Saturation 0 is achromatic: every channel equals the value. Otherwise the
// hue selects one of six 60° sectors and the channels are picked from
// v, p = v(1-s), q = v(1-sf) and t = v(1-s(1-f)) where f is the position
// inside the sector. A hue of exactly 360 falls in sector 0.
func RGBFromHSV(hsv HSV) RGB {
	s := hsv.Saturation / MaxSVL
	v := hsv.Value / MaxSVL

	if hsv.Saturation == 0 {
		return rgbFromUnit(v, v, v)
	}

	sector := hsv.Hue / 60
	i := math.Floor(sector)
	f := sector - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch (int(i)%6 + 6) % 6 {
	case 0:
		return rgbFromUnit(v, t, p)
	case 1:
		return rgbFromUnit(q, v, p)
	case 2:
		return rgbFromUnit(p, v, t)
	case 3:
		return rgbFromUnit(p, q, v)
	case 4:
		return rgbFromUnit(t, p, v)
	default:
		return rgbFromUnit(v, p, q)
	}
}

// RGBFromCMYK converts the subtractive CMYK model to RGB:
// r = (1-c)(1-k), g = (1-m)(1-k), b = (1-y)(1-k), each scaled and rounded.
func RGBFromCMYK(cmyk CMYK) RGB {
	c := cmyk.Cyan / MaxCMYK
	m := cmyk.Magenta / MaxCMYK
	y := cmyk.Yellow / MaxCMYK
	k := cmyk.Black / MaxCMYK

	return rgbFromUnit((1-c)*(1-k), (1-m)*(1-k), (1-y)*(1-k))
}
