package colorspace

import (
	"image/color"
	"math"
)

// Color is one color held in all five representations at once.
//
// A Color is immutable and always fully populated: each constructor derives
// every representation eagerly, and no method modifies the receiver. Colors
// are comparable with ==.
//
// The zero Color is not a derived color (its hex form is empty); build
// colors with one of the From* constructors.
type Color struct {
	hex  Hex
	rgb  RGB
	hsv  HSV
	hsl  HSL
	cmyk CMYK
}

// FromHex builds a Color from a 3- or 6-digit hex string.
//
// Derivation: Hex -> RGB -> {HSV -> HSL, CMYK}.
//
// Example:
//
//	c, err := colorspace.FromHex("123456")
//	// c.RGBValue() == "18, 52, 86"
func FromHex(s string) (Color, error) {
	hex, err := ParseHex(s)
	if err != nil {
		return Color{}, err
	}
	rgb, err := RGBFromHex(hex)
	if err != nil {
		return Color{}, err
	}
	return fromRGB(rgb), nil
}

// FromRGB builds a Color from "r, g, b".
//
// Derivation: RGB -> {Hex, HSV -> HSL, CMYK}.
func FromRGB(s string) (Color, error) {
	rgb, err := ParseRGB(s)
	if err != nil {
		return Color{}, err
	}
	return fromRGB(rgb), nil
}

// FromRGBValues builds a Color from numeric channels. Channels are clamped to
// [0, 255].
func FromRGBValues(r, g, b float64) Color {
	return fromRGB(RGB{Red: r, Green: g, Blue: b})
}

// FromImageColor builds a Color from any image/color.Color. Alpha is
// un-premultiplied and then dropped.
func FromImageColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGBValues(float64(n.R), float64(n.G), float64(n.B))
}

// Model converts image colors to Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromImageColor(c)
})

// FromCMYK builds a Color from "c%, m%, y%, k%". The CMYK components are
// kept as given (clamped to [0, 100]); the rest is derived from the
// resulting RGB.
//
// Derivation: CMYK -> RGB -> {Hex, HSV -> HSL}.
func FromCMYK(s string) (Color, error) {
	cmyk, err := ParseCMYK(s)
	if err != nil {
		return Color{}, err
	}
	cmyk = cmyk.clamped()

	c := fromRGB(RGBFromCMYK(cmyk))
	c.cmyk = cmyk
	return c, nil
}

// FromHSV builds a Color from "h°, s%, v%".
//
// Derivation: HSV -> {RGB -> {Hex, CMYK}, HSL}.
func FromHSV(s string) (Color, error) {
	hsv, err := ParseHSV(s)
	if err != nil {
		return Color{}, err
	}
	return fromHSV(hsv), nil
}

// FromHSVValues builds a Color from an already-parsed HSV triple. It is the
// path used by pointer drags, which only ever produce in-range numbers, so it
// cannot fail.
//
// Hue wraps modulo 360, so FromHSVValues(360, s, v) == FromHSVValues(0, s, v).
// Saturation and value are clamped to [0, 100].
func FromHSVValues(h, s, v float64) Color {
	return fromHSV(HSV{Hue: h, Saturation: s, Value: v})
}

// FromHSL builds a Color from "h°, s%, l%". The HSL components are kept as
// given; HSV is the pivot for everything else.
//
// Derivation: HSL -> HSV -> {RGB -> {Hex, CMYK}}.
func FromHSL(s string) (Color, error) {
	hsl, err := ParseHSL(s)
	if err != nil {
		return Color{}, err
	}
	hsl = hsl.normalized()

	c := fromHSV(HSVFromHSL(hsl))
	c.hsl = hsl
	return c, nil
}

func fromRGB(rgb RGB) Color {
	rgb = rgb.clamped()
	hsv := HSVFromRGB(rgb)
	return Color{
		hex:  HexFromRGB(rgb),
		rgb:  rgb,
		hsv:  hsv,
		hsl:  HSLFromHSV(hsv),
		cmyk: CMYKFromRGB(rgb),
	}
}

func fromHSV(hsv HSV) Color {
	hsv = hsv.normalized()
	rgb := RGBFromHSV(hsv)
	return Color{
		hex:  HexFromRGB(rgb),
		rgb:  rgb,
		hsv:  hsv,
		hsl:  HSLFromHSV(hsv),
		cmyk: CMYKFromRGB(rgb),
	}
}

// HexValue returns the canonical "#rrggbb" string.
func (c Color) HexValue() string { return c.hex.String() }

// RGBValue returns the canonical "r, g, b" string.
func (c Color) RGBValue() string { return c.rgb.String() }

// CMYKValue returns the canonical "c%, m%, y%, k%" string.
func (c Color) CMYKValue() string { return c.cmyk.String() }

// HSLValue returns the canonical "h°, s%, l%" string.
func (c Color) HSLValue() string { return c.hsl.String() }

// HSVValue returns the canonical "h°, s%, v%" string.
func (c Color) HSVValue() string { return c.hsv.String() }

// Hue returns the HSV hue in degrees, [0, 360). The value is unrounded;
// HSVValue shows it rounded to a whole degree.
func (c Color) Hue() float64 { return c.hsv.Hue }

// Saturation returns the HSV saturation percentage.
func (c Color) Saturation() float64 { return c.hsv.Saturation }

// Value returns the HSV value percentage.
func (c Color) Value() float64 { return c.hsv.Value }

// Hex returns the hex representation.
func (c Color) Hex() Hex { return c.hex }

// RGB returns the RGB representation.
func (c Color) RGB() RGB { return c.rgb }

// HSV returns the HSV representation.
func (c Color) HSV() HSV { return c.hsv }

// HSL returns the HSL representation.
func (c Color) HSL() HSL { return c.hsl }

// CMYK returns the CMYK representation.
func (c Color) CMYK() CMYK { return c.cmyk }

// WithHue returns a new Color with the same saturation and value and the
// given hue. This is what dragging the hue slider does.
func (c Color) WithHue(h float64) Color {
	return FromHSVValues(h, c.hsv.Saturation, c.hsv.Value)
}

// WithSaturationValue returns a new Color with the same hue and the given
// saturation and value. This is what dragging inside the palette does.
func (c Color) WithSaturationValue(s, v float64) Color {
	return FromHSVValues(c.hsv.Hue, s, v)
}

// RGBA implements image/color.Color, so a Color can be drawn directly. The
// color is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(math.Round(c.rgb.Red))
	g = uint32(math.Round(c.rgb.Green))
	b = uint32(math.Round(c.rgb.Blue))
	return r * 0x101, g * 0x101, b * 0x101, 0xffff
}
