package colorspace

import (
	"fmt"
	"strings"
)

// Format names one of the five textual color representations.
type Format string

// Supported formats.
const (
	FormatHex  Format = "hex"
	FormatRGB  Format = "rgb"
	FormatCMYK Format = "cmyk"
	FormatHSV  Format = "hsv"
	FormatHSL  Format = "hsl"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatHex, FormatRGB, FormatCMYK, FormatHSV, FormatHSL}

func (f Format) String() string {
	return string(f)
}

// ParseFormat resolves a case-insensitive format name such as "HEX" or "hsl".
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatHex, FormatRGB, FormatCMYK, FormatHSV, FormatHSL:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Validate runs the validator that matches f. Unknown formats never validate.
func Validate(f Format, s string) bool {
	switch f {
	case FormatHex:
		return IsValidHex(s)
	case FormatRGB:
		return IsValidRGB(s)
	case FormatCMYK:
		return IsValidCMYK(s)
	case FormatHSV:
		return IsValidHSV(s)
	case FormatHSL:
		return IsValidHSL(s)
	}
	return false
}

// Parse builds a Color from s using the constructor that matches f.
//
// Parse does not validate ranges; call Validate first when s is user input.
func Parse(f Format, s string) (Color, error) {
	switch f {
	case FormatHex:
		return FromHex(s)
	case FormatRGB:
		return FromRGB(s)
	case FormatCMYK:
		return FromCMYK(s)
	case FormatHSV:
		return FromHSV(s)
	case FormatHSL:
		return FromHSL(s)
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Text returns the canonical display string of c in format f.
func (c Color) Text(f Format) (string, error) {
	switch f {
	case FormatHex:
		return c.HexValue(), nil
	case FormatRGB:
		return c.RGBValue(), nil
	case FormatCMYK:
		return c.CMYKValue(), nil
	case FormatHSV:
		return c.HSVValue(), nil
	case FormatHSL:
		return c.HSLValue(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
