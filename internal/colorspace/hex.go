package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hex is a canonical "#rrggbb" color string. Values produced by ParseHex and
// HexFromRGB are always six lowercase digits with a leading '#'.
type Hex string

// ParseHex normalizes a 3- or 6-digit hex color, with or without '#', to its
// canonical form. A short form is expanded by doubling each digit, so "AbC"
// becomes "#aabbcc".
func ParseHex(s string) (Hex, error) {
	if m := hexShortPattern.FindStringSubmatch(s); m != nil {
		s = m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	} else if m := hexLongPattern.FindStringSubmatch(s); m != nil {
		s = m[1] + m[2] + m[3]
	} else {
		return "", &ParseError{Format: FormatHex, Input: s, Err: ErrNoMatch}
	}
	return Hex("#" + strings.ToLower(s)), nil
}

func (h Hex) String() string {
	return string(h)
}

// HexFromRGB renders each channel as two zero-padded lowercase hex digits.
func HexFromRGB(rgb RGB) Hex {
	c := rgb.clamped()
	return Hex(fmt.Sprintf("#%02x%02x%02x",
		int(math.Round(c.Red)), int(math.Round(c.Green)), int(math.Round(c.Blue))))
}

// RGBFromHex converts a hex color to RGB. h need not be canonical; it is
// normalized with ParseHex first.
func RGBFromHex(h Hex) (RGB, error) {
	canonical, err := ParseHex(string(h))
	if err != nil {
		return RGB{}, err
	}
	v, err := strconv.ParseUint(string(canonical[1:]), 16, 32)
	if err != nil {
		return RGB{}, &ParseError{Format: FormatHex, Input: string(h), Err: err}
	}
	return RGB{
		Red:   float64(v>>16&0xff),
		Green: float64(v>>8&0xff),
		Blue:  float64(v & 0xff),
	}, nil
}
