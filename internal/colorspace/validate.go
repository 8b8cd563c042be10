package colorspace

import (
	"regexp"
	"strconv"
)

// Grammars for the textual formats. The HSV/HSL pattern is deliberately
// unanchored and, when it matches more than once, the last match is the one
// that is range-checked and parsed.
var (
	hexShortPattern = regexp.MustCompile(`^#?([0-9A-Fa-f])([0-9A-Fa-f])([0-9A-Fa-f])$`)
	hexLongPattern  = regexp.MustCompile(`^#?([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})$`)
	rgbPattern      = regexp.MustCompile(`^(\d{1,3}),\s*(\d{1,3}),\s*(\d{1,3})$`)
	cmykPattern     = regexp.MustCompile(`^(\d{1,3})%,\s*(\d{1,3})%,\s*(\d{1,3})%,\s*(\d{1,3})%$`)
	hsvPattern      = regexp.MustCompile(`(\d{1,3})°,\s*(\d{1,3})%,\s*(\d{1,3})%`)
)

// bounds is an inclusive [min, max] pair for one captured component.
type bounds struct{ min, max float64 }

var (
	rgbBounds  = []bounds{{minComponent, MaxRGB}, {minComponent, MaxRGB}, {minComponent, MaxRGB}}
	cmykBounds = []bounds{{minComponent, MaxCMYK}, {minComponent, MaxCMYK}, {minComponent, MaxCMYK}, {minComponent, MaxCMYK}}
	hsvBounds  = []bounds{{minComponent, MaxHue}, {minComponent, MaxSVL}, {minComponent, MaxSVL}}
)

// IsValidHex reports whether s is a 3- or 6-digit hex color with an optional
// leading '#'. Digits are case-insensitive.
func IsValidHex(s string) bool {
	return hexShortPattern.MatchString(s) || hexLongPattern.MatchString(s)
}

// IsValidRGB reports whether s has the form "r, g, b" with every channel in
// [0, 255]. Whitespace is allowed only after each comma.
func IsValidRGB(s string) bool {
	return validComponents(rgbPattern, s, rgbBounds)
}

// IsValidCMYK reports whether s has the form "c%, m%, y%, k%" with every
// component in [0, 100].
func IsValidCMYK(s string) bool {
	return validComponents(cmykPattern, s, cmykBounds)
}

// IsValidHSV reports whether s contains "h°, s%, v%" with the hue in [0, 360]
// and the other two components in [0, 100].
//
// The hue bound is inclusive: "360°" validates and is wrapped to 0 when the
// color is built.
func IsValidHSV(s string) bool {
	return validComponents(hsvPattern, s, hsvBounds)
}

// IsValidHSL is IsValidHSV; both formats share one grammar and one set of
// bounds.
func IsValidHSL(s string) bool {
	return IsValidHSV(s)
}

func validComponents(re *regexp.Regexp, s string, limits []bounds) bool {
	m := lastMatch(re, s)
	if m == nil {
		return false
	}
	for i, b := range limits {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil || !inRange(v, b.min, b.max) {
			return false
		}
	}
	return true
}

// lastMatch returns the submatches of the last match of re in s, or nil.
func lastMatch(re *regexp.Regexp, s string) []string {
	all := re.FindAllStringSubmatch(s, -1)
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

// parseComponents extracts the numeric captures of the last match of re.
func parseComponents(f Format, re *regexp.Regexp, s string) ([]float64, error) {
	m := lastMatch(re, s)
	if m == nil {
		return nil, &ParseError{Format: f, Input: s, Err: ErrNoMatch}
	}
	values := make([]float64, 0, len(m)-1)
	for _, capture := range m[1:] {
		v, err := strconv.ParseFloat(capture, 64)
		if err != nil {
			return nil, &ParseError{Format: f, Input: s, Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}
