// Package colorspace implements the color conversion and validation engine
// behind the color picker.
//
// Five representations of one color are supported: HEX, RGB, CMYK, HSV and
// HSL. A Color value holds all five at once and is always fully derived; it is
// built by exactly one of the From* constructors and never mutated afterwards.
// Every edit in the picker (typing into a text field, dragging the hue slider,
// dragging inside the saturation/value palette) produces a new Color.
//
// # Component Ranges
//
//   - RGB: red, green, blue in [0, 255]
//   - HSV: hue in [0, 360), saturation and value in [0, 100]
//   - HSL: hue in [0, 360), saturation and lightness in [0, 100]
//   - CMYK: cyan, magenta, yellow, black in [0, 100]
//   - Hex: "#rrggbb", always lowercase on output
//
// Hue wraps modulo 360. All other components are clamped into range when a
// Color is constructed, so no conversion ever yields a negative, NaN or
// out-of-range component.
//
// # Pivots
//
// HSV is the pivot for everything reached through HSL, and RGB is the pivot
// for everything reached through Hex or CMYK:
//
//	Hex  -> RGB -> {HSV -> HSL, CMYK}
//	CMYK -> RGB -> {Hex, HSV -> HSL}
//	HSL  -> HSV -> RGB -> {Hex, CMYK}
//	HSV  -> {RGB -> {Hex, CMYK}, HSL}
//
// # Canonical Strings
//
// The display forms are byte-exact and are accepted back by the matching
// validator and parser:
//
//	RGB   "18, 52, 86"
//	Hex   "#0c2238"
//	CMYK  "40%, 30%, 20%, 10%"
//	HSV   "250°, 100%, 50%"
//	HSL   "300°, 50%, 20%"
//
// Components are kept as float64 internally and rounded only when formatted,
// except where a conversion is defined to round (anything producing RGB, and
// the HSV/HSL saturation-lightness remap).
//
// # Validation and Parsing
//
// Validators (IsValidHex, IsValidRGB, IsValidCMYK, IsValidHSV, IsValidHSL)
// check grammar and numeric ranges and never fail. Callers are expected to
// validate free text before passing it to a constructor. The constructors
// still parse defensively and return a *ParseError instead of panicking when
// the text does not match the grammar.
//
// # Thread Safety
//
// The package holds no mutable state. Every function is safe for concurrent
// use and Color values may be shared freely between goroutines.
package colorspace
