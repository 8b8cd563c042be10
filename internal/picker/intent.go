package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
	"github.com/ironsheep/color-picker-mcp/internal/metrics"
)

var (
	// ErrRejected is returned when a free-text edit fails validation. The
	// current color is left unchanged.
	ErrRejected = errors.New("color edit rejected")

	// ErrInvalidIntent is returned for an intent with an unknown kind or a
	// missing payload.
	ErrInvalidIntent = errors.New("invalid intent")
)

// IntentKind names what a UI change did.
type IntentKind string

// Intent kinds. The five text kinds share their names with colorspace.Format.
const (
	KindHex             IntentKind = IntentKind(colorspace.FormatHex)
	KindRGB             IntentKind = IntentKind(colorspace.FormatRGB)
	KindCMYK            IntentKind = IntentKind(colorspace.FormatCMYK)
	KindHSV             IntentKind = IntentKind(colorspace.FormatHSV)
	KindHSL             IntentKind = IntentKind(colorspace.FormatHSL)
	KindHue             IntentKind = "hue"
	KindSaturationValue IntentKind = "saturation_value"
	KindColor           IntentKind = "color"
)

// Intent is one change requested by a view. Which fields matter depends on
// Kind: the text kinds read Text, KindHue reads Hue, KindSaturationValue
// reads Saturation and Value. KindColor carries a built Color and is only
// produced in-process by ColorChanged; over JSON it reads Text as a hex
// string.
type Intent struct {
	Kind       IntentKind `json:"kind"`
	Text       string     `json:"text,omitempty"`
	Hue        float64    `json:"hue,omitempty"`
	Saturation float64    `json:"saturation,omitempty"`
	Value      float64    `json:"value,omitempty"`

	color *colorspace.Color
}

// HexChanged is an edit of the hex field.
func HexChanged(text string) Intent { return Intent{Kind: KindHex, Text: text} }

// RGBChanged is an edit of the rgb field.
func RGBChanged(text string) Intent { return Intent{Kind: KindRGB, Text: text} }

// CMYKChanged is an edit of the cmyk field.
func CMYKChanged(text string) Intent { return Intent{Kind: KindCMYK, Text: text} }

// HSVChanged is an edit of the hsv field.
func HSVChanged(text string) Intent { return Intent{Kind: KindHSV, Text: text} }

// HSLChanged is an edit of the hsl field.
func HSLChanged(text string) Intent { return Intent{Kind: KindHSL, Text: text} }

// TextChanged is an edit of the field for format f.
func TextChanged(f colorspace.Format, text string) Intent {
	return Intent{Kind: IntentKind(f), Text: text}
}

// HueChanged is a hue slider move.
func HueChanged(h float64) Intent { return Intent{Kind: KindHue, Hue: h} }

// SaturationValueChanged is a palette move.
func SaturationValueChanged(s, v float64) Intent {
	return Intent{Kind: KindSaturationValue, Saturation: s, Value: v}
}

// ColorChanged replaces the current color outright.
func ColorChanged(c colorspace.Color) Intent {
	return Intent{Kind: KindColor, color: &c}
}

// ParseIntentKind resolves a case-insensitive kind name.
func ParseIntentKind(name string) (IntentKind, error) {
	k := IntentKind(strings.ToLower(strings.TrimSpace(name)))
	switch k {
	case KindHex, KindRGB, KindCMYK, KindHSV, KindHSL, KindHue, KindSaturationValue, KindColor:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidIntent, name)
}

// format returns the text format of a text kind.
func (k IntentKind) format() (colorspace.Format, bool) {
	switch k {
	case KindHex, KindRGB, KindCMYK, KindHSV, KindHSL:
		return colorspace.Format(k), true
	}
	return "", false
}

// resolve computes the color an intent asks for, given the current one.
func (in Intent) resolve(current colorspace.Color) (colorspace.Color, error) {
	kind, err := ParseIntentKind(string(in.Kind))
	if err != nil {
		return colorspace.Color{}, err
	}
	in.Kind = kind

	if f, ok := in.Kind.format(); ok {
		return parseEdit(f, in.Text)
	}

	switch in.Kind {
	case KindHue:
		return current.WithHue(clampTo(in.Hue, colorspace.MaxHue)), nil
	case KindSaturationValue:
		return current.WithSaturationValue(in.Saturation, in.Value), nil
	case KindColor:
		if in.color != nil {
			if in.color.HexValue() == "" {
				return colorspace.Color{}, fmt.Errorf("%w: zero color", ErrInvalidIntent)
			}
			return *in.color, nil
		}
		if in.Text == "" {
			return colorspace.Color{}, fmt.Errorf("%w: color intent without a color", ErrInvalidIntent)
		}
		return parseEdit(colorspace.FormatHex, in.Text)
	}
	return colorspace.Color{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidIntent, in.Kind)
}

// parseEdit validates text as format f and builds the color.
func parseEdit(f colorspace.Format, text string) (colorspace.Color, error) {
	valid := colorspace.Validate(f, text)
	metrics.ObserveValidation(string(f), valid)
	if !valid {
		return colorspace.Color{}, fmt.Errorf("%w: %s %q", ErrRejected, f, text)
	}
	c, err := colorspace.Parse(f, text)
	if err != nil {
		return colorspace.Color{}, fmt.Errorf("%w: %v", ErrRejected, err)
	}
	return c, nil
}
