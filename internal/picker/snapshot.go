package picker

import (
	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
)

// Snapshot is the view model of one color: every canonical string plus the
// numbers the slider and palette need to position their markers.
type Snapshot struct {
	Hex  string `json:"hex"`
	RGB  string `json:"rgb"`
	CMYK string `json:"cmyk"`
	HSL  string `json:"hsl"`
	HSV  string `json:"hsv"`

	// TopRightCorner is the fully saturated, full value color at the current
	// hue as a CSS "rgb(r, g, b)" string. Views paint the palette background
	// with it.
	TopRightCorner string `json:"top_right_corner"`

	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

// SnapshotOf builds the Snapshot of c.
func SnapshotOf(c colorspace.Color) Snapshot {
	corner := colorspace.FromHSVValues(c.Hue(), colorspace.MaxSVL, colorspace.MaxSVL)
	return Snapshot{
		Hex:            c.HexValue(),
		RGB:            c.RGBValue(),
		CMYK:           c.CMYKValue(),
		HSL:            c.HSLValue(),
		HSV:            c.HSVValue(),
		TopRightCorner: corner.RGB().CSS(),
		Hue:            c.Hue(),
		Saturation:     c.Saturation(),
		Value:          c.Value(),
	}
}
