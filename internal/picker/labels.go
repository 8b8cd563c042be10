package picker

import (
	"strings"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
)

// Title is the window title of the picker.
const Title = "Color picker"

// Labels maps each format to the caption shown next to its input field.
var Labels = map[colorspace.Format]string{
	colorspace.FormatHex:  "HEX",
	colorspace.FormatRGB:  "RGB",
	colorspace.FormatCMYK: "CMYK",
	colorspace.FormatHSV:  "HSV",
	colorspace.FormatHSL:  "HSL",
}

// Label returns the caption for f, falling back to its upper-cased name.
func Label(f colorspace.Format) string {
	if l, ok := Labels[f]; ok {
		return l
	}
	return strings.ToUpper(string(f))
}
