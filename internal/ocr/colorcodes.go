package ocr

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
	"github.com/ironsheep/color-picker-mcp/internal/imaging"
)

// ColorCode is one color code found in free text.
type ColorCode struct {
	Format colorspace.Format `json:"format"`

	// Raw is the text as it was found; Text is its canonical spelling, which
	// is what gets validated.
	Raw  string `json:"raw"`
	Text string `json:"text"`

	// Offset is the byte offset of Raw in the scanned text.
	Offset int `json:"offset"`

	// Valid is false when the code is well formed but out of range.
	Valid bool                  `json:"valid"`
	Color *imaging.ColorResult `json:"color,omitempty"`
}

// Scan patterns are looser than the validator grammar: OCR tends to add or
// drop spaces around separators. Matches are re-spelled canonically before
// validation.
var (
	scanCMYK = regexp.MustCompile(`(\d{1,3})\s*%\s*,\s*(\d{1,3})\s*%\s*,\s*(\d{1,3})\s*%\s*,\s*(\d{1,3})\s*%`)
	scanHSV  = regexp.MustCompile(`(\d{1,3})\s*°\s*,\s*(\d{1,3})\s*%\s*,\s*(\d{1,3})\s*%`)
	scanRGB  = regexp.MustCompile(`\b(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\b`)
	scanHex  = regexp.MustCompile(`#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`)
)

type scanner struct {
	format colorspace.Format
	re     *regexp.Regexp
	spell  func(groups []string) string
}

// Order matters: longer grammars go first and blank out what they claim, so
// "10%, 20%, 30%, 40%" is not also read as RGB.
var scanners = []scanner{
	{colorspace.FormatCMYK, scanCMYK, func(g []string) string {
		return g[0] + "%, " + g[1] + "%, " + g[2] + "%, " + g[3] + "%"
	}},
	{colorspace.FormatHSV, scanHSV, func(g []string) string {
		return g[0] + "°, " + g[1] + "%, " + g[2] + "%"
	}},
	{colorspace.FormatRGB, scanRGB, func(g []string) string {
		return strings.Join(g, ", ")
	}},
	{colorspace.FormatHex, scanHex, nil},
}

// FindColorCodes returns every color code in text, in order of appearance.
//
// Hex codes need a leading '#' here, since a bare "123" in prose is far more
// likely a number than a color. A degree triple is HSL when "hsl" appears
// just before it and HSV otherwise.
func FindColorCodes(text string) []ColorCode {
	work := []byte(text)
	var codes []ColorCode

	for _, sc := range scanners {
		for _, loc := range sc.re.FindAllSubmatchIndex(work, -1) {
			raw := text[loc[0]:loc[1]]
			canonical := raw
			if sc.spell != nil {
				groups := make([]string, 0, len(loc)/2-1)
				for i := 2; i < len(loc); i += 2 {
					groups = append(groups, text[loc[i]:loc[i+1]])
				}
				canonical = sc.spell(groups)
			}

			format := sc.format
			if format == colorspace.FormatHSV && precededByHSL(text, loc[0]) {
				format = colorspace.FormatHSL
			}

			codes = append(codes, newColorCode(format, raw, canonical, loc[0]))
			for i := loc[0]; i < loc[1]; i++ {
				work[i] = ' '
			}
		}
	}

	sort.Slice(codes, func(i, j int) bool { return codes[i].Offset < codes[j].Offset })
	return codes
}

func newColorCode(f colorspace.Format, raw, canonical string, offset int) ColorCode {
	code := ColorCode{Format: f, Raw: raw, Text: canonical, Offset: offset}
	if !colorspace.Validate(f, canonical) {
		return code
	}
	c, err := colorspace.Parse(f, canonical)
	if err != nil {
		return code
	}
	result := imaging.NewColorResult(c)
	code.Valid = true
	code.Color = &result
	return code
}

func precededByHSL(text string, offset int) bool {
	start := offset - 8
	if start < 0 {
		start = 0
	}
	return strings.Contains(strings.ToLower(text[start:offset]), "hsl")
}
