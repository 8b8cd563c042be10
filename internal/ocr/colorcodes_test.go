package ocr

import (
	"testing"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
)

func TestFindColorCodes(t *testing.T) {
	text := "Primary #0C2238, accent rgb(18 , 52,86)\n" +
		"print 40 %, 30%,20%, 10% and hsv 250°,100%, 50%; hsl(300°, 50%, 20%)\n" +
		"bad #ABT123 and 256, 0, 0"

	codes := FindColorCodes(text)

	want := []struct {
		format colorspace.Format
		text   string
		valid  bool
		rgb    string
	}{
		{colorspace.FormatHex, "#0C2238", true, "12, 34, 56"},
		{colorspace.FormatRGB, "18, 52, 86", true, "18, 52, 86"},
		{colorspace.FormatCMYK, "40%, 30%, 20%, 10%", true, "138, 161, 184"},
		{colorspace.FormatHSV, "250°, 100%, 50%", true, "21, 0, 128"},
		{colorspace.FormatHSL, "300°, 50%, 20%", true, "77, 25, 77"},
		{colorspace.FormatRGB, "256, 0, 0", false, ""},
	}

	if len(codes) != len(want) {
		for _, c := range codes {
			t.Logf("found %s %q", c.Format, c.Text)
		}
		t.Fatalf("codes: got %d, want %d", len(codes), len(want))
	}

	for i, w := range want {
		got := codes[i]
		if got.Format != w.format || got.Text != w.text || got.Valid != w.valid {
			t.Errorf("code %d: got %s %q valid=%v, want %s %q valid=%v",
				i, got.Format, got.Text, got.Valid, w.format, w.text, w.valid)
			continue
		}
		if w.valid {
			if got.Color == nil {
				t.Errorf("code %d: valid code without a color", i)
			} else if got.Color.RGB != w.rgb {
				t.Errorf("code %d: RGB got %s, want %s", i, got.Color.RGB, w.rgb)
			}
		} else if got.Color != nil {
			t.Errorf("code %d: invalid code should have no color", i)
		}
		if text[got.Offset:got.Offset+len(got.Raw)] != got.Raw {
			t.Errorf("code %d: offset %d does not point at %q", i, got.Offset, got.Raw)
		}
	}
}

func TestFindColorCodes_HSLKeepsItsComponents(t *testing.T) {
	codes := FindColorCodes("HSL: 300°, 50%, 20%")
	if len(codes) != 1 {
		t.Fatalf("codes: got %d, want 1", len(codes))
	}
	if codes[0].Format != colorspace.FormatHSL {
		t.Fatalf("format: got %s, want hsl", codes[0].Format)
	}
	if codes[0].Color.HSL != "300°, 50%, 20%" {
		t.Errorf("HSL: got %s, want 300°, 50%%, 20%%", codes[0].Color.HSL)
	}
}

func TestFindColorCodes_NoFalsePositives(t *testing.T) {
	inputs := []string{
		"",
		"version 123456 released",
		"call 555 1234",
		"#ABCD is not a color",
		"1,2",
	}
	for _, in := range inputs {
		if codes := FindColorCodes(in); len(codes) != 0 {
			t.Errorf("FindColorCodes(%q): got %d codes, want 0", in, len(codes))
		}
	}
}
