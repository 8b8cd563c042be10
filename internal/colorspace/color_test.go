package colorspace

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mustColor fails the test if a constructor returns an error.
func mustColor(t *testing.T) func(Color, error) Color {
	return func(c Color, err error) Color {
		t.Helper()
		if err != nil {
			t.Fatalf("constructor failed: %v", err)
		}
		return c
	}
}

func TestColor_ReferenceScenarios(t *testing.T) {
	tests := []struct {
		name   string
		build  func() (Color, error)
		method func(Color) string
		want   string
	}{
		{
			"rgb from cmyk",
			func() (Color, error) { return FromCMYK("40%, 30%, 20%, 10%") },
			Color.RGBValue,
			"138, 161, 184",
		},
		{
			"rgb from hex",
			func() (Color, error) { return FromHex("123456") },
			Color.RGBValue,
			"18, 52, 86",
		},
		{
			"rgb from hsl",
			func() (Color, error) { return FromHSL("300°, 50%, 20%") },
			Color.RGBValue,
			"77, 25, 77",
		},
		{
			"rgb from hsv string",
			func() (Color, error) { return FromHSV("250°, 100%, 50%") },
			Color.RGBValue,
			"21, 0, 128",
		},
		{
			"rgb from hsv values",
			func() (Color, error) { return FromHSVValues(250.0, 100.0, 50.0), nil },
			Color.RGBValue,
			"21, 0, 128",
		},
		{
			"hex from rgb",
			func() (Color, error) { return FromRGB("12, 34, 56") },
			Color.HexValue,
			"#0c2238",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustColor(t)(tt.build())
			if got := tt.method(c); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

type displayed struct {
	Hex, RGB, CMYK, HSV, HSL string
}

func display(c Color) displayed {
	return displayed{
		Hex:  c.HexValue(),
		RGB:  c.RGBValue(),
		CMYK: c.CMYKValue(),
		HSV:  c.HSVValue(),
		HSL:  c.HSLValue(),
	}
}

func TestColor_FullyPopulated(t *testing.T) {
	tests := []struct {
		name  string
		build func() (Color, error)
		want  displayed
	}{
		{
			"from hex short",
			func() (Color, error) { return FromHex("#ABC") },
			displayed{"#aabbcc", "170, 187, 204", "17%, 8%, 0%, 20%", "210°, 17%, 80%", "210°, 25%, 73%"},
		},
		{
			"from rgb red",
			func() (Color, error) { return FromRGB("255, 0, 0") },
			displayed{"#ff0000", "255, 0, 0", "0%, 100%, 100%, 0%", "0°, 100%, 100%", "0°, 100%, 50%"},
		},
		{
			"from rgb black",
			func() (Color, error) { return FromRGB("0, 0, 0") },
			displayed{"#000000", "0, 0, 0", "0%, 0%, 0%, 100%", "0°, 0%, 0%", "0°, 0%, 0%"},
		},
		{
			"from rgb white",
			func() (Color, error) { return FromRGB("255,255,255") },
			displayed{"#ffffff", "255, 255, 255", "0%, 0%, 0%, 0%", "0°, 0%, 100%", "0°, 0%, 100%"},
		},
		{
			"from cmyk keeps cmyk",
			func() (Color, error) { return FromCMYK("40%, 30%, 20%, 10%") },
			displayed{"#8aa1b8", "138, 161, 184", "40%, 30%, 20%, 10%", "210°, 25%, 72%", "210°, 24%, 63%"},
		},
		{
			"from hsv",
			func() (Color, error) { return FromHSV("250°, 100%, 50%") },
			displayed{"#150080", "21, 0, 128", "84%, 100%, 0%, 50%", "250°, 100%, 50%", "250°, 100%, 25%"},
		},
		{
			"from hsl keeps hsl",
			func() (Color, error) { return FromHSL("300°, 50%, 20%") },
			displayed{"#4d194d", "77, 25, 77", "0%, 68%, 0%, 70%", "300°, 67%, 30%", "300°, 50%, 20%"},
		},
		{
			"from hsl black",
			func() (Color, error) { return FromHSL("0°, 0%, 0%") },
			displayed{"#000000", "0, 0, 0", "0%, 0%, 0%, 100%", "0°, 0%, 0%", "0°, 0%, 0%"},
		},
		{
			"achromatic keeps hue",
			func() (Color, error) { return FromHSV("200°, 0%, 50%") },
			displayed{"#808080", "128, 128, 128", "0%, 0%, 0%, 50%", "200°, 0%, 50%", "200°, 0%, 50%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustColor(t)(tt.build())
			if diff := cmp.Diff(tt.want, display(c)); diff != "" {
				t.Errorf("display mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColor_HueWrap(t *testing.T) {
	for _, s := range []float64{0, 25, 100} {
		for _, v := range []float64{0, 60, 100} {
			a := FromHSVValues(360, s, v)
			b := FromHSVValues(0, s, v)
			if a.RGBValue() != b.RGBValue() {
				t.Errorf("hue 360 vs 0 at s=%v v=%v: %s != %s", s, v, a.RGBValue(), b.RGBValue())
			}
			if a != b {
				t.Errorf("hue 360 and 0 should build identical colors at s=%v v=%v", s, v)
			}
		}
	}

	if got := FromHSVValues(-30, 50, 50); got != FromHSVValues(330, 50, 50) {
		t.Errorf("hue -30 should wrap to 330, got hue %v", got.Hue())
	}
	if got := FromHSVValues(720+15, 50, 50).Hue(); got != 15 {
		t.Errorf("hue 735 should wrap to 15, got %v", got)
	}

	c := mustColor(t)(FromHSV("360°, 10%, 10%"))
	if c.Hue() != 0 {
		t.Errorf("parsed hue 360 should wrap to 0, got %v", c.Hue())
	}
}

func TestColor_ClampsComponents(t *testing.T) {
	c := FromHSVValues(10, 150, -5)
	if diff := cmp.Diff(HSV{10, 100, 0}, c.HSV()); diff != "" {
		t.Errorf("HSV clamp mismatch (-want +got):\n%s", diff)
	}

	c = mustColor(t)(FromRGB("300, 12, 999"))
	if diff := cmp.Diff(RGB{255, 12, 255}, c.RGB()); diff != "" {
		t.Errorf("RGB clamp mismatch (-want +got):\n%s", diff)
	}

	c = mustColor(t)(FromCMYK("120%, 0%, 0%, 0%"))
	if c.CMYKValue() != "100%, 0%, 0%, 0%" {
		t.Errorf("CMYK clamp: got %s", c.CMYKValue())
	}
}

func TestColor_Idempotence(t *testing.T) {
	seeds := []Color{
		FromHSVValues(0, 0, 0),
		FromHSVValues(359.7, 100, 100),
		FromHSVValues(123.4, 56.7, 89.1),
		mustColor(t)(FromRGB("12, 34, 56")),
		mustColor(t)(FromHex("#fedcba")),
		mustColor(t)(FromCMYK("50%, 0%, 50%, 100%")),
		mustColor(t)(FromHSL("300°, 50%, 20%")),
	}

	for _, c := range seeds {
		for _, f := range Formats {
			text, err := c.Text(f)
			if err != nil {
				t.Fatalf("Text(%s) failed: %v", f, err)
			}
			if !Validate(f, text) {
				t.Errorf("%s display %q does not validate", f, text)
				continue
			}
			again, err := Parse(f, text)
			if err != nil {
				t.Fatalf("Parse(%s, %q) failed: %v", f, text, err)
			}
			if got, _ := again.Text(f); got != text {
				t.Errorf("%s not idempotent: %q reparsed as %q", f, text, got)
			}
		}
	}
}

func TestColor_Immutable(t *testing.T) {
	base := FromHSVValues(120, 50, 50)
	before := display(base)

	_ = base.WithHue(10)
	_ = base.WithSaturationValue(5, 5)

	if diff := cmp.Diff(before, display(base)); diff != "" {
		t.Errorf("derived colors changed the original (-before +after):\n%s", diff)
	}

	moved := base.WithHue(240)
	if moved.Saturation() != base.Saturation() || moved.Value() != base.Value() {
		t.Errorf("WithHue should keep saturation and value: got s=%v v=%v", moved.Saturation(), moved.Value())
	}
	dragged := base.WithSaturationValue(10, 90)
	if dragged.Hue() != base.Hue() {
		t.Errorf("WithSaturationValue should keep hue: got %v", dragged.Hue())
	}
}

func TestColor_ParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (Color, error)
	}{
		{"hex", func() (Color, error) { return FromHex("#xyz") }},
		{"rgb", func() (Color, error) { return FromRGB("red") }},
		{"cmyk", func() (Color, error) { return FromCMYK("1, 2, 3, 4") }},
		{"hsv", func() (Color, error) { return FromHSV("200, 30, 70") }},
		{"hsl", func() (Color, error) { return FromHSL("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if err == nil {
				t.Fatal("expected a parse error")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error should be a *ParseError, got %T", err)
			}
			if string(perr.Format) != tt.name {
				t.Errorf("Format: got %s, want %s", perr.Format, tt.name)
			}
			if !errors.Is(err, ErrNoMatch) {
				t.Errorf("error should wrap ErrNoMatch: %v", err)
			}
		})
	}
}

func TestColor_ImageColor(t *testing.T) {
	var c color.Color = mustColor(t)(FromRGB("18, 52, 86"))

	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	want := color.NRGBA{R: 18, G: 52, B: 86, A: 255}
	if got != want {
		t.Errorf("NRGBA: got %v, want %v", got, want)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"HEX", " rgb", "Cmyk", "hsv", "HSL "} {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", name, err)
		}
	}

	_, err := ParseFormat("lab")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(lab): got %v, want ErrUnknownFormat", err)
	}

	if _, err := Parse(Format("lab"), "1, 2, 3"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Parse with unknown format: got %v", err)
	}
	if Validate(Format("lab"), "1, 2, 3") {
		t.Error("Validate with unknown format should be false")
	}
}

func TestFromImageColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want string
	}{
		{"opaque rgba", color.RGBA{R: 12, G: 34, B: 56, A: 255}, "#0c2238"},
		{"gray16", color.Gray16{Y: 0xffff}, "#ffffff"},
		{"half transparent is unpremultiplied", color.RGBA{R: 128, G: 0, B: 0, A: 128}, "#ff0000"},
		{"already a Color", FromHSVValues(120, 50, 50), "#408040"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromImageColor(tt.in).HexValue(); got != tt.want {
				t.Errorf("FromImageColor: got %s, want %s", got, tt.want)
			}
		})
	}

	if _, ok := Model.Convert(color.Black).(Color); !ok {
		t.Error("Model should convert to Color")
	}
}
