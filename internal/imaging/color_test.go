package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{12, 34, 56, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	want := ColorResult{
		Hex:  "#0c2238",
		RGB:  "12, 34, 56",
		CMYK: "79%, 39%, 0%, 78%",
		HSV:  "210°, 79%, 22%",
		HSL:  "210°, 65%, 13%",
		RGBA: RGBAColor{R: 12, G: 34, B: 56, A: 255},
	}
	if result.Hex != want.Hex || result.RGB != want.RGB || result.CMYK != want.CMYK ||
		result.HSV != want.HSV || result.HSL != want.HSL || result.RGBA != want.RGBA {
		t.Errorf("SampleColor: got %+v, want %+v", *result, want)
	}
	if result.Color().HexValue() != want.Hex {
		t.Errorf("Color(): got %s, want %s", result.Color().HexValue(), want.Hex)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.RGBA
		wantHex string
		wantHSV string
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#ff0000", "0°, 100%, 100%"},
		{"pure green", color.RGBA{0, 255, 0, 255}, "#00ff00", "120°, 100%, 100%"},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000ff", "240°, 100%, 100%"},
		{"white", color.RGBA{255, 255, 255, 255}, "#ffffff", "0°, 0%, 100%"},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", "0°, 0%, 0%"},
		{"gray", color.RGBA{128, 128, 128, 255}, "#808080", "0°, 0%, 50%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSV != tt.wantHSV {
				t.Errorf("HSV: got %s, want %s", result.HSV, tt.wantHSV)
			}
		})
	}
}

func TestSampleColor_Transparency(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{255, 0, 0, 128})

	result, err := SampleColor(img, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#ff0000" {
		t.Errorf("Hex: got %s, want #ff0000", result.Hex)
	}
	if result.RGBA.A != 128 {
		t.Errorf("Alpha: got %d, want 128", result.RGBA.A)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(10, 10, color.White)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 5},
		{"negative y", 5, -1},
		{"x too large", 10, 5},
		{"y too large", 5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Errorf("expected error for (%d,%d)", tt.x, tt.y)
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := createPatternImage(100, 100)

	points := []LabeledPoint{
		{X: 10, Y: 10, Label: "red"},
		{X: 90, Y: 10, Label: "green"},
		{X: 10, Y: 90},
		{X: 90, Y: 90, Label: "white"},
	}
	result, err := SampleColorsMulti(img, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	want := []string{"#ff0000", "#00ff00", "#0000ff", "#ffffff"}
	if len(result.Samples) != len(want) {
		t.Fatalf("Samples: got %d, want %d", len(result.Samples), len(want))
	}
	for i, s := range result.Samples {
		if s.Color.Hex != want[i] {
			t.Errorf("sample %d: got %s, want %s", i, s.Color.Hex, want[i])
		}
		if s.Label != points[i].Label || s.X != points[i].X || s.Y != points[i].Y {
			t.Errorf("sample %d lost its point: %+v", i, s)
		}
	}

	if _, err := SampleColorsMulti(img, []LabeledPoint{{X: 1, Y: 1}, {X: 500, Y: 1}}); err == nil {
		t.Error("expected error when one point is outside the image")
	}
}

func TestDominantColors(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := DominantColors(img, 10, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 4 {
		t.Fatalf("Colors: got %d, want 4", len(result.Colors))
	}
	for _, c := range result.Colors {
		if c.Percentage != 25 {
			t.Errorf("%s: got %v%%, want 25%%", c.Color.Hex, c.Percentage)
		}
	}

	// Quantization floors 255 to 240.
	if result.Colors[0].Color.Hex != "#0000f0" {
		t.Errorf("first color on a tie: got %s, want #0000f0", result.Colors[0].Color.Hex)
	}
}

func TestDominantColors_RegionAndCount(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := DominantColors(img, 1, &Region{X1: 0, Y1: 0, X2: 60, Y2: 40})
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 {
		t.Fatalf("Colors: got %d, want 1", len(result.Colors))
	}
	if got := result.Colors[0]; got.Color.Hex != "#f00000" || got.Percentage < 83 || got.Percentage > 84 {
		t.Errorf("top color: got %s at %v%%, want #f00000 at 83.3%%", got.Color.Hex, got.Percentage)
	}

	if _, err := DominantColors(img, 0, nil); err == nil {
		t.Error("expected error for zero count")
	}
	if _, err := DominantColors(img, 3, &Region{X1: 200, Y1: 200, X2: 300, Y2: 300}); err == nil {
		t.Error("expected error for a region outside the image")
	}
}

func TestAverageColor(t *testing.T) {
	img := createPatternImage(100, 100)

	// Left half: half red, half blue.
	avg, err := AverageColor(img, &Region{X1: 0, Y1: 0, X2: 50, Y2: 100})
	if err != nil {
		t.Fatalf("AverageColor failed: %v", err)
	}
	if avg.RGB != "128, 0, 128" {
		t.Errorf("RGB: got %s, want 128, 0, 128", avg.RGB)
	}

	empty := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if _, err := AverageColor(empty, nil); err == nil {
		t.Error("expected error for a fully transparent image")
	}
}
