package imaging

import (
	"fmt"
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
)

// JustNoticeableDelta is the CIEDE2000 distance below which two colors are
// generally seen as the same.
const JustNoticeableDelta = 2.3

// DeltaE returns the CIEDE2000 distance between two colors. 0 means
// identical; about 100 separates black from white.
func DeltaE(a, b colorspace.Color) float64 {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	return ca.DistanceCIEDE2000(cb) * 100
}

// DistanceResult reports how far apart two colors are.
type DistanceResult struct {
	A          ColorResult `json:"a"`
	B          ColorResult `json:"b"`
	DeltaE     float64     `json:"delta_e"`
	Indistinct bool        `json:"indistinct"`
}

// ColorDistance compares two colors with CIEDE2000.
func ColorDistance(a, b colorspace.Color) *DistanceResult {
	d := DeltaE(a, b)
	return &DistanceResult{
		A:          NewColorResult(a),
		B:          NewColorResult(b),
		DeltaE:     math.Round(d*100) / 100,
		Indistinct: d < JustNoticeableDelta,
	}
}

// CompareRegionsResult compares the average colors of two regions.
type CompareRegionsResult struct {
	Region1 ColorResult `json:"region1_average"`
	Region2 ColorResult `json:"region2_average"`

	// DeltaE is the CIEDE2000 distance between the two averages.
	DeltaE     float64 `json:"delta_e"`
	Indistinct bool    `json:"indistinct"`
}

// CompareRegions averages each region and measures the perceptual distance
// between the averages. Regions are clipped to the image.
func CompareRegions(img image.Image, r1, r2 Region) (*CompareRegionsResult, error) {
	a, err := AverageColor(img, &r1)
	if err != nil {
		return nil, fmt.Errorf("region 1: %w", err)
	}
	b, err := AverageColor(img, &r2)
	if err != nil {
		return nil, fmt.Errorf("region 2: %w", err)
	}

	d := DeltaE(a.Color(), b.Color())
	return &CompareRegionsResult{
		Region1:    *a,
		Region2:    *b,
		DeltaE:     math.Round(d*100) / 100,
		Indistinct: d < JustNoticeableDelta,
	}, nil
}
