package ocr

import (
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/color-picker-mcp/internal/imaging"
)

// DefaultLanguage is the Tesseract language used when none is given.
const DefaultLanguage = "eng"

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Word is one recognized word with its location and OCR confidence.
type Word struct {
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	Bounds Bounds `json:"bounds"`
}

// OCRResult contains the text recognized in an image.
type OCRResult struct {
	// FullText is all recognized text with its original spacing and newlines.
	FullText string `json:"full_text"`

	// Words may be empty when word boxes are unavailable; FullText is still set.
	Words []Word `json:"words"`
}

// Options tunes a Recognizer.
type Options struct {
	// Language is the Tesseract language code, DefaultLanguage when empty.
	Language string

	// TessdataPrefix points Tesseract at a training data directory. Empty
	// uses the system default.
	TessdataPrefix string
}

// Recognizer runs Tesseract over in-memory images.
type Recognizer struct {
	opts Options
}

// NewRecognizer creates a Recognizer.
func NewRecognizer(opts Options) *Recognizer {
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	return &Recognizer{opts: opts}
}

// Recognize performs OCR on img.
//
// The image is handed to Tesseract as PNG bytes, so no temporary file is
// written. Word boxes are relative to img's bounds origin.
//
// # Error Handling
//
// If word-level bounding boxes cannot be read, Recognize still returns the
// full text with an empty Words slice.
func (r *Recognizer) Recognize(img image.Image) (*OCRResult, error) {
	data, err := imaging.EncodePNG(img)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if r.opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(r.opts.TessdataPrefix); err != nil {
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}
	if err := client.SetLanguage(r.opts.Language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := []Word{}
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err == nil {
		for _, box := range boxes {
			if box.Word == "" {
				continue
			}
			words = append(words, Word{
				Text:       box.Word,
				Confidence: float64(box.Confidence) / 100.0,
				Bounds: Bounds{
					X1: box.Box.Min.X,
					Y1: box.Box.Min.Y,
					X2: box.Box.Max.X,
					Y2: box.Box.Max.Y,
				},
			})
		}
	}

	return &OCRResult{FullText: text, Words: words}, nil
}

// ColorCodesResult is the outcome of scanning an image for color codes.
type ColorCodesResult struct {
	Text  string      `json:"text"`
	Codes []ColorCode `json:"codes"`
}

// ExtractColorCodes reads the text in img and returns every color code in
// it, validated and converted.
//
// A non-nil region restricts OCR to that part of the image. Scale enlarges
// the crop before recognition, which helps with small UI text; 0 or 1 keeps
// the original size.
func (r *Recognizer) ExtractColorCodes(img image.Image, region *imaging.Region, scale float64) (*ColorCodesResult, error) {
	if region != nil || (scale != 0 && scale != 1) {
		rect := img.Bounds()
		reg := imaging.Region{X1: rect.Min.X, Y1: rect.Min.Y, X2: rect.Max.X, Y2: rect.Max.Y}
		if region != nil {
			reg = *region
		}
		cropped, err := imaging.CropRegion(img, reg, scale)
		if err != nil {
			return nil, err
		}
		img = cropped
	}

	result, err := r.Recognize(img)
	if err != nil {
		return nil, err
	}
	return &ColorCodesResult{
		Text:  result.FullText,
		Codes: FindColorCodes(result.FullText),
	}, nil
}
