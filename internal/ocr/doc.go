// Package ocr reads color codes out of screenshots using Tesseract.
//
// Recognizer wraps the Tesseract engine (via gosseract/v2). FindColorCodes
// scans recognized text for hex, RGB, CMYK, HSV and HSL codes, re-spells
// each one canonically and runs it through the same validators the picker
// uses, so an OCR result can be pasted into a picker field as is.
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Options.TessdataPrefix points at a non-standard training data directory.
//
// # Accuracy
//
// Small UI text recognizes poorly. Crop to the area holding the codes and
// scale it up 2-4x; ExtractColorCodes does both when given a region and a
// scale.
package ocr
