// Package imaging provides the image side of the color picker: sampling
// colors out of screenshots, rendering the saturation/value palette and hue
// slider, and measuring how far apart two colors look.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Regions are clipped to the image; a region that misses the image entirely
// is an error.
//
// # Color Representation
//
// Every sampled color is reported in the five picker formats (hex, RGB,
// CMYK, HSV, HSL) using the canonical spellings of the colorspace package,
// plus the raw RGBA pixel.
//
// # Rendering
//
// RenderPalette draws the saturation/value square for one hue and
// RenderHueSlider the hue strip. Both return base64 PNG and can mark the
// current selection.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions are stateless.
// For repeated operations on the same file, use ImageCache to avoid
// redundant disk reads.
package imaging
