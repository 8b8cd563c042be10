// Package picker is the application shell around the color engine: it owns
// the current color, turns UI edits into new colors, and publishes the result
// to every attached view.
//
// # Intents
//
// Every UI change arrives as an Intent:
//
//   - a free-text edit of one of the five format fields (hex, rgb, cmyk,
//     hsv, hsl), which is validated before it is parsed. A rejected edit
//     keeps the current color and returns ErrRejected.
//   - a hue slider drag, which keeps saturation and value.
//   - a palette drag, which keeps the hue.
//   - a direct color replacement.
//
// # Subscriptions
//
// Views subscribe with Picker.Subscribe and receive a Snapshot on their
// channel every time the color changes, starting with the current one. A
// subscriber that falls behind loses its oldest pending snapshot; the
// publisher never blocks on a slow view.
//
// # Pointer Mapping
//
// SliderHue, SliderDragHue, PaletteSaturationValue and PaletteDrag convert
// pointer coordinates on the hue strip and the saturation/value square into
// HSV numbers. They are pure functions and hold no UI state.
package picker
