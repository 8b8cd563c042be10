// Package server implements the MCP (Model Context Protocol) server for the
// color picker.
//
// This package provides a JSON-RPC 2.0 server that exposes the picker and
// its color conversions through the MCP protocol, so an assistant can read,
// convert and edit colors, and lift colors out of screenshots.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversions:
//   - color_validate: Check a color string against its format
//   - color_convert: Convert a color to every format
//   - color_from_hsv_values: Build a color from numeric HSV
//   - color_distance: CIEDE2000 difference of two colors
//
// Picker state:
//   - picker_get: Current color
//   - picker_apply: Apply a field edit, hue or saturation/value change
//   - picker_slider: Click or drag the hue slider
//   - picker_palette: Click or drag the saturation/value palette
//
// Rendering:
//   - color_render_palette: Saturation/value palette as PNG
//   - color_render_hue_slider: Hue slider as PNG
//
// Screenshots:
//   - image_sample_color: Color at a pixel
//   - image_sample_colors_multi: Colors at several pixels
//   - image_dominant_colors: Most common colors
//   - image_compare_regions: Average colors of two regions and their difference
//   - image_extract_color_codes: Color codes read by OCR
//
// # Shared State
//
// Every picker tool goes through the same picker.Picker, so edits made here
// reach every other subscriber, such as the HTTP websocket. Screenshots are
// decoded once and kept in an LRU cache keyed by path.
//
// # Error Handling
//
// Errors are returned as JSON-RPC error responses with:
//   - code: -32601 (unknown method), -32602 (undecodable params) or -32000
//     (tool failure, including a rejected color edit)
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(picker.New(initial), server.Options{})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
