package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var formatEnum = []string{"hex", "rgb", "cmyk", "hsv", "hsl"}

// colorSchema describes a {format, value} color argument.
func colorSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"format": map[string]interface{}{
				"type":        "string",
				"enum":        formatEnum,
				"description": "Color format of value",
			},
			"value": map[string]interface{}{
				"type":        "string",
				"description": "Color text, e.g. \"#0c2238\", \"12, 34, 56\", \"79%, 39%, 0%, 78%\", \"210°, 79%, 22%\"",
			},
		},
		"required": []string{"format", "value"},
	}
}

// regionSchema describes an {x1, y1, x2, y2} region argument.
func regionSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Conversions
		{
			Name:        "color_validate",
			Description: "Check whether a color string is valid in the given format. Hex accepts 3 or 6 digits with or without '#'; rgb is \"r, g, b\"; cmyk is \"c%, m%, y%, k%\"; hsv and hsl are \"h°, s%, v%\".",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        formatEnum,
						"description": "Color format to validate against",
					},
					"value": map[string]interface{}{
						"type":        "string",
						"description": "Color text to validate",
					},
				},
				"required": []string{"format", "value"},
			},
		},
		{
			Name:        "color_convert",
			Description: "Convert a color to every format (hex, rgb, cmyk, hsv, hsl). Invalid input is rejected with an error.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        formatEnum,
						"description": "Format of value",
					},
					"value": map[string]interface{}{
						"type":        "string",
						"description": "Color text to convert",
					},
				},
				"required": []string{"format", "value"},
			},
		},
		{
			Name:        "color_from_hsv_values",
			Description: "Build a color from numeric hue (0-360), saturation (0-100) and value (0-100) and return it in every format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hue": map[string]interface{}{
						"type":        "number",
						"description": "Hue in degrees (0-360)",
					},
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Saturation in percent (0-100)",
					},
					"value": map[string]interface{}{
						"type":        "number",
						"description": "Value in percent (0-100)",
					},
				},
				"required": []string{"hue", "saturation", "value"},
			},
		},
		{
			Name:        "color_distance",
			Description: "Measure how different two colors look using CIEDE2000. A delta E below 2.3 is generally not noticeable.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": colorSchema("First color"),
					"b": colorSchema("Second color"),
				},
				"required": []string{"a", "b"},
			},
		},

		// Picker state
		{
			Name:        "picker_get",
			Description: "Get the picker's current color in every format, with its numeric hue, saturation and value.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "picker_apply",
			Description: "Apply an edit to the picker and return the new state. A text edit (hex, rgb, cmyk, hsv, hsl) must validate or it is rejected and the color is unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"intent": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"hex", "rgb", "cmyk", "hsv", "hsl", "hue", "saturation_value", "color"},
						"description": "Kind of edit",
					},
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Field text for hex/rgb/cmyk/hsv/hsl edits; a hex color for 'color'",
					},
					"hue": map[string]interface{}{
						"type":        "number",
						"description": "Hue for 'hue' edits (0-360)",
					},
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Saturation for 'saturation_value' edits (0-100)",
					},
					"value": map[string]interface{}{
						"type":        "number",
						"description": "Value for 'saturation_value' edits (0-100)",
					},
				},
				"required": []string{"intent"},
			},
		},
		{
			Name:        "picker_slider",
			Description: "Click or drag the hue slider. A click at x on a slider of the given width selects hue x/width*360. With drag set, x is the drag distance from start_hue (default: current hue).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "number",
						"description": "Pointer X in pixels, or drag distance when drag is set",
					},
					"width": map[string]interface{}{
						"type":        "number",
						"description": "Slider width in pixels",
					},
					"drag": map[string]interface{}{
						"type":        "boolean",
						"description": "Treat x as a drag distance. Default false",
						"default":     false,
					},
					"start_hue": map[string]interface{}{
						"type":        "number",
						"description": "Hue where the drag started. Implies drag",
					},
				},
				"required": []string{"x", "width"},
			},
		},
		{
			Name:        "picker_palette",
			Description: "Click or drag in the saturation/value palette. Saturation grows left to right, value top to bottom from 100 to 0. With drag set, (x, y) is the drag distance from the current saturation and value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "number",
						"description": "Pointer X in pixels",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Pointer Y in pixels",
					},
					"width": map[string]interface{}{
						"type":        "number",
						"description": "Palette width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "number",
						"description": "Palette height in pixels",
					},
					"drag": map[string]interface{}{
						"type":        "boolean",
						"description": "Treat (x, y) as a drag distance. Default false",
						"default":     false,
					},
				},
				"required": []string{"x", "y", "width", "height"},
			},
		},

		// Rendering
		{
			Name:        "color_render_palette",
			Description: "Render the saturation/value palette as base64 PNG, with the current selection ringed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hue": map[string]interface{}{
						"type":        "number",
						"description": "Hue to render. Default: the picker's current hue",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width in pixels. Default from configuration",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height in pixels. Default from configuration",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor applied to width and height",
					},
					"marker": map[string]interface{}{
						"type":        "boolean",
						"description": "Ring the current saturation/value. Default true",
						"default":     true,
					},
				},
			},
		},
		{
			Name:        "color_render_hue_slider",
			Description: "Render the hue slider as base64 PNG, with the current hue marked.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width in pixels. Default from configuration",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height in pixels. Default from configuration",
					},
					"marker": map[string]interface{}{
						"type":        "boolean",
						"description": "Mark the current hue. Default true",
						"default":     true,
					},
				},
			},
		},

		// Screenshots
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel of a screenshot, in every picker format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at multiple points in one call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors of a screenshot or region, in every picker format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     5,
					},
					"region": regionSchema("Optional region to analyze"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_compare_regions",
			Description: "Average the color of two regions and report their CIEDE2000 difference.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathProperty,
					"region1": regionSchema("First region"),
					"region2": regionSchema("Second region"),
				},
				"required": []string{"path", "region1", "region2"},
			},
		},
		{
			Name:        "image_extract_color_codes",
			Description: "OCR a screenshot and return the color codes found in it (hex, rgb, cmyk, hsv, hsl), validated and converted. Crop to the codes and scale 2-4x for small text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty,
					"region": regionSchema("Optional region to read"),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor applied before OCR. Default 1.0",
						"default":     1.0,
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code. Default 'eng'",
						"default":     "eng",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
