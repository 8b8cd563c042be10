package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
	"github.com/ironsheep/color-picker-mcp/internal/imaging"
	"github.com/ironsheep/color-picker-mcp/internal/metrics"
	"github.com/ironsheep/color-picker-mcp/internal/ocr"
	"github.com/ironsheep/color-picker-mcp/internal/picker"
)

// JSON-RPC error codes.
const (
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailed     = -32000
)

var (
	errUnknownTool = errors.New("unknown tool")
	errInvalidArgs = errors.New("invalid arguments")
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert", "picker_apply").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Arguments that do not decode return -32602; any other tool failure,
// including a rejected color edit, returns -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)

	tool := params.Name
	if errors.Is(err, errUnknownTool) {
		tool = "unknown"
	}
	metrics.ObserveToolCall(tool, err)

	if err != nil {
		if errors.Is(err, errInvalidArgs) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Decodes its arguments
//  2. Applies default values for optional parameters
//  3. Loads images from cache or reads the picker as needed
//  4. Calls the colorspace/picker/imaging/ocr function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversions
	case "color_validate":
		return s.handleColorValidate(args)
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_from_hsv_values":
		return s.handleColorFromHSVValues(args)
	case "color_distance":
		return s.handleColorDistance(args)

	// Picker state
	case "picker_get":
		return s.picker.Snapshot(), nil
	case "picker_apply":
		return s.handlePickerApply(args)
	case "picker_slider":
		return s.handlePickerSlider(args)
	case "picker_palette":
		return s.handlePickerPalette(args)

	// Rendering
	case "color_render_palette":
		return s.handleRenderPalette(args)
	case "color_render_hue_slider":
		return s.handleRenderHueSlider(args)

	// Screenshots
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_compare_regions":
		return s.handleImageCompareRegions(args)
	case "image_extract_color_codes":
		return s.handleImageExtractColorCodes(args)

	default:
		return nil, fmt.Errorf("%w: %s", errUnknownTool, name)
	}
}

// decodeArgs unmarshals tool arguments. Missing arguments decode as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return nil
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Conversion Handlers ===

// colorArgs names a color by format and text, e.g. {"format":"hsv","value":"120°, 50%, 50%"}.
type colorArgs struct {
	Format string `json:"format"`
	Value  string `json:"value"`
}

// parse validates and parses the color, recording the validation outcome.
func (a colorArgs) parse() (colorspace.Color, error) {
	f, err := colorspace.ParseFormat(a.Format)
	if err != nil {
		return colorspace.Color{}, err
	}
	valid := colorspace.Validate(f, a.Value)
	metrics.ObserveValidation(string(f), valid)
	if !valid {
		return colorspace.Color{}, fmt.Errorf("%q is not a valid %s color", a.Value, f)
	}
	return colorspace.Parse(f, a.Value)
}

type validateResult struct {
	Format string `json:"format"`
	Value  string `json:"value"`
	Valid  bool   `json:"valid"`
}

func (s *Server) handleColorValidate(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	f, err := colorspace.ParseFormat(a.Format)
	if err != nil {
		return nil, err
	}
	valid := colorspace.Validate(f, a.Value)
	metrics.ObserveValidation(string(f), valid)
	return validateResult{Format: string(f), Value: a.Value, Valid: valid}, nil
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := a.parse()
	if err != nil {
		return nil, err
	}
	return picker.SnapshotOf(c), nil
}

type hsvValuesArgs struct {
	Hue        *float64 `json:"hue"`
	Saturation *float64 `json:"saturation"`
	Value      *float64 `json:"value"`
}

func (s *Server) handleColorFromHSVValues(args json.RawMessage) (interface{}, error) {
	var a hsvValuesArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Hue == nil || a.Saturation == nil || a.Value == nil {
		return nil, fmt.Errorf("%w: hue, saturation and value are required", errInvalidArgs)
	}
	if *a.Hue < 0 || *a.Hue > colorspace.MaxHue {
		return nil, fmt.Errorf("hue %g outside 0-%g", *a.Hue, colorspace.MaxHue)
	}
	if *a.Saturation < 0 || *a.Saturation > colorspace.MaxSVL ||
		*a.Value < 0 || *a.Value > colorspace.MaxSVL {
		return nil, fmt.Errorf("saturation and value must be within 0-%g", colorspace.MaxSVL)
	}
	return picker.SnapshotOf(colorspace.FromHSVValues(*a.Hue, *a.Saturation, *a.Value)), nil
}

type colorDistanceArgs struct {
	A colorArgs `json:"a"`
	B colorArgs `json:"b"`
}

func (s *Server) handleColorDistance(args json.RawMessage) (interface{}, error) {
	var a colorDistanceArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	ca, err := a.A.parse()
	if err != nil {
		return nil, fmt.Errorf("color a: %w", err)
	}
	cb, err := a.B.parse()
	if err != nil {
		return nil, fmt.Errorf("color b: %w", err)
	}
	return imaging.ColorDistance(ca, cb), nil
}

// === Picker Handlers ===

type pickerApplyArgs struct {
	Intent     string  `json:"intent"`
	Text       string  `json:"text"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

func (s *Server) handlePickerApply(args json.RawMessage) (interface{}, error) {
	var a pickerApplyArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	kind, err := picker.ParseIntentKind(a.Intent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return s.apply(picker.Intent{
		Kind:       kind,
		Text:       a.Text,
		Hue:        a.Hue,
		Saturation: a.Saturation,
		Value:      a.Value,
	})
}

// apply runs an intent; a rejected intent is a tool failure.
func (s *Server) apply(in picker.Intent) (interface{}, error) {
	snap, err := s.picker.Apply(in)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

type pickerSliderArgs struct {
	X        float64  `json:"x"`
	Width    float64  `json:"width"`
	Drag     bool     `json:"drag"`
	StartHue *float64 `json:"start_hue"`
}

// handlePickerSlider maps a slider click, or with drag set a drag of x
// pixels, to a hue. A drag starts from start_hue or the current hue.
func (s *Server) handlePickerSlider(args json.RawMessage) (interface{}, error) {
	var a pickerSliderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var hue float64
	var err error
	if a.Drag || a.StartHue != nil {
		start := s.picker.Current().Hue()
		if a.StartHue != nil {
			start = *a.StartHue
		}
		hue, err = picker.SliderDragHue(start, a.X, a.Width)
	} else {
		hue, err = picker.SliderHue(a.X, a.Width)
	}
	if err != nil {
		return nil, err
	}
	return s.apply(picker.HueChanged(hue))
}

type pickerPaletteArgs struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Drag   bool    `json:"drag"`
}

// handlePickerPalette maps a palette click, or with drag set a drag of
// (x, y) pixels from the current saturation and value.
func (s *Server) handlePickerPalette(args json.RawMessage) (interface{}, error) {
	var a pickerPaletteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var sat, val float64
	var err error
	if a.Drag {
		cur := s.picker.Current()
		sat, val, err = picker.PaletteDrag(cur.Saturation(), cur.Value(), a.X, a.Y, a.Width, a.Height)
	} else {
		sat, val, err = picker.PaletteSaturationValue(a.X, a.Y, a.Width, a.Height)
	}
	if err != nil {
		return nil, err
	}
	return s.apply(picker.SaturationValueChanged(sat, val))
}

// === Rendering Handlers ===

type renderPaletteArgs struct {
	Hue    *float64 `json:"hue"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Scale  float64  `json:"scale"`
	Marker *bool    `json:"marker"`
}

func (s *Server) handleRenderPalette(args json.RawMessage) (interface{}, error) {
	var a renderPaletteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	w, h := a.Width, a.Height
	if w == 0 {
		w = s.opts.PaletteWidth
	}
	if h == 0 {
		h = s.opts.PaletteHeight
	}
	if a.Scale < 0 {
		return nil, fmt.Errorf("scale must not be negative, got %g", a.Scale)
	}
	if a.Scale > 0 {
		w = int(float64(w) * a.Scale)
		h = int(float64(h) * a.Scale)
	}

	cur := s.picker.Current()
	hue := cur.Hue()
	if a.Hue != nil {
		hue = *a.Hue
	}

	var marker *imaging.Marker
	if a.Marker == nil || *a.Marker {
		marker = &imaging.Marker{Saturation: cur.Saturation(), Value: cur.Value()}
	}
	return imaging.RenderPalette(hue, w, h, marker)
}

type renderHueSliderArgs struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Marker *bool `json:"marker"`
}

func (s *Server) handleRenderHueSlider(args json.RawMessage) (interface{}, error) {
	var a renderHueSliderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = s.opts.SliderWidth
	}
	if a.Height == 0 {
		a.Height = s.opts.SliderHeight
	}

	var hue *float64
	if a.Marker == nil || *a.Marker {
		h := s.picker.Current().Hue()
		hue = &h
	}
	return imaging.RenderHueSlider(a.Width, a.Height, hue)
}

// === Screenshot Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

type imageDominantColorsArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count"`
	Region *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Count, a.Region)
}

type imageCompareRegionsArgs struct {
	Path    string         `json:"path"`
	Region1 imaging.Region `json:"region1"`
	Region2 imaging.Region `json:"region2"`
}

func (s *Server) handleImageCompareRegions(args json.RawMessage) (interface{}, error) {
	var a imageCompareRegionsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CompareRegions(img, a.Region1, a.Region2)
}

type imageExtractColorCodesArgs struct {
	Path     string          `json:"path"`
	Region   *imaging.Region `json:"region,omitempty"`
	Scale    float64         `json:"scale"`
	Language string          `json:"language"`
}

func (s *Server) handleImageExtractColorCodes(args json.RawMessage) (interface{}, error) {
	var a imageExtractColorCodesArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	rec := s.ocr
	if a.Language != "" {
		opts := s.opts.OCR
		opts.Language = a.Language
		rec = ocr.NewRecognizer(opts)
	}
	return rec.ExtractColorCodes(img, a.Region, a.Scale)
}
