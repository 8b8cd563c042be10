package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/color-picker-mcp/internal/imaging"
	"github.com/ironsheep/color-picker-mcp/internal/ocr"
	"github.com/ironsheep/color-picker-mcp/internal/picker"
)

// Default render sizes used when Options leaves them at zero.
const (
	DefaultPaletteWidth  = 256
	DefaultPaletteHeight = 256
	DefaultSliderWidth   = 256
	DefaultSliderHeight  = 16
)

// Version is reported to clients during initialize.
const Version = "0.1.0"

// Options configures a Server.
type Options struct {
	// CacheSize is the number of decoded screenshots kept in memory.
	CacheSize int

	// OCR configures the Tesseract recognizer used by
	// image_extract_color_codes.
	OCR ocr.Options

	// Default sizes of rendered controls, in pixels.
	PaletteWidth  int
	PaletteHeight int
	SliderWidth   int
	SliderHeight  int
}

// Server handles MCP protocol communication
type Server struct {
	picker *picker.Picker
	cache  *imaging.ImageCache
	ocr    *ocr.Recognizer
	opts   Options
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a new MCP server driving p.
func New(p *picker.Picker, opts Options) *Server {
	if opts.PaletteWidth <= 0 {
		opts.PaletteWidth = DefaultPaletteWidth
	}
	if opts.PaletteHeight <= 0 {
		opts.PaletteHeight = DefaultPaletteHeight
	}
	if opts.SliderWidth <= 0 {
		opts.SliderWidth = DefaultSliderWidth
	}
	if opts.SliderHeight <= 0 {
		opts.SliderHeight = DefaultSliderHeight
	}
	return &Server{
		picker: p,
		cache:  imaging.NewImageCache(opts.CacheSize),
		ocr:    ocr.NewRecognizer(opts.OCR),
		opts:   opts,
	}
}

// Picker returns the picker this server drives.
func (s *Server) Picker() *picker.Picker {
	return s.picker
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from r and writes responses to
// w until r is exhausted. Malformed lines are logged and skipped.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return s.errorResponse(req.ID, codeMethodNotFound,
			fmt.Sprintf("Method not found: %s", req.Method), "")
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "color-picker-mcp",
				"version": Version,
			},
		},
	}
}
