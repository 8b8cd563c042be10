package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/color-picker-mcp/internal/api"
	"github.com/ironsheep/color-picker-mcp/internal/config"
	"github.com/ironsheep/color-picker-mcp/internal/picker"
	"github.com/ironsheep/color-picker-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-picker-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-picker-mcp - MCP server for a color picker")
			fmt.Println()
			fmt.Println("Usage: color-picker-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from .env):")
			fmt.Println("  COLOR_PICKER_LOG_LEVEL=debug          Enable debug logging")
			fmt.Println("  COLOR_PICKER_HTTP_ADDR=:8080          Serve websocket, REST and /metrics")
			fmt.Println("  COLOR_PICKER_INITIAL_COLOR=#0c2238    Starting color (default random)")
			fmt.Println("  COLOR_PICKER_SUBSCRIBER_BUFFER=8      Snapshots queued per subscriber")
			fmt.Println("  COLOR_PICKER_CACHE_SIZE=16            Screenshots kept decoded")
			fmt.Println("  COLOR_PICKER_TESSDATA=/path           Tesseract training data")
			fmt.Println("  COLOR_PICKER_CONFIG=picker.yaml       YAML file with the same settings")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug() {
		picker.SetDebug(true)
		log.Printf("Color Picker MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	opts := []picker.Option{picker.WithBufferSize(cfg.SubscriberBuffer)}
	var p *picker.Picker
	if initial, ok := cfg.Initial(); ok {
		p = picker.New(initial, opts...)
	} else {
		p = picker.NewRandom(nil, opts...)
	}
	defer p.Close()

	api.ServeInBackground(cfg.HTTPAddr, p)

	srv := server.New(p, cfg.ServerOptions())
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
