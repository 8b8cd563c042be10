// Package config loads the picker's settings from the environment, an
// optional .env file and an optional YAML file.
//
// Precedence, highest first: process environment, .env, YAML file,
// defaults. The YAML file is named by COLOR_PICKER_CONFIG.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
	"github.com/ironsheep/color-picker-mcp/internal/imaging"
	"github.com/ironsheep/color-picker-mcp/internal/picker"
	"github.com/ironsheep/color-picker-mcp/internal/server"
)

// Environment variables read by Load.
const (
	EnvLogLevel         = "COLOR_PICKER_LOG_LEVEL"
	EnvHTTPAddr         = "COLOR_PICKER_HTTP_ADDR"
	EnvInitialColor     = "COLOR_PICKER_INITIAL_COLOR"
	EnvSubscriberBuffer = "COLOR_PICKER_SUBSCRIBER_BUFFER"
	EnvCacheSize        = "COLOR_PICKER_CACHE_SIZE"
	EnvTessdata         = "COLOR_PICKER_TESSDATA"
	EnvConfig           = "COLOR_PICKER_CONFIG"
)

// Size is a width and height in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config holds every setting of the picker process.
type Config struct {
	LogLevel string `yaml:"log_level"`

	// HTTPAddr is the listen address of the HTTP shell; empty disables it.
	HTTPAddr string `yaml:"http_addr"`

	// InitialColor is a hex color; empty starts from a random color.
	InitialColor string `yaml:"initial_color"`

	SubscriberBuffer int    `yaml:"subscriber_buffer"`
	CacheSize        int    `yaml:"cache_size"`
	Tessdata         string `yaml:"tessdata"`

	Palette Size `yaml:"palette"`
	Slider  Size `yaml:"slider"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		SubscriberBuffer: picker.DefaultBufferSize,
		CacheSize:        imaging.DefaultCacheSize,
		Palette:          Size{Width: server.DefaultPaletteWidth, Height: server.DefaultPaletteHeight},
		Slider:           Size{Width: server.DefaultSliderWidth, Height: server.DefaultSliderHeight},
	}
}

// Load reads .env (a missing file is fine), then the YAML file named by
// COLOR_PICKER_CONFIG if set, then the environment, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv(EnvConfig); path != "" {
		if err := cfg.ParseFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseFile overlays the YAML file at filename onto c. Keys absent from the
// file keep their current values.
func (c *Config) ParseFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("could not parse %s: %w", filename, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv(EnvInitialColor); v != "" {
		c.InitialColor = v
	}
	if v := os.Getenv(EnvTessdata); v != "" {
		c.Tessdata = v
	}
	if err := envInt(EnvSubscriberBuffer, &c.SubscriberBuffer); err != nil {
		return err
	}
	return envInt(EnvCacheSize, &c.CacheSize)
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %q is not an integer", key, v)
	}
	*dst = n
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.InitialColor != "" && !colorspace.IsValidHex(c.InitialColor) {
		return fmt.Errorf("%s is not a valid hex color", c.InitialColor)
	}
	if c.SubscriberBuffer < 1 {
		return fmt.Errorf("subscriber buffer must be positive, got %d", c.SubscriberBuffer)
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("cache size must be positive, got %d", c.CacheSize)
	}
	if err := c.Palette.validate("palette"); err != nil {
		return err
	}
	return c.Slider.validate("slider")
}

func (s Size) validate(name string) error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("%s size must be positive, got %dx%d", name, s.Width, s.Height)
	}
	if s.Width > imaging.MaxRenderSize || s.Height > imaging.MaxRenderSize {
		return fmt.Errorf("%s size %dx%d exceeds %d", name, s.Width, s.Height, imaging.MaxRenderSize)
	}
	return nil
}

// Debug reports whether debug logging is on.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// Initial returns the configured starting color and whether one is set.
func (c *Config) Initial() (colorspace.Color, bool) {
	if c.InitialColor == "" {
		return colorspace.Color{}, false
	}
	col, err := colorspace.FromHex(c.InitialColor)
	if err != nil {
		return colorspace.Color{}, false
	}
	return col, true
}

// ServerOptions converts the settings into MCP server options.
func (c *Config) ServerOptions() server.Options {
	opts := server.Options{
		CacheSize:     c.CacheSize,
		PaletteWidth:  c.Palette.Width,
		PaletteHeight: c.Palette.Height,
		SliderWidth:   c.Slider.Width,
		SliderHeight:  c.Slider.Height,
	}
	opts.OCR.TessdataPrefix = c.Tessdata
	return opts
}
