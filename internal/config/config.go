// Package config loads render jobs for the dragon command from YAML files.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"honnef.co/go/dragon"
)

// Format selects what the dragon command writes.
type Format string

const (
	// FormatSVG writes a standalone SVG document.
	FormatSVG Format = "svg"
	// FormatPNG writes a rasterized PNG image.
	FormatPNG Format = "png"
	// FormatPath writes only the SVG path commands.
	FormatPath Format = "path"
)

// Defaults for values a config file leaves out. The chord spans the middle of a
// 1000x700 page.
var (
	DefaultStart  = Point{X: 225, Y: 210}
	DefaultEnd    = Point{X: 775, Y: 210}
	DefaultCanvas = Canvas{Width: 1000, Height: 700, Margin: 20}
)

const (
	DefaultOrder      = 1
	DefaultStyle      = dragon.StyleRounded
	DefaultFormat     = FormatSVG
	DefaultStroke     = "#000000"
	DefaultBackground = "#ffffff"
)

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Dragon() dragon.Point { return dragon.Pt(p.X, p.Y) }

type Canvas struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

// Config describes a single dragon curve to render.
type Config struct {
	Order int          `yaml:"order"`
	Start Point        `yaml:"start"`
	End   Point        `yaml:"end"`
	Style dragon.Style `yaml:"style"`

	RoundFactor float64 `yaml:"roundFactor,omitempty"`
	ArcFactor   float64 `yaml:"arcFactor,omitempty"`
	SkewFactor  float64 `yaml:"skewFactor,omitempty"`
	// MaxOrder is the safety ceiling on Order. 0 selects the library default and
	// -1 removes the ceiling.
	MaxOrder    int     `yaml:"maxOrder,omitempty"`
	StrokeWidth float64 `yaml:"strokeWidth,omitempty"`
	Precision   int     `yaml:"precision,omitempty"`

	Format     Format `yaml:"format"`
	Stroke     string `yaml:"stroke"`
	Background string `yaml:"background"`
	Canvas     Canvas `yaml:"canvas"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	cfg.Order = DefaultOrder
	cfg.normalize()
	return cfg
}

func (c *Config) normalize() {
	if c.Start == (Point{}) && c.End == (Point{}) {
		c.Start = DefaultStart
		c.End = DefaultEnd
	}
	if c.Style == 0 {
		c.Style = DefaultStyle
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Stroke == "" {
		c.Stroke = DefaultStroke
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.Canvas.Width == 0 {
		c.Canvas.Width = DefaultCanvas.Width
	}
	if c.Canvas.Height == 0 {
		c.Canvas.Height = DefaultCanvas.Height
	}
	if c.Canvas.Margin == 0 {
		c.Canvas.Margin = DefaultCanvas.Margin
	}
}

// Parse decodes a configuration from YAML and fills in defaults. It does not
// validate the result.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Load reads, parses and validates a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes cfg, with defaults filled in, to path.
func Write(path string, cfg Config) error {
	cfg.normalize()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}
	return nil
}

// Validate checks the parts of the configuration the dragon package does not
// check itself.
func (c Config) Validate() error {
	if !c.Style.Valid() {
		return fmt.Errorf("style: %w", dragon.ErrUnknownStyle)
	}
	switch c.Format {
	case FormatSVG, FormatPNG, FormatPath:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Margin < 0 || 2*c.Canvas.Margin >= float64(min(c.Canvas.Width, c.Canvas.Height)) {
		return fmt.Errorf("invalid canvas margin %g", c.Canvas.Margin)
	}
	if c.StrokeWidth < 0 {
		return fmt.Errorf("invalid stroke width %g", c.StrokeWidth)
	}
	if _, err := ParseColor(c.Stroke); err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// Options returns the options to build the configured curve with.
func (c Config) Options() *dragon.Options {
	return &dragon.Options{
		RoundFactor:     c.RoundFactor,
		ArcFactor:       c.ArcFactor,
		SkewFactor:      c.SkewFactor,
		MaxOrder:        c.MaxOrder,
		BaseStrokeWidth: c.StrokeWidth,
		SVG:             dragon.SVGOptions{MaxPrecision: c.Precision},
	}
}

// ParseColor parses colors of the form #rgb and #rrggbb. The empty string and
// "none" denote transparency.
func ParseColor(s string) (color.NRGBA, error) {
	if s == "" || s == "none" {
		return color.NRGBA{}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
