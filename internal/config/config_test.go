package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/dragon"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if cfg.Start != DefaultStart || cfg.End != DefaultEnd {
		t.Errorf("got end points %v %v, want %v %v", cfg.Start, cfg.End, DefaultStart, DefaultEnd)
	}
	if cfg.Style != dragon.StyleRounded {
		t.Errorf("got style %s, want %s", cfg.Style, dragon.StyleRounded)
	}
	if cfg.Format != FormatSVG {
		t.Errorf("got format %q, want %q", cfg.Format, FormatSVG)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlContent := `order: 10
start: {x: 0, y: 0}
end: {x: 100, y: 0}
style: skewed
skewFactor: 0.2
maxOrder: -1
precision: 3
format: png
stroke: "#f00"
canvas:
  width: 640
  height: 480
`
	path := filepath.Join(dir, "dragon.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Config{
		Order:      10,
		Start:      Point{0, 0},
		End:        Point{100, 0},
		Style:      dragon.StyleSkewed,
		SkewFactor: 0.2,
		MaxOrder:   -1,
		Precision:  3,
		Format:     FormatPNG,
		Stroke:     "#f00",
		Background: DefaultBackground,
		Canvas:     Canvas{Width: 640, Height: 480, Margin: DefaultCanvas.Margin},
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config mismatch (-want +got):\n%s", d)
	}

	opts := cfg.Options()
	if opts.SkewFactor != 0.2 || opts.MaxOrder != -1 || opts.SVG.MaxPrecision != 3 {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"unknown style":  "style: triangle\n",
		"unknown format": "format: gif\n",
		"bad color":      "stroke: black\n",
		"bad canvas":     "canvas: {width: -1, height: 10}\n",
		"bad margin":     "canvas: {width: 100, height: 100, margin: 60}\n",
		"not yaml":       "order: [\n",
		"wrong type":     "order: many\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Config{Order: 7, Style: dragon.StyleArc, Format: FormatPath}
	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "style: arc") {
		t.Errorf("style not written by name:\n%s", data)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.normalize()
	if d := cmp.Diff(cfg, got); d != "" {
		t.Errorf("config mismatch (-want +got):\n%s", d)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 0xff}},
		{"#a31f34", color.NRGBA{0xa3, 0x1f, 0x34, 0xff}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"none", color.NRGBA{}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, in := range []string{"black", "#12345", "#gggggg", "123456"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}
