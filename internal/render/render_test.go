package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"regexp"
	"slices"
	"strings"
	"testing"

	"honnef.co/go/dragon"
)

func build(t *testing.T, order int, style dragon.Style) dragon.Result {
	t.Helper()
	res, err := dragon.Build(order, dragon.Pt(0, 0), dragon.Pt(10, 0), style, nil)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

var testCanvas = Canvas{
	Width:      100,
	Height:     50,
	Margin:     5,
	Stroke:     color.Black,
	Background: color.White,
}

func TestFit(t *testing.T) {
	res := build(t, 6, dragon.StyleSharp)
	aff := Fit(res, testCanvas)
	bounds := dragon.BoundingBox(res.Start, res.Vertices).Inflate(res.StrokeWidth/2, res.StrokeWidth/2)
	min := dragon.Pt(bounds.X0, bounds.Y0).Transform(aff)
	max := dragon.Pt(bounds.X1, bounds.Y1).Transform(aff)

	const epsilon = 1e-9
	if min.X < testCanvas.Margin-epsilon || min.Y < testCanvas.Margin-epsilon {
		t.Errorf("top left corner %s inside margin", min)
	}
	if max.X > float64(testCanvas.Width)-testCanvas.Margin+epsilon || max.Y > float64(testCanvas.Height)-testCanvas.Margin+epsilon {
		t.Errorf("bottom right corner %s inside margin", max)
	}
	// The limiting dimension touches the margin on both sides.
	touchesX := math.Abs(min.X-testCanvas.Margin) < epsilon
	touchesY := math.Abs(min.Y-testCanvas.Margin) < epsilon
	if !touchesX && !touchesY {
		t.Errorf("curve does not fill the canvas: %s to %s", min, max)
	}
}

func TestRasterize(t *testing.T) {
	img := Rasterize(build(t, 0, dragon.StyleSharp), testCanvas)
	black := color.RGBA{0, 0, 0, 0xff}
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{50, 25, black}, // middle of the line
		{48, 25, black}, // quad and cap overlap near the start
		{30, 25, black}, // inside the round cap
		{1, 1, white},
		{50, 2, white}, // margin
		{98, 48, white},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterizeStyles(t *testing.T) {
	for _, style := range dragon.Styles {
		img := Rasterize(build(t, 8, style), testCanvas)
		inked := 0
		for y := 0; y < testCanvas.Height; y++ {
			for x := 0; x < testCanvas.Width; x++ {
				if img.RGBAAt(x, y).R < 0x80 {
					inked++
				}
			}
		}
		total := testCanvas.Width * testCanvas.Height
		if inked == 0 || inked == total {
			t.Errorf("%s: %d of %d pixels inked", style, inked, total)
		}
	}
}

func TestRasterizeTransparent(t *testing.T) {
	img := Rasterize(build(t, 3, dragon.StyleRounded), Canvas{Width: 20, Height: 20, Margin: 1})
	// No background and the default stroke: the image has ink and transparency.
	if img.RGBAAt(0, 0).A != 0 {
		t.Errorf("corner pixel %v is not transparent", img.RGBAAt(0, 0))
	}

	before := slices.Clone(img.Pix)
	Stroke(img, nil, 10, color.Black)
	Stroke(img, dragon.SharpPath(dragon.Pt(0, 0), []dragon.Point{dragon.Pt(20, 20)}), 0, color.Black)
	if !slices.Equal(before, img.Pix) {
		t.Error("stroking an empty path or with zero width changed the image")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, build(t, 5, dragon.StyleArc), testCanvas); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != testCanvas.Width || b.Dy() != testCanvas.Height {
		t.Errorf("got size %v, want %dx%d", b, testCanvas.Width, testCanvas.Height)
	}
}

var pathData = regexp.MustCompile(` d="([^"]*)"`)

func TestWriteSVG(t *testing.T) {
	res := build(t, 4, dragon.StyleRounded)
	var buf bytes.Buffer
	if err := WriteSVG(&buf, res, testCanvas, dragon.SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50"`,
		`fill="#ffffff"`,
		`stroke="#000000"`,
		`stroke-linejoin="round"`,
		`stroke-linecap="round"`,
		`fill="none"`,
		"</svg>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document does not contain %q:\n%s", want, doc)
		}
	}

	m := pathData.FindStringSubmatch(doc)
	if m == nil {
		t.Fatalf("no path data in document:\n%s", doc)
	}
	p, err := dragon.ParseSVG(m[1])
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Count(dragon.ArcToKind), len(res.Vertices)-1; got != want {
		t.Errorf("got %d arcs, want %d", got, want)
	}
	want := res.Path.Transform(Fit(res, testCanvas))
	for i := range p {
		if d := p[i].P0.Distance(want[i].P0); d > 1e-9 {
			t.Fatalf("element %d: got %v, want %v", i, p[i], want[i])
		}
	}
}

func TestSVGColor(t *testing.T) {
	if _, ok := svgColor(nil); ok {
		t.Error("nil color should not be drawn")
	}
	if _, ok := svgColor(color.NRGBA{}); ok {
		t.Error("transparent color should not be drawn")
	}
	if s, _ := svgColor(color.NRGBA{0xa3, 0x1f, 0x34, 0xff}); s != "#a31f34" {
		t.Errorf("got %q, want %q", s, "#a31f34")
	}
}
