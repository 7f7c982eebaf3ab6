package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"
	"honnef.co/go/dragon"
)

// Tolerance is the maximum distance, in pixels, between an arc and the polyline
// approximating it.
const Tolerance = 0.1

// Magic constant for approximating a quarter circle with a cubic Bézier.
const kappa = 0.5522847498307936

// Rasterize draws res onto a new image of the canvas's size, fitted the same way as
// [WriteSVG].
func Rasterize(res dragon.Result, c Canvas) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	if c.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
	}
	aff := Fit(res, c)
	stroke := c.Stroke
	if stroke == nil {
		stroke = color.Black
	}
	Stroke(img, res.Path.Transform(aff), res.StrokeWidth*aff.UniformScale(), stroke)
	return img
}

// WritePNG rasterizes res and encodes it as PNG.
func WritePNG(w io.Writer, res dragon.Result, c Canvas) error {
	return png.Encode(w, Rasterize(res, c))
}

// Stroke draws the outline of p with the given width onto dst, with round joins and
// caps. Arcs are flattened to within [Tolerance].
//
// Every piece of the outline, a quad per segment and a disc per vertex, is added
// with the same orientation, so that overlapping pieces saturate instead of
// cancelling out.
func Stroke(dst draw.Image, p dragon.Path, width float64, c color.Color) {
	b := dst.Bounds()
	if b.Empty() || width <= 0 {
		return
	}
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	hw := width / 2
	origin := dragon.Vec(float64(-b.Min.X), float64(-b.Min.Y))

	for line := range p.Polylines(Tolerance) {
		for i := range line {
			line[i] = line[i].Translate(origin)
		}
		for i := 1; i < len(line); i++ {
			quad(r, line[i-1], line[i], hw)
		}
		for _, pt := range line {
			disc(r, pt, hw)
		}
	}
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// quad adds the rectangle of half-width hw around the segment from a to b.
func quad(r *vector.Rasterizer, a, b dragon.Point, hw float64) {
	d := b.Sub(a)
	if d.Hypot2() == 0 {
		return
	}
	n := d.Normalize().Turn90().Mul(hw)
	p0 := a.Translate(n.Negate())
	p1 := b.Translate(n.Negate())
	p2 := b.Translate(n)
	p3 := a.Translate(n)
	r.MoveTo(float32(p0.X), float32(p0.Y))
	r.LineTo(float32(p1.X), float32(p1.Y))
	r.LineTo(float32(p2.X), float32(p2.Y))
	r.LineTo(float32(p3.X), float32(p3.Y))
	r.ClosePath()
}

// disc adds a circle of radius rad around c, traversed in the direction of
// increasing angle.
func disc(r *vector.Rasterizer, c dragon.Point, rad float64) {
	x, y := float32(c.X), float32(c.Y)
	rr := float32(rad)
	k := float32(kappa * rad)
	r.MoveTo(x+rr, y)
	r.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	r.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	r.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	r.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	r.ClosePath()
}
