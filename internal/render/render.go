// Package render draws dragon curves onto canvases: SVG documents and raster
// images.
package render

import (
	"image/color"
	"math"

	"honnef.co/go/dragon"
)

// Canvas describes the surface a curve is drawn on.
type Canvas struct {
	Width, Height int
	// Margin is the minimum distance, in pixels, between the stroked curve and
	// the edges of the canvas.
	Margin     float64
	Stroke     color.Color
	Background color.Color
}

// Fit returns the transform that scales the stroked curve of res uniformly to fill
// the canvas, less its margin, and centers it.
func Fit(res dragon.Result, c Canvas) dragon.Affine {
	bounds := dragon.BoundingBox(res.Start, res.Vertices).Inflate(res.StrokeWidth/2, res.StrokeWidth/2)
	availW := float64(c.Width) - 2*c.Margin
	availH := float64(c.Height) - 2*c.Margin
	scale := math.Min(availW/bounds.Width(), availH/bounds.Height())
	if math.IsInf(scale, 0) || math.IsNaN(scale) || scale <= 0 {
		scale = 1
	}
	center := bounds.Center()
	return dragon.Translate(dragon.Vec(-center.X, -center.Y)).
		ThenScale(scale, scale).
		ThenTranslate(dragon.Vec(float64(c.Width)/2, float64(c.Height)/2))
}
