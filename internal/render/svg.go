package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"honnef.co/go/dragon"
)

// WriteSVG writes res as a standalone SVG document, fitted to the canvas. The curve
// is stroked with round joins and caps and not filled.
func WriteSVG(w io.Writer, res dragon.Result, c Canvas, opts dragon.SVGOptions) error {
	aff := Fit(res, c)
	path := res.Path.Transform(aff)
	width := res.StrokeWidth * aff.UniformScale()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		c.Width, c.Height, c.Width, c.Height)
	if fill, ok := svgColor(c.Background); ok {
		fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", fill)
	}
	stroke, ok := svgColor(c.Stroke)
	if !ok {
		stroke = "none"
	}
	fmt.Fprintf(bw, `<path stroke="%s" stroke-width="%s" stroke-linejoin="round" stroke-linecap="round" fill="none" d="`,
		stroke, strconv.FormatFloat(width, 'f', -1, 64))
	if err := path.WriteSVG(bw, opts); err != nil {
		return err
	}
	fmt.Fprint(bw, "\"/>\n</svg>\n")
	return bw.Flush()
}

// svgColor formats c as #rrggbb. It reports false for nil and fully transparent
// colors.
func svgColor(c color.Color) (string, bool) {
	if c == nil {
		return "", false
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), true
}
