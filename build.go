package dragon

import (
	"fmt"
	"math"
)

const (
	// DefaultMaxOrder is the default safety ceiling on the order accepted by [Build].
	DefaultMaxOrder = 13
	// DefaultStrokeWidth is the stroke width recommended for order 0.
	DefaultStrokeWidth = 75
)

// Options configures [Build]. The zero value, as well as a nil *Options, selects the
// defaults documented on each field.
type Options struct {
	// RoundFactor is the round factor of [StyleRounded]. 0 means [DefaultRoundFactor].
	RoundFactor float64
	// ArcFactor is the round factor of [StyleArc]. 0 means [ArcRoundFactor].
	ArcFactor float64
	// SkewFactor is the skew factor of [StyleSkewed]. 0 means [DefaultSkewFactor].
	SkewFactor float64
	// MaxOrder is the largest order Build accepts. 0 means [DefaultMaxOrder]; a
	// negative value lifts the ceiling, leaving only [MaxAddressableOrder] and
	// available memory as limits.
	MaxOrder int
	// BaseStrokeWidth is the stroke width recommended for order 0. 0 means
	// [DefaultStrokeWidth].
	BaseStrokeWidth float64
	// SVG controls how [BuildCurvePath] formats the path.
	SVG SVGOptions
}

func (opts *Options) roundFactor() float64 {
	if opts == nil || opts.RoundFactor == 0 {
		return DefaultRoundFactor
	}
	return opts.RoundFactor
}

func (opts *Options) arcFactor() float64 {
	if opts == nil || opts.ArcFactor == 0 {
		return ArcRoundFactor
	}
	return opts.ArcFactor
}

func (opts *Options) skewFactor() float64 {
	if opts == nil || opts.SkewFactor == 0 {
		return DefaultSkewFactor
	}
	return opts.SkewFactor
}

// maxOrder returns the effective ceiling on the order.
func (opts *Options) maxOrder() int {
	switch {
	case opts == nil || opts.MaxOrder == 0:
		return DefaultMaxOrder
	case opts.MaxOrder < 0:
		return MaxAddressableOrder
	default:
		return min(opts.MaxOrder, MaxAddressableOrder)
	}
}

func (opts *Options) baseStrokeWidth() float64 {
	if opts == nil || opts.BaseStrokeWidth == 0 {
		return DefaultStrokeWidth
	}
	return opts.BaseStrokeWidth
}

func (opts *Options) svg() SVGOptions {
	if opts == nil {
		return SVGOptions{}
	}
	return opts.SVG
}

// checkStyle validates style and the factor it will be encoded with.
func (opts *Options) checkStyle(style Style) error {
	switch style {
	case StyleSharp:
		return nil
	case StyleRounded:
		return checkRoundFactor(opts.roundFactor())
	case StyleArc:
		return checkRoundFactor(opts.arcFactor())
	case StyleSkewed:
		return checkSkewFactor(opts.skewFactor())
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}
}

func (opts *Options) encode(style Style, start Point, vertices []Point) (Path, error) {
	switch style {
	case StyleSharp:
		return SharpPath(start, vertices), nil
	case StyleRounded:
		return RoundedPath(start, vertices, opts.roundFactor())
	case StyleArc:
		return RoundedPath(start, vertices, opts.arcFactor())
	case StyleSkewed:
		return SkewedPath(start, vertices, opts.skewFactor())
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}
}

// StrokeWidth returns the stroke width recommended for a curve of the given order,
// base / √2^order. Segments shrink by a factor of √2 with every order, and so does
// the stroke.
func StrokeWidth(order int, base float64) float64 {
	return base / math.Pow(math.Sqrt2, float64(order))
}

// Result is a dragon curve built by [Build].
type Result struct {
	Order    int
	Style    Style
	Start    Point
	Vertices []Point
	Path     Path
	// StrokeWidth is a presentation hint; see [StrokeWidth].
	StrokeWidth float64
}

// Build computes the dragon curve of the given order spanning start and end and
// encodes it in the given style.
//
// In addition to the errors of [Generate] and the path encoders, Build returns
// [ErrUnknownStyle] for undeclared styles and [ErrOrderLimit] for orders above
// opts.MaxOrder. All arguments are validated before any vertex is computed. No
// partial result is returned on error.
func Build(order int, start, end Point, style Style, opts *Options) (Result, error) {
	if err := opts.checkStyle(style); err != nil {
		return Result{}, err
	}
	if limit := opts.maxOrder(); order > limit && order <= MaxAddressableOrder {
		return Result{}, fmt.Errorf("%w: order %d > %d", ErrOrderLimit, order, limit)
	}
	vertices, err := Generate(order, start, end)
	if err != nil {
		return Result{}, err
	}
	path, err := opts.encode(style, start, vertices)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Order:       order,
		Style:       style,
		Start:       start,
		Vertices:    vertices,
		Path:        path,
		StrokeWidth: StrokeWidth(order, opts.baseStrokeWidth()),
	}
	Logger().Debug("built dragon curve",
		"order", order,
		"style", style,
		"vertices", len(vertices),
		"elements", len(path),
		"strokeWidth", res.StrokeWidth)
	return res, nil
}

// BuildCurvePath is like [Build] but returns only the SVG path commands and the
// recommended stroke width.
func BuildCurvePath(order int, start, end Point, style Style, opts *Options) (string, float64, error) {
	res, err := Build(order, start, end, style, opts)
	if err != nil {
		return "", 0, err
	}
	return res.Path.SVG(opts.svg()), res.StrokeWidth, nil
}
