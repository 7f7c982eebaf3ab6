package dragon

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to SVG path commands and writes them
// to w.
//
// Every command and every number is followed by a single space, so that
//
//	M 0 0 L 5 5 A 1 1 0 0 1 10 0
//
// is written as "M 0 0 L 5 5 A 1 1 0 0 1 10 0 ". Arcs are always written with
// an x-axis rotation of 0 and the large-arc flag cleared.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	for el := range seq {
		if err != nil {
			return err
		}
		x, y := opts.format(el.P0.X), opts.format(el.P0.Y)
		switch el.Kind {
		case MoveToKind:
			writef("M %s %s ", x, y)
		case LineToKind:
			writef("L %s %s ", x, y)
		case ArcToKind:
			r := opts.format(el.Radius)
			sweep := 0
			if el.Sweep {
				sweep = 1
			}
			writef("A %s %s 0 0 %d %s %s ", r, r, sweep, x, y)
		default:
			panic("unreachable")
		}
	}
	return err
}

// SVG converts the path to a string of SVG path commands. See [WriteSVG] for the
// format.
func (p Path) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// ParseSVG parses SVG path commands as written by [WriteSVG]. It accepts the absolute
// M, L and A commands, numbers separated by whitespace or commas, and implicit
// repetition of the previous command. Arcs must be circular, unrotated and use the
// small-arc form.
func ParseSVG(s string) (Path, error) {
	sc := pathScanner{s: s}
	var p Path
	var cmd byte
	for {
		sc.skipSpace()
		if sc.done() {
			return p, nil
		}
		if c := sc.s[sc.i]; isCommand(c) {
			cmd = c
			sc.i++
		} else if cmd == 0 {
			return nil, sc.errorf("expected command, found %q", c)
		}

		switch cmd {
		case 'M', 'L':
			pt, err := sc.point()
			if err != nil {
				return nil, err
			}
			if cmd == 'M' {
				p.MoveTo(pt)
				// Subsequent pairs after a moveto are implicit lineto commands.
				cmd = 'L'
			} else {
				p.LineTo(pt)
			}
		case 'A':
			var args [5]float64
			for i := range args {
				v, err := sc.number()
				if err != nil {
					return nil, err
				}
				args[i] = v
			}
			rx, ry, rot, large, sweep := args[0], args[1], args[2], args[3], args[4]
			if rx != ry {
				return nil, sc.errorf("elliptical arcs are not supported")
			}
			if rot != 0 || large != 0 {
				return nil, sc.errorf("rotated or large arcs are not supported")
			}
			if sweep != 0 && sweep != 1 {
				return nil, sc.errorf("invalid sweep flag %g", sweep)
			}
			pt, err := sc.point()
			if err != nil {
				return nil, err
			}
			p.ArcTo(rx, sweep == 1, pt)
		default:
			return nil, sc.errorf("unsupported command %q", cmd)
		}
	}
}

func isCommand(c byte) bool {
	return (c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') && c != 'e' && c != 'E'
}

type pathScanner struct {
	s string
	i int
}

func (sc *pathScanner) done() bool { return sc.i >= len(sc.s) }

func (sc *pathScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("dragon: parse path at offset %d: %s", sc.i, fmt.Sprintf(format, args...))
}

func (sc *pathScanner) skipSpace() {
	for !sc.done() {
		switch sc.s[sc.i] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.i++
		default:
			return
		}
	}
}

func (sc *pathScanner) number() (float64, error) {
	sc.skipSpace()
	start := sc.i
	for !sc.done() {
		c := sc.s[sc.i]
		if c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			sc.i++
			continue
		}
		break
	}
	if start == sc.i {
		if sc.done() {
			return 0, sc.errorf("unexpected end of path, expected number")
		}
		return 0, sc.errorf("expected number, found %q", sc.s[sc.i])
	}
	tok := sc.s[start:sc.i]
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		sc.i = start
		return 0, sc.errorf("invalid number %q", tok)
	}
	return v, nil
}

func (sc *pathScanner) point() (Point, error) {
	x, err := sc.number()
	if err != nil {
		return Point{}, err
	}
	y, err := sc.number()
	if err != nil {
		return Point{}, err
	}
	return Pt(x, y), nil
}
