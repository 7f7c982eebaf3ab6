package dragon

import (
	"fmt"
	"strconv"
)

// Style selects how the corners of a dragon curve are drawn.
type Style int

const (
	// StyleSharp draws the curve as a polyline with square corners.
	StyleSharp Style = iota + 1
	// StyleRounded replaces every corner with a circular arc whose radius is a
	// quarter of the segment length by default.
	StyleRounded
	// StyleArc is StyleRounded with maximal arcs: every segment becomes a sequence
	// of half-segment arcs.
	StyleArc
	// StyleSkewed cuts every corner short without arcs.
	StyleSkewed
)

var styleNames = map[Style]string{
	StyleSharp:   "square",
	StyleRounded: "rounded",
	StyleArc:     "arc",
	StyleSkewed:  "skewed",
}

// Styles lists all styles in declaration order.
var Styles = []Style{StyleSharp, StyleRounded, StyleArc, StyleSkewed}

// ParseStyle returns the style with the given name. "sharp" is accepted as an alias
// of "square". Unknown names yield [ErrUnknownStyle].
func ParseStyle(name string) (Style, error) {
	if name == "sharp" {
		return StyleSharp, nil
	}
	for _, s := range Styles {
		if styleNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Valid reports whether s is one of the declared styles.
func (s Style) Valid() bool {
	_, ok := styleNames[s]
	return ok
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
