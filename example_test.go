package dragon_test

import (
	"errors"
	"fmt"
	"math"

	"honnef.co/go/dragon"
)

func ExampleBuildCurvePath() {
	opts := &dragon.Options{SVG: dragon.SVGOptions{MaxPrecision: 6}}
	path, width, err := dragon.BuildCurvePath(1, dragon.Pt(0, 0), dragon.Pt(10, 0), dragon.StyleSharp, opts)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", path)
	fmt.Printf("%.4f\n", width)
	// Output:
	// "M 0 0 L 5 5 L 10 0 "
	// 53.0330
}

func ExampleBuildCurvePath_unknownStyle() {
	style, err := dragon.ParseStyle("triangle")
	if err == nil {
		_, _, err = dragon.BuildCurvePath(4, dragon.Pt(0, 0), dragon.Pt(10, 0), style, nil)
	}
	fmt.Println(errors.Is(err, dragon.ErrUnknownStyle))
	// Output:
	// true
}

func ExampleGenerate() {
	vertices, err := dragon.Generate(3, dragon.Pt(0, 0), dragon.Pt(8, 0))
	if err != nil {
		panic(err)
	}
	// Round away floating point noise; adding 0 turns -0 into 0.
	round := func(f float64) float64 { return math.Round(f) + 0 }
	for _, v := range vertices {
		fmt.Println(dragon.Pt(round(v.X), round(v.Y)))
	}
	// Output:
	// (-2, 2)
	// (0, 4)
	// (2, 2)
	// (4, 4)
	// (6, 2)
	// (4, 0)
	// (6, -2)
	// (8, 0)
}

func ExampleRoundedPath() {
	start := dragon.Pt(0, 0)
	vertices := []dragon.Point{dragon.Pt(10, 0), dragon.Pt(10, 10), dragon.Pt(20, 10)}
	p, err := dragon.RoundedPath(start, vertices, dragon.DefaultRoundFactor)
	if err != nil {
		panic(err)
	}
	for _, el := range p {
		fmt.Println(el)
	}
	// Output:
	// MoveTo((0, 0))
	// LineTo((7.5, 0))
	// ArcTo(2.5, true, (10, 2.5))
	// LineTo((10, 7.5))
	// ArcTo(2.5, false, (12.5, 10))
	// LineTo((20, 10))
}
