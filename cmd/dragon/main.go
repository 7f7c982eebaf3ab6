// Command dragon draws Heighway dragon curves.
//
// Usage:
//
//	dragon [flags]
//
// The curve is described by an optional YAML config file; flags override the
// file's values. Output is an SVG document, a PNG image, or the bare SVG path
// commands followed by the recommended stroke width.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"honnef.co/go/dragon"
	"honnef.co/go/dragon/internal/config"
	"honnef.co/go/dragon/internal/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "dragon: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dragon", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML file describing the curve")
	order := fs.Int("order", config.DefaultOrder, "order of the curve")
	style := config.DefaultStyle
	fs.TextVar(&style, "style", config.DefaultStyle, "corner style: square, rounded, arc or skewed")
	output := fs.String("o", "-", "output file, - for standard output")
	format := fs.String("format", string(config.DefaultFormat), "output format: svg, png or path")
	precision := fs.Int("precision", 0, "maximum digits after the decimal point, 0 for lossless output")
	unlimited := fs.Bool("unlimited", false, "lift the safety ceiling on the order")
	writeConfig := fs.String("write-config", "", "write the effective configuration to this file and exit")
	verbose := fs.Bool("v", false, "log debug output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	dragon.SetLogger(logger)
	defer dragon.SetLogger(nil)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded config", "path", *configPath)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "order":
			cfg.Order = *order
		case "style":
			cfg.Style = style
		case "format":
			cfg.Format = config.Format(*format)
		case "precision":
			cfg.Precision = *precision
		case "unlimited":
			if *unlimited {
				cfg.MaxOrder = -1
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	if *writeConfig != "" {
		if err := config.Write(*writeConfig, cfg); err != nil {
			return err
		}
		logger.Info("wrote config", "path", *writeConfig)
		return nil
	}

	res, err := dragon.Build(cfg.Order, cfg.Start.Dragon(), cfg.End.Dragon(), cfg.Style, cfg.Options())
	if err != nil {
		return err
	}

	if *output == "-" {
		err = write(stdout, cfg, res)
	} else {
		err = writeFile(*output, cfg, res)
	}
	if err != nil {
		return err
	}
	logger.Debug("wrote curve", "output", *output, "format", cfg.Format)
	return nil
}

func writeFile(path string, cfg config.Config, res dragon.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, cfg, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func write(w io.Writer, cfg config.Config, res dragon.Result) error {
	opts := cfg.Options().SVG
	switch cfg.Format {
	case config.FormatPath:
		if err := res.Path.WriteSVG(w, opts); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\n%s\n", strconv.FormatFloat(res.StrokeWidth, 'f', -1, 64))
		return err
	case config.FormatSVG, config.FormatPNG:
		canvas, err := canvas(cfg)
		if err != nil {
			return err
		}
		if cfg.Format == config.FormatPNG {
			return render.WritePNG(w, res, canvas)
		}
		return render.WriteSVG(w, res, canvas, opts)
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
}

func canvas(cfg config.Config) (render.Canvas, error) {
	stroke, err := config.ParseColor(cfg.Stroke)
	if err != nil {
		return render.Canvas{}, err
	}
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return render.Canvas{}, err
	}
	return render.Canvas{
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		Margin:     cfg.Canvas.Margin,
		Stroke:     stroke,
		Background: bg,
	}, nil
}
