// Command spiralgen turns arbitrary bytes into a rendered spiral figure.
//
// The pipeline is derive → refine → encode: input bytes become an
// unrefined figure, a refinement policy shrinks it to a compact
// self-avoiding shape, and the result is written either as a binary figure
// file (for later re-rendering) or as an image.
//
// Usage:
//
//	spiralgen -out spiral.png [-in input.bin] [-format sxbp|pbm|png|bmp|svg]
//	          [-method shrink|grow] [-max-lines n] [-quiet]
//
// When -in is omitted the input is read from stdin. When -format is
// omitted it is inferred from the -out extension.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spiralgen/spiralgen/codec"
	"github.com/spiralgen/spiralgen/core"
	"github.com/spiralgen/spiralgen/derive"
	"github.com/spiralgen/spiralgen/refine"
	"github.com/spiralgen/spiralgen/render"
)

func main() {
	var (
		inPath   = flag.String("in", "", "input file (default stdin)")
		outPath  = flag.String("out", "", "output file (required)")
		format   = flag.String("format", "", "output format: sxbp, pbm, png, bmp or svg (default from -out extension)")
		method   = flag.String("method", "shrink", "refinement method: shrink or grow")
		maxLines = flag.Uint("max-lines", 0, "cap the number of figure lines (0 = no cap)")
		quiet    = flag.Bool("quiet", false, "suppress progress output")
	)
	flag.Parse()

	if err := run(*inPath, *outPath, *format, *method, uint32(*maxLines), *quiet); err != nil {
		fmt.Fprintln(os.Stderr, "spiralgen:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, format, method string, maxLines uint32, quiet bool) error {
	if outPath == "" {
		return fmt.Errorf("missing required -out flag")
	}
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(outPath), ".")
	}

	data, err := readInput(inPath)
	if err != nil {
		return err
	}

	deriveOpts := derive.DefaultOptions()
	deriveOpts.MaxLines = maxLines
	fig, err := derive.Derive(data, deriveOpts)
	if err != nil {
		return err
	}

	refineOpts := refine.DefaultOptions()
	switch method {
	case "shrink":
		refineOpts.Method = refine.ShrinkFromEnd
	case "grow":
		refineOpts.Method = refine.GrowFromStart
	default:
		return fmt.Errorf("unknown refinement method %q", method)
	}
	if !quiet {
		refineOpts.Progress = func(f *core.Figure) {
			fmt.Fprintf(os.Stderr, "\rlines remaining: %d ", f.LinesRemaining)
		}
	}
	if err := refine.Refine(fig, refineOpts); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintln(os.Stderr)
	}

	out, err := encode(fig, format)
	if err != nil {
		return err
	}

	return os.WriteFile(outPath, out, 0o644)
}

// readInput slurps the figure's source bytes from the named file, or from
// stdin when no file is given.
func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

// encode serializes the refined figure in the requested format.
func encode(f *core.Figure, format string) ([]byte, error) {
	switch format {
	case "sxbp":
		return codec.Encode(f)
	case "svg":
		return render.EncodeSVG(f)
	case "pbm", "png", "bmp":
		bm, err := render.RenderBitmap(f)
		if err != nil {
			return nil, err
		}
		switch format {
		case "pbm":
			return render.EncodePBM(bm), nil
		case "png":
			return render.EncodePNG(bm)
		default:
			return render.EncodeBMP(bm)
		}
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
