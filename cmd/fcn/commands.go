package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/fcn/internal/diagram"
	"github.com/born-ml/fcn/internal/nn"
	"github.com/born-ml/fcn/internal/tensor"
	"github.com/born-ml/fcn/internal/validator"
)

// runForward prints every stage of the reference forward pass.
func runForward(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("forward", flag.ContinueOnError)
	fs.SetOutput(w)
	input := fs.String("x", "1.0,2.0", "Comma-separated input vector")
	if err := fs.Parse(args); err != nil {
		return err
	}

	x, err := parseFloats(*input)
	if err != nil {
		return err
	}

	model := nn.NewReference()
	trace, err := model.ForwardTrace(tensor.NewVector(x...))
	if err != nil {
		return err
	}
	class, _, err := model.Predict(trace.Input)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "🧠 SimpleFCN forward pass (2 → 2 → 2)")
	fmt.Fprintf(w, "   x  = %v\n", tensor.Values(trace.Input))
	fmt.Fprintf(w, "   z1 = %v\n", tensor.Values(trace.Z1))
	fmt.Fprintf(w, "   a1 = %v\n", tensor.Values(trace.A1))
	fmt.Fprintf(w, "   z2 = %v\n", tensor.Values(trace.Z2))
	fmt.Fprintf(w, "Output probabilities: %v\n", tensor.Values(trace.Y))
	fmt.Fprintf(w, "Predicted class: %d\n", class)
	return nil
}

// runValidate validates the reference network and reports whether every check passed.
func runValidate(w io.Writer, args []string) (bool, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(w)
	tol := fs.Float64("tol", validator.DefaultTolerance, "Absolute tolerance")
	if err := fs.Parse(args); err != nil {
		return false, err
	}

	report := validator.Run(nn.NewReference(), validator.Config{Tolerance: *tol})
	fmt.Fprintln(w, report.String())
	if report.Passed() {
		fmt.Fprintln(w, "🎉 All checks passed!")
	}
	return report.Passed(), nil
}

// runArch checks the given layer sizes against the expected architecture.
func runArch(w io.Writer, args []string) (bool, error) {
	fs := flag.NewFlagSet("arch", flag.ContinueOnError)
	fs.SetOutput(w)
	expected := fs.String("expected", "3,5,5,2", "Comma-separated expected layer sizes")
	if err := fs.Parse(args); err != nil {
		return false, err
	}

	want, err := parseInts(strings.Split(*expected, ","))
	if err != nil {
		return false, err
	}
	got, err := parseInts(fs.Args())
	if err != nil {
		return false, err
	}

	ok, msg := validator.ValidateArchitecture(got, want)
	fmt.Fprintln(w, msg)
	return ok, nil
}

// runDraw renders a network diagram to a PNG file.
func runDraw(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	fs.SetOutput(w)
	out := fs.String("o", "network.png", "Output PNG file")
	title := fs.String("title", diagram.DefaultTitle, "Diagram title")
	scale := fs.Float64("scale", diagram.DefaultConfig().PixelsPerUnit, "Pixels per layout unit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes := nn.NewReference().Architecture()
	if fs.NArg() > 0 {
		var err error
		if sizes, err = parseInts(fs.Args()); err != nil {
			return err
		}
	}

	cfg := diagram.DefaultConfig()
	cfg.PixelsPerUnit = *scale
	layout, err := diagram.NewLayout(sizes, cfg)
	if err != nil {
		return err
	}
	raster, err := diagram.Render(layout, *title)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	if err := raster.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", *out, err)
	}

	width, height := raster.Size()
	fmt.Fprintf(w, "✅ Wrote %s (%dx%d, layers %v)\n", *out, width, height, sizes)
	return nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func parseInts(fields []string) ([]int, error) {
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid layer size %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}
