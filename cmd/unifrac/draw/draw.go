// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// a distance matrix as a heat map image.
package draw

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/js-arias/blind"
	"github.com/js-arias/command"
	"github.com/js-arias/unifrac/dmatrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `draw [-o|--output <image-file>] [--size <value>]
	<matrix-file>`,
	Short: "draw a distance matrix as a heat map",
	Long: `
Command draw reads a distance matrix, as written by the command 'unifrac
dist', and draws it as a heat map image. Distances are colored with a
sequential color scheme, from 0 (identical samples) to 1 (samples without any
shared branch).

The argument of the command is the name of the file with the distance matrix.

By default the image will be stored with the name of the matrix file with the
'.png' extension appended. A different file name can be defined with the flag
--output, or -o; the format of the image is inferred from the extension of the
file name (.eps, .jpg, .pdf, .png, .svg, or .tif).

By default the image will be 6 inch wide; use the flag --size to define a
different width, in inches.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var size float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().Float64Var(&size, "size", 6, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting matrix file")
	}
	name := args[0]

	m, err := readMatrix(name)
	if err != nil {
		return err
	}

	if output == "" {
		output = name + ".png"
	}
	if size <= 0 {
		size = 6
	}
	if err := drawMatrix(m); err != nil {
		return fmt.Errorf("while drawing %q: %v", name, err)
	}
	return nil
}

func readMatrix(name string) (*dmatrix.Matrix, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := dmatrix.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return m, nil
}

// A matrixGrid wraps a distance matrix
// for the heat map plotter.
// Rows grow downwards,
// so the first sample is at the top of the image.
type matrixGrid struct {
	m *dmatrix.Matrix
}

func (g matrixGrid) Dims() (int, int) {
	return g.m.Len(), g.m.Len()
}

func (g matrixGrid) Z(c, r int) float64 {
	return g.m.At(g.m.Len()-1-r, c)
}

func (g matrixGrid) X(c int) float64 {
	return float64(c)
}

func (g matrixGrid) Y(r int) float64 {
	return float64(r)
}

// A distancePalette is a sequential color palette
// for distances in the range [0, 1].
type distancePalette struct {
	colors []color.Color
}

func newDistancePalette(n int) distancePalette {
	colors := make([]color.Color, 0, n)
	for i := 0; i < n; i++ {
		v := float64(i) / float64(n-1)
		colors = append(colors, blind.Sequential(blind.Iridescent, v))
	}
	return distancePalette{colors: colors}
}

func (p distancePalette) Colors() []color.Color {
	return p.colors
}

func drawMatrix(m *dmatrix.Matrix) error {
	p := plot.New()

	hm := plotter.NewHeatMap(matrixGrid{m: m}, newDistancePalette(100))
	hm.Min = 0
	hm.Max = 1
	p.Add(hm)

	samples := m.Samples()
	xt := make([]plot.Tick, 0, len(samples))
	yt := make([]plot.Tick, 0, len(samples))
	for i, s := range samples {
		xt = append(xt, plot.Tick{Value: float64(i), Label: s})
		yt = append(yt, plot.Tick{Value: float64(len(samples) - 1 - i), Label: s})
	}
	p.X.Tick.Marker = plot.ConstantTicks(xt)
	p.Y.Tick.Marker = plot.ConstantTicks(yt)
	p.X.Tick.Label.Rotation = -math.Pi / 2
	p.X.Tick.Label.XAlign = -0.5
	p.X.Tick.Label.YAlign = -1

	return p.Save(vg.Length(size)*vg.Inch, vg.Length(size)*vg.Inch, output)
}
