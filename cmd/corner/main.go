// Command corner renders a corner plot and optionally a walker trace
// from a CSV file of MCMC samples.
//
// The input has one row per recorded sample and one column per model
// parameter. Rows are ordered steps-major: all walkers of step 0, then
// all walkers of step 1 and so on, so the row count must be a multiple
// of -walkers.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/corner"
)

func main() {
	var (
		out     = flag.String("o", "corner.png", "corner plot output file")
		trace   = flag.String("trace", "", "walker trace output file (empty: no trace)")
		walkers = flag.Int("walkers", 1, "number of walkers the rows fold into")
		bins    = flag.Int("bins", corner.DefaultBins, "bins per histogram axis")
		kind    = flag.String("kind", "hist", "2D marginal style: hist or hex")
		labels  = flag.String("labels", "", "comma separated parameter names")
		face    = flag.String("facecolor", "", "histogram fill, \"#rrggbb\" or a color name")
		edge    = flag.String("edgecolor", "", "histogram outline, \"#rrggbb\" or a color name")
		size    = flag.Float64("size", 10, "figure width and height in inches")
		factor  = flag.Float64("factor", 3, "standard deviations shown about the mean")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] samples.csv\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	samples, err := readSamples(flag.Arg(0), *walkers)
	if err != nil {
		log.Fatal(err)
	}

	k, err := corner.ParseKind(*kind)
	if err != nil {
		log.Fatal(err)
	}
	var names []string
	if *labels != "" {
		names = strings.Split(*labels, ",")
	}

	theme := corner.DefaultTheme
	theme.BoundsFactor = *factor

	c := corner.Corner{
		Samples: samples,
		Bins:    *bins,
		Labels:  names,
		Kind:    k,
		Theme:   &theme,
	}
	if *face != "" {
		c.FaceColor = corner.String2Color(*face)
	}
	if *edge != "" {
		c.EdgeColor = corner.String2Color(*edge)
	}
	if err := render(*out, *size, c.Draw); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)

	if *trace != "" {
		t := corner.Trace{Samples: samples, Labels: names, Theme: &theme}
		if err := render(*trace, *size, t.Draw); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *trace)
	}
}

// readSamples loads a CSV of steps*walkers rows by dims columns and
// folds it into a sample tensor.
func readSamples(path string, walkers int) (*corner.Samples, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no samples", path)
	}
	if walkers < 1 || len(rows)%walkers != 0 {
		return nil, fmt.Errorf("%s: %d rows do not fold into %d walkers", path, len(rows), walkers)
	}

	dims := len(rows[0])
	data := make([]float64, 0, len(rows)*dims)
	for i, row := range rows {
		if len(row) != dims {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d", path, i+1, len(row), dims)
		}
		for _, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: %v", path, i+1, err)
			}
			data = append(data, v)
		}
	}
	return corner.NewSamples(len(rows)/walkers, walkers, dims, data)
}

// render draws onto a fresh square canvas and writes it as PNG.
func render(path string, inches float64, build func(draw.Canvas) error) error {
	c := vgimg.New(vg.Length(inches)*vg.Inch, vg.Length(inches)*vg.Inch)
	if err := build(draw.New(c)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
