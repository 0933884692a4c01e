//Package main renders a png preview for a single generated tsv file
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot"

	"datasmith/recipePlot"
	"datasmith/table"
)

func main() {

	in := flag.String("in", "", "Path to a generated tsv file")
	kind := flag.String("kind", "scatter", "Plot kind: scatter, histogram or line")
	xCol := flag.String("x", "x", "Header name of the x column (scatter/line)")
	yCol := flag.String("y", "y", "Header name of the y column (scatter/line)")
	groupCol := flag.String("group", "group", "Header name of the group column (scatter/line)")
	valueCol := flag.String("value", "value", "Header name of the value column (histogram)")
	bins := flag.Int("bins", 30, "Number of histogram buckets")
	out := flag.String("out", "preview.png", "Path for the rendered png")

	flag.Parse()

	if *in == "" {
		fmt.Printf("Please set \"in\" parameter!\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	t, err := table.ReadTSV(*in)
	if err != nil {
		log.Fatalf("Failed to read input file : %v\n", err)
	}

	var p *plot.Plot
	switch *kind {
	case "scatter":
		p, err = recipePlot.Scatter(t, *xCol, *yCol, *groupCol)
	case "histogram":
		p, err = recipePlot.Histogram(t, *valueCol, *bins)
	case "line":
		p, err = recipePlot.Lines(t, *xCol, *yCol, *groupCol)
	default:
		log.Fatalf("Unknown plot kind %v\n", *kind)
	}
	if err != nil {
		log.Fatalf("Failed to create plot : %v\n", err)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create output file : %v\n", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			log.Printf("Failed to close %v : %v", outFile.Name(), err)
		}
	}()

	if err := recipePlot.WritePNG(p, outFile); err != nil {
		log.Fatalf("Failed to write plot : %v\n", err)
	}
}
