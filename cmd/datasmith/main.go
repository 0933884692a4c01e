//Package main provides the cli interface for the demo dataset generator
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot"

	"datasmith/recipe"
	"datasmith/recipePlot"
	"datasmith/table"
)

//estimated in-memory footprint of one canonical run, used to sanity check -scale
const (
	estBaseRows    = 13_000
	estBytesPerRow = 128
)

//application bundles the command line configuration options
type application struct {
	outDir   string
	seed     uint64
	scale    int
	workers  int
	force    bool
	previews bool
	recipes  []recipe.Recipe
}

var errCollisionAvoidanceFailed = errors.New("unable to avoid file/folder name collision, using returned name may overwrite data")

//defaultCreateCollisionFreeName is a convenience wrapper for createCollisionFreeName checking for
//collision using os.Stat
func defaultCreateCollisionFreeName(outPath string) (string, error) {
	return createCollisionFreeName(outPath, func(path string) bool {
		_, err := os.Stat(path)
		return !os.IsNotExist(err)
	})
}

//createCollisionFreeName checks if outPath already exists and tries to add numbers from 1 to 100 as suffix
//to find an unused name. If all are taken errCollisionAvoidanceFailed is returned
func createCollisionFreeName(outPath string, doesFileExist func(path string) bool) (string, error) {
	outPathDir := filepath.Dir(outPath)

	nameCandidate := filepath.Base(outPath)
	suffix := 1
	collision := doesFileExist(outPath)
	for collision && suffix < 100 {
		nameCandidate = fmt.Sprintf("%v-%v", filepath.Base(outPath), suffix)
		collision = doesFileExist(filepath.Join(outPathDir, nameCandidate))
		if collision {
			suffix++
		}
	}
	result := filepath.Join(outPathDir, nameCandidate)
	if collision {
		return result, errCollisionAvoidanceFailed
	}
	return result, nil
}

//ParseAndValidateFlags parses flags provided in args and returns the parsed values if all logic
//checks pass. Otherwise a multiline error is returned that also contains an overview over all flags
func ParseAndValidateFlags(args []string) (*application, error) {

	usageBuf := &bytes.Buffer{}
	cmdFlags := flag.NewFlagSet("datasmith", flag.ContinueOnError)
	cmdFlags.SetOutput(usageBuf)

	outDir := cmdFlags.String("out", "data", "Directory path for the generated tsv files")
	seed := cmdFlags.Uint64("seed", 42, "Master seed; every dataset derives its own random stream from it")
	scale := cmdFlags.Int("scale", 1, "Multiplier for the sample counts of the stochastic datasets. 1 reproduces the canonical files")
	workers := cmdFlags.Int("workers", 1, "Number of datasets to generate in parallel. Output does not depend on this")
	force := cmdFlags.Bool("force", false, "Write into an existing output directory instead of picking a collision free name")
	previews := cmdFlags.Bool("previews", false, "Also render png previews for scatter, histogram and measurements")
	only := cmdFlags.String("only", "", fmt.Sprintf("Comma separated dataset filenames to regenerate a subset. Available: %v", strings.Join(recipe.Names(), ", ")))
	cmdFlags.PrintDefaults()

	if err := cmdFlags.Parse(args); err != nil {
		return nil, fmt.Errorf("%v\n%s", err, usageBuf.String())
	}

	app := &application{
		outDir:   *outDir,
		seed:     *seed,
		scale:    *scale,
		workers:  *workers,
		force:    *force,
		previews: *previews,
	}

	err := func() (descriptiveError error) {
		//append usage string if we return an error
		defer func() {
			if descriptiveError != nil {
				descriptiveError = fmt.Errorf("%v\nUsage:\n%s", descriptiveError.Error(), usageBuf.String())
			}
		}()

		if *scale < 1 {
			descriptiveError = fmt.Errorf("please set scale to a positive number")
			return
		}

		if estimated := uint64(*scale) * estBaseRows * estBytesPerRow; estimated > memory.TotalMemory() {
			descriptiveError = fmt.Errorf("scale %v needs roughly %v bytes which exceeds the total system memory", *scale, estimated)
			return
		}

		if *workers < 1 || *workers > runtime.NumCPU() {
			descriptiveError = fmt.Errorf("please set workers to a number in [1,%v]", runtime.NumCPU())
			return
		}

		if *only == "" {
			app.recipes = recipe.All()
			return
		}
		for _, name := range strings.Split(*only, ",") {
			r, getErr := recipe.Get(strings.TrimSpace(name))
			if getErr != nil {
				descriptiveError = getErr
				return
			}
			app.recipes = append(app.recipes, r)
		}
		return
	}()

	if err != nil {
		return nil, err
	}

	return app, nil
}

//writePNGFile renders p into a freshly created file at path
func writePNGFile(path string, p *plot.Plot) error {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v : %w", path, err)
	}
	if err := recipePlot.WritePNG(p, outFile); err != nil {
		_ = outFile.Close()
		return err
	}
	return outFile.Close()
}

//writePreviews renders png previews for the representative datasets that were
//part of this run
func writePreviews(app *application, logger zerolog.Logger) error {
	generated := make(map[string]bool, len(app.recipes))
	for _, r := range app.recipes {
		generated[r.Filename] = true
	}

	previews := []struct {
		filename string
		build    func(t *table.Table) (*plot.Plot, error)
	}{
		{"scatter.tsv", func(t *table.Table) (*plot.Plot, error) {
			return recipePlot.Scatter(t, "x", "y", "group")
		}},
		{"histogram.tsv", func(t *table.Table) (*plot.Plot, error) {
			return recipePlot.Histogram(t, "value", 30)
		}},
		{"measurements.tsv", func(t *table.Table) (*plot.Plot, error) {
			return recipePlot.Lines(t, "time", "value", "group")
		}},
	}

	for _, pv := range previews {
		if !generated[pv.filename] {
			continue
		}
		t, err := table.ReadTSV(filepath.Join(app.outDir, pv.filename))
		if err != nil {
			return err
		}
		p, err := pv.build(t)
		if err != nil {
			return err
		}
		pngName := strings.TrimSuffix(pv.filename, ".tsv") + ".png"
		if err := writePNGFile(filepath.Join(app.outDir, pngName), p); err != nil {
			return err
		}
		logger.Info().Str("file", pngName).Msg("preview written")
	}
	return nil
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app, err := ParseAndValidateFlags(os.Args[1:])
	if err != nil {
		fmt.Printf("Error parsing config : %v\n", err)
		os.Exit(1)
	}

	//prepare output directory
	if !app.force {
		app.outDir, err = defaultCreateCollisionFreeName(app.outDir)
		if err != nil {
			//deliberate decision to not delete the colliding directory, we just overwrite
			logger.Warn().Str("dir", app.outDir).Msg("failed to avoid name collision, overwriting")
		}
	}
	if err := os.MkdirAll(app.outDir, os.ModePerm); err != nil {
		logger.Fatal().Err(err).Str("dir", app.outDir).Msg("failed to create output directory")
	}

	runner := &recipe.Runner{
		OutDir:  app.outDir,
		Cfg:     recipe.Config{Seed: app.seed, Scale: app.scale},
		Workers: app.workers,
		Recipes: app.recipes,
		Log:     logger,
	}
	summary, err := runner.Run(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("generation failed")
	}

	if app.previews {
		if err := writePreviews(app, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to render previews")
		}
	}

	//two column report, sorted by filename
	names := make([]string, len(summary.Order))
	copy(names, summary.Order)
	sort.Strings(names)
	fmt.Printf("\n%-30v %6v\n", "Filename", "Rows")
	fmt.Println(strings.Repeat("-", 38))
	for _, name := range names {
		fmt.Printf("%-30v %6v\n", name, summary.Counts[name])
	}
	fmt.Println(strings.Repeat("-", 38))
	fmt.Printf("%-30v %6v\n", "TOTAL", summary.Total)
	fmt.Printf("\nAll files written to: %v\n", app.outDir)
}
