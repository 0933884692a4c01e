//Package recipe contains one independent fabrication procedure per demo
//dataset plus a registry to look them up by name. Each recipe owns a random
//stream derived from the master seed and its own filename, so recipes can run
//in any order (or in parallel) without changing their output.
package recipe

import (
	"fmt"
	"hash/fnv"
	"sort"

	"golang.org/x/exp/rand"

	"datasmith/table"
)

//Config is shared by all recipes. Scale multiplies the sample counts of the
//stochastic recipes; the fixed literal tables ignore it. Scale 1 reproduces
//the canonical datasets.
type Config struct {
	Seed  uint64
	Scale int
}

//n scales a base sample count
func (c Config) n(base int) int {
	if c.Scale <= 1 {
		return base
	}
	return base * c.Scale
}

//rng derives the random stream for the recipe writing filename. Mixing the
//filename hash into the master seed keeps the streams independent of
//registration order.
func (c Config) rng(filename string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(filename))
	return rand.New(rand.NewSource(c.Seed ^ h.Sum64()))
}

//Recipe pairs an output filename with the procedure fabricating its table
type Recipe struct {
	Filename string
	Generate func(cfg Config) (*table.Table, error)
}

//availableRecipes hand edited list of datasets, in generation order. If you
//add a new dataset add it to the list
var availableRecipes = []Recipe{
	{"scatter.tsv", Scatter},
	{"volcano.tsv", Volcano},
	{"samples.tsv", Samples},
	{"measurements.tsv", Measurements},
	{"gene_stats.tsv", GeneStats},
	{"bar.tsv", Bar},
	{"histogram.tsv", Histogram},
	{"pie.tsv", Pie},
	{"heatmap.tsv", Heatmap},
	{"waterfall.tsv", Waterfall},
	{"stacked_area.tsv", StackedArea},
	{"candlestick.tsv", Candlestick},
	{"contour.tsv", Contour},
	{"hist2d.tsv", Hist2D},
	{"dot.tsv", Dot},
	{"upset.tsv", Upset},
	{"chord.tsv", Chord},
	{"sankey.tsv", Sankey},
	{"phylo.tsv", Phylo},
	{"synteny_seqs.tsv", SyntenySeqs},
	{"synteny_blocks.tsv", SyntenyBlocks},
	{"reads.tsv", Reads},
}

//All returns every registered recipe in generation order
func All() []Recipe {
	out := make([]Recipe, len(availableRecipes))
	copy(out, availableRecipes)
	return out
}

//Names returns the sorted filenames of all registered recipes
func Names() []string {
	names := make([]string, 0, len(availableRecipes))
	for _, r := range availableRecipes {
		names = append(names, r.Filename)
	}
	sort.Strings(names)
	return names
}

//Get returns the recipe registered for filename or an error if there is none
func Get(filename string) (Recipe, error) {
	for _, r := range availableRecipes {
		if r.Filename == filename {
			return r, nil
		}
	}
	return Recipe{}, fmt.Errorf("unknown dataset %v", filename)
}
