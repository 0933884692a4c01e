package recipe

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"datasmith/table"
)

//StackedArea fabricates weekly raw read counts for six bacterial phyla over
//one year. Counts are raw (not pre normalized) so the basic and normalized
//stacked area views look meaningfully different. Seasonality is modelled
//with phase shifted sine/cosine trends plus noise, floored at 1.
func StackedArea(cfg Config) (*table.Table, error) {
	rng := cfg.rng("stacked_area.tsv")
	t := table.New("stacked_area.tsv", "week", "species", "abundance")

	const weeks = 52
	species := []struct {
		name      string
		base, amp float64
		wave      func(t float64) float64
		noiseSD   float64
	}{
		{"Firmicutes", 350, 80, math.Sin, 20},
		{"Bacteroidetes", 250, -60, math.Sin, 20},
		{"Proteobacteria", 150, 30, func(t float64) float64 { return math.Cos(2 * t) }, 15},
		{"Actinobacteria", 120, 20, func(t float64) float64 { return math.Sin(1.5 * t) }, 10},
		{"Fusobacteria", 80, 0, func(float64) float64 { return 0 }, 10},
		{"Verrucomicrobia", 50, 0, func(float64) float64 { return 0 }, 8},
	}

	noise := make([]distuv.Normal, len(species))
	for i, sp := range species {
		noise[i] = distuv.Normal{Mu: 0, Sigma: sp.noiseSD, Src: rng}
	}

	for wi := 0; wi < weeks; wi++ {
		phase := 2 * math.Pi * float64(wi) / float64(weeks-1)
		for si, sp := range species {
			abundance := int(math.Max(1, sp.base+sp.amp*sp.wave(phase)+noise[si].Rand()))
			t.AppendRow(table.Int(wi+1), sp.name, table.Int(abundance))
		}
	}
	return t, nil
}
