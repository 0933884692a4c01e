package recipe

import (
	"gonum.org/v1/gonum/stat/distuv"

	"datasmith/table"
)

//Histogram fabricates a two component Gaussian mixture for the histogram demo
func Histogram(cfg Config) (*table.Table, error) {
	rng := cfg.rng("histogram.tsv")
	t := table.New("histogram.tsv", "value")

	components := []struct {
		mu, sigma float64
		n         int
	}{
		{42, 8, cfg.n(550)},
		{68, 6, cfg.n(350)},
	}
	for _, c := range components {
		normal := distuv.Normal{Mu: c.mu, Sigma: c.sigma, Src: rng}
		for i := 0; i < c.n; i++ {
			t.AppendRow(table.Float(normal.Rand(), 2))
		}
	}
	return t, nil
}
