package recipe

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"datasmith/table"
)

//Samples fabricates per group expression values for the box/violin/strip
//demos. Each treatment group follows a different shape: plain Gaussians,
//a bimodal mixture, a clipped Gaussian and a right skewed exponential.
func Samples(cfg Config) (*table.Table, error) {
	rng := cfg.rng("samples.tsv")
	t := table.New("samples.tsv", "group", "expression")

	appendNormal := func(group string, mu, sigma float64, n int) {
		normal := distuv.Normal{Mu: mu, Sigma: sigma, Src: rng}
		for i := 0; i < n; i++ {
			t.AppendRow(group, table.Float(normal.Rand(), 3))
		}
	}

	appendNormal("Control", 5.0, 1.2, cfg.n(120))
	appendNormal("Drug_A", 7.2, 1.5, cfg.n(120))

	//bimodal mixture
	appendNormal("Drug_B", 3.8, 0.7, cfg.n(70))
	appendNormal("Drug_B", 8.2, 0.9, cfg.n(50))

	//clipped
	clippedNormal := distuv.Normal{Mu: 3.5, Sigma: 2.0, Src: rng}
	for i := 0; i < cfg.n(120); i++ {
		t.AppendRow("Drug_C", table.Float(clip(clippedNormal.Rand(), 0, 15), 3))
	}

	//right skewed
	expDist := distuv.Exponential{Rate: 1.0 / 1.5, Src: rng}
	for i := 0; i < cfg.n(120); i++ {
		t.AppendRow("Drug_D", table.Float(expDist.Rand()+4.5, 3))
	}

	return t, nil
}

//Measurements fabricates three clearly separated sigmoid growth curves with
//measurement noise, sampled on a fixed 50 point time grid
func Measurements(cfg Config) (*table.Table, error) {
	rng := cfg.rng("measurements.tsv")
	t := table.New("measurements.tsv", "group", "time", "value")

	const points = 50
	curves := []struct {
		group                    string
		base, scale, k, m, noise float64
	}{
		{"Condition_A", 1.5, 2.0, 0.40, 10.0, 0.15}, //low band
		{"Condition_B", 4.2, 2.5, 0.30, 10.0, 0.18}, //mid band
		{"Condition_C", 7.0, 2.0, 0.35, 10.0, 0.15}, //high band
	}
	for _, c := range curves {
		noise := distuv.Normal{Mu: 0, Sigma: c.noise, Src: rng}
		for i := 0; i < points; i++ {
			ti := 20.0 * float64(i) / float64(points-1)
			sig := 1.0 / (1.0 + math.Exp(-c.k*(ti-c.m)))
			v := c.base + c.scale*sig + noise.Rand()
			t.AppendRow(c.group, table.Float(ti, 2), table.Float(v, 3))
		}
	}
	return t, nil
}
