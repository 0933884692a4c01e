package recipe

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"datasmith/table"
)

//gauss2D evaluates an unnormalized 2D Gaussian bump at (x,y)
func gauss2D(x, y, cx, cy, sx, sy float64) float64 {
	dx := (x - cx) / sx
	dy := (y - cy) / sy
	return math.Exp(-0.5 * (dx*dx + dy*dy))
}

//Contour fabricates scattered density samples from a two bump Gaussian
//mixture field with additive noise, clipped at zero
func Contour(cfg Config) (*table.Table, error) {
	rng := cfg.rng("contour.tsv")
	t := table.New("contour.tsv", "x", "y", "density")

	xDist := distuv.Uniform{Min: 0, Max: 10, Src: rng}
	yDist := distuv.Uniform{Min: 1, Max: 10, Src: rng}
	noise := distuv.Normal{Mu: 0, Sigma: 0.02, Src: rng}

	for i := 0; i < cfg.n(600); i++ {
		x := xDist.Rand()
		y := yDist.Rand()
		density := 0.6*gauss2D(x, y, 3, 4, 1.5, 1.2) +
			0.4*gauss2D(x, y, 7, 6, 1.0, 1.8) +
			noise.Rand()
		if density < 0 {
			density = 0
		}
		t.AppendRow(table.Float(x, 2), table.Float(y, 2), table.Float(density, 4))
	}
	return t, nil
}
