package recipe

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"datasmith/table"
)

//bivariateCluster samples n correlated points around (cx,cy) with standard
//deviations sx,sy and correlation rho
func bivariateCluster(rng *rand.Rand, cx, cy, sx, sy, rho float64, n int) ([][2]float64, error) {
	cov := mat.NewSymDense(2, []float64{
		sx * sx, rho * sx * sy,
		rho * sx * sy, sy * sy,
	})
	dist, ok := distmv.NewNormal([]float64{cx, cy}, cov, rng)
	if !ok {
		return nil, fmt.Errorf("covariance matrix for cluster at (%v,%v) is not positive definite", cx, cy)
	}
	pts := make([][2]float64, n)
	for i := range pts {
		p := dist.Rand(nil)
		pts[i] = [2]float64{p[0], p[1]}
	}
	return pts, nil
}

//Scatter fabricates three labeled bivariate Gaussian clusters for the
//scatter and color-by demos
func Scatter(cfg Config) (*table.Table, error) {
	rng := cfg.rng("scatter.tsv")
	t := table.New("scatter.tsv", "x", "y", "group")

	clusters := []struct {
		group              string
		cx, cy, sx, sy, rho float64
	}{
		{"Group_A", 3.0, 5.5, 1.2, 0.9, 0.60},
		{"Group_B", 7.5, 7.0, 1.0, 1.1, 0.45},
		{"Group_C", 5.0, 2.0, 0.8, 0.75, -0.30},
	}
	for _, c := range clusters {
		pts, err := bivariateCluster(rng, c.cx, c.cy, c.sx, c.sy, c.rho, cfg.n(80))
		if err != nil {
			return nil, err
		}
		for _, p := range pts {
			t.AppendRow(table.Float(p[0], 3), table.Float(p[1], 3), c.group)
		}
	}
	shuffleRows(rng, t.Rows)
	return t, nil
}

//Hist2D fabricates two overlapping bivariate clusters with clear density
//structure for the 2D histogram demo
func Hist2D(cfg Config) (*table.Table, error) {
	rng := cfg.rng("hist2d.tsv")
	t := table.New("hist2d.tsv", "x", "y")

	clusters := []struct {
		cx, cy, vx, vy, cxy float64
		n                   int
	}{
		{25, 30, 40, 40, 30, cfg.n(350)},
		{70, 75, 35, 35, 25, cfg.n(250)},
	}
	for _, c := range clusters {
		cov := mat.NewSymDense(2, []float64{c.vx, c.cxy, c.cxy, c.vy})
		dist, ok := distmv.NewNormal([]float64{c.cx, c.cy}, cov, rng)
		if !ok {
			return nil, fmt.Errorf("covariance matrix for cluster at (%v,%v) is not positive definite", c.cx, c.cy)
		}
		for i := 0; i < c.n; i++ {
			p := dist.Rand(nil)
			t.AppendRow(table.Float(p[0], 2), table.Float(p[1], 2))
		}
	}
	return t, nil
}
