package recipe

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"datasmith/table"
)

//volcanoBand describes one region of the V shape: fold changes are drawn
//from |N(fcMean,fcSD)| with the given sign, p-values uniform in [pLo,pHi]
type volcanoBand struct {
	count        int
	sign         float64
	fcMean, fcSD float64
	pLo, pHi     float64
}

//Volcano fabricates 200 genes crafted for a clear V shape: a dense null
//cluster, up/down regulated arms, borderline hits just crossing both
//thresholds and high fold change genes that stay non significant
func Volcano(cfg Config) (*table.Table, error) {
	rng := cfg.rng("volcano.tsv")

	bands := []volcanoBand{
		{cfg.n(70), 0, 0, 0.32, 0.15, 0.99},     //null, center bottom
		{cfg.n(40), 1, 2.8, 0.65, 1e-9, 0.005},  //up regulated
		{cfg.n(40), -1, 2.8, 0.65, 1e-9, 0.005}, //down regulated
		{cfg.n(12), 1, 1.15, 0.12, 0.008, 0.048},
		{cfg.n(12), -1, 1.15, 0.12, 0.008, 0.048},
		{cfg.n(13), 1, 1.8, 0.45, 0.07, 0.55},
		{cfg.n(13), -1, 1.8, 0.45, 0.07, 0.55},
	}

	fc := make([]float64, 0, cfg.n(200))
	pv := make([]float64, 0, cfg.n(200))
	for _, b := range bands {
		normal := distuv.Normal{Mu: b.fcMean, Sigma: b.fcSD, Src: rng}
		uniform := distuv.Uniform{Min: b.pLo, Max: b.pHi, Src: rng}
		for i := 0; i < b.count; i++ {
			v := normal.Rand()
			if b.sign != 0 {
				v = b.sign * math.Abs(v)
			}
			fc = append(fc, v)
			pv = append(pv, uniform.Rand())
		}
	}

	t := table.New("volcano.tsv", "gene", "log2fc", "pvalue")
	for _, i := range rng.Perm(len(fc)) {
		t.AppendRow(fmt.Sprintf("Gene_%03d", i+1), table.Float(fc[i], 4), table.Sci(pv[i]))
	}
	return t, nil
}
