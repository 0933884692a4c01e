package recipe

import (
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"datasmith/table"
)

//upsetFeature is one binary annotation column with its marginal probability
//and the index of the latent factor inducing correlation (or -1)
type upsetFeature struct {
	name         string
	marginal     float64
	latentFactor int
	latentWeight float64
}

var upsetFeatures = []upsetFeature{
	{"GWAS_hit", 0.30, 0, 0.3},
	{"eQTL", 0.45, 0, 0.3},
	{"Splicing_QTL", 0.20, -1, 0},
	{"Methylation_QTL", 0.35, -1, 0},
	{"Conservation", 0.55, 1, 0.4},
	{"ClinVar", 0.15, 1, 0.4},
}

//Upset fabricates a variants x annotations binary membership matrix. A shared
//latent component per factor induces mild correlation between feature pairs
//before each column is thresholded at its empirical (1-marginal) percentile,
//so the column means hit the configured marginals up to ties.
func Upset(cfg Config) (*table.Table, error) {
	rng := cfg.rng("upset.tsv")

	nVariants := cfg.n(400)
	standardNormal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	z := make([][]float64, len(upsetFeatures))
	for fi := range z {
		z[fi] = make([]float64, nVariants)
		for vi := range z[fi] {
			z[fi][vi] = standardNormal.Rand()
		}
	}

	const latentFactors = 2
	latent := make([][]float64, latentFactors)
	for li := range latent {
		latent[li] = make([]float64, nVariants)
		for vi := range latent[li] {
			latent[li][vi] = standardNormal.Rand()
		}
	}
	for fi, f := range upsetFeatures {
		if f.latentFactor < 0 {
			continue
		}
		for vi := range z[fi] {
			z[fi][vi] += f.latentWeight * latent[f.latentFactor][vi]
		}
	}

	thresholds := make([]float64, len(upsetFeatures))
	sortBuf := make([]float64, nVariants)
	for fi, f := range upsetFeatures {
		copy(sortBuf, z[fi])
		sort.Float64s(sortBuf)
		thresholds[fi] = stat.Quantile(1-f.marginal, stat.Empirical, sortBuf, nil)
	}

	header := make([]string, len(upsetFeatures))
	for fi, f := range upsetFeatures {
		header[fi] = f.name
	}
	t := table.New("upset.tsv", header...)
	for vi := 0; vi < nVariants; vi++ {
		row := make([]string, len(upsetFeatures))
		for fi := range upsetFeatures {
			if z[fi][vi] > thresholds[fi] {
				row[fi] = "1"
			} else {
				row[fi] = "0"
			}
		}
		t.AppendRow(row...)
	}
	return t, nil
}
