package recipe

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"datasmith/table"
)

//chromNames and chromLengthsMb approximate the human karyotype; lengths in Mb
var chromNames = []string{
	"chr1", "chr2", "chr3", "chr4", "chr5", "chr6", "chr7", "chr8",
	"chr9", "chr10", "chr11", "chr12", "chr13", "chr14", "chr15", "chr16",
	"chr17", "chr18", "chr19", "chr20", "chr21", "chr22", "chrX", "chrY",
}

var chromLengthsMb = []float64{
	248, 242, 198, 190, 181, 171, 159, 145, 138, 133,
	135, 133, 114, 107, 102, 90, 83, 80, 58, 63, 47, 51,
	155, 57,
}

//ChromWeights returns the chromosome sampling weights, proportional to length
func ChromWeights() []float64 {
	total := 0.0
	for _, l := range chromLengthsMb {
		total += l
	}
	weights := make([]float64, len(chromLengthsMb))
	for i, l := range chromLengthsMb {
		weights[i] = l / total
	}
	return weights
}

//GeneStats fabricates a genome wide differential expression table for the
//manhattan and MA demos: chromosome drawn proportional to length, uniform
//position within the chromosome, log normal base mean, a null/DE split of
//fold changes and p-values and Benjamini-Hochberg adjusted p-values
func GeneStats(cfg Config) (*table.Table, error) {
	rng := cfg.rng("gene_stats.tsv")

	nGenes := cfg.n(8000)
	nDE := cfg.n(400)
	nNull := nGenes - nDE

	chooser := newWeightedChooser(ChromWeights(), rng)
	baseMeanDist := distuv.LogNormal{Mu: 5, Sigma: 2, Src: rng}

	chroms := make([]string, nGenes)
	positions := make([]int, nGenes)
	baseMeans := make([]float64, nGenes)
	for i := 0; i < nGenes; i++ {
		ci := chooser.choose()
		chroms[i] = chromNames[ci]
		lengthBp := int64(chromLengthsMb[ci]) * 1_000_000
		positions[i] = int(1 + rng.Int63n(lengthBp-1))
		baseMeans[i] = baseMeanDist.Rand()
	}

	log2fc := make([]float64, nGenes)
	pValues := make([]float64, nGenes)

	//null genes: p-values bounded away from 0 so none accidentally cross the
	//significance threshold and fill the V notch
	nullFC := distuv.Normal{Mu: 0, Sigma: 0.3, Src: rng}
	nullP := distuv.Uniform{Min: 0.05, Max: 1.0, Src: rng}
	for i := 0; i < nNull; i++ {
		log2fc[i] = nullFC.Rand()
		pValues[i] = nullP.Rand()
	}

	deFC := distuv.Normal{Mu: 3.5, Sigma: 0.8, Src: rng}
	deP := distuv.Uniform{Min: 1e-8, Max: 0.001, Src: rng}
	for i := nNull; i < nGenes; i++ {
		sign := 1.0
		if rng.Float64() < 0.5 {
			sign = -1.0
		}
		log2fc[i] = sign * deFC.Rand()
		pValues[i] = deP.Rand()
	}

	perm := rng.Perm(nGenes)
	shuffledP := make([]float64, nGenes)
	for pos, src := range perm {
		shuffledP[pos] = pValues[src]
	}
	adjusted := AdjustBH(shuffledP)

	t := table.New("gene_stats.tsv", "gene", "chr", "pos", "basemean", "log2fc", "pvalue", "padj")
	for pos, src := range perm {
		t.AppendRow(
			fmt.Sprintf("Gene_%04d", src+1),
			chroms[src],
			table.Int(positions[src]),
			table.Float(baseMeans[src], 1),
			table.Float(log2fc[src], 4),
			table.Sci(pValues[src]),
			table.Sci(adjusted[pos]),
		)
	}
	return t, nil
}
