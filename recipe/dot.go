package recipe

import (
	"gonum.org/v1/gonum/stat/distuv"

	"datasmith/table"
)

var dotPathways = []string{
	"Glycolysis",
	"TCA cycle",
	"Oxidative phosphorylation",
	"Fatty acid oxidation",
	"Pentose phosphate",
	"Amino acid synthesis",
	"Nucleotide synthesis",
	"One-carbon metabolism",
}

var dotCellTypes = []string{
	"Hepatocyte",
	"Neuron",
	"Cardiomyocyte",
	"Skeletal muscle",
	"Adipocyte",
	"Epithelial",
	"Immune cell",
}

//dotBaseExpr holds biologically informed mean expression, one row per cell
//type, one column per pathway (same order as dotPathways)
var dotBaseExpr = [][]float64{
	{3.8, 3.5, 3.2, 4.0, 3.5, 3.0, 2.8, 2.5}, //Hepatocyte
	{2.0, 2.5, 4.2, 2.8, 1.8, 2.2, 2.0, 2.0}, //Neuron
	{3.0, 4.0, 4.5, 4.2, 2.5, 2.8, 2.5, 2.2}, //Cardiomyocyte
	{3.5, 3.8, 4.0, 3.8, 2.8, 3.0, 2.8, 2.5}, //Skeletal muscle
	{2.5, 3.0, 3.0, 4.5, 2.0, 2.5, 2.0, 2.2}, //Adipocyte
	{2.8, 2.5, 2.8, 2.5, 2.2, 2.5, 2.5, 2.0}, //Epithelial
	{2.2, 2.0, 2.5, 2.0, 2.5, 2.2, 3.0, 1.8}, //Immune cell
}

//Dot fabricates a pathway x cell type dot plot table: mean expression from
//the base matrix plus noise, and the derived percentage of expressing cells
func Dot(cfg Config) (*table.Table, error) {
	rng := cfg.rng("dot.tsv")
	t := table.New("dot.tsv", "pathway", "cell_type", "mean_expr", "pct_expressed")

	exprNoise := distuv.Normal{Mu: 0, Sigma: 0.15, Src: rng}
	pctNoise := distuv.Normal{Mu: 0, Sigma: 5, Src: rng}

	for pi, pathway := range dotPathways {
		for ci, cellType := range dotCellTypes {
			meanExpr := roundCents(clip(dotBaseExpr[ci][pi]+exprNoise.Rand(), 0.5, 4.5))
			pct := clip(meanExpr/4.5*90+pctNoise.Rand(), 5, 95)
			t.AppendRow(pathway, cellType, table.Float(meanExpr, 2), table.Float(pct, 1))
		}
	}
	return t, nil
}
