package recipe

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"datasmith/table"
)

//heatmapGenes are well known cancer/housekeeping genes; the first ten get
//group dependent expression shifts, the rest stay at baseline noise
var heatmapGenes = []string{
	"TP53", "BRCA1", "EGFR", "MYC", "CDK2", "RB1", "PTEN", "AKT1", "KRAS", "BRAF",
	"MDM2", "CCND1", "E2F1", "PCNA", "GAPDH", "ACTB", "STAT3", "JAK2", "PIK3CA", "MTOR",
	"ATM", "CHEK2", "RAD51", "BRCA2", "BCL2", "MCL1", "CASP3", "CASP9", "BAX", "BID",
}

//Heatmap fabricates a genes x samples expression matrix with 3 samples per
//treatment group and ten genes that clearly separate the groups
func Heatmap(cfg Config) (*table.Table, error) {
	rng := cfg.rng("heatmap.tsv")

	groupMeans := map[string]float64{
		"Control": 0.0,
		"TreatA":  2.0,
		"TreatB":  -1.5,
		"TreatC":  1.0,
	}
	groupMembership := []string{
		"Control", "Control", "Control",
		"TreatA", "TreatA", "TreatA",
		"TreatB", "TreatB", "TreatB",
		"TreatC", "TreatC", "TreatC",
	}

	header := []string{"gene"}
	for i := range groupMembership {
		header = append(header, fmt.Sprintf("Sample_%02d", i+1))
	}
	t := table.New("heatmap.tsv", header...)

	const interestingGenes = 10
	for gi, gene := range heatmapGenes {
		row := []string{gene}
		for _, group := range groupMembership {
			mean := 0.0
			if gi < interestingGenes {
				mean = groupMeans[group]
			}
			val := distuv.Normal{Mu: mean, Sigma: 1.0, Src: rng}.Rand()
			row = append(row, table.Float(val, 2))
		}
		t.AppendRow(row...)
	}
	return t, nil
}
