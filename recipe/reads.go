package recipe

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"datasmith/table"
)

//readRegionLength is the declared length of the demo locus
const readRegionLength = 8000

//Reads fabricates read alignments over one locus: about two thirds of the
//reads cluster Gaussian around a peak, the rest is uniform background.
//Output is sorted by start coordinate and reads are named by rank.
func Reads(cfg Config) (*table.Table, error) {
	rng := cfg.rng("reads.tsv")

	nReads := cfg.n(350)
	nPeak := int(float64(nReads) * 0.65)

	peakStart := distuv.Normal{Mu: 2800, Sigma: 600, Src: rng}
	starts := make([]int, 0, nReads)
	for i := 0; i < nPeak; i++ {
		s := int(peakStart.Rand())
		starts = append(starts, int(clip(float64(s), 0, 7800)))
	}
	for i := nPeak; i < nReads; i++ {
		starts = append(starts, int(rng.Int63n(7900)))
	}

	type read struct {
		start, end int
		strand     string
	}
	reads := make([]read, nReads)
	for i := range reads {
		length := 80 + int(rng.Int63n(171))
		end := starts[i] + length
		if end > readRegionLength {
			end = readRegionLength
		}
		strand := "+"
		if rng.Float64() < 0.5 {
			strand = "-"
		}
		reads[i] = read{start: starts[i], end: end, strand: strand}
	}
	sort.SliceStable(reads, func(a, b int) bool { return reads[a].start < reads[b].start })

	t := table.New("reads.tsv", "name", "start", "end", "strand")
	for rank, r := range reads {
		t.AppendRow(fmt.Sprintf("read_%04d", rank+1), table.Int(r.start), table.Int(r.end), r.strand)
	}
	return t, nil
}
