package recipe

import (
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

//AdjustBH computes Benjamini-Hochberg step-up adjusted values for pValues.
//The result is ordered like the input. For every entry adjusted >= raw and
//adjusted <= 1 hold, and the adjusted values are monotone non decreasing
//along the ascending raw value ranking.
func AdjustBH(pValues []float64) []float64 {
	n := len(pValues)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return pValues[order[a]] < pValues[order[b]] })

	adjusted := make([]float64, n)
	runningMin := 1.0
	for rank := n; rank >= 1; rank-- {
		idx := order[rank-1]
		v := pValues[idx] * float64(n) / float64(rank)
		if v < runningMin {
			runningMin = v
		}
		adjusted[idx] = runningMin
	}
	return adjusted
}

//weightedChooser draws category indices with probability proportional to the
//given weights, with replacement. sampleuv.Weighted zeroes the weight of a
//taken item, so the weight is restored after every draw.
type weightedChooser struct {
	weights []float64
	sampler sampleuv.Weighted
}

func newWeightedChooser(weights []float64, src rand.Source) *weightedChooser {
	buf := make([]float64, len(weights))
	copy(buf, weights)
	return &weightedChooser{
		weights: buf,
		sampler: sampleuv.NewWeighted(buf, src),
	}
}

func (w *weightedChooser) choose() int {
	idx, ok := w.sampler.Take()
	if !ok {
		panic("weighted chooser ran out of mass")
	}
	w.sampler.Reweight(idx, w.weights[idx])
	return idx
}

//clip bounds v to [lo,hi]
func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

//shuffleRows permutes rows in place
func shuffleRows(rng *rand.Rand, rows [][]string) {
	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
}
