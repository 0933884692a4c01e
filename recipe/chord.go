package recipe

import (
	"datasmith/table"
)

var chordRegions = []string{
	"Cortex", "Hippocampus", "Amygdala", "Thalamus",
	"Cerebellum", "Striatum", "Brainstem", "Hypothalamus",
}

//chordStrongEdges seeds the dominant anatomical connections; all remaining
//off diagonal cells get moderate random fill
var chordStrongEdges = map[[2]int]int{
	{0, 3}: 450, //Cortex <-> Thalamus
	{0, 1}: 320, //Cortex <-> Hippocampus
	{0, 4}: 280, //Cortex <-> Cerebellum
	{1, 2}: 210, //Hippocampus <-> Amygdala
	{3, 6}: 190, //Thalamus <-> Brainstem
	{4, 5}: 175, //Cerebellum <-> Striatum
	{5, 6}: 160, //Striatum <-> Brainstem
	{2, 7}: 145, //Amygdala <-> Hypothalamus
	{3, 7}: 130, //Thalamus <-> Hypothalamus
	{0, 5}: 120, //Cortex <-> Striatum
}

//Chord fabricates a symmetric brain region connectivity matrix with a zero
//diagonal for the chord diagram demo
func Chord(cfg Config) (*table.Table, error) {
	rng := cfg.rng("chord.tsv")

	n := len(chordRegions)
	adjacency := make([][]int, n)
	for i := range adjacency {
		adjacency[i] = make([]int, n)
	}
	for edge, weight := range chordStrongEdges {
		adjacency[edge[0]][edge[1]] = weight
		adjacency[edge[1]][edge[0]] = weight
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adjacency[i][j] == 0 {
				weight := 10 + int(rng.Int63n(90))
				adjacency[i][j] = weight
				adjacency[j][i] = weight
			}
		}
	}

	t := table.New("chord.tsv", append([]string{"region"}, chordRegions...)...)
	for i, region := range chordRegions {
		row := []string{region}
		for j := 0; j < n; j++ {
			row = append(row, table.Int(adjacency[i][j]))
		}
		t.AppendRow(row...)
	}
	return t, nil
}
