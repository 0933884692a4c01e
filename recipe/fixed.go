package recipe

//The recipes in this file emit hand chosen literal tables; they consume no
//randomness and ignore Config entirely.

import (
	"datasmith/table"
)

//Bar fabricates a GO term enrichment bar chart input with decreasing counts
func Bar(_ Config) (*table.Table, error) {
	terms := []struct {
		category string
		count    int
	}{
		{"cell cycle regulation", 320},
		{"DNA repair", 285},
		{"immune response", 257},
		{"apoptosis", 231},
		{"protein folding", 208},
		{"mRNA splicing", 187},
		{"oxidative phosphorylation", 168},
		{"chromatin remodeling", 152},
		{"signal transduction", 137},
		{"vesicle-mediated transport", 123},
		{"cytoskeleton organization", 111},
		{"transcription regulation", 100},
		{"protein ubiquitination", 90},
		{"lipid metabolism", 81},
		{"RNA processing", 68},
		{"cell adhesion", 55},
		{"autophagy", 42},
		{"mitochondrial organization", 33},
		{"ion transport", 22},
		{"protein phosphorylation", 15},
	}
	t := table.New("bar.tsv", "category", "count")
	for _, term := range terms {
		t.AppendRow(term.category, table.Int(term.count))
	}
	return t, nil
}

//Pie fabricates genome feature percentages for the pie chart demo
func Pie(_ Config) (*table.Table, error) {
	features := []struct {
		feature    string
		percentage string
	}{
		{"Intron", "37.0"},
		{"Intergenic", "28.0"},
		{"Repeat", "15.0"},
		{"Exon", "9.0"},
		{"3'UTR", "4.0"},
		{"Promoter", "3.0"},
		{"5'UTR", "2.0"},
		{"Other", "2.0"},
	}
	t := table.New("pie.tsv", "feature", "percentage")
	for _, f := range features {
		t.AppendRow(f.feature, f.percentage)
	}
	return t, nil
}

//Waterfall fabricates signed pathway enrichment scores for the waterfall demo
func Waterfall(_ Config) (*table.Table, error) {
	processes := []struct {
		process string
		log2fc  float64
	}{
		{"Glycolysis", 3.2},
		{"DNA repair", -2.1},
		{"Cell proliferation", 2.8},
		{"Apoptosis", -1.8},
		{"mTOR signaling", 2.5},
		{"Autophagy", -2.3},
		{"Angiogenesis", 1.9},
		{"T cell activity", -2.7},
		{"Ribosome biogenesis", 1.6},
		{"Mitochondrial resp.", -1.4},
		{"Protein synthesis", 1.4},
		{"Oxidative stress", -2.0},
		{"Cell cycle", 2.2},
		{"Ion transport", -1.1},
		{"Chromatin remodel.", 1.3},
		{"Interferon signaling", -2.8},
		{"Vesicle transport", 1.0},
		{"Complement cascade", -3.1},
		{"Lipid biosynthesis", 1.8},
		{"Antiviral defense", -2.4},
	}
	t := table.New("waterfall.tsv", "process", "log2fc")
	for _, p := range processes {
		t.AppendRow(p.process, table.Float(p.log2fc, 1))
	}
	return t, nil
}

//Sankey fabricates a read fate flow for the sankey demo: every edge carries
//the share of reads moving from source to target
func Sankey(_ Config) (*table.Table, error) {
	edges := []struct {
		source, target string
		value          int
	}{
		{"Raw_reads", "Trimmed", 82},
		{"Raw_reads", "Discarded", 3},
		{"Trimmed", "Genome_aligned", 68},
		{"Trimmed", "rRNA", 8},
		{"Trimmed", "Unmapped", 6},
		{"Genome_aligned", "Exonic", 42},
		{"Genome_aligned", "Intronic", 18},
		{"Genome_aligned", "Intergenic", 8},
		{"Exonic", "Protein_coding", 31},
		{"Exonic", "lncRNA", 7},
		{"Exonic", "Other_RNA", 4},
		{"Protein_coding", "High_conf", 24},
		{"Protein_coding", "Low_conf", 7},
	}
	t := table.New("sankey.tsv", "source", "target", "value")
	for _, e := range edges {
		t.AppendRow(e.source, e.target, table.Int(e.value))
	}
	return t, nil
}

//phyloEdge is one branch of the fixed demo phylogeny
type phyloEdge struct {
	parent, child string
	length        float64
}

//Phylo fabricates a rough mammalian phylogeny as a parent/child/branch length
//edge list. Internal nodes are named node_x, leaves carry species names.
//Outgroup branches are scaled so the maximal depth stays balanced.
func Phylo(_ Config) (*table.Table, error) {
	edges := []phyloEdge{
		{"node_1", "node_2", 0.05},  //root -> placentals
		{"node_1", "node_17", 0.12}, //root -> outgroups
		{"node_2", "node_3", 0.04},
		{"node_2", "node_11", 0.06},
		{"node_3", "node_4", 0.03},
		{"node_3", "node_10", 0.05},
		{"node_4", "node_5", 0.02},
		{"node_4", "node_8", 0.04},
		{"node_5", "node_6", 0.01},
		{"node_5", "node_7", 0.015},
		{"node_6", "Homo_sapiens", 0.008},
		{"node_6", "Pan_troglodytes", 0.010},
		{"node_7", "Gorilla_gorilla", 0.015},
		{"node_7", "Pongo_pygmaeus", 0.030},
		{"node_8", "node_9", 0.03},
		{"node_8", "Callithrix_jacchus", 0.06},
		{"node_9", "Macaca_mulatta", 0.02},
		{"node_9", "Papio_anubis", 0.025},
		{"node_10", "node_12", 0.05},
		{"node_10", "node_13", 0.06},
		{"node_12", "Mus_musculus", 0.04},
		{"node_12", "Rattus_norvegicus", 0.045},
		{"node_13", "Cavia_porcellus", 0.08},
		{"node_13", "Oryctolagus_cuniculus", 0.07},
		{"node_11", "node_14", 0.05},
		{"node_11", "node_15", 0.07},
		{"node_14", "Canis_lupus", 0.05},
		{"node_14", "Felis_catus", 0.06},
		{"node_15", "node_16", 0.04},
		{"node_15", "Equus_caballus", 0.08},
		{"node_16", "Sus_scrofa", 0.06},
		{"node_16", "Bos_taurus", 0.05},
		{"node_17", "node_18", 0.06},
		{"node_17", "node_19", 0.15},
		{"node_18", "Gallus_gallus", 0.05},
		{"node_18", "Xenopus_tropicalis", 0.09},
		{"node_19", "Danio_rerio", 0.12},
		{"node_19", "Drosophila_melanogaster", 0.22},
	}
	t := table.New("phylo.tsv", "parent", "child", "length")
	for _, e := range edges {
		t.AppendRow(e.parent, e.child, table.Float(e.length, 3))
	}
	return t, nil
}

//SyntenySeqs fabricates the sequence length declarations referenced by the
//synteny block table
func SyntenySeqs(_ Config) (*table.Table, error) {
	t := table.New("synteny_seqs.tsv", "name", "length")
	for _, s := range syntenySequences {
		t.AppendRow(s.name, table.Int(s.length))
	}
	return t, nil
}
