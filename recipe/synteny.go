package recipe

import (
	"golang.org/x/exp/rand"

	"datasmith/table"
)

//syntenySequences declares the demo chromosome pairs and their lengths in bp
var syntenySequences = []struct {
	name   string
	length int
}{
	{"Chr1A", 2_800_000},
	{"Chr1B", 2_650_000},
	{"Chr2A", 1_900_000},
	{"Chr2B", 1_750_000},
}

//syntenyBlock is one aligned block between two sequences
type syntenyBlock struct {
	seq1           string
	start1, end1   int
	seq2           string
	start2, end2   int
	strand         string
}

//generateSyntenyBlocks places up to maxBlocks non overlapping blocks between
//seq1 and seq2 by advancing a cursor on both sequences with randomized block
//lengths and gaps. Block boundaries stay inside [2%,97%] of either sequence;
//placement stops early when a block would cross that margin. A block is
//inverted with probability inversionRate.
func generateSyntenyBlocks(rng *rand.Rand, seq1 string, len1 int, seq2 string, len2 int, maxBlocks int, inversionRate float64) []syntenyBlock {
	const (
		minBlock = 50_000
		maxBlock = 400_000
	)
	blocks := make([]syntenyBlock, 0, maxBlocks)
	pos1 := int(float64(len1) * 0.02)
	pos2 := int(float64(len2) * 0.02)
	for i := 0; i < maxBlocks; i++ {
		blockLen := minBlock + int(rng.Int63n(maxBlock-minBlock))
		if float64(pos1+blockLen) > float64(len1)*0.97 {
			break
		}
		end1 := pos1 + blockLen

		//small jitter on the partner position
		offset := int(rng.Int63n(40_000)) - 20_000
		start2 := pos2 + offset
		if start2 < 0 {
			start2 = 0
		}
		end2 := start2 + int(float64(blockLen)*(0.85+0.30*rng.Float64()))
		if float64(end2) > float64(len2)*0.97 {
			break
		}

		strand := "+"
		if rng.Float64() < inversionRate {
			strand = "-"
		}
		blocks = append(blocks, syntenyBlock{seq1, pos1, end1, seq2, start2, end2, strand})

		pos1 = end1 + 10_000 + int(rng.Int63n(40_000))
		pos2 = end2 + 10_000 + int(rng.Int63n(40_000))
	}
	return blocks
}

//SyntenyBlocks fabricates non overlapping synteny blocks between the two
//homologous chromosome pairs plus a few fixed cross chromosome blocks
func SyntenyBlocks(cfg Config) (*table.Table, error) {
	rng := cfg.rng("synteny_blocks.tsv")

	blocks := generateSyntenyBlocks(rng, "Chr1A", 2_800_000, "Chr1B", 2_650_000, 12, 0.2)
	blocks = append(blocks, generateSyntenyBlocks(rng, "Chr2A", 1_900_000, "Chr2B", 1_750_000, 10, 0.2)...)
	blocks = append(blocks,
		syntenyBlock{"Chr1A", 2_400_000, 2_550_000, "Chr2B", 1_550_000, 1_700_000, "+"},
		syntenyBlock{"Chr2A", 100_000, 250_000, "Chr1B", 2_400_000, 2_550_000, "-"},
		syntenyBlock{"Chr1A", 100_000, 220_000, "Chr2A", 1_600_000, 1_720_000, "+"},
	)

	t := table.New("synteny_blocks.tsv", "seq1", "start1", "end1", "seq2", "start2", "end2", "strand")
	for _, b := range blocks {
		t.AppendRow(b.seq1, table.Int(b.start1), table.Int(b.end1), b.seq2, table.Int(b.start2), table.Int(b.end2), b.strand)
	}
	return t, nil
}
