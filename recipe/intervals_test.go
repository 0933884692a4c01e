package recipe

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntenyBlocks_IntervalsStayInsideSequences(t *testing.T) {
	seqs, err := SyntenySeqs(testConfig())
	require.NoError(t, err)
	lengths := make(map[string]int)
	for _, row := range seqs.Rows {
		l, err := strconv.Atoi(row[1])
		require.NoError(t, err)
		lengths[row[0]] = l
	}

	blocks, err := SyntenyBlocks(testConfig())
	require.NoError(t, err)
	require.NotEmpty(t, blocks.Rows)

	for i, row := range blocks.Rows {
		seq1, seq2 := row[0], row[3]
		start1, _ := strconv.Atoi(row[1])
		end1, _ := strconv.Atoi(row[2])
		start2, _ := strconv.Atoi(row[4])
		end2, _ := strconv.Atoi(row[5])

		require.Contains(t, lengths, seq1, "row %v", i)
		require.Contains(t, lengths, seq2, "row %v", i)
		assert.Less(t, start1, end1, "row %v", i)
		assert.Less(t, start2, end2, "row %v", i)
		assert.GreaterOrEqual(t, start1, 0, "row %v", i)
		assert.GreaterOrEqual(t, start2, 0, "row %v", i)
		assert.LessOrEqual(t, end1, lengths[seq1], "row %v", i)
		assert.LessOrEqual(t, end2, lengths[seq2], "row %v", i)
		assert.Contains(t, []string{"+", "-"}, row[6], "row %v", i)
	}
}

func TestSyntenyBlocks_SameSequencePairsDoNotOverlap(t *testing.T) {
	blocks, err := SyntenyBlocks(testConfig())
	require.NoError(t, err)

	//cursor based placement: within one seq1 the generated (non cross) blocks
	//must be strictly ordered with gaps
	lastEnd := make(map[string]int)
	for i, row := range blocks.Rows {
		//the three fixed cross chromosome blocks are appended last and exempt
		if i >= len(blocks.Rows)-3 {
			break
		}
		seq1 := row[0]
		start1, _ := strconv.Atoi(row[1])
		end1, _ := strconv.Atoi(row[2])
		if prev, ok := lastEnd[seq1]; ok {
			assert.Greater(t, start1, prev, "row %v overlaps previous block on %v", i, seq1)
		}
		lastEnd[seq1] = end1
	}
}

func TestReads_SortedAndInsideRegion(t *testing.T) {
	tbl, err := Reads(testConfig())
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 350)

	prevStart := -1
	for i, row := range tbl.Rows {
		start, err := strconv.Atoi(row[1])
		require.NoError(t, err)
		end, err := strconv.Atoi(row[2])
		require.NoError(t, err)

		assert.Less(t, start, end, "row %v", i)
		assert.GreaterOrEqual(t, start, 0, "row %v", i)
		assert.LessOrEqual(t, end, readRegionLength, "row %v", i)
		assert.GreaterOrEqual(t, start, prevStart, "row %v is not sorted by start", i)
		assert.Contains(t, []string{"+", "-"}, row[3], "row %v", i)
		prevStart = start
	}
}
