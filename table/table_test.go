package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTSV_ContentAndRowCount(t *testing.T) {
	dir := t.TempDir()

	tbl := New("demo.tsv", "name", "value")
	tbl.AppendRow("alpha", "1")
	tbl.AppendRow("beta", "2.5")

	rows, err := WriteTSV(dir, tbl)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	raw, err := os.ReadFile(filepath.Join(dir, "demo.tsv"))
	require.NoError(t, err)
	assert.Equal(t, "name\tvalue\nalpha\t1\nbeta\t2.5\n", string(raw))
}

func TestWriteTSV_EmptyBodyStillWritesHeader(t *testing.T) {
	dir := t.TempDir()

	rows, err := WriteTSV(dir, New("empty.tsv", "a", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, 0, rows)

	raw, err := os.ReadFile(filepath.Join(dir, "empty.tsv"))
	require.NoError(t, err)
	assert.Equal(t, "a\tb\tc\n", string(raw))
}

func TestWriteTSV_MissingDirFails(t *testing.T) {
	_, err := WriteTSV(filepath.Join(t.TempDir(), "does-not-exist"), New("x.tsv", "a"))
	assert.Error(t, err)
}

func TestAppendRow_ArityMismatchPanics(t *testing.T) {
	tbl := New("demo.tsv", "a", "b")
	assert.Panics(t, func() {
		tbl.AppendRow("only-one-cell")
	})
}

func TestReadTSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	tbl := New("roundtrip.tsv", "x", "y", "group")
	tbl.AppendRow("1.5", "2", "Group_A")
	tbl.AppendRow("-0.25", "7", "Group_B")
	_, err := WriteTSV(dir, tbl)
	require.NoError(t, err)

	got, err := ReadTSV(filepath.Join(dir, "roundtrip.tsv"))
	require.NoError(t, err)
	assert.Equal(t, tbl.Header, got.Header)
	assert.Equal(t, tbl.Rows, got.Rows)
}

func TestColumn(t *testing.T) {
	tbl := New("demo.tsv", "a", "b")

	idx, err := tbl.Column("b")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = tbl.Column("nope")
	assert.Error(t, err)
}
