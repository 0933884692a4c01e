package recipe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datasmith/table"
)

func runIntoTempDir(t *testing.T, workers int) (string, *Summary) {
	t.Helper()
	dir := t.TempDir()
	runner := &Runner{
		OutDir:  dir,
		Cfg:     testConfig(),
		Workers: workers,
		Log:     zerolog.New(zerolog.NewTestWriter(t)),
	}
	summary, err := runner.Run(context.Background())
	require.NoError(t, err)
	return dir, summary
}

func TestRunner_SummaryMatchesWrittenFiles(t *testing.T) {
	dir, summary := runIntoTempDir(t, 1)

	assert.Len(t, summary.Order, 22)
	total := 0
	for _, name := range summary.Order {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, "file %v", name)

		lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
		require.NotEmpty(t, lines, "file %v", name)
		assert.Equal(t, summary.Counts[name], len(lines)-1, "file %v : data lines vs reported rows", name)

		headerCols := len(strings.Split(lines[0], "\t"))
		for i, line := range lines[1:] {
			assert.Len(t, strings.Split(line, "\t"), headerCols, "file %v line %v", name, i)
		}
		total += summary.Counts[name]
	}
	assert.Equal(t, total, summary.Total)
}

func TestRunner_ParallelRunIsByteIdentical(t *testing.T) {
	seqDir, seqSummary := runIntoTempDir(t, 1)
	parDir, parSummary := runIntoTempDir(t, 4)

	assert.Equal(t, seqSummary.Counts, parSummary.Counts)
	for _, name := range seqSummary.Order {
		seqRaw, err := os.ReadFile(filepath.Join(seqDir, name))
		require.NoError(t, err)
		parRaw, err := os.ReadFile(filepath.Join(parDir, name))
		require.NoError(t, err)
		assert.Equal(t, seqRaw, parRaw, "file %v differs between worker counts", name)
	}
}

func TestRunner_SubsetAndMissingDir(t *testing.T) {
	subset := make([]Recipe, 0, 2)
	for _, name := range []string{"bar.tsv", "pie.tsv"} {
		r, err := Get(name)
		require.NoError(t, err)
		subset = append(subset, r)
	}

	dir := t.TempDir()
	runner := &Runner{
		OutDir:  dir,
		Cfg:     testConfig(),
		Recipes: subset,
		Log:     zerolog.New(zerolog.NewTestWriter(t)),
	}
	summary, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bar.tsv", "pie.tsv"}, summary.Order)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	//write failure propagates
	runner.OutDir = filepath.Join(dir, "missing", "deeper")
	_, err = runner.Run(context.Background())
	assert.Error(t, err)
}

func TestRunner_FailingRecipeAbortsRun(t *testing.T) {
	runner := &Runner{
		OutDir: t.TempDir(),
		Cfg:    testConfig(),
		Recipes: []Recipe{{
			Filename: "boom.tsv",
			Generate: func(Config) (*table.Table, error) { return nil, fmt.Errorf("boom") },
		}},
		Log: zerolog.New(zerolog.NewTestWriter(t)),
	}
	_, err := runner.Run(context.Background())
	assert.ErrorContains(t, err, "boom")
}
