package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{Seed: 42, Scale: 1}
}

func TestAll_RegistryIsComplete(t *testing.T) {
	recipes := All()
	assert.Len(t, recipes, 22)

	seen := make(map[string]bool)
	for _, r := range recipes {
		assert.False(t, seen[r.Filename], "duplicate filename %v", r.Filename)
		seen[r.Filename] = true
		assert.NotNil(t, r.Generate)
	}
}

func TestGet(t *testing.T) {
	r, err := Get("volcano.tsv")
	require.NoError(t, err)
	assert.Equal(t, "volcano.tsv", r.Filename)

	_, err = Get("nope.tsv")
	assert.Error(t, err)
}

//TestGenerate_ShapeAndDeterminism checks for every recipe that the header
//arity matches all rows, that the table name matches the registered filename
//and that regeneration with the same seed reproduces the rows exactly
func TestGenerate_ShapeAndDeterminism(t *testing.T) {
	for _, r := range All() {
		t.Run(r.Filename, func(t *testing.T) {
			first, err := r.Generate(testConfig())
			require.NoError(t, err)
			assert.Equal(t, r.Filename, first.Name)
			assert.NotEmpty(t, first.Header)
			assert.NotEmpty(t, first.Rows)
			for i := range first.Rows {
				require.Len(t, first.Rows[i], len(first.Header), "row %v", i)
			}

			second, err := r.Generate(testConfig())
			require.NoError(t, err)
			assert.Equal(t, first.Rows, second.Rows)
		})
	}
}

//TestGenerate_SeedChangesStochasticOutput makes sure the sampled datasets
//actually consume the derived random stream
func TestGenerate_SeedChangesStochasticOutput(t *testing.T) {
	stochastic := []string{
		"scatter.tsv", "volcano.tsv", "samples.tsv", "measurements.tsv",
		"gene_stats.tsv", "histogram.tsv", "heatmap.tsv", "stacked_area.tsv",
		"candlestick.tsv", "contour.tsv", "hist2d.tsv", "dot.tsv",
		"upset.tsv", "chord.tsv", "synteny_blocks.tsv", "reads.tsv",
	}
	for _, name := range stochastic {
		r, err := Get(name)
		require.NoError(t, err)

		a, err := r.Generate(Config{Seed: 42, Scale: 1})
		require.NoError(t, err)
		b, err := r.Generate(Config{Seed: 43, Scale: 1})
		require.NoError(t, err)
		assert.NotEqual(t, a.Rows, b.Rows, "recipe %v ignores the seed", name)
	}
}

func TestGenerate_ScaleMultipliesSampledRows(t *testing.T) {
	r, err := Get("histogram.tsv")
	require.NoError(t, err)

	small, err := r.Generate(Config{Seed: 42, Scale: 1})
	require.NoError(t, err)
	big, err := r.Generate(Config{Seed: 42, Scale: 3})
	require.NoError(t, err)
	assert.Equal(t, 3*len(small.Rows), len(big.Rows))

	//fixed literal tables are not scaled
	fixed, err := Get("bar.tsv")
	require.NoError(t, err)
	barSmall, err := fixed.Generate(Config{Seed: 42, Scale: 1})
	require.NoError(t, err)
	barBig, err := fixed.Generate(Config{Seed: 42, Scale: 3})
	require.NoError(t, err)
	assert.Equal(t, len(barSmall.Rows), len(barBig.Rows))
}
