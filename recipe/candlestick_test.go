package recipe

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandlestick_DatesAreIncreasingWeekdays(t *testing.T) {
	tbl, err := Candlestick(testConfig())
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 200)

	var prev time.Time
	for i, row := range tbl.Rows {
		d, err := time.Parse("2006-01-02", row[0])
		require.NoError(t, err, "row %v", i)
		assert.NotEqual(t, time.Saturday, d.Weekday(), "row %v", i)
		assert.NotEqual(t, time.Sunday, d.Weekday(), "row %v", i)
		if i > 0 {
			assert.True(t, d.After(prev), "row %v : %v not after %v", i, d, prev)
		}
		prev = d
	}
}

func TestCandlestick_PriceInvariants(t *testing.T) {
	tbl, err := Candlestick(testConfig())
	require.NoError(t, err)

	for i, row := range tbl.Rows {
		open, _ := strconv.ParseFloat(row[1], 64)
		high, _ := strconv.ParseFloat(row[2], 64)
		low, _ := strconv.ParseFloat(row[3], 64)
		closePrice, _ := strconv.ParseFloat(row[4], 64)
		volume, err := strconv.Atoi(row[5])
		require.NoError(t, err, "row %v", i)

		maxOC := open
		if closePrice > maxOC {
			maxOC = closePrice
		}
		minOC := open
		if closePrice < minOC {
			minOC = closePrice
		}
		assert.GreaterOrEqual(t, high, maxOC, "row %v", i)
		assert.LessOrEqual(t, low, minOC, "row %v", i)
		assert.Greater(t, volume, 0, "row %v", i)
	}
}
