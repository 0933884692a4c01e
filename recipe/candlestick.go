package recipe

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"datasmith/table"
)

//nextWeekday advances d by one day, skipping Saturday and Sunday
func nextWeekday(d time.Time) time.Time {
	d = d.AddDate(0, 0, 1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

//roundCents rounds to two decimals
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

//Candlestick fabricates a daily OHLCV price series. Each day's close becomes
//the next day's reference price, dates advance over weekdays only and volume
//is log normal.
func Candlestick(cfg Config) (*table.Table, error) {
	rng := cfg.rng("candlestick.tsv")
	t := table.New("candlestick.tsv", "date", "open", "high", "low", "close", "volume")

	returnDist := distuv.Normal{Mu: 0.0003, Sigma: 0.018, Src: rng}
	openJitter := distuv.Normal{Mu: 0, Sigma: 0.003, Src: rng}
	wickDist := distuv.Normal{Mu: 0, Sigma: 0.008, Src: rng}
	volumeDist := distuv.LogNormal{Mu: 15.5, Sigma: 0.4, Src: rng}

	price := 142.50
	current := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	days := cfg.n(200)
	for i := 0; i < days; i++ {
		closePrice := roundCents(price * (1 + returnDist.Rand()))
		openPrice := roundCents(price * (1 + openJitter.Rand()))
		high := roundCents(math.Max(openPrice, closePrice) * (1 + math.Abs(wickDist.Rand())))
		low := roundCents(math.Min(openPrice, closePrice) * (1 - math.Abs(wickDist.Rand())))
		volume := int(math.Round(volumeDist.Rand()))

		t.AppendRow(
			current.Format("2006-01-02"),
			table.Float(openPrice, 2),
			table.Float(high, 2),
			table.Float(low, 2),
			table.Float(closePrice, 2),
			table.Int(volume),
		)
		price = closePrice
		if i < days-1 {
			current = nextWeekday(current)
		}
	}
	return t, nil
}
