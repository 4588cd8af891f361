package market

import (
	"github.com/shopspring/decimal"

	"stock_picks/internal/models"
)

// FillMomentum computes the percent-change and volume metrics on a quote
// from a daily close/volume series (oldest bar first). Both providers feed
// their bars through here so the prompt sees identical metric semantics
// regardless of the data source.
//
// Lookback offsets are in trading days: 1 (one day), 4 (one week),
// 19 (one month), and the full window (three months).
func FillMomentum(q *models.SymbolQuote, closes []decimal.Decimal, volumes []int64) {
	if len(closes) == 0 {
		return
	}
	n := len(closes)
	current := closes[n-1]

	pctFrom := func(idx int) float64 {
		base := closes[idx]
		if base.IsZero() {
			return 0
		}
		change, _ := current.Sub(base).Div(base).Mul(decimal.NewFromInt(100)).Round(2).Float64()
		return change
	}

	if n > 1 {
		q.Change1D = pctFrom(n - 2)
	}
	if n > 5 {
		q.Change1W = pctFrom(n - 5)
	}
	if n > 20 {
		q.Change1M = pctFrom(n - 20)
	}
	q.Change3M = pctFrom(0)

	q.VolumeRatio = 1
	if len(volumes) > 0 {
		var total int64
		for _, v := range volumes {
			total += v
		}
		if avg := float64(total) / float64(len(volumes)); avg > 0 {
			ratio := float64(volumes[len(volumes)-1]) / avg
			q.VolumeRatio, _ = decimal.NewFromFloat(ratio).Round(2).Float64()
		}
	}

	// If the realtime quote endpoint gave no price (can happen pre-market),
	// fall back to the latest close.
	if q.Price.IsZero() {
		q.Price = current.Round(2)
	}
}
