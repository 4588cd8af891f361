package models

import (
	"github.com/shopspring/decimal"
)

// SymbolQuote holds the market data we collect for one ticker in a run.
//
// The struct tags (e.g. `json:"symbol"`) tell the JSON encoder which keys
// map to these fields when we dump quotes for debugging.
// A quote is built fresh every run and never mutated afterwards.
type SymbolQuote struct {
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name"`            // Company long name (falls back to the symbol)
	Price          decimal.Decimal `json:"current_price"`   // Latest regular-market price
	MarketCap      int64           `json:"market_cap"`      // 0 when the provider doesn't report it
	PERatio        float64         `json:"pe_ratio"`        // Forward P/E preferred, trailing as fallback; 0 = N/A
	Change1D       float64         `json:"price_change_1d"` // Percent changes over the lookback windows
	Change1W       float64         `json:"price_change_1w"`
	Change1M       float64         `json:"price_change_1m"`
	Change3M       float64         `json:"price_change_3m"`
	VolumeRatio    float64         `json:"volume_ratio"` // Latest daily volume vs 3-month average
	Sector         string          `json:"sector"`
	Industry       string          `json:"industry"`
	AnalystTarget  decimal.Decimal `json:"analyst_target"` // Mean analyst target price; zero = N/A
	Recommendation string          `json:"recommendation"` // Analyst consensus key, e.g. "buy"
}

// PEString renders the P/E ratio for prompts and reports ("N/A" when absent).
func (q SymbolQuote) PEString() string {
	if q.PERatio == 0 {
		return "N/A"
	}
	return decimal.NewFromFloat(q.PERatio).Round(2).String()
}

// TargetString renders the analyst target price ("N/A" when absent).
func (q SymbolQuote) TargetString() string {
	if q.AnalystTarget.IsZero() {
		return "N/A"
	}
	return "$" + q.AnalystTarget.Round(2).String()
}
