package yahoo

import (
	"fmt"
	"time"

	"stock_picks/internal/market"
	"stock_picks/internal/models"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"
)

// Provider implements market.QuoteProvider on top of Yahoo Finance.
// It is the default data source: the quote endpoint needs no credentials.
type Provider struct {
	history time.Duration // lookback window for momentum metrics
}

// Ensure Provider implements the interface
var _ market.QuoteProvider = (*Provider)(nil)

// NewProvider returns a Yahoo-backed provider with a 3-month history window.
func NewProvider() *Provider {
	return &Provider{history: 90 * 24 * time.Hour}
}

// GetQuote fetches the current quote plus three months of daily bars and
// derives the momentum and volume metrics from them.
func (p *Provider) GetQuote(symbol string) (*models.SymbolQuote, error) {
	eq, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("quote %s: %w", symbol, err)
	}
	if eq == nil {
		return nil, fmt.Errorf("quote %s: empty response", symbol)
	}

	name := eq.LongName
	if name == "" {
		name = eq.ShortName
	}
	if name == "" {
		name = symbol
	}

	peRatio := eq.ForwardPE
	if peRatio == 0 {
		peRatio = eq.TrailingPE
	}

	sector, industry := market.Classify(symbol)

	q := &models.SymbolQuote{
		Symbol:    symbol,
		Name:      name,
		Price:     decimal.NewFromFloat(eq.RegularMarketPrice).Round(2),
		MarketCap: eq.MarketCap,
		PERatio:   peRatio,
		Sector:    sector,
		Industry:  industry,
	}

	closes, volumes, err := p.dailyBars(symbol)
	if err != nil {
		return nil, err
	}
	market.FillMomentum(q, closes, volumes)

	return q, nil
}

// dailyBars returns the daily close series and volume series for the
// lookback window, oldest first.
func (p *Provider) dailyBars(symbol string) ([]decimal.Decimal, []int64, error) {
	end := time.Now()
	start := end.Add(-p.history)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	var closes []decimal.Decimal
	var volumes []int64

	iter := chart.Get(params)
	for iter.Next() {
		bar := iter.Bar()
		closes = append(closes, bar.Close)
		volumes = append(volumes, int64(bar.Volume))
	}
	if err := iter.Err(); err != nil {
		return nil, nil, fmt.Errorf("history %s: %w", symbol, err)
	}
	if len(closes) == 0 {
		return nil, nil, fmt.Errorf("history %s: no bars returned", symbol)
	}
	return closes, volumes, nil
}
