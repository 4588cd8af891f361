package alpaca

import (
	"fmt"
	"time"

	"stock_picks/internal/market"
	"stock_picks/internal/models"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// Provider implements market.QuoteProvider for the Alpaca Market Data API.
// It is selected with MARKET_PROVIDER=alpaca and needs APCA_API_KEY_ID /
// APCA_API_SECRET_KEY in the environment.
type Provider struct {
	mdClient    *marketdata.Client
	tradeClient *alpaca.Client
}

// Ensure Provider implements the interface
var _ market.QuoteProvider = (*Provider)(nil)

// NewProvider returns a new Alpaca provider.
// The library's NewClient functions pick up the API keys from the
// environment variables validated in config.
func NewProvider() *Provider {
	return &Provider{
		mdClient:    marketdata.NewClient(marketdata.ClientOpts{}),
		tradeClient: alpaca.NewClient(alpaca.ClientOpts{}),
	}
}

// GetQuote builds a SymbolQuote from the latest trade plus three months of
// daily bars. Alpaca has no fundamentals endpoint, so market cap and P/E
// stay at their zero ("N/A") values.
func (p *Provider) GetQuote(symbol string) (*models.SymbolQuote, error) {
	trade, err := p.mdClient.GetLatestTrade(symbol, marketdata.GetLatestTradeRequest{})
	if err != nil {
		return nil, fmt.Errorf("latest trade %s: %w", symbol, err)
	}
	if trade == nil {
		return nil, fmt.Errorf("latest trade %s: empty response", symbol)
	}

	name := symbol
	if asset, err := p.tradeClient.GetAsset(symbol); err == nil && asset != nil && asset.Name != "" {
		name = asset.Name
	}

	sector, industry := market.Classify(symbol)

	q := &models.SymbolQuote{
		Symbol:   symbol,
		Name:     name,
		Price:    decimal.NewFromFloat(trade.Price).Round(2),
		Sector:   sector,
		Industry: industry,
	}

	start := time.Now().AddDate(0, -3, 0)
	bars, err := p.mdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     start,
	})
	if err != nil {
		return nil, fmt.Errorf("bars %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("bars %s: no bars returned", symbol)
	}

	closes := make([]decimal.Decimal, 0, len(bars))
	volumes := make([]int64, 0, len(bars))
	for _, b := range bars {
		closes = append(closes, decimal.NewFromFloat(b.Close))
		volumes = append(volumes, int64(b.Volume))
	}
	market.FillMomentum(q, closes, volumes)

	return q, nil
}
