package market

import (
	"errors"

	"stock_picks/internal/models"
)

// ErrDataUnavailable is returned by the Fetcher when not a single symbol in
// the configured universe could be resolved. The run cannot proceed without
// data, so callers treat this as fatal.
var ErrDataUnavailable = errors.New("no market data available for any symbol")

// QuoteProvider is an Interface.
// Interfaces define *behavior*. Any struct that implements GetQuote
// satisfies the interface. This lets us swap the Yahoo source for Alpaca,
// or a Mock for testing, without changing the code that *uses* the provider.
type QuoteProvider interface {
	GetQuote(symbol string) (*models.SymbolQuote, error)
}
