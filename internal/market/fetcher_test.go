package market

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"stock_picks/internal/models"
)

// MockProvider implements QuoteProvider for testing.
type MockProvider struct {
	prices map[string]float64 // symbols missing here fail
	calls  int32              // total GetQuote invocations
}

func (m *MockProvider) GetQuote(symbol string) (*models.SymbolQuote, error) {
	atomic.AddInt32(&m.calls, 1)
	p, ok := m.prices[symbol]
	if !ok {
		return nil, fmt.Errorf("no data for %s", symbol)
	}
	return &models.SymbolQuote{
		Symbol: symbol,
		Name:   symbol + " Inc.",
		Price:  decimal.NewFromFloat(p),
	}, nil
}

func newTestFetcher(p QuoteProvider, retries, workers int) *Fetcher {
	f := NewFetcher(p, retries, workers)
	f.backoff = time.Millisecond // keep retry sleeps out of the test runtime
	return f
}

func TestFetchUniverse_AllResolve(t *testing.T) {
	mock := &MockProvider{prices: map[string]float64{"AAPL": 227.5, "MSFT": 415.1, "NVDA": 131.2}}
	f := newTestFetcher(mock, 2, 2)

	quotes, err := f.FetchUniverse([]string{"AAPL", "MSFT", "NVDA"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(quotes))
	}
	// Input order must survive the concurrent fetch.
	for i, want := range []string{"AAPL", "MSFT", "NVDA"} {
		if quotes[i].Symbol != want {
			t.Errorf("position %d: expected %s, got %s", i, want, quotes[i].Symbol)
		}
	}
}

func TestFetchUniverse_PartialFailureIsNotFatal(t *testing.T) {
	mock := &MockProvider{prices: map[string]float64{"AAPL": 227.5, "NVDA": 131.2}}
	f := newTestFetcher(mock, 1, 3)

	quotes, err := f.FetchUniverse([]string{"AAPL", "MSFT", "NVDA"})
	if err != nil {
		t.Fatalf("partial failure must not be fatal, got: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if quotes[0].Symbol != "AAPL" || quotes[1].Symbol != "NVDA" {
		t.Errorf("unexpected quotes: %+v", quotes)
	}
}

func TestFetchUniverse_ZeroSymbolsResolved(t *testing.T) {
	mock := &MockProvider{prices: map[string]float64{}}
	f := newTestFetcher(mock, 1, 2)

	_, err := f.FetchUniverse([]string{"AAPL", "MSFT"})
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got: %v", err)
	}
}

func TestFetchUniverse_EmptyInput(t *testing.T) {
	f := newTestFetcher(&MockProvider{}, 0, 1)
	_, err := f.FetchUniverse(nil)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got: %v", err)
	}
}

func TestFetchUniverse_RetryBudget(t *testing.T) {
	mock := &MockProvider{prices: map[string]float64{}}
	f := newTestFetcher(mock, 2, 1)

	_, _ = f.FetchUniverse([]string{"AAPL"})
	// 1 initial attempt + 2 retries
	if got := atomic.LoadInt32(&mock.calls); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestFetchUniverse_SequentialFallback(t *testing.T) {
	// workers < 1 degrades to a sequential fetch rather than failing.
	mock := &MockProvider{prices: map[string]float64{"AAPL": 227.5}}
	f := newTestFetcher(mock, 0, 0)

	quotes, err := f.FetchUniverse([]string{"AAPL"})
	if err != nil || len(quotes) != 1 {
		t.Fatalf("sequential fallback failed: %v", err)
	}
}
