package market

import (
	"fmt"
	"log"
	"sync"
	"time"

	"stock_picks/internal/models"
)

// Fetcher pulls quotes for a whole symbol universe through a QuoteProvider.
// Symbols that keep failing after the retry budget are skipped, not fatal;
// the analysis simply runs on the reduced set. Only a fully empty result is
// an error.
type Fetcher struct {
	provider QuoteProvider
	retries  int           // extra attempts per symbol after the first
	workers  int           // concurrent fetches
	backoff  time.Duration // base wait between attempts, grows linearly
}

// NewFetcher builds a Fetcher. Zero or negative workers fall back to 1
// (a purely sequential fetch is equally valid, just slower).
func NewFetcher(provider QuoteProvider, retries, workers int) *Fetcher {
	if workers < 1 {
		workers = 1
	}
	if retries < 0 {
		retries = 0
	}
	return &Fetcher{
		provider: provider,
		retries:  retries,
		workers:  workers,
		backoff:  time.Second,
	}
}

// FetchUniverse fetches a quote for every symbol and returns the resolved
// quotes in the input order. Each worker writes only its own index of the
// results slice, so no locking is needed; the merge happens after all
// workers are done.
func (f *Fetcher) FetchUniverse(symbols []string) ([]models.SymbolQuote, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: empty symbol list", ErrDataUnavailable)
	}

	results := make([]*models.SymbolQuote, len(symbols))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < f.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = f.fetchOne(symbols[i])
			}
		}()
	}

	for i := range symbols {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Merge, preserving the configured order.
	quotes := make([]models.SymbolQuote, 0, len(symbols))
	for i, q := range results {
		if q == nil {
			log.Printf("Warning: skipping %s, no data after %d attempts", symbols[i], f.retries+1)
			continue
		}
		quotes = append(quotes, *q)
	}

	if len(quotes) == 0 {
		return nil, fmt.Errorf("%w: all %d symbols failed", ErrDataUnavailable, len(symbols))
	}
	if skipped := len(symbols) - len(quotes); skipped > 0 {
		log.Printf("Partial data: %d of %d symbols skipped, continuing with %d", skipped, len(symbols), len(quotes))
	}

	return quotes, nil
}

// fetchOne tries a single symbol within the retry budget.
// Returns nil when every attempt failed.
func (f *Fetcher) fetchOne(symbol string) *models.SymbolQuote {
	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * f.backoff)
		}
		q, err := f.provider.GetQuote(symbol)
		if err == nil {
			log.Printf("  ✓ %s: $%s", symbol, q.Price.String())
			return q
		}
		lastErr = err
	}
	log.Printf("  ✗ %s: %v", symbol, lastErr)
	return nil
}
