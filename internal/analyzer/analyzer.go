package analyzer

import (
	"fmt"
	"log"
	"time"

	"stock_picks/internal/config"
	"stock_picks/internal/market"
	"stock_picks/internal/models"
	"stock_picks/internal/notifications"
	"stock_picks/internal/report"
	"stock_picks/internal/storage"
)

// RecommendationClient is the slice of the AI client the pipeline needs.
// Declared here so tests can substitute a mock without touching HTTP.
type RecommendationClient interface {
	Analyze(date, prompt string, universe []string) (*models.DailyReport, error)
}

// Run executes one full analysis pass: fetch quotes, build the prompt, ask
// the model, persist the validated report, then notify. The steps are
// strictly sequential; a returned error means the run Failed and nothing
// was persisted for today. Notification failures are logged but never turn
// a Completed run into a Failed one.
func Run(cfg *config.Config, provider market.QuoteProvider, client RecommendationClient, sinks []notifications.Sink) (*models.DailyReport, error) {
	date := time.Now().Format("2006-01-02")
	log.Printf("Starting stock analysis for %s", date)

	// 1. Fetch market data
	log.Printf("Fetching data for %d stocks...", len(cfg.Symbols))
	fetcher := market.NewFetcher(provider, cfg.FetchRetries, cfg.FetchWorkers)
	quotes, err := fetcher.FetchUniverse(cfg.Symbols)
	if err != nil {
		return nil, err
	}
	if len(quotes) < cfg.MinSymbols {
		return nil, fmt.Errorf("%w: only %d of %d symbols resolved (minimum %d)",
			market.ErrDataUnavailable, len(quotes), len(cfg.Symbols), cfg.MinSymbols)
	}
	log.Printf("Successfully fetched data for %d stocks", len(quotes))

	// The symbol universe for this run: only what we actually fetched.
	universe := make([]string, len(quotes))
	for i, q := range quotes {
		universe[i] = q.Symbol
	}

	// 2. Build the prompt and ask the model
	log.Println("Analyzing stocks with AI...")
	prompt := BuildPrompt(date, quotes)
	dailyReport, err := client.Analyze(date, prompt, universe)
	if err != nil {
		return nil, err
	}

	// 3. Persist the artifact. This write is mandatory: if it fails the run
	// Failed, even though we already have a valid report in memory.
	path, err := storage.SaveReport(cfg.OutputDir, dailyReport)
	if err != nil {
		return nil, fmt.Errorf("saving report: %w", err)
	}
	log.Printf("✓ Saved analysis to %s", path)

	// 4. Console rendition of the result
	fmt.Println(report.Text(dailyReport))

	// 5. Distribute through the optional sinks. Each channel is independent;
	// a failure here no longer affects the exit status.
	for _, res := range notifications.Dispatch(sinks, dailyReport) {
		switch {
		case res.Err != nil:
			log.Printf("Warning: %s notification failed: %v", res.Sink, res.Err)
		case res.Skipped:
			log.Printf("%s notifications not configured, skipping", res.Sink)
		default:
			log.Printf("✓ Sent report via %s", res.Sink)
		}
	}

	log.Println("✅ Analysis complete")
	return dailyReport, nil
}
