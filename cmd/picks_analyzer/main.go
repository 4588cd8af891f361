package main

import (
	"log"
	"os"

	"stock_picks/internal/ai"
	"stock_picks/internal/analyzer"
	"stock_picks/internal/config"
	"stock_picks/internal/logger"
	"stock_picks/internal/market"
	alpacaprovider "stock_picks/internal/market/alpaca"
	"stock_picks/internal/market/yahoo"
	"stock_picks/internal/notifications"
)

const LogFile = "analyzer.log"
const VersionFile = "version.latest"

// main is the entry point. The analyzer is a one-shot batch job: the
// hosting scheduler triggers it once per day, we run the pipeline exactly
// once and exit. Exit code 0 means a report was produced and persisted;
// anything fatal exits non-zero so the scheduler can see the failure.
func main() {
	// 1. Initialization
	// Load configuration first to get logger settings
	cfg := config.Load()
	cfg.Version = readVersion()

	// Setup logging with configured values
	logger.Setup(LogFile, cfg.MaxLogSizeMB, cfg.MaxLogBackups)

	log.Printf("Stock Picks Analyzer %s", cfg.Version)

	// 2. Setup Dependencies
	// Market Provider (Yahoo by default, Alpaca as alternative)
	var provider market.QuoteProvider
	switch cfg.MarketProvider {
	case "alpaca":
		provider = alpacaprovider.NewProvider()
	case "yahoo":
		provider = yahoo.NewProvider()
	default:
		log.Fatalf("CRITICAL: Unknown MARKET_PROVIDER %q (want yahoo or alpaca)", cfg.MarketProvider)
	}

	// AI Recommendation Client
	client := ai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.AIRetries, cfg.AITimeoutSec)

	// Notification Sinks (each optional, resolved from config)
	sinks := notifications.FromConfig(cfg)

	// 3. Run the pipeline once
	if _, err := analyzer.Run(cfg, provider, client, sinks); err != nil {
		log.Printf("ERROR: Analysis run failed: %v", err)
		os.Exit(1)
	}
}

func readVersion() string {
	// read version from VersionFile file
	version, err := os.ReadFile(VersionFile)
	if err != nil {
		return "v0.0.0-dev"
	}
	return string(version)
}
