package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSymbols is the built-in universe of top US stocks we analyze.
// It is copied into the Config at load time; nothing mutates it afterwards.
var DefaultSymbols = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "BRK-B",
	"JPM", "V", "JNJ", "WMT", "PG", "MA", "UNH", "HD", "DIS", "BAC",
	"ADBE", "CRM", "NFLX", "INTC", "AMD", "PYPL", "COST", "PFE", "KO",
	"CSCO", "PEP", "TMO",
}

// Config holds every runtime setting for one analyzer run.
// It is built once in Load() and treated as immutable afterwards.
type Config struct {
	// AI completion endpoint
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	AIRetries     int
	AITimeoutSec  int

	// Market data
	MarketProvider string // "yahoo" (default) or "alpaca"
	Symbols        []string
	FetchRetries   int
	FetchWorkers   int
	MinSymbols     int

	// Output
	OutputDir string

	// Notification sinks (all optional; missing values disable the channel)
	GitHubToken      string
	GitHubRepository string
	MailgunDomain    string
	MailgunAPIKey    string
	RecipientEmail   string

	// Logging
	MaxLogSizeMB  int64
	MaxLogBackups int

	Version string
}

// Load initializes the configuration.
// It tries to read a .env file, checks for necessary environment variables,
// and fills everything else with sensible defaults.
func Load() *Config {
	// Load .env variables into the process environment
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg := &Config{
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnvAsString("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL: getEnvAsString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		AIRetries:     getEnvAsInt("AI_RETRIES", 3),
		AITimeoutSec:  getEnvAsInt("AI_TIMEOUT_SEC", 120),

		MarketProvider: strings.ToLower(getEnvAsString("MARKET_PROVIDER", "yahoo")),
		Symbols:        parseSymbols(os.Getenv("STOCK_SYMBOLS")),
		FetchRetries:   getEnvAsInt("FETCH_RETRIES", 2),
		FetchWorkers:   getEnvAsInt("FETCH_WORKERS", 5),
		MinSymbols:     getEnvAsInt("MIN_SYMBOLS", 1),

		OutputDir: getEnvAsString("OUTPUT_DIR", "reports"),

		GitHubToken:      os.Getenv("GITHUB_TOKEN"),
		GitHubRepository: os.Getenv("GITHUB_REPOSITORY"),
		MailgunDomain:    os.Getenv("MAILGUN_DOMAIN"),
		MailgunAPIKey:    os.Getenv("MAILGUN_API_KEY"),
		RecipientEmail:   os.Getenv("RECIPIENT_EMAIL"),

		MaxLogSizeMB:  int64(getEnvAsInt("MAX_LOG_SIZE_MB", 5)),
		MaxLogBackups: getEnvAsInt("MAX_LOG_BACKUPS", 3),
	}

	// Define which variables are critical and confidential.
	requiredSecretVars := map[string]bool{
		"OPENAI_API_KEY": true,
	}
	// The Alpaca provider needs its own keys; the default Yahoo provider
	// works unauthenticated.
	if cfg.MarketProvider == "alpaca" {
		requiredSecretVars["APCA_API_KEY_ID"] = true
		requiredSecretVars["APCA_API_SECRET_KEY"] = true
	}

	// 1. Check for missing required variables (in actual environment)
	var missing []string
	for key := range requiredSecretVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		log.Fatalf("CRITICAL: Missing required environment variables: %v", missing)
	}

	// 2. Print variables defined in .env file, masking secrets
	envMap, err := godotenv.Read()
	if err == nil {
		log.Println("--- .env File Variables ---")
		for key, val := range envMap {
			if requiredSecretVars[key] || strings.Contains(key, "API_KEY") || strings.Contains(key, "TOKEN") {
				// Mask secret values: show only last 4 chars
				masked := "***"
				if len(val) > 4 {
					masked = "***" + val[len(val)-4:]
				}
				log.Printf("%s=%s", key, masked)
			} else {
				log.Printf("%s=%s", key, val)
			}
		}
		log.Println("---------------------------")
	}

	return cfg
}

// parseSymbols splits a comma-separated ticker list, upper-casing and
// trimming each entry. An empty input falls back to the default universe.
func parseSymbols(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		out := make([]string, len(DefaultSymbols))
		copy(out, DefaultSymbols)
		return out
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
