package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Risk levels the model is allowed to assign to a pick.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Time horizons the model is allowed to assign to a pick.
const (
	HorizonShort  = "Short"
	HorizonMedium = "Medium"
	HorizonLong   = "Long-term"
)

// StockPick is one recommended equity entry inside a DailyReport.
// The JSON tags match the schema we instruct the model to emit.
type StockPick struct {
	Rank         int             `json:"rank"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Reason       string          `json:"reason"`
	TargetPrice  decimal.Decimal `json:"target_price"`
	RiskLevel    string          `json:"risk_level"`
	TimeHorizon  string          `json:"time_horizon"`
}

// DailyReport is the validated analysis output for one calendar day.
// Date is the report key: one persisted slot per day, last writer wins.
type DailyReport struct {
	Date          string      `json:"analysis_date"` // YYYY-MM-DD
	MarketSummary string      `json:"market_summary"`
	TopPicks      []StockPick `json:"top_picks"`
	Strategy      string      `json:"overall_strategy"`
}

// Validate checks the structural invariants of a report:
// exactly 5 picks, ranks forming the set {1..5}, every pick symbol present
// in the universe of symbols actually fetched this run, and enum fields
// limited to the values we asked for. It does NOT judge the financial
// reasoning itself, only the shape.
func (r *DailyReport) Validate(universe []string) error {
	if r.Date == "" {
		return fmt.Errorf("missing analysis_date")
	}
	if r.MarketSummary == "" {
		return fmt.Errorf("missing market_summary")
	}
	if r.Strategy == "" {
		return fmt.Errorf("missing overall_strategy")
	}
	if len(r.TopPicks) != 5 {
		return fmt.Errorf("expected exactly 5 picks, got %d", len(r.TopPicks))
	}

	// Build a set of fetched symbols for the cross-check.
	fetched := make(map[string]bool, len(universe))
	for _, s := range universe {
		fetched[strings.ToUpper(s)] = true
	}

	seenRanks := make(map[int]bool, 5)
	for i, p := range r.TopPicks {
		if p.Rank < 1 || p.Rank > 5 {
			return fmt.Errorf("pick %d: rank %d out of range 1..5", i+1, p.Rank)
		}
		if seenRanks[p.Rank] {
			return fmt.Errorf("duplicate rank %d", p.Rank)
		}
		seenRanks[p.Rank] = true

		if p.Symbol == "" {
			return fmt.Errorf("pick %d: missing symbol", i+1)
		}
		// The model must not invent tickers outside the data we gave it.
		if !fetched[strings.ToUpper(p.Symbol)] {
			return fmt.Errorf("pick %d: symbol %s was not in the fetched universe", i+1, p.Symbol)
		}
		if p.Reason == "" {
			return fmt.Errorf("pick %d (%s): missing reason", i+1, p.Symbol)
		}
		if !validRisk(p.RiskLevel) {
			return fmt.Errorf("pick %d (%s): invalid risk_level %q", i+1, p.Symbol, p.RiskLevel)
		}
		if !validHorizon(p.TimeHorizon) {
			return fmt.Errorf("pick %d (%s): invalid time_horizon %q", i+1, p.Symbol, p.TimeHorizon)
		}
	}
	return nil
}

// SortedPicks returns the picks ordered by rank (1 first).
// Validate guarantees ranks are the set {1..5}, so this is a simple bucket fill.
func (r *DailyReport) SortedPicks() []StockPick {
	out := make([]StockPick, len(r.TopPicks))
	for _, p := range r.TopPicks {
		if p.Rank >= 1 && p.Rank <= len(out) {
			out[p.Rank-1] = p
		}
	}
	return out
}

func validRisk(s string) bool {
	switch {
	case strings.EqualFold(s, RiskLow),
		strings.EqualFold(s, RiskMedium),
		strings.EqualFold(s, RiskHigh):
		return true
	}
	return false
}

func validHorizon(s string) bool {
	// The prompt asks for "Short/Medium/Long-term"; models sometimes drop
	// the "-term" suffix, so we accept the bare words too.
	norm := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), "-term"))
	switch norm {
	case "short", "medium", "long":
		return true
	}
	return false
}
