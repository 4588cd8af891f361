// Package report renders a validated DailyReport into the three forms we
// distribute: a plain-text console block, a Markdown issue body, and an
// HTML email body.
package report

import (
	"fmt"
	"strings"

	"stock_picks/internal/models"
)

// Text renders the rank-ordered console rendition, framed by the market
// summary and the overall strategy.
func Text(r *models.DailyReport) string {
	var b strings.Builder

	rule := strings.Repeat("=", 60)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "TOP 5 STOCK PICKS - %s\n", r.Date)
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Market Summary: %s\n\n", r.MarketSummary)

	for _, pick := range r.SortedPicks() {
		fmt.Fprintf(&b, "#%d - %s (%s)\n", pick.Rank, pick.Symbol, pick.Name)
		fmt.Fprintf(&b, "  Price: $%s → Target: $%s\n", pick.CurrentPrice.String(), pick.TargetPrice.String())
		fmt.Fprintf(&b, "  Risk: %s | Horizon: %s\n", pick.RiskLevel, pick.TimeHorizon)
		fmt.Fprintf(&b, "  Reason: %s\n\n", pick.Reason)
	}

	fmt.Fprintf(&b, "Strategy: %s\n", r.Strategy)
	b.WriteString(rule)

	return b.String()
}

// Markdown renders the GitHub issue body.
func Markdown(r *models.DailyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## 📊 Daily Stock Analysis - %s\n\n", r.Date)
	b.WriteString("### Market Summary\n")
	b.WriteString(r.MarketSummary + "\n\n")
	b.WriteString("### 🎯 Top 5 Stock Picks\n\n")

	for _, pick := range r.SortedPicks() {
		fmt.Fprintf(&b, "#### #%d - %s (%s)\n\n", pick.Rank, pick.Symbol, pick.Name)
		fmt.Fprintf(&b, "- **Current Price:** $%s\n", pick.CurrentPrice.String())
		fmt.Fprintf(&b, "- **Target Price:** $%s\n", pick.TargetPrice.String())
		fmt.Fprintf(&b, "- **Risk Level:** %s\n", pick.RiskLevel)
		fmt.Fprintf(&b, "- **Time Horizon:** %s\n\n", pick.TimeHorizon)
		fmt.Fprintf(&b, "**Analysis:** %s\n\n---\n\n", pick.Reason)
	}

	b.WriteString("### 📈 Overall Strategy\n")
	b.WriteString(r.Strategy + "\n\n---\n\n")
	b.WriteString("*Automated analysis generated using AI. Not financial advice. DYOR.*\n")

	return b.String()
}
