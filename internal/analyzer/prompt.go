package analyzer

import (
	"fmt"
	"strings"

	"stock_picks/internal/models"
)

// promptInstructions is the fixed tail of every analysis prompt. It names
// the exact JSON schema the model must emit; the validation in
// models.DailyReport.Validate enforces the same shape on the way back.
const promptInstructions = `Provide your analysis in this EXACT JSON format:
{
  "analysis_date": "%s",
  "market_summary": "Brief 2-3 sentence market overview",
  "top_picks": [
    {
      "rank": 1,
      "symbol": "SYMBOL",
      "name": "Company Name",
      "current_price": 123.45,
      "reason": "Detailed 2-3 sentence reason for this pick",
      "target_price": 150.00,
      "risk_level": "Low/Medium/High",
      "time_horizon": "Short/Medium/Long-term"
    }
  ],
  "overall_strategy": "2-3 sentences on recommended overall strategy"
}

Return ONLY valid JSON, no markdown or explanations.`

// BuildPrompt assembles the analysis prompt from the fetched quotes.
// It is a pure function: the same date and quote sequence always produce a
// byte-identical prompt, and the symbols appear in input order.
func BuildPrompt(date string, quotes []models.SymbolQuote) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a professional stock analyst. Today is %s.\n\n", date)
	fmt.Fprintf(&b, "Analyze the following %d US stocks and select the TOP 5 BEST PICKS for investment TODAY based on:\n", len(quotes))
	b.WriteString("1. Technical momentum (price trends, volume)\n")
	b.WriteString("2. Fundamental strength (P/E ratio, market cap, sector health)\n")
	b.WriteString("3. Recent performance and volatility\n")
	b.WriteString("4. Analyst recommendations\n")
	b.WriteString("5. Current market conditions\n\n")

	b.WriteString("STOCKS DATA:\n")
	for _, q := range quotes {
		fmt.Fprintf(&b, "%s (%s) - $%s\n", q.Symbol, q.Name, q.Price.String())
		fmt.Fprintf(&b, "  Sector: %s | Industry: %s\n", q.Sector, q.Industry)
		fmt.Fprintf(&b, "  Market Cap: $%s | P/E: %s\n", groupDigits(q.MarketCap), q.PEString())
		fmt.Fprintf(&b, "  Performance: 1D: %.2f%%, 1W: %.2f%%, 1M: %.2f%%, 3M: %.2f%%\n",
			q.Change1D, q.Change1W, q.Change1M, q.Change3M)
		fmt.Fprintf(&b, "  Volume Ratio: %.2fx | Analyst Target: %s\n", q.VolumeRatio, q.TargetString())
		rec := q.Recommendation
		if rec == "" {
			rec = "N/A"
		}
		fmt.Fprintf(&b, "  Recommendation: %s\n\n", rec)
	}

	fmt.Fprintf(&b, promptInstructions, date)

	return b.String()
}

// groupDigits formats an integer with thousands separators ("1,234,567").
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
