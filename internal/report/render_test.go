package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"stock_picks/internal/models"
)

func sampleReport() *models.DailyReport {
	symbols := []string{"NVDA", "AAPL", "MSFT", "AMZN", "GOOGL"}
	picks := make([]models.StockPick, 5)
	for i := range picks {
		picks[i] = models.StockPick{
			Rank:         i + 1,
			Symbol:       symbols[i],
			Name:         symbols[i] + " Inc.",
			CurrentPrice: decimal.NewFromFloat(131.25),
			Reason:       "AI demand remains strong & broad.",
			TargetPrice:  decimal.NewFromFloat(160.00),
			RiskLevel:    models.RiskHigh,
			TimeHorizon:  models.HorizonLong,
		}
	}
	return &models.DailyReport{
		Date:          "2025-06-02",
		MarketSummary: "Tech led the market higher.",
		TopPicks:      picks,
		Strategy:      "Overweight semiconductors on dips.",
	}
}

func TestText_RankOrderAndFraming(t *testing.T) {
	out := Text(sampleReport())

	if !strings.Contains(out, "TOP 5 STOCK PICKS - 2025-06-02") {
		t.Error("missing header")
	}
	if !strings.Contains(out, "Market Summary: Tech led the market higher.") {
		t.Error("missing market summary")
	}
	if !strings.Contains(out, "Strategy: Overweight semiconductors on dips.") {
		t.Error("missing strategy")
	}

	// Picks must appear in rank order regardless of slice order.
	prev := -1
	for _, mark := range []string{"#1 - NVDA", "#2 - AAPL", "#3 - MSFT", "#4 - AMZN", "#5 - GOOGL"} {
		idx := strings.Index(out, mark)
		if idx < 0 {
			t.Fatalf("missing pick line %q", mark)
		}
		if idx < prev {
			t.Errorf("pick %q out of order", mark)
		}
		prev = idx
	}
}

func TestMarkdown_IssueBody(t *testing.T) {
	out := Markdown(sampleReport())

	for _, want := range []string{
		"## 📊 Daily Stock Analysis - 2025-06-02",
		"#### #1 - NVDA (NVDA Inc.)",
		"- **Current Price:** $131.25",
		"- **Target Price:** $160",
		"**Analysis:** AI demand remains strong & broad.",
		"### 📈 Overall Strategy",
		"Not financial advice",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestHTML_EscapesModelText(t *testing.T) {
	r := sampleReport()
	r.MarketSummary = `Volatile day <script>alert("x")</script> overall.`

	out, err := HTML(r)
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Error("model text must be escaped in the email body")
	}
	if !strings.Contains(out, "Daily Top 5 US Stock Picks - 2025-06-02") {
		t.Error("missing email header")
	}
	if !strings.Contains(out, "#1 - NVDA") {
		t.Error("missing first pick")
	}
	if !strings.Contains(out, "Disclaimer") {
		t.Error("missing disclaimer footer")
	}
}
