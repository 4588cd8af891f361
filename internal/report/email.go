package report

import (
	"bytes"
	"fmt"
	"html/template"

	"stock_picks/internal/models"
)

// emailTemplate is the HTML layout for the email channel. html/template
// escapes the model-generated strings for us, which matters because the
// summary and reasons are free-form model output.
const emailTemplate = `<h2>🚀 Daily Top 5 US Stock Picks - {{.Date}}</h2>

<h3>📊 Market Summary</h3>
<p>{{.MarketSummary}}</p>

<h3>🎯 Top 5 Stock Picks</h3>
{{range .Picks}}
<div style="border: 1px solid #ddd; padding: 15px; margin: 10px 0; border-radius: 5px;">
    <h4>#{{.Rank}} - {{.Symbol}} ({{.Name}})</h4>
    <p><strong>Current Price:</strong> ${{.CurrentPrice}}</p>
    <p><strong>Target Price:</strong> ${{.TargetPrice}}</p>
    <p><strong>Risk Level:</strong> {{.RiskLevel}}</p>
    <p><strong>Time Horizon:</strong> {{.TimeHorizon}}</p>
    <p><strong>Analysis:</strong> {{.Reason}}</p>
</div>
{{end}}
<h3>📈 Strategy Recommendation</h3>
<p>{{.Strategy}}</p>

<hr>
<p style="color: #666; font-size: 12px;">
<em>Disclaimer: This is automated analysis for informational purposes only.
Not financial advice. Always do your own research and consult with a financial advisor.</em>
</p>
`

var emailTmpl = template.Must(template.New("email").Parse(emailTemplate))

// HTML renders the email body.
func HTML(r *models.DailyReport) (string, error) {
	data := struct {
		Date          string
		MarketSummary string
		Strategy      string
		Picks         []models.StockPick
	}{
		Date:          r.Date,
		MarketSummary: r.MarketSummary,
		Strategy:      r.Strategy,
		Picks:         r.SortedPicks(),
	}

	var out bytes.Buffer
	if err := emailTmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return out.String(), nil
}
