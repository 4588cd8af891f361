package notifications

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"stock_picks/internal/models"
	"stock_picks/internal/report"
)

// MailgunSink emails the daily report to a single configured recipient.
type MailgunSink struct {
	Domain    string
	APIKey    string
	Recipient string
	BaseURL   string // overridable for tests

	http *resty.Client
}

// NewMailgunSink builds the email sink. Any missing credential leaves the
// sink unconfigured (skipped at dispatch time).
func NewMailgunSink(domain, apiKey, recipient string) *MailgunSink {
	return &MailgunSink{
		Domain:    domain,
		APIKey:    apiKey,
		Recipient: recipient,
		BaseURL:   "https://api.mailgun.net/v3",
		http:      resty.New().SetTimeout(30 * time.Second),
	}
}

func (m *MailgunSink) Name() string { return "email" }

func (m *MailgunSink) Configured() bool {
	return m.Domain != "" && m.APIKey != "" && m.Recipient != ""
}

// Send posts the HTML rendition through Mailgun's messages endpoint.
func (m *MailgunSink) Send(r *models.DailyReport) error {
	body, err := report.HTML(r)
	if err != nil {
		return err
	}

	resp, err := m.http.R().
		SetBasicAuth("api", m.APIKey).
		SetFormData(map[string]string{
			"from":    fmt.Sprintf("Stock Analyzer <stocks@%s>", m.Domain),
			"to":      m.Recipient,
			"subject": fmt.Sprintf("📈 Top 5 US Stock Picks - %s", r.Date),
			"html":    body,
		}).
		Post(fmt.Sprintf("%s/%s/messages", m.BaseURL, m.Domain))
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("send email: unexpected status %s", resp.Status())
	}
	return nil
}
