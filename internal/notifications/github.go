package notifications

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"stock_picks/internal/models"
	"stock_picks/internal/report"
)

// GitHubSink files the daily report as an issue in the configured repo.
type GitHubSink struct {
	Token   string
	Repo    string // "owner/name"
	BaseURL string // overridable for tests

	http *resty.Client
}

// NewGitHubSink builds the issue sink. Token or repo being empty leaves the
// sink unconfigured (skipped at dispatch time).
func NewGitHubSink(token, repo string) *GitHubSink {
	return &GitHubSink{
		Token:   token,
		Repo:    repo,
		BaseURL: "https://api.github.com",
		http:    resty.New().SetTimeout(30 * time.Second),
	}
}

func (g *GitHubSink) Name() string { return "github" }

func (g *GitHubSink) Configured() bool {
	return g.Token != "" && g.Repo != ""
}

// Send creates the issue. GitHub answers 201 on creation; anything else is
// a channel failure.
func (g *GitHubSink) Send(r *models.DailyReport) error {
	payload := map[string]interface{}{
		"title":  fmt.Sprintf("📈 Top 5 Stock Picks - %s", r.Date),
		"body":   report.Markdown(r),
		"labels": []string{"stock-analysis", "automated"},
	}

	resp, err := g.http.R().
		SetAuthToken(g.Token).
		SetHeader("Accept", "application/vnd.github.v3+json").
		SetBody(payload).
		Post(fmt.Sprintf("%s/repos/%s/issues", g.BaseURL, g.Repo))
	if err != nil {
		return fmt.Errorf("create issue: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("create issue: unexpected status %s", resp.Status())
	}
	return nil
}
