// Package notifications distributes a finished report through independent
// channels. Each channel is a Sink; an unconfigured sink is disabled, not
// broken, and one sink failing never stops the others from being attempted.
package notifications

import (
	"stock_picks/internal/config"
	"stock_picks/internal/models"
)

// Sink is one distribution channel for a rendered report.
type Sink interface {
	// Name identifies the channel in logs ("github", "email").
	Name() string
	// Configured reports whether the channel has the credentials it needs.
	// Missing credentials mean "channel disabled", never an error.
	Configured() bool
	// Send delivers the report. Only called when Configured() is true.
	Send(r *models.DailyReport) error
}

// Result records the outcome of one sink during a dispatch.
type Result struct {
	Sink    string
	Skipped bool
	Err     error
}

// Dispatch attempts every sink in order and collects per-sink outcomes.
// Failures are isolated: they are reported in the results, not returned.
func Dispatch(sinks []Sink, r *models.DailyReport) []Result {
	results := make([]Result, 0, len(sinks))
	for _, s := range sinks {
		if !s.Configured() {
			results = append(results, Result{Sink: s.Name(), Skipped: true})
			continue
		}
		results = append(results, Result{Sink: s.Name(), Err: s.Send(r)})
	}
	return results
}

// FromConfig assembles the standard sink set for a run.
func FromConfig(cfg *config.Config) []Sink {
	return []Sink{
		NewGitHubSink(cfg.GitHubToken, cfg.GitHubRepository),
		NewMailgunSink(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.RecipientEmail),
	}
}
