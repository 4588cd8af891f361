package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

var universe = []string{"AAPL", "MSFT", "NVDA", "AMZN", "GOOGL"}

// pickJSON builds a syntactically valid 5-pick payload over the given symbols.
func pickJSON(symbols [5]string) string {
	picks := ""
	for i, s := range symbols {
		if i > 0 {
			picks += ","
		}
		picks += fmt.Sprintf(`{
			"rank": %d, "symbol": "%s", "name": "%s Corp", "current_price": 100.0,
			"reason": "solid setup", "target_price": 120.0,
			"risk_level": "Medium", "time_horizon": "Short"
		}`, i+1, s, s)
	}
	return fmt.Sprintf(`{
		"analysis_date": "2025-06-02",
		"market_summary": "Broad rally.",
		"top_picks": [%s],
		"overall_strategy": "Stay long quality."
	}`, picks)
}

// completionServer wraps content in the chat-completions response envelope.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("expected system+user messages, got %+v", req.Messages)
		}

		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestAnalyze_Success(t *testing.T) {
	srv := completionServer(t, pickJSON([5]string{"AAPL", "MSFT", "NVDA", "AMZN", "GOOGL"}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "gpt-4o", 0, 10)
	report, err := c.Analyze("2025-06-02", "prompt", universe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.TopPicks) != 5 {
		t.Errorf("expected 5 picks, got %d", len(report.TopPicks))
	}
	if report.Date != "2025-06-02" {
		t.Errorf("unexpected date %s", report.Date)
	}
}

func TestAnalyze_ProseWrappedJSON(t *testing.T) {
	content := "Here is the analysis:\n" +
		pickJSON([5]string{"AAPL", "MSFT", "NVDA", "AMZN", "GOOGL"}) +
		"\nLet me know if you'd like a deeper dive."
	srv := completionServer(t, content)
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "gpt-4o", 0, 10)
	report, err := c.Analyze("2025-06-02", "prompt", universe)
	if err != nil {
		t.Fatalf("expected embedded JSON to be extracted, got: %v", err)
	}
	if report.MarketSummary != "Broad rally." {
		t.Errorf("wrong summary %q", report.MarketSummary)
	}
}

func TestAnalyze_SymbolOutsideUniverse(t *testing.T) {
	// The payload is well-formed but TSLA was never fetched this run.
	srv := completionServer(t, pickJSON([5]string{"AAPL", "MSFT", "TSLA", "AMZN", "GOOGL"}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "gpt-4o", 0, 10)
	_, err := c.Analyze("2025-06-02", "prompt", universe)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got: %v", err)
	}
}

func TestAnalyze_NotJSON(t *testing.T) {
	srv := completionServer(t, "Sorry, I cannot analyze stocks today.")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "gpt-4o", 0, 10)
	_, err := c.Analyze("2025-06-02", "prompt", universe)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got: %v", err)
	}
}

func TestAnalyze_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, "test-key", "gpt-4o", 0, 10)
	_, err := c.Analyze("2025-06-02", "prompt", universe)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
}

func TestAnalyze_ErrorStatusAfterRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, `{"error":{"message":"overloaded","type":"server_error"}}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "gpt-4o", 1, 10)
	_, err := c.Analyze("2025-06-02", "prompt", universe)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
	// Initial attempt plus one retry: the budget is bounded.
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("expected 2 attempts, got %d", got)
	}
}

func TestAnalyze_RetryThenSuccess(t *testing.T) {
	var calls int32
	payload := pickJSON([5]string{"AAPL", "MSFT", "NVDA", "AMZN", "GOOGL"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "try again", http.StatusServiceUnavailable)
			return
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": payload}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "gpt-4o", 2, 10)
	report, err := c.Analyze("2025-06-02", "prompt", universe)
	if err != nil {
		t.Fatalf("expected success after retry, got: %v", err)
	}
	if report == nil || len(report.TopPicks) != 5 {
		t.Fatal("unexpected report after retry")
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("expected 2 attempts, got %d", got)
	}
}
