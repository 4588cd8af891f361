package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"stock_picks/internal/models"
)

// ErrProviderUnavailable means the completion endpoint could not be reached
// or kept failing after the retry budget. The run is over for today; the
// next scheduled invocation will try again.
var ErrProviderUnavailable = errors.New("completion provider unavailable")

// ErrMalformedResponse means the endpoint answered, but the content failed
// structural validation. This is NOT retried: re-sending the same prompt is
// unlikely to fix a schema mismatch.
var ErrMalformedResponse = errors.New("malformed completion response")

const systemInstruction = "You are an expert stock analyst providing data-driven investment recommendations."

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	http  *resty.Client
	model string
}

// NewClient builds a completion client. Transport errors, HTTP 429 and 5xx
// are retried with backoff up to `retries` times; everything else surfaces
// immediately.
func NewClient(baseURL, apiKey, model string, retries, timeoutSec int) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(time.Duration(timeoutSec) * time.Second).
		SetRetryCount(retries).
		SetRetryWaitTime(2 * time.Second).
		SetRetryMaxWaitTime(30 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
		})

	return &Client{
		http:  httpClient,
		model: model,
	}
}

// Analyze sends the prompt and turns the model output into a validated
// DailyReport. universe is the list of symbols actually fetched this run;
// any pick referencing a symbol outside it fails validation — we never
// trust the model to invent tickers we hold no data for.
func (c *Client) Analyze(date, prompt string, universe []string) (*models.DailyReport, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	}

	var respBody chatResponse
	resp, err := c.http.R().
		SetBody(reqBody).
		SetResult(&respBody).
		SetError(&respBody).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		detail := resp.Status()
		if respBody.Error != nil && respBody.Error.Message != "" {
			detail = respBody.Error.Message
		}
		return nil, fmt.Errorf("%w: %s", ErrProviderUnavailable, detail)
	}

	if len(respBody.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrMalformedResponse)
	}
	content := respBody.Choices[0].Message.Content

	payload, err := ExtractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var report models.DailyReport
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// The run date is the report key; fill it in if the model left it out.
	if report.Date == "" {
		report.Date = date
	}

	if err := report.Validate(universe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &report, nil
}
