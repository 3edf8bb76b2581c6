// Package mailer sends transactional email through the Resend HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer.go -package=mocks

type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html,omitempty"`
	Text    string `json:"text,omitempty"`
}

type Mailer interface {
	Send(ctx context.Context, apiKey string, msg Message) error
}

const resendBaseURL = "https://api.resend.com"

type ResendClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewResendClient() *ResendClient {
	return &ResendClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    resendBaseURL,
	}
}

// NewResendClientWithURL is used by tests to point the client at a stub server.
func NewResendClientWithURL(baseURL string) *ResendClient {
	return &ResendClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// Send delivers a single message. The API key is resolved per call so a
// stored per-user key can override the configured one.
func (c *ResendClient) Send(ctx context.Context, apiKey string, msg Message) error {
	if apiKey == "" {
		return fmt.Errorf("no email api key configured")
	}

	body, err := json.Marshal(sendRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	return nil
}
