package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"maree/internal/domain/demand"
)

// WebhookSink posts the report to a messaging webhook (Slack-style
// incoming webhook or any JSON endpoint).
type WebhookSink struct {
	url    string
	client *http.Client
}

// NewWebhookSink creates a webhook sink.
func NewWebhookSink(url string) *WebhookSink {
	return &WebhookSink{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name implements Sink.
func (s *WebhookSink) Name() string { return "webhook" }

// webhookPayload is the wire shape posted to the messaging endpoint.
type webhookPayload struct {
	Text   string        `json:"text"`
	Report demand.Report `json:"report"`
}

// Deliver implements Sink.
func (s *WebhookSink) Deliver(ctx context.Context, report demand.Report) error {
	body, err := json.Marshal(webhookPayload{
		Text:   RenderText(report),
		Report: report,
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
