package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Webhook posts notifications as JSON to a configured endpoint
// (Slack-compatible payload: {"text": "..."}).
type Webhook struct {
	url    string
	client *http.Client
}

// NewWebhook returns a webhook notifier, or Noop when no URL is configured.
func NewWebhook(url string) Notifier {
	url = strings.TrimSpace(url)
	if url == "" {
		return Noop{}
	}
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *Webhook) NotifyAdmins(ctx context.Context, msg string) {
	payload, err := json.Marshal(map[string]string{"text": msg})
	if err != nil {
		slog.Warn("notify.marshal", "err", err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		slog.Warn("notify.request", "err", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		slog.Warn("notify.send", "err", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		slog.Warn("notify.status", "status", resp.StatusCode)
	}
}
