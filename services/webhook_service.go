package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/amirulhaziq/jobsheet-api/config"
)

// webhookTimeout bounds how long a single delivery may take.
const webhookTimeout = 5 * time.Second

// WebhookNotifier delivers a submitted jobsheet payload to the automation
// endpoint. Delivery is strictly best-effort: callers log failures and move
// on, they never surface them to the HTTP client and never retry.
type WebhookNotifier interface {
	Notify(payload map[string]string) error
}

// HTTPWebhookNotifier posts the payload as a JSON object to a fixed URL.
type HTTPWebhookNotifier struct {
	url    string
	client *http.Client
}

var webhookNotifierInstance WebhookNotifier

// InitWebhookNotifier initializes the notifier from configuration. When no
// WEBHOOK_URL is configured, submissions are only logged.
func InitWebhookNotifier() WebhookNotifier {
	cfg := config.GetConfig()
	if cfg == nil || cfg.WebhookURL == "" {
		webhookNotifierInstance = &LogWebhookNotifier{}
	} else {
		webhookNotifierInstance = NewHTTPWebhookNotifier(cfg.WebhookURL)
	}
	return webhookNotifierInstance
}

// NewHTTPWebhookNotifier creates a notifier posting to the given URL.
func NewHTTPWebhookNotifier(url string) *HTTPWebhookNotifier {
	return &HTTPWebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: webhookTimeout},
	}
}

// GetWebhookNotifier returns the initialized notifier instance.
// Before InitWebhookNotifier runs, it falls back to the logging notifier.
func GetWebhookNotifier() WebhookNotifier {
	if webhookNotifierInstance == nil {
		return &LogWebhookNotifier{}
	}
	return webhookNotifierInstance
}

// SetWebhookNotifier sets the notifier instance (primarily for testing)
func SetWebhookNotifier(notifier WebhookNotifier) {
	webhookNotifierInstance = notifier
}

// Notify posts the payload and treats any non-2xx response as a failure.
func (n *HTTPWebhookNotifier) Notify(payload map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// LogWebhookNotifier stands in when no endpoint is configured.
type LogWebhookNotifier struct{}

// Notify logs the submission instead of delivering it anywhere.
func (LogWebhookNotifier) Notify(payload map[string]string) error {
	log.Info().Str("js_number", payload["js_number"]).Msg("no webhook configured, dropping submission payload")
	return nil
}
