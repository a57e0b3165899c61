package wa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.gupshup.io/wa/api/v1"

// Gupshup sends messages through the Gupshup WhatsApp API. A client-side
// rate limiter keeps bursts from the nudge runner under the account cap.
type Gupshup struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
}

// NewGupshup creates a Gupshup client.
func NewGupshup(cfg Config) *Gupshup {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	perSec := cfg.MessagesPerSecond
	if perSec <= 0 {
		perSec = 10
	}
	return &Gupshup{
		cfg:     cfg,
		http:    &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(perSec), 1),
	}
}

// textMessage is the Gupshup message body for a plain text send.
type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SendText posts one text message. Free-form sends only work inside the
// 24-hour customer service window; outside it Gupshup rejects the call
// and the error surfaces here.
func (g *Gupshup) SendText(ctx context.Context, to, text string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	msg, err := json.Marshal(textMessage{Type: "text", Text: text})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	form := url.Values{}
	form.Set("channel", "whatsapp")
	form.Set("source", g.cfg.Source)
	form.Set("destination", to)
	form.Set("message", string(msg))
	form.Set("src.name", g.cfg.AppName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/msg", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("gupshup returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
