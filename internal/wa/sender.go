// Package wa sends WhatsApp messages through the Gupshup Business API.
package wa

import (
	"context"
	"log/slog"
	"os"
)

// Sender delivers one outbound text message.
type Sender interface {
	SendText(ctx context.Context, to, text string) error
}

// Config configures the Gupshup client.
type Config struct {
	// APIKey authenticates with Gupshup. Empty means not configured; use
	// NewSender to fall back to a logging no-op.
	APIKey string
	// Source is the business phone number, digits only with country code.
	Source string
	// AppName is the Gupshup app name, sent as src.name.
	AppName string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// MessagesPerSecond caps the outbound rate. Zero means 10.
	MessagesPerSecond float64
}

// ConfigFromEnv reads GURUJI_* environment variables.
func ConfigFromEnv() Config {
	return Config{
		APIKey:  os.Getenv("GURUJI_GUPSHUP_API_KEY"),
		Source:  os.Getenv("GURUJI_WA_SOURCE"),
		AppName: os.Getenv("GURUJI_WA_APP_NAME"),
		BaseURL: os.Getenv("GURUJI_GUPSHUP_BASE_URL"),
	}
}

// NewSender returns a Gupshup client, or a logging no-op when no API key
// is configured so local development works without credentials.
func NewSender(cfg Config, logger *slog.Logger) Sender {
	if cfg.APIKey == "" {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("gupshup not configured, outbound messages will only be logged")
		return &logSender{logger: logger}
	}
	return NewGupshup(cfg)
}

type logSender struct {
	logger *slog.Logger
}

func (s *logSender) SendText(_ context.Context, to, text string) error {
	s.logger.Info("would send whatsapp message", "to", to, "chars", len(text))
	return nil
}
