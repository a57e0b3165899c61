// Package webhook is the HTTP surface: the Gupshup callback, its
// verification handshake, and a health probe.
package webhook

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/abhisek/guruji/internal/conversation"
	"github.com/abhisek/guruji/internal/wa"
)

// Config configures the HTTP server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// VerifyToken must match the token registered with the webhook
	// provider for the GET verification handshake.
	VerifyToken string
}

// ConfigFromEnv reads GURUJI_* environment variables.
func ConfigFromEnv() Config {
	addr := os.Getenv("GURUJI_LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Addr:        addr,
		VerifyToken: os.Getenv("GURUJI_WEBHOOK_VERIFY_TOKEN"),
	}
}

// Handler processes one inbound message and returns the reply text,
// empty for silence. Satisfied by *conversation.Router.
type Handler interface {
	HandleMessage(ctx context.Context, in conversation.Inbound) (string, error)
}

// Server handles webhook traffic. Messages are processed inline before
// the 200 goes back; a reply that fails to send is logged and dropped,
// never retried by returning an error to the provider.
type Server struct {
	echo   *echo.Echo
	cfg    Config
	router Handler
	sender wa.Sender
	logger *slog.Logger
}

// New wires the routes.
func New(cfg Config, router Handler, sender wa.Sender, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:   e,
		cfg:    cfg,
		router: router,
		sender: sender,
		logger: logger,
	}

	e.GET("/healthz", s.health)
	e.GET("/webhook/whatsapp", s.verify)
	e.POST("/webhook/whatsapp", s.receive)

	return s
}

// Start blocks serving HTTP until Shutdown.
func (s *Server) Start() error {
	s.logger.Info("webhook server listening", "addr", s.cfg.Addr)
	err := s.echo.Start(s.cfg.Addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// verify answers the webhook ownership handshake.
func (s *Server) verify(c echo.Context) error {
	mode := c.QueryParam("hub.mode")
	token := c.QueryParam("hub.verify_token")
	challenge := c.QueryParam("hub.challenge")

	if mode == "subscribe" && token == s.cfg.VerifyToken {
		if challenge != "" {
			return c.String(http.StatusOK, challenge)
		}
		return c.String(http.StatusOK, "OK")
	}
	return c.JSON(http.StatusForbidden, map[string]string{"error": "verification failed"})
}

// receive handles one webhook delivery. It always returns 200 so the
// provider never retries: retries are handled by the dedup guard anyway,
// and a failing handler should not cause redelivery storms.
func (s *Server) receive(c echo.Context) error {
	var ev envelope
	if err := c.Bind(&ev); err != nil {
		s.logger.Warn("unparseable webhook payload", "error", err)
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	in, ok := parseInbound(ev)
	if !ok {
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}

	ctx := c.Request().Context()

	reply, err := s.router.HandleMessage(ctx, in)
	if err != nil {
		s.logger.Error("message handling failed", "phone", in.PhoneNumber, "error", err)
		return c.JSON(http.StatusOK, map[string]string{"status": "error"})
	}

	if reply != "" {
		if err := s.sender.SendText(ctx, in.PhoneNumber, reply); err != nil {
			s.logger.Error("send reply failed", "phone", in.PhoneNumber, "error", err)
			return c.JSON(http.StatusOK, map[string]string{"status": "send-failed"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
