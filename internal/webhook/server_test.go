package webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/guruji/internal/conversation"
)

type stubHandler struct {
	got   []conversation.Inbound
	reply string
	err   error
}

func (h *stubHandler) HandleMessage(_ context.Context, in conversation.Inbound) (string, error) {
	h.got = append(h.got, in)
	return h.reply, h.err
}

type stubSender struct {
	sent []string
	to   []string
	err  error
}

func (s *stubSender) SendText(_ context.Context, to, text string) error {
	s.to = append(s.to, to)
	s.sent = append(s.sent, text)
	return s.err
}

func newTestServer(h *stubHandler, snd *stubSender) *Server {
	return New(Config{Addr: ":0", VerifyToken: "secret-token"}, h, snd, nil)
}

const textPayload = `{
	"app": "guruji",
	"timestamp": 1767000000000,
	"type": "message",
	"payload": {
		"id": "wamid-123",
		"source": "919876543210",
		"type": "text",
		"sender": {"phone": "919876543210", "name": "Arjun"},
		"payload": {"text": "go"}
	}
}`

func TestVerifyHandshake(t *testing.T) {
	s := newTestServer(&stubHandler{}, &stubSender{})

	req := httptest.NewRequest(http.MethodGet, "/webhook/whatsapp?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=12345", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12345", rec.Body.String())
}

func TestVerifyRejectsBadToken(t *testing.T) {
	s := newTestServer(&stubHandler{}, &stubSender{})

	req := httptest.NewRequest(http.MethodGet, "/webhook/whatsapp?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReceiveRoutesAndReplies(t *testing.T) {
	h := &stubHandler{reply: "Here is your question"}
	snd := &stubSender{}
	s := newTestServer(h, snd)

	req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", strings.NewReader(textPayload))
	req.Header.Set(echoContentType, echoJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, h.got, 1)
	assert.Equal(t, "919876543210", h.got[0].PhoneNumber)
	assert.Equal(t, "go", h.got[0].Body)
	assert.Equal(t, "wamid-123", h.got[0].ProviderMsgID)

	require.Len(t, snd.sent, 1)
	assert.Equal(t, "Here is your question", snd.sent[0])
	assert.Equal(t, "919876543210", snd.to[0])
}

func TestReceiveSilenceSendsNothing(t *testing.T) {
	h := &stubHandler{reply: ""}
	snd := &stubSender{}
	s := newTestServer(h, snd)

	req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", strings.NewReader(textPayload))
	req.Header.Set(echoContentType, echoJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, snd.sent)
}

func TestReceiveIgnoresDeliveryReceipts(t *testing.T) {
	h := &stubHandler{}
	s := newTestServer(h, &stubSender{})

	receipt := `{"type": "message-event", "payload": {"id": "x", "type": "delivered"}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", strings.NewReader(receipt))
	req.Header.Set(echoContentType, echoJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, h.got)
}

func TestReceiveAlwaysReturns200(t *testing.T) {
	h := &stubHandler{err: assert.AnError}
	s := newTestServer(h, &stubSender{})

	req := httptest.NewRequest(http.MethodPost, "/webhook/whatsapp", strings.NewReader(textPayload))
	req.Header.Set(echoContentType, echoJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestHealthz(t *testing.T) {
	s := newTestServer(&stubHandler{}, &stubSender{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParseInbound(t *testing.T) {
	cases := []struct {
		name string
		ev   envelope
		want string
		ok   bool
	}{
		{
			name: "text",
			ev: envelope{Type: "message", Payload: message{
				ID: "1", Source: "91", Type: "text",
				Payload: messageBody{Text: "hello"},
			}},
			want: "hello", ok: true,
		},
		{
			name: "button uses title",
			ev: envelope{Type: "message", Payload: message{
				ID: "2", Source: "91", Type: "button",
				Payload: messageBody{Title: "GO"},
			}},
			want: "GO", ok: true,
		},
		{
			name: "image caption",
			ev: envelope{Type: "message", Payload: message{
				ID: "3", Source: "91", Type: "image",
				Payload: messageBody{URL: "https://x/y.jpg", Caption: "got this wrong"},
			}},
			want: "got this wrong", ok: true,
		},
		{
			name: "image without caption ignored",
			ev: envelope{Type: "message", Payload: message{
				ID: "4", Source: "91", Type: "image",
				Payload: messageBody{URL: "https://x/y.jpg"},
			}},
			ok: false,
		},
		{
			name: "no phone",
			ev: envelope{Type: "message", Payload: message{
				ID: "5", Type: "text", Payload: messageBody{Text: "hi"},
			}},
			ok: false,
		},
		{
			name: "receipt",
			ev:   envelope{Type: "message-event"},
			ok:   false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, ok := parseInbound(tc.ev)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, in.Body)
			}
		})
	}
}

const (
	echoContentType = "Content-Type"
	echoJSON        = "application/json"
)
