package wa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendText(t *testing.T) {
	var got *http.Request
	var form map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		r.ParseForm()
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"status":"submitted","messageId":"abc"}`))
	}))
	defer srv.Close()

	g := NewGupshup(Config{
		APIKey:  "test-key",
		Source:  "911234567890",
		AppName: "guruji",
		BaseURL: srv.URL,
	})

	if err := g.SendText(context.Background(), "919876543210", "Reply *GO* to continue!"); err != nil {
		t.Fatalf("SendText: %v", err)
	}

	if got.URL.Path != "/msg" {
		t.Errorf("path = %q", got.URL.Path)
	}
	if got.Header.Get("apikey") != "test-key" {
		t.Errorf("apikey header = %q", got.Header.Get("apikey"))
	}
	if form["channel"] != "whatsapp" || form["destination"] != "919876543210" || form["source"] != "911234567890" {
		t.Errorf("form = %v", form)
	}

	var msg textMessage
	if err := json.Unmarshal([]byte(form["message"]), &msg); err != nil {
		t.Fatalf("message field not JSON: %v", err)
	}
	if msg.Type != "text" || msg.Text != "Reply *GO* to continue!" {
		t.Errorf("message = %+v", msg)
	}
}

func TestSendTextServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"status":"error"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := NewGupshup(Config{APIKey: "bad", BaseURL: srv.URL})
	if err := g.SendText(context.Background(), "919876543210", "hi"); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestNewSenderWithoutKeyIsNoop(t *testing.T) {
	s := NewSender(Config{}, nil)
	if _, ok := s.(*logSender); !ok {
		t.Fatalf("sender = %T, want *logSender", s)
	}
	if err := s.SendText(context.Background(), "1", "x"); err != nil {
		t.Errorf("logSender.SendText: %v", err)
	}
}
