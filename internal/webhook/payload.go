package webhook

import (
	"strings"

	"github.com/abhisek/guruji/internal/conversation"
)

// envelope is the outer Gupshup webhook event. Anything other than
// type "message" (delivery receipts, read receipts, billing events) is
// ignored.
type envelope struct {
	App       string  `json:"app"`
	Timestamp int64   `json:"timestamp"`
	Type      string  `json:"type"`
	Payload   message `json:"payload"`
}

type message struct {
	ID      string      `json:"id"`
	Source  string      `json:"source"`
	Type    string      `json:"type"`
	Sender  sender      `json:"sender"`
	Payload messageBody `json:"payload"`
}

type sender struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

type messageBody struct {
	Text    string `json:"text"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
	ID      string `json:"id"`
	Title   string `json:"title"`
}

// parseInbound extracts a routable message, reporting false for events
// that are not user messages.
func parseInbound(ev envelope) (conversation.Inbound, bool) {
	if ev.Type != "message" {
		return conversation.Inbound{}, false
	}

	phone := ev.Payload.Source
	if phone == "" {
		phone = ev.Payload.Sender.Phone
	}
	if phone == "" {
		return conversation.Inbound{}, false
	}

	in := conversation.Inbound{
		PhoneNumber:   phone,
		MsgType:       ev.Payload.Type,
		ProviderMsgID: ev.Payload.ID,
	}

	switch ev.Payload.Type {
	case "text":
		in.Body = ev.Payload.Payload.Text
	case "image":
		// No OCR pipeline; route the caption so the user still gets an answer.
		in.Body = ev.Payload.Payload.Caption
	case "button", "quick_reply":
		in.Body = ev.Payload.Payload.Title
		if in.Body == "" {
			in.Body = ev.Payload.Payload.Text
		}
	default:
		return conversation.Inbound{}, false
	}

	if strings.TrimSpace(in.Body) == "" {
		return conversation.Inbound{}, false
	}
	return in, true
}
