package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var intentSchema = &Schema{
	Name:        "test-intent",
	Description: "intent classification result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"intent": map[string]any{
				"type": "string",
				"enum": []any{"GREETING", "HELP", "CHITCHAT"},
			},
			"confidence": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
		},
		"required":             []any{"intent", "confidence"},
		"additionalProperties": false,
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"intent":"HELP","confidence":0.92}`)
	if err := validateResponse(intentSchema, raw); err != nil {
		t.Errorf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `help please`},
		{"missing field", `{"intent":"HELP"}`},
		{"bad enum", `{"intent":"DANCE","confidence":0.5}`},
		{"out of range", `{"intent":"HELP","confidence":1.5}`},
		{"extra field", `{"intent":"HELP","confidence":0.5,"note":"x"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(intentSchema, json.RawMessage(tc.raw))
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Errorf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything goes`)); err != nil {
		t.Errorf("nil schema should skip validation: %v", err)
	}
}

func TestCompiledSchemaCached(t *testing.T) {
	s1, err := compiledSchema(intentSchema)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	s2, err := compiledSchema(intentSchema)
	if err != nil {
		t.Fatalf("compile again: %v", err)
	}
	if s1 != s2 {
		t.Error("expected the cached compiled schema on the second call")
	}
}
