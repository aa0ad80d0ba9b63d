package upstream

import (
	"encoding/json"
	"testing"
)

func TestToolCall_MarshalJSON(t *testing.T) {
	tc := ToolCall{ID: "call_1", Name: "current_time", Args: map[string]any{}}

	raw, err := json.Marshal(tc)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Function struct {
			Name      string `json:"name"`
			Arguments string `json:"arguments"`
		} `json:"function"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.Type != "function" || decoded.Function.Name != "current_time" || decoded.Function.Arguments != "{}" {
		t.Fatalf("Marshal() = %s, want OpenAI function-call shape", raw)
	}
}

func TestToolDef_MarshalJSON(t *testing.T) {
	d := ToolDef{Name: "current_time", Description: "returns the time", Parameters: map[string]any{"type": "object"}}

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded struct {
		Type     string `json:"type"`
		Function struct {
			Name string `json:"name"`
		} `json:"function"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Type != "function" || decoded.Function.Name != "current_time" {
		t.Fatalf("Marshal() = %s, want OpenAI tool-def shape", raw)
	}
}

func TestMessage_RoundTripsToolCalls(t *testing.T) {
	msg := Message{
		Role: RoleAssistant,
		ToolCalls: []ToolCall{
			{ID: "a", Name: "current_time", Args: map[string]any{}},
		},
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	resp, err := parseResponse([]byte(`{"choices":[{"message":` + string(raw) + `}]}`))
	if err != nil {
		t.Fatalf("parseResponse() error = %v", err)
	}
	if len(resp.Message.ToolCalls) != 1 || resp.Message.ToolCalls[0].Name != "current_time" {
		t.Fatalf("parseResponse() tool calls = %+v, want one current_time call", resp.Message.ToolCalls)
	}
}
