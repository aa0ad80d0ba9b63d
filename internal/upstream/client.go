package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// Client issues one chat-completions call to the configured LLM endpoint.
// Both modes are raw net/http — never an SDK — because the gateway needs
// the exact response bytes for verbatim client replies, and the exact
// byte stream (unparsed) for the final streamed turn.
type Client interface {
	// Call issues a buffered (stream:false) request. It returns the raw
	// response body alongside a parsed view of it; on a non-2xx
	// response it returns an *Error carrying the status and raw body.
	Call(ctx context.Context, req Request) (raw []byte, resp *Response, err error)

	// Stream issues a streaming (stream:true) request and hands back the
	// live *http.Response for the caller to relay byte-for-byte. The
	// caller owns resp.Body and must close it.
	Stream(ctx context.Context, req Request) (*http.Response, error)
}

// HTTPClient is the only Client implementation: a thin, header-aware
// wrapper over net/http talking to any OpenAI-compatible endpoint.
type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewHTTPClient creates an upstream client for the given provider.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    http.DefaultClient,
	}
}

func (c *HTTPClient) endpoint() string {
	base := c.baseURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + "/v1/chat/completions"
}

func (c *HTTPClient) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling upstream request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating upstream request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	return httpReq, nil
}

func (c *HTTPClient) Call(ctx context.Context, req Request) ([]byte, *Response, error) {
	req.Stream = false

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, nil, fmt.Errorf("calling upstream: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading upstream response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return raw, nil, &Error{Status: httpResp.StatusCode, Body: string(raw)}
	}

	resp, err := parseResponse(raw)
	if err != nil {
		return raw, nil, fmt.Errorf("parsing upstream response: %w", err)
	}
	return raw, resp, nil
}

func (c *HTTPClient) Stream(ctx context.Context, req Request) (*http.Response, error) {
	req.Stream = true

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling upstream: %w", err)
	}
	return httpResp, nil
}

// parseResponse pulls choices[0].message and usage out of the raw
// response bytes with gjson, rather than fully decoding into a struct —
// the raw bytes remain available to the caller for verbatim pass-through.
func parseResponse(raw []byte) (*Response, error) {
	root := gjson.ParseBytes(raw)

	message := root.Get("choices.0.message")
	if !message.Exists() {
		return nil, fmt.Errorf("no choices returned")
	}

	resp := &Response{
		Message: Message{
			Role:    RoleAssistant,
			Content: message.Get("content").String(),
		},
		Usage: Usage{
			PromptTokens:     int(root.Get("usage.prompt_tokens").Int()),
			CompletionTokens: int(root.Get("usage.completion_tokens").Int()),
			TotalTokens:      int(root.Get("usage.total_tokens").Int()),
		},
	}

	for _, tc := range message.Get("tool_calls").Array() {
		resp.Message.ToolCalls = append(resp.Message.ToolCalls, ToolCall{
			ID:   tc.Get("id").String(),
			Name: tc.Get("function.name").String(),
			Args: parseToolArgs(tc.Get("function.arguments").String()),
		})
	}

	return resp, nil
}

// parseToolArgs decodes a tool call's raw JSON-encoded arguments string. An
// empty string, or a value that does not parse to a JSON object, is
// treated as the empty object rather than an error — the model is free to
// omit arguments for a niladic tool.
func parseToolArgs(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{}
	}
	return args
}
