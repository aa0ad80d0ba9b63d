package gatewayhttp

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/coho-labs/actgate/internal/react"
	"github.com/coho-labs/actgate/internal/upstream"
)

// chatCompletionsRequest is the client-facing body, the OpenAI
// chat-completions shape.
type chatCompletionsRequest struct {
	Model       string             `json:"model"`
	Messages    []upstream.Message `json:"messages"`
	Stream      bool               `json:"stream"`
	Temperature *float64           `json:"temperature"`
}

func (s *Server) handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req chatCompletionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMalformedRequest(w, err)
		return
	}

	if !s.cfg.ModelAllowed(req.Model) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": fmt.Sprintf("model %q is not allowed", req.Model)})
		return
	}

	result, err := s.orchestrator.Run(r.Context(), react.Request{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		Stream:      req.Stream,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if err := writeResult(w, result); err != nil {
		// The response may already be partially written (headers sent,
		// body streaming); there is nothing useful left to send the
		// client at this point beyond logging.
		s.logf("writing response: %v", err)
	}
}

func (s *Server) handleChatCompletionsOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
