package gatewayhttp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/sjson"

	"github.com/coho-labs/actgate/internal/react"
	"github.com/coho-labs/actgate/internal/upstream"
)

// writeResult emits result in the shape req.Stream called for: a relayed
// byte stream, or the upstream's buffered JSON verbatim plus
// __react_messages.
func writeResult(w http.ResponseWriter, result *react.Result) error {
	if result.Stream != nil {
		return relayStream(w, result.Stream)
	}
	return writeBufferedResult(w, result)
}

// writeBufferedResult injects __react_messages into the raw upstream JSON
// bytes with sjson, so every other field of the upstream document — order,
// vendor extensions, numeric formatting — passes through untouched.
func writeBufferedResult(w http.ResponseWriter, result *react.Result) error {
	traceJSON, err := json.Marshal(result.Trace)
	if err != nil {
		return fmt.Errorf("marshaling react trace: %w", err)
	}

	augmented, err := sjson.SetRawBytes(result.RawJSON, "__react_messages", traceJSON)
	if err != nil {
		return fmt.Errorf("augmenting upstream response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(augmented)
	return err
}

// relayStream copies the upstream streaming response's status and
// hop-by-hop-hygienic headers, then the body unchanged — no SSE parsing.
func relayStream(w http.ResponseWriter, upstreamResp *http.Response) error {
	defer upstreamResp.Body.Close()

	upstream.RelayHeaders(w.Header(), upstreamResp.Header)
	w.Header().Set("Content-Type", "text/event-stream")
	w.WriteHeader(upstreamResp.StatusCode)

	flusher, _ := w.(http.Flusher)
	if flusher != nil {
		flusher.Flush()
	}

	buf := make([]byte, 4096)
	for {
		n, readErr := upstreamResp.Body.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return err
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}
