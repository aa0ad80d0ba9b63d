package upstream

import "net/http"

// hopByHopHeaders lists headers that must never be forwarded verbatim from
// the upstream streaming response to our own client — either because the
// meaning is endpoint-specific (authentication challenges) or because a
// reverse proxy in front of us would otherwise buffer or re-encode the
// stream contrary to spec.
var hopByHopHeaders = []string{
	"Www-Authenticate",
	"Content-Encoding",
	"Content-Length",
}

// RelayHeaders copies the upstream streaming response's headers onto the
// client response writer, stripping the hop-by-hop set and forcing
// X-Accel-Buffering: no so intermediate reverse proxies don't buffer the
// server-sent-event body. It does not touch the body — callers relay that
// separately, flushing as they go.
func RelayHeaders(dst http.Header, src http.Header) {
	for key, values := range src {
		if isHopByHop(key) {
			continue
		}
		for _, v := range values {
			dst.Add(key, v)
		}
	}
	dst.Set("X-Accel-Buffering", "no")
}

func isHopByHop(header string) bool {
	for _, h := range hopByHopHeaders {
		if http.CanonicalHeaderKey(header) == http.CanonicalHeaderKey(h) {
			return true
		}
	}
	return false
}
