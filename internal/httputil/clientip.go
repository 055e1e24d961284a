package httputil

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extracts the client IP address from the request, used to key the
// per-IP compute limiter. When trustProxy is true, X-Forwarded-For (first
// entry) and X-Real-IP headers are checked before falling back to
// RemoteAddr; only enable it behind a trusted reverse proxy, since the
// headers are client-controlled otherwise. Values taken from headers are
// validated as IP literals so a forged header cannot smuggle an arbitrary
// limiter key.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// Take the first (leftmost) IP — the original client.
			if i := strings.IndexByte(xff, ','); i > 0 {
				xff = xff[:i]
			}
			if ip := strings.TrimSpace(xff); net.ParseIP(ip) != nil {
				return ip
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(xri) != nil {
			return xri
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
