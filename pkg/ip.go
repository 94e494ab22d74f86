package pkg

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the caller address, preferring proxy headers set by
// the reverse proxy in front of the service. The port is stripped.
func ClientIP(r *http.Request) string {
	addr := r.Header.Get("X-Real-Ip")
	if addr == "" {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			// first entry is the original client
			addr = strings.TrimSpace(strings.Split(fwd, ",")[0])
		}
	}
	if addr == "" {
		addr = r.RemoteAddr
	}

	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
