package middlewares

import (
	"net"
	"net/http"
	"strings"
)

// Headers a fronting proxy may use to report the original client, checked in
// order before X-Forwarded-For and the socket peer address.
var proxyIPHeaders = []string{"True-Client-IP", "X-Real-IP"}

// ClientIPMiddleware rewrites RemoteAddr to the proxy-reported client address
// in "IP:port" form so logging and handlers downstream see one consistent
// peer identity.
func ClientIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := extractClientIP(r); ip != "" {
			_, port, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil || port == "" {
				port = "0"
			}
			r.RemoteAddr = net.JoinHostPort(ip, port)
		}

		next.ServeHTTP(w, r)
	})
}

func extractClientIP(r *http.Request) string {
	for _, header := range proxyIPHeaders {
		if ip := canonicalIP(r.Header.Get(header)); ip != "" {
			return ip
		}
	}

	// X-Forwarded-For accumulates one entry per hop; the first is the
	// originating client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := canonicalIP(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	return canonicalIP(host)
}

// canonicalIP parses and re-renders an address so equivalent spellings
// compare equal; unparseable input yields "".
func canonicalIP(s string) string {
	parsed := net.ParseIP(strings.TrimSpace(s))
	if parsed == nil {
		return ""
	}

	return parsed.String()
}
