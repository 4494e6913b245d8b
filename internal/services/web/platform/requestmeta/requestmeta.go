// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request metadata resolves request scheme.
//
// X-Forwarded-Proto is only honoured when TrustForwardedProto is set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS
// under policy.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return Scheme(r, policy) == "https"
}

// Scheme returns "https" or "http" for r.
func Scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		switch forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded {
		case "http", "https":
			return forwarded
		}
	}
	if r.URL != nil {
		switch scheme := strings.ToLower(r.URL.Scheme); scheme {
		case "http", "https":
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// HasSameOriginProofWithPolicy reports whether Origin, or Referer when Origin
// is absent, names the same scheme, host and port as the request.
func HasSameOriginProofWithPolicy(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	want := requestOrigin(r, policy)
	if want.host == "" {
		return false
	}
	claim := strings.TrimSpace(r.Header.Get("Origin"))
	if claim == "" {
		claim = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if claim == "" {
		return false
	}
	parsed, err := url.Parse(claim)
	if err != nil || parsed.Scheme == "" {
		return false
	}
	got := origin{
		scheme: strings.ToLower(parsed.Scheme),
		host:   strings.ToLower(parsed.Hostname()),
		port:   parsed.Port(),
	}.withDefaultPort()
	return got == want
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (o origin) withDefaultPort() origin {
	if o.port != "" {
		return o
	}
	switch o.scheme {
	case "https":
		o.port = "443"
	case "http":
		o.port = "80"
	}
	return o
}

func requestOrigin(r *http.Request, policy SchemePolicy) origin {
	rawHost := r.Host
	if rawHost == "" && r.URL != nil {
		rawHost = r.URL.Host
	}
	host, port := splitHostPort(rawHost)
	return origin{scheme: Scheme(r, policy), host: host, port: port}.withDefaultPort()
}

func splitHostPort(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}
	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return strings.ToLower(strings.Trim(raw, "[]")), ""
	}
	return strings.ToLower(host), port
}
