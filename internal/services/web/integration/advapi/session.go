package advapi

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/publicsuffix"
)

// Cookie is one upstream credential cookie.
type Cookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Credentials are the upstream cookies owned by one browser session.
type Credentials struct {
	Cookies []Cookie `json:"cookies,omitempty"`
}

// Empty reports whether no cookie is held.
func (c Credentials) Empty() bool {
	return len(c.Cookies) == 0
}

func (c Credentials) seed(jar http.CookieJar, target *url.URL) {
	if len(c.Cookies) == 0 {
		return
	}
	cookies := make([]*http.Cookie, 0, len(c.Cookies))
	for _, cookie := range c.Cookies {
		name := strings.TrimSpace(cookie.Name)
		if name == "" {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: name, Value: cookie.Value, Path: "/"})
	}
	jar.SetCookies(target, cookies)
}

func (c Credentials) fingerprint() string {
	parts := make([]string, 0, len(c.Cookies))
	for _, cookie := range c.Cookies {
		parts = append(parts, cookie.Name+"="+cookie.Value)
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}

func newJar() http.CookieJar {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		// cookiejar.New never fails with a non-nil options value.
		panic(err)
	}
	return jar
}

// Session is one browser's authenticated view of the API.
type Session struct {
	client  *Client
	jar     http.CookieJar
	rest    *resty.Client
	initial string
}

// Credentials exports the cookies currently held by the session.
func (s *Session) Credentials() Credentials {
	cookies := s.jar.Cookies(s.client.cookieURL())
	out := Credentials{Cookies: make([]Cookie, 0, len(cookies))}
	for _, cookie := range cookies {
		out.Cookies = append(out.Cookies, Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	sort.Slice(out.Cookies, func(i, j int) bool { return out.Cookies[i].Name < out.Cookies[j].Name })
	return out
}

// Changed reports whether the upstream rotated cookies since the session was created.
func (s *Session) Changed() bool {
	return s.Credentials().fingerprint() != s.initial
}

type sessionContextKey struct{}

// WithSession attaches session to ctx.
func WithSession(ctx context.Context, session *Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext returns the session attached to ctx, if any.
func SessionFromContext(ctx context.Context) *Session {
	if ctx == nil {
		return nil
	}
	session, _ := ctx.Value(sessionContextKey{}).(*Session)
	return session
}
