package advapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adreach/console/internal/platform/timeouts"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the production advertiser API.
	DefaultBaseURL   = "https://advertiserappnew.onrender.com"
	defaultRateLimit = 20
	defaultRateBurst = 40
	tracerName       = "github.com/adreach/console/internal/services/web/integration/advapi"
)

// Config configures the advertiser API client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Client creates per-browser Sessions against one API deployment.
type Client struct {
	baseURL   *url.URL
	timeout   time.Duration
	transport http.RoundTripper
	limiter   *rate.Limiter
	tracer    trace.Tracer
	logger    *slog.Logger
}

// New validates cfg and returns a Client.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	baseURL, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("api base url must be http or https, got %q", raw)
	}
	if baseURL.Host == "" {
		return nil, fmt.Errorf("api base url host is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.UpstreamRequest
	}
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = defaultRateBurst
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:   baseURL,
		timeout:   timeout,
		transport: transport,
		limiter:   rate.NewLimiter(rate.Limit(limit), burst),
		tracer:    otel.Tracer(tracerName),
		logger:    logger,
	}, nil
}

// BaseURL returns the API origin.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Session returns a Session seeded with creds.
func (c *Client) Session(creds Credentials) *Session {
	jar := newJar()
	creds.seed(jar, c.cookieURL())
	httpClient := &http.Client{
		Transport: c.transport,
		Jar:       jar,
		Timeout:   c.timeout,
	}
	rest := resty.NewWithClient(httpClient).
		SetBaseURL(c.baseURL.String()).
		SetHeader("Accept", "application/json")
	return &Session{
		client:  c,
		jar:     jar,
		rest:    rest,
		initial: creds.fingerprint(),
	}
}

// From returns the Session attached to ctx or a fresh anonymous one.
func (c *Client) From(ctx context.Context) *Session {
	if session := SessionFromContext(ctx); session != nil {
		return session
	}
	return c.Session(Credentials{})
}

func (c *Client) cookieURL() *url.URL {
	u := *c.baseURL
	u.Path = "/"
	u.RawQuery = ""
	return &u
}

type call struct {
	name   string
	method string
	path   string
}

// do runs one request with rate limiting and tracing and returns the decoded envelope.
func (s *Session) do(ctx context.Context, c call, build func(*resty.Request) *resty.Request) (envelope, error) {
	client := s.client
	ctx, span := client.tracer.Start(ctx, "advapi."+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", c.method),
			attribute.String("url.path", c.path),
		),
	)
	defer span.End()

	if err := client.limiter.Wait(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rate limited")
		return envelope{}, transportError(err)
	}

	req := s.rest.R().SetContext(ctx)
	if build != nil {
		req = build(req)
	}
	resp, err := req.Execute(c.method, c.path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		client.logger.Warn("advertiser api call failed", "call", c.name, "error", err)
		return envelope{}, transportError(err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode()))

	env, err := decodeEnvelope(resp.StatusCode(), resp.Body())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "response")
		client.logger.Warn("advertiser api call rejected", "call", c.name, "status", resp.StatusCode(), "error", err)
		return envelope{}, err
	}
	return env, nil
}
