package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultUserAgent    = "HyperHub/1.0 (+https://hyperhub.xyz)"
	DefaultFetchTimeout = 12 * time.Second
	DefaultMaxBodyBytes = 5 << 20
)

// Response is a successful (2xx) upstream reply with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type requestOptions struct {
	query   url.Values
	header  http.Header
	timeout time.Duration
}

type RequestOption func(*requestOptions)

func WithQuery(q url.Values) RequestOption {
	return func(o *requestOptions) { o.query = q }
}

// WithHeader replaces the default header set; the User-Agent is only sent
// when it is part of the replacement.
func WithHeader(h http.Header) RequestOption {
	return func(o *requestOptions) { o.header = h }
}

func WithTimeout(d time.Duration) RequestOption {
	return func(o *requestOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// Gateway performs outbound GETs and reports every failure as a nil
// Response. Callers treat nil as "source unavailable" and move on.
type Gateway struct {
	client  *http.Client
	tracer  trace.Tracer
	timeout time.Duration
	maxBody int64
}

func NewGateway(tracer trace.Tracer, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Gateway{
		client:  &http.Client{},
		tracer:  tracer,
		timeout: timeout,
		maxBody: DefaultMaxBodyBytes,
	}
}

func DefaultHeader() http.Header {
	h := make(http.Header)
	h.Set("User-Agent", DefaultUserAgent)
	return h
}

// Get fetches rawURL. It returns nil on transport errors, timeouts, non-2xx
// statuses and oversized bodies, logging a warning that names the URL.
func (g *Gateway) Get(ctx context.Context, rawURL string, opts ...RequestOption) *Response {
	o := requestOptions{header: DefaultHeader(), timeout: g.timeout}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := g.tracer.Start(ctx, "gateway.get")
	defer span.End()
	span.SetAttributes(attribute.String("http.url", rawURL))

	resp, err := g.do(ctx, rawURL, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("safe get failed", "url", rawURL, "err", err)
		return nil
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	return resp
}

func (g *Gateway) do(ctx context.Context, rawURL string, o requestOptions) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if len(o.query) > 0 {
		q := u.Query()
		for k, vs := range o.query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range o.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, g.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > g.maxBody {
		return nil, fmt.Errorf("body exceeds %d bytes", g.maxBody)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}
