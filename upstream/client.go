package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxBodyBytes = 8 << 20

// Result is a parsed upstream response.
type Result struct {
	StatusCode int
	Body       json.RawMessage
	SetCookies []string
}

// Call describes one finished exchange, reported to observers.
type Call struct {
	Method     string
	Path       string
	StatusCode int
	Duration   time.Duration
	Err        error
}

type Observer interface {
	ObserveCall(ctx context.Context, call Call)
}

type Client struct {
	baseURL   *url.URL
	http      *http.Client
	observers []Observer

	Auth    AuthAPI
	Admin   AdminAPI
	Stories StoriesAPI
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observers = append(c.observers, o) }
}

// New builds the client and its namespaced operations once; the result is
// safe for concurrent use.
func New(baseURL *url.URL, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = AuthAPI{Me: MeAPI{c: c}, Logout: LogoutAPI{c: c}}
	c.Admin = AdminAPI{Users: UsersAPI{c: c}}
	c.Stories = StoriesAPI{c: c}
	return c
}

func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Result, error) {
	return c.request(ctx, http.MethodGet, path, params, nil, nil)
}

func (c *Client) Post(ctx context.Context, path string, params url.Values, body json.RawMessage) (*Result, error) {
	return c.request(ctx, http.MethodPost, path, params, body, nil)
}

// request performs a single exchange. When into is set the body is decoded
// into it and a decode failure counts as a malformed response.
func (c *Client) request(ctx context.Context, method, path string, params url.Values, body json.RawMessage, into any) (*Result, error) {
	start := time.Now()
	res, err := c.do(ctx, method, path, params, body, into)

	call := Call{Method: method, Path: path, Duration: time.Since(start), Err: err}
	if res != nil {
		call.StatusCode = res.StatusCode
	}
	for _, o := range c.observers {
		o.ObserveCall(ctx, call)
	}
	return res, err
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body json.RawMessage, into any) (*Result, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, serializeURL(c.baseURL, path, params), reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookiesFrom(ctx) {
		req.AddCookie(cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(ctx, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classifyTransport(ctx, method, path, err)
	}

	res := &Result{
		StatusCode: resp.StatusCode,
		SetCookies: resp.Header.Values("Set-Cookie"),
	}
	if json.Valid(raw) {
		res.Body = raw
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return res, &StatusError{Result: res}
	}
	if res.Body == nil {
		return res, fmt.Errorf("%w: %s %s: body is not JSON", ErrMalformedResponse, method, path)
	}
	if into != nil {
		if err := json.Unmarshal(res.Body, into); err != nil {
			return res, fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, path, err)
		}
	}
	return res, nil
}

func classifyTransport(ctx context.Context, method, path string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s %s: %w", ErrUpstreamTimeout, method, path, err)
	}
	return fmt.Errorf("%w: %s %s: %w", ErrUpstreamUnavailable, method, path, err)
}

func serializeURL(base *url.URL, path string, params url.Values) string {
	u := *base
	u.Path = strings.TrimRight(base.Path, "/") + path
	u.RawPath = ""
	u.RawQuery = ""
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String()
}

type cookiesKey struct{}

// WithCookies attaches the browser's session cookies to upstream calls made
// with the returned context.
func WithCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, cookiesKey{}, cookies)
}

func cookiesFrom(ctx context.Context) []*http.Cookie {
	cookies, _ := ctx.Value(cookiesKey{}).([]*http.Cookie)
	return cookies
}
