// Package api talks to the AdvControl REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"tableflip.dev/advcontrol/pkg/logging"
)

// DefaultBaseURL matches a backend started locally.
const DefaultBaseURL = "http://localhost:8001/api"

const maxBody = 8 << 20

// Client issues requests against one backend. A Client without a token can
// only sign in or sign up.
type Client struct {
	baseURL string
	base    *http.Client
	http    *http.Client
	token   string
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds every request. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.base
		hc.Timeout = d
		c.base = &hc
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.base = hc
	}
}

// New returns a client for baseURL, e.g. http://localhost:8001/api.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		base:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http = c.base
	return c
}

// WithToken returns a copy of c that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	hc := *c.base
	hc.Transport = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   c.base.Transport,
	}
	cp.http = &hc
	return &cp
}

// Token returns the bearer token, empty for anonymous clients.
func (c *Client) Token() string {
	return c.token
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: encode %s body: %w", path, err)
		}
		r = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// do sends req and returns the status and body. Only transport failures are
// returned as errors.
func (c *Client) do(req *http.Request, path string) (int, []byte, error) {
	op := req.Method + " " + path
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	logging.Debugf("api: %s -> %d in %s (request %s)", op, resp.StatusCode, time.Since(start).Round(time.Millisecond), req.Header.Get("X-Request-ID"))
	return resp.StatusCode, data, nil
}

// get fetches path and fails on any non-2xx status.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	status, data, err := c.do(req, path)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &FetchError{Method: http.MethodGet, Status: status, Path: path, Detail: detailFrom(data)}
	}
	return data, nil
}
