package linkedin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxResponseBytes caps how much of a response body is buffered.
const maxResponseBytes = 4 << 20

// Transport performs one HTTP exchange. Implementations must honour ctx.
type Transport interface {
	Send(ctx context.Context, opts *RequestOptions) (*Response, error)
}

// TransportFunc adapts an ordinary function to the Transport interface.
type TransportFunc func(ctx context.Context, opts *RequestOptions) (*Response, error)

// Send calls f(ctx, opts).
func (f TransportFunc) Send(ctx context.Context, opts *RequestOptions) (*Response, error) {
	return f(ctx, opts)
}

// Response is the fully-buffered result of an exchange.
type Response struct {
	StatusCode int
	// Status is the reason phrase without the numeric code, e.g. "Not Found".
	Status string
	Header http.Header
	Body   []byte
}

// HTTPTransport sends requests with a standard *http.Client.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps hc. A nil hc gets a client with a 10s timeout.
func NewHTTPTransport(hc *http.Client) *HTTPTransport {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPTransport{client: hc}
}

// Send executes opts and buffers the response body. A body larger than
// 4 MiB is an error rather than a truncated payload.
func (t *HTTPTransport) Send(ctx context.Context, opts *RequestOptions) (*Response, error) {
	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, opts.Method, opts.URL, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range opts.Headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if opts.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, err
	}
	if len(b) > maxResponseBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxResponseBytes)
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Status:     reasonPhrase(resp),
		Header:     resp.Header,
		Body:       b,
	}, nil
}

// reasonPhrase strips the leading code from resp.Status ("404 Not Found").
func reasonPhrase(resp *http.Response) string {
	if s := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); s != resp.Status {
		return s
	}
	return http.StatusText(resp.StatusCode)
}
