package linkedin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Client is the LinkedIn SDK entry point. It is immutable after New and safe
// for concurrent use; every call builds its own request.
type Client struct {
	cfg       Config
	apiBase   string
	transport Transport
	logger    *zap.Logger
}

// Option is a functional option for configuring a Client.
type Option func(*Client) error

// WithTransport replaces the transport used for every exchange.
func WithTransport(t Transport) Option {
	return func(c *Client) error {
		c.transport = t
		return nil
	}
}

// WithHTTPClient sends requests through hc using the default HTTPTransport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		c.transport = NewHTTPTransport(hc)
		return nil
	}
}

// WithLogger sets the logger used for per-request debug lines.
// Tokens and client secrets are never logged.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// New validates cfg and creates a Client. It fails with a *ConfigError when
// ClientID, ClientSecret or RedirectURI is empty.
//
//	c, err := linkedin.New(linkedin.Config{
//	    ClientID:     "86abc",
//	    ClientSecret: "s3cr3t",
//	    RedirectURI:  "http://127.0.0.1:8976/callback",
//	})
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	c := &Client{
		cfg:     cfg,
		apiBase: cfg.APIHost + cfg.APIResource,
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		if err := o(c); err != nil {
			return nil, err
		}
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(nil)
	}
	return c, nil
}

// MustNew is like New but panics on error. Useful in tests and program init.
func MustNew(cfg Config, opts ...Option) *Client {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Config returns the effective configuration, defaults applied.
func (c *Client) Config() Config { return c.cfg }

// invoke performs one exchange and interprets the status code:
// 404 yields (nil, nil), anything but 200/201 yields *HTTPStatusError,
// and a body that is not valid JSON yields *ParseError.
func (c *Client) invoke(ctx context.Context, method, rawURL string, headers http.Header, body any, auth Auth) (json.RawMessage, error) {
	opts, err := BuildOptions(method, rawURL, headers, body, auth)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.transport.Send(ctx, opts)
	if err != nil {
		c.logger.Debug("linkedin request failed",
			zap.String("method", method),
			zap.String("path", logPath(rawURL)),
			zap.Error(err),
		)
		return nil, &TransportError{Err: err}
	}
	c.logger.Debug("linkedin request",
		zap.String("method", method),
		zap.String("path", logPath(rawURL)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return nil, nil
	case http.StatusOK, http.StatusCreated:
	default:
		status := resp.Status
		if status == "" {
			status = http.StatusText(resp.StatusCode)
		}
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Status:     status,
			Body:       resp.Body,
		}
	}

	var probe any
	if err := json.Unmarshal(resp.Body, &probe); err != nil {
		return nil, &ParseError{Err: err}
	}
	return json.RawMessage(resp.Body), nil
}

// logPath drops the query string, which may carry the client secret.
func logPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host + u.Path
}
