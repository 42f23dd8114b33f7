package linkedin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
)

// Header names and values sent on every request.
const (
	HeaderProtocolVersion = "X-Restli-Protocol-Version"
	ProtocolVersion       = "2.0.0"
	HeaderAuthorization   = "Authorization"
)

// Auth selects how a request is authenticated. The zero value is
// Unauthenticated; use Bearer to attach an access token.
type Auth struct {
	token  string
	bearer bool
}

// Unauthenticated sends no Authorization header.
var Unauthenticated = Auth{}

// Bearer authenticates the request with "Authorization: Bearer <token>".
func Bearer(token string) Auth {
	return Auth{token: token, bearer: true}
}

// IsBearer reports whether a carries bearer authentication.
func (a Auth) IsBearer() bool { return a.bearer }

// RequestOptions is the transport-ready description of a single call.
// Body is nil when the request carries no payload.
type RequestOptions struct {
	Method  string      `json:"method"`
	URL     string      `json:"url"`
	Headers http.Header `json:"headers"`
	Body    []byte      `json:"body,omitempty"`
}

// MarshalJSON renders Body as the serialized JSON string it carries rather
// than base64, so the options can be inspected like any other payload.
func (o RequestOptions) MarshalJSON() ([]byte, error) {
	type wire struct {
		Method  string      `json:"method"`
		URL     string      `json:"url"`
		Headers http.Header `json:"headers"`
		Body    *string     `json:"body,omitempty"`
	}
	w := wire{Method: o.Method, URL: o.URL, Headers: o.Headers}
	if o.Body != nil {
		s := string(o.Body)
		w.Body = &s
	}
	return json.Marshal(w)
}

// isNil reports whether body is nil or a nil pointer, map, slice or
// interface wrapped in a non-nil interface value.
func isNil(body any) bool {
	if body == nil {
		return true
	}
	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// BuildOptions assembles the request for method and url. Caller headers are
// copied, never mutated; the protocol version header always wins over a
// caller-supplied value. A non-nil body is JSON-encoded; nil, including a
// typed nil pointer, map or slice, sends no body. Bearer auth with an
// empty token fails with ErrMissingAccessToken.
func BuildOptions(method, url string, headers http.Header, body any, auth Auth) (*RequestOptions, error) {
	h := headers.Clone()
	if h == nil {
		h = make(http.Header)
	}
	h.Set(HeaderProtocolVersion, ProtocolVersion)

	if auth.bearer {
		if auth.token == "" {
			return nil, ErrMissingAccessToken
		}
		h.Set(HeaderAuthorization, "Bearer "+auth.token)
	}

	opts := &RequestOptions{
		Method:  method,
		URL:     url,
		Headers: h,
	}

	if !isNil(body) {
		if raw, ok := body.(json.RawMessage); ok && len(raw) == 0 {
			return opts, nil
		}
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		opts.Body = b
	}
	return opts, nil
}
