package linkedin_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmerrifield20/linkedin-rest/pkg/linkedin"
)

func TestHTTPTransport_send(t *testing.T) {
	var (
		gotBody    string
		gotHeaders http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotHeaders = r.Header
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"ok":false}`))
	}))
	defer srv.Close()

	opts, err := linkedin.BuildOptions(http.MethodPost, srv.URL+"/v2/shares", nil, map[string]int{"n": 1}, linkedin.Bearer("tok"))
	if err != nil {
		t.Fatal(err)
	}

	resp, err := linkedin.NewHTTPTransport(nil).Send(context.Background(), opts)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("status: got %d", resp.StatusCode)
	}
	if resp.Status != "I'm a teapot" {
		t.Errorf("reason phrase: got %q", resp.Status)
	}
	if string(resp.Body) != `{"ok":false}` {
		t.Errorf("body: got %s", resp.Body)
	}
	if gotBody != `{"n":1}` {
		t.Errorf("request body: got %s", gotBody)
	}
	if gotHeaders.Get("Authorization") != "Bearer tok" {
		t.Errorf("Authorization: got %q", gotHeaders.Get("Authorization"))
	}
	if gotHeaders.Get("X-Restli-Protocol-Version") != "2.0.0" {
		t.Errorf("protocol version: got %q", gotHeaders.Get("X-Restli-Protocol-Version"))
	}
	if gotHeaders.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type: got %q", gotHeaders.Get("Content-Type"))
	}
}

func TestHTTPTransport_cancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts, _ := linkedin.BuildOptions(http.MethodGet, srv.URL, nil, nil, linkedin.Unauthenticated)
	if _, err := linkedin.NewHTTPTransport(nil).Send(ctx, opts); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestClient_oversizedBodyIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"blob":"`))
		w.Write(bytes.Repeat([]byte("x"), 5<<20))
		w.Write([]byte(`"}`))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.APIHost = srv.URL
	c := linkedin.MustNew(cfg, linkedin.WithHTTPClient(srv.Client()))

	_, err := c.CurrentMemberEmail(context.Background(), "tok")
	var tErr *linkedin.TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
	var pErr *linkedin.ParseError
	if errors.As(err, &pErr) {
		t.Error("oversized body must not be reported as a parse error")
	}
}

func TestClient_endToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/v2/me":
			w.Write([]byte(`{"id":"abc","localizedFirstName":"Ada"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.APIHost = srv.URL
	c := linkedin.MustNew(cfg, linkedin.WithHTTPClient(srv.Client()))

	raw, err := c.CurrentMemberProfile(context.Background(), []string{"id", "localizedFirstName"}, "tok")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if string(raw) != `{"id":"abc","localizedFirstName":"Ada"}` {
		t.Errorf("profile: got %s", raw)
	}

	raw, err = c.ShareByID(context.Background(), "missing", "tok")
	if err != nil || raw != nil {
		t.Errorf("missing share: got (%s, %v), want (nil, nil)", raw, err)
	}

	if _, err := c.TotalConnectionsNumber(context.Background(), "wrong"); err == nil {
		t.Error("expected 401 error")
	}
}
