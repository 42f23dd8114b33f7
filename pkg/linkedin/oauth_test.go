package linkedin_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jmerrifield20/linkedin-rest/pkg/linkedin"
	oauthlinkedin "golang.org/x/oauth2/linkedin"
)

func TestAuthorizationURL_exact(t *testing.T) {
	c := linkedin.MustNew(testConfig())

	got, err := c.AuthorizationURL([]string{"r_basicprofile", "r_basicprofile_2"}, "state")
	if err != nil {
		t.Fatal(err)
	}
	want := "https://www.linkedin.com/oauth/v2/authorization?response_type=code&client_id=client_id&redirect_uri=redirect_uri&state=state&scope=r_basicprofile%2Cr_basicprofile_2"
	if got != want {
		t.Errorf("AuthorizationURL:\n got %s\nwant %s", got, want)
	}
}

func TestAuthorizationURL_scopeNotArray(t *testing.T) {
	c := linkedin.MustNew(testConfig())

	_, err := c.AuthorizationURL(nil, "state")
	var vErr *linkedin.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if err.Error() != "Scope must be an array" {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestAuthorizationURL_encodesEveryParameter(t *testing.T) {
	c := linkedin.MustNew(linkedin.Config{
		ClientID:     "id with space",
		ClientSecret: "s",
		RedirectURI:  "http://127.0.0.1:8976/callback?x=1&y=2",
	})

	states := []string{"plain", "a b&c=d", "ünïcode", "(*)!'~"}
	for _, state := range states {
		state := state
		t.Run(state, func(t *testing.T) {
			got, err := c.AuthorizationURL([]string{"r_liteprofile", "w member_social"}, state)
			if err != nil {
				t.Fatal(err)
			}
			for _, key := range []string{"client_id=", "redirect_uri=", "state=", "scope="} {
				if n := strings.Count(got, "&"+key) + strings.Count(got, "?"+key); n != 1 {
					t.Errorf("%s appears %d times in %s", key, n, got)
				}
			}
			if !strings.Contains(got, "?response_type=code&") {
				t.Errorf("missing response_type=code: %s", got)
			}
			if strings.Contains(got, " ") || strings.Contains(got, "+") {
				t.Errorf("unencoded space in %s", got)
			}

			u, err := url.Parse(got)
			if err != nil {
				t.Fatal(err)
			}
			q := u.Query()
			if q.Get("state") != state {
				t.Errorf("state round-trip: got %q", q.Get("state"))
			}
			if q.Get("redirect_uri") != "http://127.0.0.1:8976/callback?x=1&y=2" {
				t.Errorf("redirect_uri round-trip: got %q", q.Get("redirect_uri"))
			}
			if q.Get("scope") != "r_liteprofile,w member_social" {
				t.Errorf("scope round-trip: got %q", q.Get("scope"))
			}
		})
	}
}

func TestAccessToken_request(t *testing.T) {
	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "AQX-token",
			"expires_in":   5183999,
		})
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.OAuthHost = srv.URL + "/oauth/v2"
	c := linkedin.MustNew(cfg)

	raw, err := c.AccessToken(context.Background(), "auth-code", "state")
	if err != nil {
		t.Fatalf("AccessToken: %v", err)
	}
	tok, err := linkedin.Decode[linkedin.AccessToken](raw)
	if err != nil {
		t.Fatal(err)
	}
	if tok.AccessToken != "AQX-token" {
		t.Errorf("access_token: got %q", tok.AccessToken)
	}

	if gotReq.Method != http.MethodPost {
		t.Errorf("method: got %s", gotReq.Method)
	}
	if gotReq.URL.Path != "/oauth/v2/accessToken" {
		t.Errorf("path: got %s", gotReq.URL.Path)
	}
	q := gotReq.URL.Query()
	for k, v := range map[string]string{
		"grant_type":    "authorization_code",
		"code":          "auth-code",
		"redirect_uri":  "redirect_uri",
		"client_id":     "client_id",
		"client_secret": "client_secret",
	} {
		if q.Get(k) != v {
			t.Errorf("%s: got %q, want %q", k, q.Get(k), v)
		}
	}
	if ct := gotReq.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type: got %q", ct)
	}
	if auth := gotReq.Header.Get("Authorization"); auth != "" {
		t.Errorf("token exchange must be unauthenticated, got %q", auth)
	}
}

func TestAccessToken_badRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_request","error_description":"code expired"}`))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.OAuthHost = srv.URL
	c := linkedin.MustNew(cfg)

	_, err := c.AccessToken(context.Background(), "stale", "")
	var statusErr *linkedin.HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *HTTPStatusError, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "400 Bad Request: ") {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestOAuth2Config_matchesLinkedInEndpoint(t *testing.T) {
	c := linkedin.MustNew(testConfig())
	oc := c.OAuth2Config("r_liteprofile")

	if oc.Endpoint.AuthURL != oauthlinkedin.Endpoint.AuthURL {
		t.Errorf("AuthURL: got %q, want %q", oc.Endpoint.AuthURL, oauthlinkedin.Endpoint.AuthURL)
	}
	if oc.Endpoint.TokenURL != oauthlinkedin.Endpoint.TokenURL {
		t.Errorf("TokenURL: got %q, want %q", oc.Endpoint.TokenURL, oauthlinkedin.Endpoint.TokenURL)
	}
	if oc.ClientID != "client_id" || oc.RedirectURL != "redirect_uri" {
		t.Errorf("credentials not carried: %+v", oc)
	}

	authURL := oc.AuthCodeURL("state")
	u, err := url.Parse(authURL)
	if err != nil {
		t.Fatal(err)
	}
	if u.Query().Get("response_type") != "code" || u.Query().Get("scope") != "r_liteprofile" {
		t.Errorf("unexpected AuthCodeURL %s", authURL)
	}
}
