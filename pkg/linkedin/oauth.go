package linkedin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// AuthorizationURL returns the browser URL that starts the authorization-code
// flow. Scopes are comma-joined; every parameter value is percent-encoded.
// A nil scopes slice fails with "Scope must be an array". No request is made.
func (c *Client) AuthorizationURL(scopes []string, state string) (string, error) {
	if scopes == nil {
		return "", &ValidationError{Field: "scope", Message: "Scope must be an array"}
	}

	var b strings.Builder
	b.WriteString(c.cfg.OAuthHost)
	b.WriteString("/authorization?response_type=code")
	b.WriteString("&client_id=" + escapeComponent(c.cfg.ClientID))
	b.WriteString("&redirect_uri=" + escapeComponent(c.cfg.RedirectURI))
	b.WriteString("&state=" + escapeComponent(state))
	b.WriteString("&scope=" + escapeComponent(strings.Join(scopes, ",")))
	return b.String(), nil
}

// AccessToken exchanges an authorization code for an access token. The
// request is form-typed and unauthenticated. state is accepted for symmetry
// with AuthorizationURL; verifying it is the caller's job.
func (c *Client) AccessToken(ctx context.Context, code, state string) (json.RawMessage, error) {
	if code == "" {
		return nil, required("code")
	}

	endpoint := c.cfg.OAuthHost + "/accessToken" +
		"?grant_type=authorization_code" +
		"&code=" + escapeComponent(code) +
		"&redirect_uri=" + escapeComponent(c.cfg.RedirectURI) +
		"&client_id=" + escapeComponent(c.cfg.ClientID) +
		"&client_secret=" + escapeComponent(c.cfg.ClientSecret)

	headers := http.Header{}
	headers.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.invoke(ctx, http.MethodPost, endpoint, headers, nil, Unauthenticated)
}

// OAuth2Config describes the same application and endpoints as an
// oauth2.Config, for callers that drive the flow with golang.org/x/oauth2.
func (c *Client) OAuth2Config(scopes ...string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		RedirectURL:  c.cfg.RedirectURI,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.cfg.OAuthHost + "/authorization",
			TokenURL:  c.cfg.OAuthHost + "/accessToken",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// escapeComponent percent-encodes s like JavaScript's encodeURIComponent:
// spaces become %20 and the marks !'()* stay literal.
func escapeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
