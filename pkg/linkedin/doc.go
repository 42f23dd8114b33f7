// Package linkedin is a Go SDK for the LinkedIn v2 REST API and its OAuth2
// authorization-code flow.
//
// Every API method builds one request, sends it through a Transport, and
// interprets the status code: 200 and 201 return the JSON body, 404 returns
// a nil result with a nil error, and anything else is an *HTTPStatusError.
// Nothing is retried or cached.
//
// # Authorizing a member
//
//	c, err := linkedin.New(linkedin.Config{
//	    ClientID:     os.Getenv("LINKEDIN_CLIENT_ID"),
//	    ClientSecret: os.Getenv("LINKEDIN_CLIENT_SECRET"),
//	    RedirectURI:  "http://127.0.0.1:8976/callback",
//	})
//	if err != nil {
//	    log.Fatal(err) // *ConfigError: a credential is missing
//	}
//
//	authURL, _ := c.AuthorizationURL([]string{"r_liteprofile", "r_emailaddress"}, state)
//	// ... send the member to authURL, receive ?code=...&state=... on the redirect URI ...
//	raw, err := c.AccessToken(ctx, code, state)
//	tok, err := linkedin.Decode[linkedin.AccessToken](raw)
//
// # Calling the API
//
// Access tokens are passed per call; the Client holds no token state:
//
//	raw, err := c.CurrentMemberProfile(ctx,
//	    []string{"id", "localizedFirstName", "localizedLastName"},
//	    tok.AccessToken,
//	)
//	if raw == nil && err == nil {
//	    // 404: no such resource
//	}
//
// # Errors
//
// Argument problems are *ValidationError and are returned before any request
// is made. Bearer requests without a token fail with ErrMissingAccessToken.
// Network failures are *TransportError, unexpected statuses *HTTPStatusError,
// and malformed JSON bodies *ParseError. Use errors.As to tell them apart.
//
// # Testing
//
// Inject a fake Transport to exercise code without network access:
//
//	c := linkedin.MustNew(cfg, linkedin.WithTransport(linkedin.TransportFunc(
//	    func(ctx context.Context, o *linkedin.RequestOptions) (*linkedin.Response, error) {
//	        return &linkedin.Response{StatusCode: 200, Body: []byte(`{"id":"abc"}`)}, nil
//	    })))
package linkedin
