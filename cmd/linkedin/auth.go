package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmerrifield20/linkedin-rest/internal/callback"
	"github.com/jmerrifield20/linkedin-rest/pkg/linkedin"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ── auth-url ─────────────────────────────────────────────────────────────────

var (
	authScopes []string
	authState  string
)

var authURLCmd = &cobra.Command{
	Use:   "auth-url",
	Short: "Print the authorization URL for the configured application",
	Long: `auth-url prints the URL a member opens to grant the application access.

After consenting, LinkedIn redirects to the configured redirect URI with
?code=...&state=...; exchange the code with 'linkedin token <code>'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		state := authState
		if state == "" {
			state = uuid.NewString()
		}
		u, err := c.AuthorizationURL(scopesOrDefault(), state)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, u)
		return nil
	},
}

// ── token ────────────────────────────────────────────────────────────────────

var tokenCmd = &cobra.Command{
	Use:   "token <code>",
	Short: "Exchange an authorization code for an access token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		raw, err := c.AccessToken(cmd.Context(), args[0], "")
		if err != nil {
			return fmt.Errorf("exchange code: %w", err)
		}
		return printToken(raw)
	},
}

// ── login ────────────────────────────────────────────────────────────────────

var (
	loginNoBrowser bool
	loginTimeout   time.Duration
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Run the full authorization-code flow and print the access token",
	Long: `login starts a loopback listener for the redirect URI, opens the
authorization URL in a browser, waits for LinkedIn to redirect back, and
exchanges the code for an access token.

The redirect URI registered for the application must point at the listener,
e.g. http://127.0.0.1:8976/callback (see callback.addr in the config).`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	for _, cmd := range []*cobra.Command{authURLCmd, loginCmd} {
		cmd.Flags().StringSliceVar(&authScopes, "scope", nil, "OAuth scopes to request (default from config)")
	}
	authURLCmd.Flags().StringVar(&authState, "state", "", "state value echoed back on redirect (default random)")
	loginCmd.Flags().BoolVar(&loginNoBrowser, "no-browser", false, "print the URL instead of opening a browser")
	loginCmd.Flags().DurationVar(&loginTimeout, "wait", 5*time.Minute, "how long to wait for the redirect")
	loginCmd.Flags().String("callback-addr", "", "listen address for the redirect receiver (default 127.0.0.1:8976)")

	rootCmd.AddCommand(authURLCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	path, err := callbackPath(settings.App.RedirectURI)
	if err != nil {
		return err
	}

	state := uuid.NewString()
	srv := callback.New(path, state, logger)
	addr, err := srv.Start(settings.CallbackAddr)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	}()
	logger.Debug("waiting for redirect", zap.String("addr", addr))

	authURL, err := c.AuthorizationURL(scopesOrDefault(), state)
	if err != nil {
		return err
	}

	fmt.Fprintln(stderr, "Open this URL to authorize:")
	fmt.Fprintln(stderr, " ", authURL)
	if !loginNoBrowser {
		if err := browser.OpenURL(authURL); err != nil {
			logger.Debug("open browser", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), loginTimeout)
	defer cancel()

	code, err := srv.Wait(ctx)
	if err != nil {
		return err
	}

	raw, err := c.AccessToken(ctx, code, state)
	if err != nil {
		return fmt.Errorf("exchange code: %w", err)
	}
	return printToken(raw)
}

// callbackPath returns the path LinkedIn will redirect to. A redirect URI
// without a path lands on "/".
func callbackPath(redirectURI string) (string, error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return "", fmt.Errorf("parse redirect URI: %w", err)
	}
	if u.Scheme != "http" || u.Host == "" {
		return "", fmt.Errorf("redirect URI %q must be an http:// loopback URL for login", redirectURI)
	}
	if u.Path == "" {
		return "/", nil
	}
	return u.Path, nil
}

func scopesOrDefault() []string {
	if len(authScopes) > 0 {
		return authScopes
	}
	if settings.Scopes != nil {
		return settings.Scopes
	}
	return []string{}
}

// printToken prints the token response with a computed expiry, plus the
// unverified id_token claims when the openid scope was granted.
func printToken(raw json.RawMessage) error {
	at, err := linkedin.Decode[linkedin.AccessToken](raw)
	if err != nil {
		return err
	}
	if at == nil {
		return errors.New("token endpoint returned not found")
	}

	tok := at.Token()
	out := map[string]any{
		"access_token": tok.AccessToken,
		"token_type":   tok.TokenType,
		"scopes":       at.Scopes(),
	}
	if !tok.Expiry.IsZero() {
		out["expiry"] = tok.Expiry.UTC().Format(time.RFC3339)
	}
	if at.RefreshToken != "" {
		out["refresh_token"] = at.RefreshToken
	}
	if at.IDToken != "" {
		if claims, err := at.IDTokenClaims(); err == nil {
			out["id_token_claims"] = claims
		} else {
			logger.Debug("decode id_token", zap.Error(err))
		}
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(b))
	if len(at.Scopes()) > 0 {
		logger.Debug("granted scopes", zap.String("scopes", strings.Join(at.Scopes(), " ")))
	}
	return nil
}
