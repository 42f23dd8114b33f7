package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/jmerrifield20/linkedin-rest/internal/config"
	"github.com/jmerrifield20/linkedin-rest/internal/transport"
	"github.com/jmerrifield20/linkedin-rest/pkg/linkedin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is overridden via -ldflags "-X main.version=...".
var version = "dev"

var (
	cfgFile  string
	settings *config.Settings
	logger   = zap.NewNop()
	registry = prometheus.NewRegistry()
	metrics  = transport.NewMetrics(registry)

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linkedin",
	Short: "LinkedIn REST API command-line client",
	Long: `linkedin drives the LinkedIn v2 REST API from the terminal.

Authorize once with 'linkedin login', then call the API with the access
token it prints (pass --token or set LINKEDIN_ACCESS_TOKEN):

  linkedin me --fields id,localizedFirstName,localizedLastName
  linkedin shares list --type organization --id 2414183

Application credentials are read from ~/.linkedin/config.yaml, LINKEDIN_*
environment variables, or flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		settings = s

		var l *zap.Logger
		if s.Verbose {
			l, err = zap.NewDevelopment()
		} else {
			l, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l
		if s.File != "" {
			logger.Debug("config loaded", zap.String("file", s.File))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if settings != nil && settings.Verbose {
			logRequestCounts()
		}
		_ = logger.Sync()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ~/.linkedin/config.yaml)")
	pf.String("client-id", "", "OAuth application client id")
	pf.String("client-secret", "", "OAuth application client secret")
	pf.String("redirect-uri", "", "OAuth redirect URI registered for the application")
	pf.String("token", "", "access token for API calls (default $LINKEDIN_ACCESS_TOKEN)")
	pf.Duration("timeout", 0, "HTTP timeout per request (default 10s)")
	pf.Float64("rate-limit", 0, "maximum requests per second; 0 disables pacing")
	pf.BoolP("verbose", "v", false, "log each request and a summary of response statuses")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(stdout, "linkedin", version)
	},
}

// ── Client construction ──────────────────────────────────────────────────────

func newClient() (*linkedin.Client, error) {
	var tr linkedin.Transport = linkedin.NewHTTPTransport(&http.Client{Timeout: settings.Timeout})
	if settings.RateLimitRPS > 0 {
		tr = transport.Pace(tr, settings.RateLimitRPS, 1)
	}
	tr = transport.Instrument(tr, metrics)

	c, err := linkedin.New(settings.App,
		linkedin.WithTransport(tr),
		linkedin.WithLogger(logger),
	)
	if err != nil {
		var cfgErr *linkedin.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("%w (set them in %s or via LINKEDIN_* env vars)", err, configHint())
		}
		return nil, err
	}
	return c, nil
}

func configHint() string {
	if settings.File != "" {
		return settings.File
	}
	return "~/.linkedin/config.yaml"
}

func accessToken() (string, error) {
	if settings.AccessToken == "" {
		return "", errors.New("no access token: pass --token, set LINKEDIN_ACCESS_TOKEN, or run 'linkedin login'")
	}
	return settings.AccessToken, nil
}

// ── Output ───────────────────────────────────────────────────────────────────

// printResult writes raw as indented JSON. A nil result is the API's 404.
func printResult(raw json.RawMessage) error {
	if raw == nil {
		fmt.Fprintln(stderr, "not found")
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func logRequestCounts() {
	families, err := registry.Gather()
	if err != nil {
		logger.Warn("gather request metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		if mf.GetName() != "linkedin_client_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			fields := make([]zap.Field, 0, len(m.GetLabel())+1)
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			fields = append(fields, zap.Float64("count", m.GetCounter().GetValue()))
			logger.Info("requests", fields...)
		}
	}
}
