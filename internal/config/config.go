// Package config loads CLI settings from a YAML file, LINKEDIN_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmerrifield20/linkedin-rest/pkg/linkedin"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// LINKEDIN_CLIENT_ID or LINKEDIN_CALLBACK_ADDR.
const EnvPrefix = "LINKEDIN"

// Settings is the resolved CLI configuration.
type Settings struct {
	App linkedin.Config

	// AccessToken is used by API commands when --token is not given.
	AccessToken string
	Timeout     time.Duration
	// RateLimitRPS paces outgoing requests when > 0.
	RateLimitRPS float64
	CallbackAddr string
	Scopes       []string
	Verbose      bool

	// File is the config file that was read, or "" when none was found.
	File string
}

// Load reads configuration. cfgFile overrides the default search path
// ($HOME/.linkedin/config.yaml, ./config.yaml). flags, when non-nil, are
// bound by name so an explicitly set flag wins over file and environment.
func Load(cfgFile string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault("api_host", linkedin.DefaultAPIHost)
	v.SetDefault("api_resource", linkedin.DefaultAPIResource)
	v.SetDefault("oauth_host", linkedin.DefaultOAuthHost)
	v.SetDefault("timeout", "10s")
	v.SetDefault("rate_limit_rps", 0)
	v.SetDefault("callback.addr", "127.0.0.1:8976")
	v.SetDefault("scopes", []string{"r_liteprofile", "r_emailaddress"})

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".linkedin"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, flag := range map[string]string{
			"client_id":      "client-id",
			"client_secret":  "client-secret",
			"redirect_uri":   "redirect-uri",
			"access_token":   "token",
			"timeout":        "timeout",
			"rate_limit_rps": "rate-limit",
			"callback.addr":  "callback-addr",
			"verbose":        "verbose",
		} {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		return nil, fmt.Errorf("parse timeout: %w", err)
	}

	return &Settings{
		App: linkedin.Config{
			ClientID:     v.GetString("client_id"),
			ClientSecret: v.GetString("client_secret"),
			RedirectURI:  v.GetString("redirect_uri"),
			APIHost:      v.GetString("api_host"),
			APIResource:  v.GetString("api_resource"),
			OAuthHost:    v.GetString("oauth_host"),
		},
		AccessToken:  v.GetString("access_token"),
		Timeout:      timeout,
		RateLimitRPS: v.GetFloat64("rate_limit_rps"),
		CallbackAddr: v.GetString("callback.addr"),
		Scopes:       v.GetStringSlice("scopes"),
		Verbose:      v.GetBool("verbose"),
		File:         v.ConfigFileUsed(),
	}, nil
}
