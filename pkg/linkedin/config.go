package linkedin

// Default endpoints. APIHost+APIResource form the REST base URL.
const (
	DefaultAPIHost     = "https://api.linkedin.com"
	DefaultAPIResource = "/v2"
	DefaultOAuthHost   = "https://www.linkedin.com/oauth/v2"
)

// Config holds the OAuth application credentials and endpoint overrides.
// ClientID, ClientSecret and RedirectURI are mandatory; empty endpoint
// fields fall back to the Default* constants.
type Config struct {
	ClientID     string `yaml:"client_id" json:"client_id" mapstructure:"client_id"`
	ClientSecret string `yaml:"client_secret" json:"client_secret" mapstructure:"client_secret"`
	RedirectURI  string `yaml:"redirect_uri" json:"redirect_uri" mapstructure:"redirect_uri"`

	// APIHost is the scheme and host of the REST API, e.g. "https://api.linkedin.com".
	APIHost string `yaml:"api_host" json:"api_host" mapstructure:"api_host"`
	// APIResource is the versioned path prefix appended to APIHost, e.g. "/v2".
	APIResource string `yaml:"api_resource" json:"api_resource" mapstructure:"api_resource"`
	// OAuthHost is the base of the authorization and accessToken endpoints.
	OAuthHost string `yaml:"oauth_host" json:"oauth_host" mapstructure:"oauth_host"`
}

// withDefaults returns a copy of c with empty endpoint fields defaulted.
func (c Config) withDefaults() Config {
	if c.APIHost == "" {
		c.APIHost = DefaultAPIHost
	}
	if c.APIResource == "" {
		c.APIResource = DefaultAPIResource
	}
	if c.OAuthHost == "" {
		c.OAuthHost = DefaultOAuthHost
	}
	return c
}

// Validate reports every missing credential field in a single ConfigError.
func (c Config) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if c.RedirectURI == "" {
		missing = append(missing, "redirect_uri")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// APIBase returns the REST base URL, e.g. "https://api.linkedin.com/v2".
func (c Config) APIBase() string {
	c = c.withDefaults()
	return c.APIHost + c.APIResource
}
