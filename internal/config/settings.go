package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Auth type constants
const (
	AuthTypeNone   = "none"
	AuthTypeBasic  = "basic"
	AuthTypeAPIKey = "apikey"
)

// DefaultMaxResults is the result cap applied when none is configured.
const DefaultMaxResults = 3

// SearchSettings configuration for corpus loading and ranking
type SearchSettings struct {
	// DataDir overrides the embedded corpus tables with an on-disk copy.
	// Empty means the tables compiled into the binary.
	DataDir    string `mapstructure:"data_dir"`
	MaxResults int    `mapstructure:"max_results"`
}

// DesignSystemSettings configuration for document generation and persistence
type DesignSystemSettings struct {
	ResultsPerCategory int    `mapstructure:"results_per_category"`
	OutputDir          string `mapstructure:"output_dir"`
}

// BasicAuthSettings configuration for basic auth on the SSE transport
type BasicAuthSettings struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// AuthSettings configuration for serve-mode authentication
type AuthSettings struct {
	Type    string            `mapstructure:"type"` // AuthTypeNone, AuthTypeBasic, or AuthTypeAPIKey
	Basic   BasicAuthSettings `mapstructure:"basic"`
	APIKeys []string          `mapstructure:"api_keys"`
}

// ServeSettings configuration for the MCP serve mode
type ServeSettings struct {
	Transport string       `mapstructure:"transport"`
	Host      string       `mapstructure:"host"`
	Port      int          `mapstructure:"port"`
	Auth      AuthSettings `mapstructure:"auth"`
}

// Settings application settings
type Settings struct {
	Search       SearchSettings       `mapstructure:"search"`
	DesignSystem DesignSystemSettings `mapstructure:"design_system"`
	Serve        ServeSettings        `mapstructure:"serve"`
}

// LoadSettings loads settings from environment variables and optional .env file
func LoadSettings() (*Settings, error) {
	return LoadSettingsWithFlags(nil)
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides.
// Priority: CLI flags > environment variables > .env file > defaults.
// If flags is nil, only env vars and defaults are used.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	// Default values
	v.SetDefault("search.data_dir", "")
	v.SetDefault("search.max_results", DefaultMaxResults)
	v.SetDefault("design_system.results_per_category", DefaultMaxResults)
	v.SetDefault("design_system.output_dir", "")
	v.SetDefault("serve.transport", "stdio")
	v.SetDefault("serve.host", "0.0.0.0")
	v.SetDefault("serve.port", 8080)
	v.SetDefault("serve.auth.type", AuthTypeNone)

	// Environment variables
	v.SetEnvPrefix("UXGREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific env vars for nested config
	_ = v.BindEnv("search.data_dir", "UXGREP_SEARCH_DATA_DIR")
	_ = v.BindEnv("search.max_results", "UXGREP_SEARCH_MAX_RESULTS")
	_ = v.BindEnv("design_system.results_per_category", "UXGREP_DESIGN_SYSTEM_RESULTS_PER_CATEGORY")
	_ = v.BindEnv("design_system.output_dir", "UXGREP_DESIGN_SYSTEM_OUTPUT_DIR")
	_ = v.BindEnv("serve.transport", "UXGREP_SERVE_TRANSPORT")
	_ = v.BindEnv("serve.host", "UXGREP_SERVE_HOST")
	_ = v.BindEnv("serve.port", "UXGREP_SERVE_PORT")
	_ = v.BindEnv("serve.auth.type", "UXGREP_SERVE_AUTH_TYPE")
	_ = v.BindEnv("serve.auth.basic.username", "UXGREP_SERVE_AUTH_BASIC_USERNAME")
	_ = v.BindEnv("serve.auth.basic.password", "UXGREP_SERVE_AUTH_BASIC_PASSWORD")
	_ = v.BindEnv("serve.auth.api_keys", "UXGREP_SERVE_AUTH_API_KEYS")

	// Bind CLI flags if provided (highest priority). Search and serve
	// commands register different flag sets, so bind only what exists.
	if flags != nil {
		bindFlag(v, flags, "search.data_dir", "data-dir")
		bindFlag(v, flags, "search.max_results", "max-results")
		bindFlag(v, flags, "design_system.output_dir", "output-dir")
		bindFlag(v, flags, "serve.transport", "transport")
		bindFlag(v, flags, "serve.host", "host")
		bindFlag(v, flags, "serve.port", "port")
		bindFlag(v, flags, "serve.auth.type", "auth-type")
		bindFlag(v, flags, "serve.auth.basic.username", "auth-basic-username")
		bindFlag(v, flags, "serve.auth.basic.password", "auth-basic-password")
		bindFlag(v, flags, "serve.auth.api_keys", "auth-api-keys")
	}

	// Helper to look for .env file
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if .env doesn't exist

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	// API keys provided via env var arrive as one comma-separated string
	if len(settings.Serve.Auth.APIKeys) == 1 && strings.Contains(settings.Serve.Auth.APIKeys[0], ",") {
		settings.Serve.Auth.APIKeys = strings.Split(settings.Serve.Auth.APIKeys[0], ",")
	}
	for i := range settings.Serve.Auth.APIKeys {
		settings.Serve.Auth.APIKeys[i] = strings.TrimSpace(settings.Serve.Auth.APIKeys[i])
	}

	return &settings, nil
}

// bindFlag binds a viper key to a pflag when the flag is registered.
func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) {
	if f := flags.Lookup(name); f != nil {
		_ = v.BindPFlag(key, f)
	}
}

// ValidateSettings checks for invalid or conflicting configurations.
func ValidateSettings(s *Settings) error {
	if s.Search.MaxResults < 1 {
		return errors.New("max-results must be a positive integer")
	}
	if s.DesignSystem.ResultsPerCategory < 1 {
		return errors.New("results-per-category must be a positive integer")
	}

	switch s.Serve.Transport {
	case "stdio", "sse":
		// valid
	default:
		return errors.New("transport must be 'stdio' or 'sse', got: " + s.Serve.Transport)
	}

	return validateAuthSettings(&s.Serve.Auth)
}

// validateAuthSettings checks for mutually exclusive or incomplete auth config.
func validateAuthSettings(a *AuthSettings) error {
	hasBasicCreds := a.Basic.Username != "" || a.Basic.Password != ""
	hasAPIKeys := len(a.APIKeys) > 0

	switch a.Type {
	case AuthTypeNone, "":
		if hasBasicCreds || hasAPIKeys {
			return errors.New("auth-type 'none' is incompatible with auth credentials")
		}
	case AuthTypeBasic:
		if hasAPIKeys {
			return errors.New("auth-type 'basic' is mutually exclusive with auth-api-keys")
		}
		if a.Basic.Username == "" || a.Basic.Password == "" {
			return errors.New("auth-type 'basic' requires both username and password")
		}
	case AuthTypeAPIKey:
		if hasBasicCreds {
			return errors.New("auth-type 'apikey' is mutually exclusive with basic auth credentials")
		}
		if !hasAPIKeys {
			return errors.New("auth-type 'apikey' requires at least one API key")
		}
	default:
		return errors.New("unknown auth-type: " + a.Type)
	}

	return nil
}
