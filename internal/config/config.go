// Package config loads the application configuration from an optional
// YAML file plus WTP_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type OIDCConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	IssuerURL    string `mapstructure:"issuer_url"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

type Config struct {
	Addr            string     `mapstructure:"addr"`
	DatabaseURL     string     `mapstructure:"database_url"`
	WebDir          string     `mapstructure:"web_dir"`
	SessionTTLHours int        `mapstructure:"session_ttl_hours"`
	BcryptCost      int        `mapstructure:"bcrypt_cost"`
	OIDC            OIDCConfig `mapstructure:"oidc"`
}

// Load reads configuration from path (or "config.yaml" in the working
// directory when path is empty). A missing file is not an error; every
// key can come from the environment instead, e.g. WTP_DATABASE_URL or
// WTP_OIDC_CLIENT_ID.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("web_dir", "")
	v.SetDefault("session_ttl_hours", 24)
	v.SetDefault("bcrypt_cost", 0)
	v.SetDefault("oidc.enabled", false)
	v.SetDefault("oidc.issuer_url", "")
	v.SetDefault("oidc.client_id", "")
	v.SetDefault("oidc.client_secret", "")
	v.SetDefault("oidc.redirect_url", "")

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("WTP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if c.OIDC.Enabled && (c.OIDC.IssuerURL == "" || c.OIDC.ClientID == "" || c.OIDC.RedirectURL == "") {
		return nil, errors.New("oidc enabled but issuer_url, client_id or redirect_url missing")
	}
	return &c, nil
}
