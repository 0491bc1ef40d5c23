package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the runtime configuration of the backend. It is read from the
// environment, with a .env file loaded first if one exists.
type Config struct {
	// DBPath is the path of the SQLite database file.
	DBPath string `koanf:"db_path" validate:"required"`

	// Port is the port the API listens on.
	Port uint `koanf:"port" validate:"min=1,max=65535"`

	// GinMode is the mode gin runs in: debug, release or test.
	GinMode string `koanf:"gin_mode" validate:"oneof=debug release test"`

	// LogFormat switches between JSON logs and human readable ones.
	// When empty, human readable logs are used in debug mode, JSON otherwise.
	LogFormat string `koanf:"log_format" validate:"omitempty,oneof=json human"`

	// APIURL is the base URL the API is served on. It is used to build the
	// links in the API root. When empty, links are relative.
	APIURL string `koanf:"api_url" validate:"omitempty,url"`

	// CORSAllowOrigins are the origins allowed for cross-origin requests,
	// separated by spaces.
	CORSAllowOrigins string `koanf:"cors_allow_origins"`

	// EnablePprof enables the performance profiling endpoints under
	// /debug/pprof.
	EnablePprof bool `koanf:"enable_pprof"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		DBPath:  "data/cashcard.db",
		Port:    8080,
		GinMode: "release",
	}

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", strings.ToLower), nil)
	if err != nil {
		return Config{}, fmt.Errorf("error reading environment: %w", err)
	}

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("error unmarshaling configuration: %w", err)
	}

	err = validator.New().Struct(cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// BaseURL returns APIURL in parsed form. An empty APIURL parses to an empty
// URL, which makes all links relative.
func (c Config) BaseURL() *url.URL {
	// APIURL is validated in Load, this cannot fail
	u, _ := url.Parse(c.APIURL)
	return u
}
