package cli

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/kenmoini/unifi-facts/api/controller"
	"github.com/kenmoini/unifi-facts/observability"
)

// envPrefix is the prefix for configuration environment variables:
// UNIFI_FACTS_BASE_URL, UNIFI_FACTS_USERNAME, and so on.
const envPrefix = "UNIFI_FACTS_"

// defaultConfigFiles are checked in the working directory when no
// --config flag is given.
var defaultConfigFiles = []string{"unifi-facts.yaml", "unifi-facts.yml"}

// Config is the resolved CLI configuration.
type Config struct {
	BaseURL  string `koanf:"base_url" validate:"required,url"`
	Username string `koanf:"username" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Site     string `koanf:"site"     validate:"required"`

	Insecure           bool `koanf:"insecure"`
	TimeoutSeconds     int  `koanf:"timeout_seconds" validate:"min=1"`
	RateLimitPerMinute int  `koanf:"rate_limit_per_minute"`

	LogLevel string `koanf:"log_level" validate:"oneof=trace debug info warn error disabled"`
}

// clientConfig converts the CLI configuration into a controller client
// configuration.
func (c *Config) clientConfig(logger observability.Logger) *controller.ClientConfig {
	return &controller.ClientConfig{
		BaseURL:            c.BaseURL,
		Username:           c.Username,
		Password:           c.Password,
		Site:               c.Site,
		InsecureSkipVerify: c.Insecure,
		Timeout:            time.Duration(c.TimeoutSeconds) * time.Second,
		RateLimitPerMinute: c.RateLimitPerMinute,
		Logger:             logger,
	}
}

// findConfigFile picks the config file to use.
// Priority: explicit path > unifi-facts.yaml > unifi-facts.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range defaultConfigFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// LoadConfig resolves the CLI configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"site":                  controller.DefaultSite,
		"timeout_seconds":       int(controller.DefaultTimeout.Seconds()),
		"rate_limit_per_minute": controller.DefaultRateLimit,
		"log_level":             "warn",
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. Load config file
	if used := findConfigFile(cfgFile); used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", used)
		}
	}

	// 3. Load .env, then environment variables.
	// Transform: UNIFI_FACTS_BASE_URL -> base_url
	_ = godotenv.Load()
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")

			// The CLI flags are shorter than their config keys.
			switch key {
			case "timeout":
				key = "timeout_seconds"
			case "rate_limit":
				key = "rate_limit_per_minute"
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	// 5. Unmarshal and validate
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}
