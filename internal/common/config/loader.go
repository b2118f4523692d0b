// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort            = 3000
	defaultUpstreamURL     = "https://httpbin.org/post"
	defaultUpstreamTimeout = 10000
	defaultChainSteps      = 3
)

func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	// Enable ENV override like UPSTREAM_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := overridePort(&cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// overridePort applies the PORT environment variable when set. A value that
// is not a textual integer aborts startup with a descriptive error.
func overridePort(cfg *Config) error {
	val := os.Getenv("PORT")
	if val == "" {
		return nil
	}
	port, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("PORT must be a number, got %q: %w", val, err)
	}
	cfg.Server.Port = port
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "stepchain"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}
	if cfg.Upstream.URL == "" {
		cfg.Upstream.URL = defaultUpstreamURL
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = defaultUpstreamTimeout
	}
	if cfg.Chain.Steps == 0 {
		cfg.Chain.Steps = defaultChainSteps
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range [1, 65535]", cfg.Server.Port)
	}
	if !strings.HasPrefix(cfg.Upstream.URL, "http://") && !strings.HasPrefix(cfg.Upstream.URL, "https://") {
		return fmt.Errorf("upstream url %q is not an http(s) URL", cfg.Upstream.URL)
	}
	if cfg.Chain.Steps < 1 {
		return fmt.Errorf("chain steps must be at least 1, got %d", cfg.Chain.Steps)
	}
	return nil
}
