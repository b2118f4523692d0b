// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
}

// UpstreamConfig holds settings for the external echo service.
type UpstreamConfig struct {
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
	// RetryMalformed re-issues a call once when the echo body cannot be
	// decoded. Off by default: a malformed echo response is terminal.
	RetryMalformed bool `mapstructure:"retry_malformed"`
}

// GetTimeout returns the per-call deadline for outbound echo requests.
func (u UpstreamConfig) GetTimeout() time.Duration {
	return time.Duration(u.Timeout) * time.Millisecond
}

// ChainConfig holds settings for the step-chain orchestrator.
type ChainConfig struct {
	Steps int `mapstructure:"steps"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
