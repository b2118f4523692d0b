// internal/upstream/config.go
package upstream

import (
	"time"

	"stepchain/internal/common/config"
)

// Config holds the echo service endpoint and call policy.
type Config struct {
	URL            string
	Timeout        time.Duration
	RetryMalformed bool
}

func NewConfig(cfg config.UpstreamConfig) *Config {
	return &Config{
		URL:            cfg.URL,
		Timeout:        cfg.GetTimeout(),
		RetryMalformed: cfg.RetryMalformed,
	}
}
