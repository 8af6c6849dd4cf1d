package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be within 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %s)", c.Database.StatementTimeout)
	}

	if c.Server.WriteRateLimit < 0 {
		return fmt.Errorf("server.write_rate_limit must be >= 0 (got %d)", c.Server.WriteRateLimit)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Extractor.validate(); err != nil {
		return fmt.Errorf("extractor: %w", err)
	}

	if err := c.Notification.validate(); err != nil {
		return fmt.Errorf("notification: %w", err)
	}

	if c.Matching.RescoreConcurrency <= 0 {
		return fmt.Errorf("matching: rescore_concurrency must be > 0 (got %d)", c.Matching.RescoreConcurrency)
	}

	if err := c.Matching.Policy().Validate(); err != nil {
		return fmt.Errorf("matching: %w", err)
	}

	return nil
}

func (e *ExtractorConfig) validate() error {
	switch e.Driver {
	case "hashing":
		if e.Dimensions <= 0 {
			return fmt.Errorf("dimensions must be > 0 (got %d)", e.Dimensions)
		}
	case "http":
		if err := validateURL(e.BaseURL); err != nil {
			return fmt.Errorf("base_url: %w", err)
		}
	default:
		return fmt.Errorf("unknown driver %q (want hashing or http)", e.Driver)
	}
	if e.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", e.Timeout)
	}
	return nil
}

func (n *NotificationConfig) validate() error {
	switch n.Driver {
	case "log":
	case "webhook":
		if err := validateURL(n.WebhookURL); err != nil {
			return fmt.Errorf("webhook_url: %w", err)
		}
	default:
		return fmt.Errorf("unknown driver %q (want log or webhook)", n.Driver)
	}
	if n.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", n.Workers)
	}
	if n.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", n.QueueSize)
	}
	if n.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", n.Timeout)
	}
	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
