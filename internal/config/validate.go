package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	return nil
}

func (s *SessionConfig) validate() error {
	if s.HistorySize < 1 {
		return fmt.Errorf("history_size must be >= 1 (got %d)", s.HistorySize)
	}
	if s.OverviewLimit < 1 {
		return fmt.Errorf("overview_limit must be >= 1 (got %d)", s.OverviewLimit)
	}
	return nil
}
