package config

import (
	"fmt"
	"net/http"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	if err := c.Meals.validate(); err != nil {
		return fmt.Errorf("meals: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if err := c.CORS.validate(); err != nil {
		return fmt.Errorf("cors: %w", err)
	}

	return nil
}

// validate rejects a wildcard origin together with credentials: the
// middleware echoes the caller's origin, so any site could read a
// session's meals with the cookie attached.
func (c *CORSConfig) validate() error {
	if !c.AllowCredentials {
		return nil
	}
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if strings.TrimSpace(o) == "*" {
			return fmt.Errorf("allow_credentials=true requires an explicit allowed_origins list, not *")
		}
	}
	return nil
}

func (s *SessionConfig) validate() error {
	if strings.TrimSpace(s.CookieName) == "" {
		return fmt.Errorf("cookie_name is required")
	}
	if !strings.HasPrefix(s.CookiePath, "/") {
		return fmt.Errorf("cookie_path must start with / (got %q)", s.CookiePath)
	}
	if s.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", s.TTL)
	}
	mode := s.SameSiteMode()
	if mode == http.SameSiteDefaultMode {
		return fmt.Errorf("same_site must be one of lax, strict, none (got %q)", s.SameSite)
	}
	if mode == http.SameSiteNoneMode && !s.Secure {
		return fmt.Errorf("same_site=none requires secure=true")
	}
	return nil
}

func (m *MealsConfig) validate() error {
	if !strings.HasPrefix(m.RoutePrefix, "/") || strings.HasSuffix(m.RoutePrefix, "/") {
		return fmt.Errorf("route_prefix must start with / and not end with / (got %q)", m.RoutePrefix)
	}
	if m.MaxNameLength <= 0 {
		return fmt.Errorf("max_name_length must be > 0 (got %d)", m.MaxNameLength)
	}
	if m.MaxDescriptionLength <= 0 {
		return fmt.Errorf("max_description_length must be > 0 (got %d)", m.MaxDescriptionLength)
	}
	return nil
}
