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

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if err := c.Inbox.validate(); err != nil {
		return fmt.Errorf("inbox: %w", err)
	}

	return nil
}

func (i *InboxConfig) validate() error {
	caps := []struct {
		name  string
		value int
	}{
		{"sent_notes_limit", i.SentNotesLimit},
		{"mention_scan_window", i.MentionScanWindow},
		{"sent_answers_limit", i.SentAnswersLimit},
		{"received_answers_limit", i.ReceivedAnswersLimit},
		{"membership_entities_limit", i.MembershipEntitiesLimit},
		{"membership_answers_limit", i.MembershipAnswersLimit},
		{"default_page_size", i.DefaultPageSize},
		{"max_page_size", i.MaxPageSize},
		{"body_preview_length", i.BodyPreviewLength},
	}
	for _, c := range caps {
		if c.value <= 0 {
			return fmt.Errorf("%s must be > 0 (got %d)", c.name, c.value)
		}
	}

	if i.DefaultPageSize > i.MaxPageSize {
		return fmt.Errorf("default_page_size (%d) must not exceed max_page_size (%d)", i.DefaultPageSize, i.MaxPageSize)
	}

	return nil
}
