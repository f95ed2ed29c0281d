package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Inbox    InboxConfig    `yaml:"inbox"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// RateLimitPerMinute caps feed requests per caller. Zero disables limiting.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// StatementTimeout is sent as the session statement_timeout.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"5s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"devtrack-inbox"`
}

// AuthConfig holds the settings needed to verify access tokens issued by
// the identity service.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"devtrack"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// InboxConfig bounds every source read of the activity feed. The caps are
// recall bounds: a candidate beyond a cap can never surface in the feed.
type InboxConfig struct {
	SentNotesLimit          int `yaml:"sent_notes_limit"          env:"INBOX_SENT_NOTES_LIMIT"          env-default:"500"`
	MentionScanWindow       int `yaml:"mention_scan_window"       env:"INBOX_MENTION_SCAN_WINDOW"       env-default:"3000"`
	SentAnswersLimit        int `yaml:"sent_answers_limit"        env:"INBOX_SENT_ANSWERS_LIMIT"        env-default:"500"`
	ReceivedAnswersLimit    int `yaml:"received_answers_limit"    env:"INBOX_RECEIVED_ANSWERS_LIMIT"    env-default:"500"`
	MembershipEntitiesLimit int `yaml:"membership_entities_limit" env:"INBOX_MEMBERSHIP_ENTITIES_LIMIT" env-default:"500"`
	MembershipAnswersLimit  int `yaml:"membership_answers_limit"  env:"INBOX_MEMBERSHIP_ANSWERS_LIMIT"  env-default:"1000"`
	DefaultPageSize         int `yaml:"default_page_size"         env:"INBOX_DEFAULT_PAGE_SIZE"         env-default:"20"`
	MaxPageSize             int `yaml:"max_page_size"             env:"INBOX_MAX_PAGE_SIZE"             env-default:"100"`
	BodyPreviewLength       int `yaml:"body_preview_length"       env:"INBOX_BODY_PREVIEW_LENGTH"       env-default:"200"`
}
