package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains all runtime settings for the companion service.
type Config struct {
	BindAddr         string        `env:"APP_BIND_ADDR" envDefault:":8080"`
	ShutdownTimeout  time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
	MetricsNamespace string        `env:"APP_METRICS_NAMESPACE" envDefault:"netra"`
	AllowAnyOrigin   bool          `env:"APP_ALLOW_ANY_ORIGIN" envDefault:"false"`
	Debug            bool          `env:"APP_DEBUG" envDefault:"false"`

	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"60m"`
	JanitorInterval time.Duration `env:"SESSION_JANITOR_INTERVAL" envDefault:"30s"`

	// Conversation flow thresholds. The exact values were tuned by hand in
	// earlier iterations, so every one of them stays configurable.
	MinClarificationTurns int     `env:"MIN_CLARIFICATION_TURNS" envDefault:"3"`
	MaxClarificationTurns int     `env:"MAX_CLARIFICATION_TURNS" envDefault:"10"`
	MinQuotes             int     `env:"MIN_QUOTES" envDefault:"1"`
	StrictMinQuotes       int     `env:"STRICT_MIN_QUOTES" envDefault:"3"`
	ReadinessThreshold    float64 `env:"READINESS_THRESHOLD" envDefault:"0.8"`
	MaxMessageChars       int     `env:"MAX_MESSAGE_CHARS" envDefault:"4000"`
	DisengageMaxChars     int     `env:"DISENGAGE_MAX_CHARS" envDefault:"12"`

	BrainMode    string        `env:"BRAIN_MODE" envDefault:"auto"`
	BrainHTTPURL string        `env:"BRAIN_HTTP_URL"`
	BrainTimeout time.Duration `env:"BRAIN_TIMEOUT" envDefault:"10s"`

	DatabaseURL string `env:"DATABASE_URL"`

	CrisisDetection bool `env:"CRISIS_DETECTION" envDefault:"true"`
}

// Load parses environment variables and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.SessionTTL < 5*time.Second {
		return Config{}, fmt.Errorf("SESSION_TTL must be at least 5s")
	}
	if cfg.MinClarificationTurns < 1 {
		return Config{}, fmt.Errorf("MIN_CLARIFICATION_TURNS must be positive")
	}
	if cfg.MaxClarificationTurns < cfg.MinClarificationTurns {
		return Config{}, fmt.Errorf("MAX_CLARIFICATION_TURNS must be >= MIN_CLARIFICATION_TURNS")
	}
	if cfg.MinQuotes < 0 || cfg.StrictMinQuotes < 0 {
		return Config{}, fmt.Errorf("quote thresholds must be >= 0")
	}
	if cfg.ReadinessThreshold <= 0 || cfg.ReadinessThreshold > 1 {
		return Config{}, fmt.Errorf("READINESS_THRESHOLD must be in (0, 1]")
	}
	if cfg.MaxMessageChars <= 0 {
		return Config{}, fmt.Errorf("MAX_MESSAGE_CHARS must be positive")
	}
	if cfg.DisengageMaxChars <= 0 {
		return Config{}, fmt.Errorf("DISENGAGE_MAX_CHARS must be positive")
	}
	if cfg.BrainTimeout <= 0 {
		return Config{}, fmt.Errorf("BRAIN_TIMEOUT must be positive")
	}

	return cfg, nil
}
