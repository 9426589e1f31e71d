package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Rubric RubricConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// RubricConfig holds the tunable scoring thresholds. Keyword lists, filler
// patterns and weights are fixed in the scoring package; only the numeric
// knobs are environment-tunable.
type RubricConfig struct {
	// GrammarPenalty scales errors-per-sentence before clamping.
	GrammarPenalty float64 `envconfig:"RUBRIC_GRAMMAR_PENALTY" default:"0.5"`
	// FillerPenalty scales fillers-per-word before clamping.
	FillerPenalty float64 `envconfig:"RUBRIC_FILLER_PENALTY" default:"2.0"`
	// MinWordsForTTR is the word count below which vocabulary richness is
	// treated as low-confidence.
	MinWordsForTTR int `envconfig:"RUBRIC_MIN_WORDS_FOR_TTR" default:"20"`
	// NeutralRateScore is the speech-rate sub-score used when no duration
	// is supplied.
	NeutralRateScore float64 `envconfig:"RUBRIC_NEUTRAL_RATE_SCORE" default:"0.8"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Rubric.GrammarPenalty < 0 {
		return fmt.Errorf("RUBRIC_GRAMMAR_PENALTY must be >= 0, got %f", c.Rubric.GrammarPenalty)
	}
	if c.Rubric.FillerPenalty < 0 {
		return fmt.Errorf("RUBRIC_FILLER_PENALTY must be >= 0, got %f", c.Rubric.FillerPenalty)
	}
	if c.Rubric.NeutralRateScore < 0 || c.Rubric.NeutralRateScore > 1 {
		return fmt.Errorf("RUBRIC_NEUTRAL_RATE_SCORE must be in [0,1], got %f", c.Rubric.NeutralRateScore)
	}
	return nil
}

// IsDevelopment returns true when running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}
