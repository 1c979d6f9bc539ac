package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Vision extraction collaborator
	GeminiAPIKey      string
	GeminiModel       string
	ExtractionTimeout time.Duration

	// Rule learning keyword derivation: the description segment before this
	// separator becomes the learned keyword. Heuristic, hence configurable.
	RuleKeywordSeparator string

	// Requests per minute allowed on the scan route group.
	ScanRateLimitPerMin int
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "kakeibo")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("EXTRACTION_TIMEOUT", "30s")
	viper.SetDefault("RULE_KEYWORD_SEPARATOR", " ")
	viper.SetDefault("SCAN_RATE_LIMIT_PER_MIN", 10)

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		jwtExpiry = 24 * time.Hour
		log.Printf("Warning: Invalid JWT_EXPIRY_DURATION. Defaulting to %s.\n", jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Scan endpoints will fail.")
	}
	cfg.GeminiModel = viper.GetString("GEMINI_MODEL")

	extractionTimeout, err := time.ParseDuration(viper.GetString("EXTRACTION_TIMEOUT"))
	if err != nil {
		extractionTimeout = 30 * time.Second
		log.Printf("Warning: Invalid EXTRACTION_TIMEOUT. Defaulting to %s.\n", extractionTimeout)
	}
	cfg.ExtractionTimeout = extractionTimeout

	cfg.RuleKeywordSeparator = viper.GetString("RULE_KEYWORD_SEPARATOR")
	cfg.ScanRateLimitPerMin = viper.GetInt("SCAN_RATE_LIMIT_PER_MIN")

	return cfg, nil
}
