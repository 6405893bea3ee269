package config

import (
	"fmt"
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

	// Cashier credentials for /auth/login. The password is stored as a
	// bcrypt hash, never plaintext.
	CashierUsername     string
	CashierPasswordHash string

	// ReceiptIDPrefix is the prefix of the sequential transaction identifier,
	// e.g. "AS-" producing AS-2403001.
	ReceiptIDPrefix string
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
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "pos-backend")
	viper.SetDefault("CASHIER_USERNAME", "kasir")
	viper.SetDefault("CASHIER_PASSWORD_HASH", "")
	viper.SetDefault("RECEIPT_ID_PREFIX", "AS-")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	expiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DURATION %q: %w", expiryStr, err)
	}
	cfg.JWTExpiryDuration = expiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.CashierUsername = viper.GetString("CASHIER_USERNAME")
	cfg.CashierPasswordHash = viper.GetString("CASHIER_PASSWORD_HASH")
	if cfg.CashierPasswordHash == "" {
		log.Println("Warning: CASHIER_PASSWORD_HASH not set. Login will reject all credentials.")
	}

	cfg.ReceiptIDPrefix = viper.GetString("RECEIPT_ID_PREFIX")

	return cfg, nil
}
