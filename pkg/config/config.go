package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backend selectors.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	StoreBackend string // "postgres" (hosted) or "sqlite" (on-device)
	DatabaseURL  string
	SQLitePath   string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	ShopUsername     string
	ShopPasswordHash string // bcrypt hash of the operator password

	LoginRateLimit string // limiter format, e.g. "10-M"
	APIRateLimit   string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Defaults suit local development; production deployments must
// set JWT_SECRET and the shop credentials explicitly.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("STORE_BACKEND", BackendPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "millbook.db")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "millbook")
	viper.SetDefault("SHOP_USERNAME", "operator")
	viper.SetDefault("SHOP_PASSWORD_HASH", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("API_RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{
		StoreBackend:     viper.GetString("STORE_BACKEND"),
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		SQLitePath:       viper.GetString("SQLITE_PATH"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		JWTIssuer:        viper.GetString("JWT_ISSUER"),
		ShopUsername:     viper.GetString("SHOP_USERNAME"),
		ShopPasswordHash: viper.GetString("SHOP_PASSWORD_HASH"),
		LoginRateLimit:   viper.GetString("LOGIN_RATE_LIMIT"),
		APIRateLimit:     viper.GetString("API_RATE_LIMIT"),
	}

	switch cfg.StoreBackend {
	case BackendPostgres, BackendSQLite:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: must be %q or %q", cfg.StoreBackend, BackendPostgres, BackendSQLite)
	}

	if cfg.StoreBackend == BackendPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	expiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		expiry = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", expiryStr, expiry)
	}
	cfg.JWTExpiryDuration = expiry

	if cfg.ShopPasswordHash == "" {
		log.Println("Warning: SHOP_PASSWORD_HASH not set. Login will reject every credential.")
	}

	return cfg, nil
}
