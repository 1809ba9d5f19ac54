package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type StoreDriver string

const (
	DriverSQLite StoreDriver = "sqlite"
	DriverMongo  StoreDriver = "mongo"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	LogLevel        slog.Level

	// Storage
	StoreDriver    StoreDriver
	SQLitePath     string
	MongoURI       string
	MongoDatabase  string
	WrongRetention time.Duration // 0 keeps wrong questions forever (mongo only)

	// HTTP
	RateLimitRequests int
	RateLimitWindow   time.Duration
	GzipMinSize       int

	AdminName string // seeded on startup when set
}

// Load reads .env (if present) and the environment. Invalid values are fatal.
func Load() *Config {
	_ = godotenv.Load()
	cfg, err := LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// LoadFromEnv builds a Config from environment variables only.
func LoadFromEnv() (*Config, error) {
	var errs []string
	fail := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	cfg := &Config{
		ServerAddress: getenvDefault("SERVER_ADDRESS", ":5000"),
		SQLitePath:    getenvDefault("SQLITE_PATH", "examprep.db"),
		MongoURI:      getenvDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenvDefault("MONGO_DATABASE", "examprep"),
		AdminName:     strings.TrimSpace(os.Getenv("ADMIN_NAME")),
	}

	var err error
	cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	fail(err)
	cfg.WrongRetention, err = getDuration("WRONG_QUESTION_RETENTION", 0)
	fail(err)
	cfg.RateLimitWindow, err = getDuration("RATE_LIMIT_WINDOW", 15*time.Minute)
	fail(err)
	cfg.RateLimitRequests, err = getPositiveInt("RATE_LIMIT_REQUESTS", 100)
	fail(err)
	cfg.GzipMinSize, err = getPositiveInt("GZIP_MIN_SIZE", 1024)
	fail(err)

	if err := cfg.LogLevel.UnmarshalText([]byte(getenvDefault("LOG_LEVEL", "info"))); err != nil {
		fail(fmt.Errorf("LOG_LEVEL: %w", err))
	}

	cfg.StoreDriver = StoreDriver(strings.ToLower(getenvDefault("STORE_DRIVER", string(DriverSQLite))))
	if cfg.StoreDriver != DriverSQLite && cfg.StoreDriver != DriverMongo {
		fail(fmt.Errorf("STORE_DRIVER=%q must be sqlite or mongo", cfg.StoreDriver))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func getDuration(k string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s=%q is not a valid duration", k, v)
	}
	return d, nil
}

func getPositiveInt(k string, fallback int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s=%q must be a positive integer", k, v)
	}
	return n, nil
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
