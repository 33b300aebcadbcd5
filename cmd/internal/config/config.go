package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port        string
	StoreDriver string
	DBURI       string
	DBUser      string
	DBPass      string
	DBHost      string
	DBName      string
	SQLitePath  string
	TokenSecret string
	TokenTTL    time.Duration
	LogLevel    string
}

// Load reads a .env file when one is present, then builds and validates a
// Config from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables, applying defaults.
// It does not validate the result.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		DBURI:       os.Getenv("DB_URI"),
		DBUser:      os.Getenv("DB_USER"),
		DBPass:      os.Getenv("DB_PASS"),
		DBHost:      os.Getenv("DB_HOST"),
		DBName:      getEnv("DB_NAME", "doctorsPortal"),
		SQLitePath:  getEnv("SQLITE_PATH", "./database.db"),
		TokenSecret: os.Getenv("ACCESS_TOKEN"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("parse TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TokenSecret == "" {
		return errors.New("ACCESS_TOKEN is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}

	switch c.StoreDriver {
	case DriverMongo:
		if c.DBURI == "" && (c.DBUser == "" || c.DBPass == "" || c.DBHost == "") {
			return errors.New("DB_URI or DB_USER, DB_PASS and DB_HOST are required for the mongo driver")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

// MongoURI returns DB_URI when set, otherwise an Atlas SRV URI built from
// the credentials.
func (c *Config) MongoURI() string {
	if c.DBURI != "" {
		return c.DBURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.DBHost)
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Level maps LogLevel to a gommon level, falling back to INFO.
func (c *Config) Level() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
