package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var drivers = []string{DriverSQLite, DriverPostgres}

var (
	ErrUnknownDriver = errors.New("unsupported database driver")
	ErrInvalidURL    = errors.New("API_URL must be an absolute URL")
)

// Config holds all settings of the backend.
type Config struct {
	APIURL           *url.URL
	Port             string
	GinMode          string
	LogFormat        string // "human", "json" or empty for the mode dependent default
	CORSAllowOrigins []string
	EnablePprof      bool
	ShutdownTimeout  time.Duration
	Database         Database
}

// Database contains the settings for the storage client.
type Database struct {
	Driver       string
	DSN          string
	MaxOpenConns int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_URL", "http://localhost:8080")
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_FORMAT", "")
	v.SetDefault("CORS_ALLOW_ORIGINS", "")
	v.SetDefault("ENABLE_PPROF", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_DSN", "data/gorm.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
}

// Load reads the configuration from the environment.
//
// If dotenv is not empty and the file exists, it is loaded first. Variables
// that are already set in the environment take precedence over the file.
func Load(dotenv string) (Config, error) {
	if dotenv != "" {
		if _, err := os.Stat(dotenv); err == nil {
			if err := godotenv.Load(dotenv); err != nil {
				return Config{}, fmt.Errorf("could not load %s: %w", dotenv, err)
			}
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	apiURL, err := url.Parse(v.GetString("API_URL"))
	if err != nil || !apiURL.IsAbs() {
		return Config{}, fmt.Errorf("%w: '%s'", ErrInvalidURL, v.GetString("API_URL"))
	}

	driver := strings.ToLower(v.GetString("DB_DRIVER"))
	if !slices.Contains(drivers, driver) {
		return Config{}, fmt.Errorf("%w: '%s', use one of %s", ErrUnknownDriver, driver, strings.Join(drivers, ", "))
	}

	return Config{
		APIURL:           apiURL,
		Port:             v.GetString("PORT"),
		GinMode:          v.GetString("GIN_MODE"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		CORSAllowOrigins: strings.Fields(v.GetString("CORS_ALLOW_ORIGINS")),
		EnablePprof:      v.GetBool("ENABLE_PPROF"),
		ShutdownTimeout:  v.GetDuration("SHUTDOWN_TIMEOUT"),
		Database: Database{
			Driver:       driver,
			DSN:          v.GetString("DB_DSN"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		},
	}, nil
}
