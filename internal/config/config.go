package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Export   ExportConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
}

// StorageConfig points at the flat key-value file that holds the bills,
// the WhatsApp number and the session flag.
type StorageConfig struct {
	Path string
}

// DatabaseConfig configures the optional MySQL bill backend. The file store
// is used unless Enabled is set.
type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ExportConfig struct {
	// OutboxDir receives locally saved PDFs ("print" and the link-only
	// share fallback).
	OutboxDir string
	// PageWidthMM is the PDF page width; height follows the capture's
	// aspect ratio.
	PageWidthMM float64
	// SuccessResetDelay is how long a finished export keeps reporting
	// success before reverting to idle.
	SuccessResetDelay time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("STORAGE_PATH", "data/store.json")
	viper.SetDefault("DB_ENABLED", false)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "rajubill")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "rajubill")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("EXPORT_OUTBOX_DIR", "outbox")
	viper.SetDefault("EXPORT_PAGE_WIDTH_MM", 210.0)
	viper.SetDefault("EXPORT_SUCCESS_RESET_DELAY", "3s")
	viper.SetDefault("LOG_LEVEL", "info")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	successResetDelay, err := time.ParseDuration(viper.GetString("EXPORT_SUCCESS_RESET_DELAY"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Storage: StorageConfig{
			Path: viper.GetString("STORAGE_PATH"),
		},
		Database: DatabaseConfig{
			Enabled:         viper.GetBool("DB_ENABLED"),
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Export: ExportConfig{
			OutboxDir:         viper.GetString("EXPORT_OUTBOX_DIR"),
			PageWidthMM:       viper.GetFloat64("EXPORT_PAGE_WIDTH_MM"),
			SuccessResetDelay: successResetDelay,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
