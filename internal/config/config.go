package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port      string
	GinMode   string
	JWTSecret string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// MediaDir is where processed uploads land; served under /uploads.
	MediaDir string
}

// Load reads configuration from environment variables with local defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.BindEnv("port", "PORT")
	v.BindEnv("gin_mode", "GIN_MODE")
	v.BindEnv("jwt_secret", "JWT_SECRET")
	v.BindEnv("db.host", "DB_HOST")
	v.BindEnv("db.port", "DB_PORT")
	v.BindEnv("db.user", "DB_USER")
	v.BindEnv("db.password", "DB_PASSWORD")
	v.BindEnv("db.name", "DB_NAME")
	v.BindEnv("db.sslmode", "DB_SSLMODE")
	v.BindEnv("media_dir", "MEDIA_DIR")

	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.name", "campushire")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("media_dir", "./uploads")

	cfg := &Config{
		Port:       v.GetString("port"),
		GinMode:    v.GetString("gin_mode"),
		JWTSecret:  v.GetString("jwt_secret"),
		DBHost:     v.GetString("db.host"),
		DBPort:     v.GetString("db.port"),
		DBUser:     v.GetString("db.user"),
		DBPassword: v.GetString("db.password"),
		DBName:     v.GetString("db.name"),
		DBSSLMode:  v.GetString("db.sslmode"),
		MediaDir:   v.GetString("media_dir"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}
