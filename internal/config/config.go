package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Port      string `mapstructure:"port"`
	Address   string `mapstructure:"address"` // overrides Port when set
	ViewsDir  string `mapstructure:"views_dir"`
	PublicDir string `mapstructure:"public_dir"`
}

type DatabaseConfig struct {
	URI     string        `mapstructure:"uri"`
	Name    string        `mapstructure:"name"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// S3Config points at an optional bucket holding the landing page.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	LandingKey      string `mapstructure:"landing_key"`
}

// Enabled reports whether the landing page should come from the bucket.
func (c S3Config) Enabled() bool {
	return c.BucketName != "" && c.LandingKey != ""
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ListenAddress is the address the HTTP server binds to.
func (c ServerConfig) ListenAddress() string {
	if c.Address != "" {
		return c.Address
	}
	return ":" + c.Port
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	// Nested keys map to upper snake case: database.uri -> DATABASE_URI
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	// The short names used by hosting platforms win over the long ones.
	if err = v.BindEnv("server.port", "PORT", "SERVER_PORT"); err != nil {
		return
	}
	if err = v.BindEnv("database.uri", "MONGO", "DATABASE_URI"); err != nil {
		return
	}

	v.SetDefault("server.port", "3000")
	v.SetDefault("server.address", "")
	v.SetDefault("server.views_dir", "views")
	v.SetDefault("server.public_dir", "public")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "exercise_tracker")
	v.SetDefault("database.timeout", "10s")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.landing_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cors.allowed_origins", []string{"*"})

	// --- Read Config File ---
	// A missing file is fine: defaults and environment are enough.
	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	// Env values arrive as one comma separated string and keep their spaces.
	config.CORS.AllowedOrigins = splitAndTrim(strings.Join(config.CORS.AllowedOrigins, ","))
	if err = validateOrigins(config.CORS.AllowedOrigins); err != nil {
		return
	}

	return config, nil
}

// validateOrigins accepts "*" or absolute http(s) origins, the forms the
// CORS middleware understands.
func validateOrigins(origins []string) error {
	for _, o := range origins {
		if o == "*" || strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://") {
			continue
		}
		return fmt.Errorf("cors.allowed_origins: %q must be \"*\" or start with http:// or https://", o)
	}
	return nil
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
