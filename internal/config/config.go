package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	Log      LogConfig
	CORS     CORSConfig
	Uploads  UploadsConfig
	Template TemplateConfig
	Storage  StorageConfig
	Scanner  ScannerConfig
	Email    EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadsConfig holds file-upload settings.
type UploadsConfig struct {
	Dir           string `mapstructure:"dir"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// TemplateConfig holds the invoice-template storage location.
type TemplateConfig struct {
	Dir string `mapstructure:"dir"`
}

// StorageConfig selects the object-storage backend for uploads.
// Provider is "local" (default) or "s3".
type StorageConfig struct {
	Provider  string `mapstructure:"provider"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// ScannerConfig holds settings for the order-document understanding service.
type ScannerConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// EmailConfig holds admin-notification delivery settings.
type EmailConfig struct {
	Provider     string `mapstructure:"provider"`
	Region       string `mapstructure:"region"`
	FromAddress  string `mapstructure:"from_address"`
	AdminAddress string `mapstructure:"admin_address"`
}

// Load reads configuration from environment variables with the METALFLOW_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("METALFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "metalflow")
	v.SetDefault("db.password", "metalflow_secret")
	v.SetDefault("db.name", "metalflow_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "metalflow")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Uploads / template defaults
	v.SetDefault("uploads.dir", "data/uploads")
	v.SetDefault("uploads.max_file_size_mb", 20)
	v.SetDefault("template.dir", "data/template")

	// Storage defaults
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "metalflow-uploads")
	v.SetDefault("storage.endpoint", "")

	// Scanner defaults
	v.SetDefault("scanner.api_key", "")
	v.SetDefault("scanner.model", "gpt-4o")
	v.SetDefault("scanner.timeout_secs", 90)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@metalflow.local")
	v.SetDefault("email.admin_address", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "METALFLOW_SERVER_PORT",
		"server.read_timeout":      "METALFLOW_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "METALFLOW_SERVER_WRITE_TIMEOUT",
		"server.environment":       "METALFLOW_SERVER_ENVIRONMENT",
		"db.host":                  "METALFLOW_DB_HOST",
		"db.port":                  "METALFLOW_DB_PORT",
		"db.user":                  "METALFLOW_DB_USER",
		"db.password":              "METALFLOW_DB_PASSWORD",
		"db.name":                  "METALFLOW_DB_NAME",
		"db.sslmode":               "METALFLOW_DB_SSLMODE",
		"db.max_open":              "METALFLOW_DB_MAX_OPEN",
		"db.max_idle":              "METALFLOW_DB_MAX_IDLE",
		"jwt.secret":               "METALFLOW_JWT_SECRET",
		"jwt.access_expiry":        "METALFLOW_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":       "METALFLOW_JWT_REFRESH_EXPIRY",
		"jwt.issuer":               "METALFLOW_JWT_ISSUER",
		"log.level":                "METALFLOW_LOG_LEVEL",
		"log.format":               "METALFLOW_LOG_FORMAT",
		"cors.allowed_origins":     "METALFLOW_CORS_ALLOWED_ORIGINS",
		"uploads.dir":              "METALFLOW_UPLOADS_DIR",
		"uploads.max_file_size_mb": "METALFLOW_UPLOADS_MAX_FILE_SIZE_MB",
		"template.dir":             "METALFLOW_TEMPLATE_DIR",
		"storage.provider":         "METALFLOW_STORAGE_PROVIDER",
		"storage.region":           "METALFLOW_STORAGE_REGION",
		"storage.bucket":           "METALFLOW_STORAGE_BUCKET",
		"storage.endpoint":         "METALFLOW_STORAGE_ENDPOINT",
		"storage.access_key":       "METALFLOW_STORAGE_ACCESS_KEY",
		"storage.secret_key":       "METALFLOW_STORAGE_SECRET_KEY",
		"scanner.api_key":          "METALFLOW_SCANNER_API_KEY",
		"scanner.model":            "METALFLOW_SCANNER_MODEL",
		"scanner.timeout_secs":     "METALFLOW_SCANNER_TIMEOUT_SECS",
		"email.provider":           "METALFLOW_EMAIL_PROVIDER",
		"email.region":             "METALFLOW_EMAIL_REGION",
		"email.from_address":       "METALFLOW_EMAIL_FROM_ADDRESS",
		"email.admin_address":      "METALFLOW_EMAIL_ADMIN_ADDRESS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if METALFLOW_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("METALFLOW_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Uploads = UploadsConfig{
		Dir:           v.GetString("uploads.dir"),
		MaxFileSizeMB: v.GetInt64("uploads.max_file_size_mb"),
	}
	cfg.Template = TemplateConfig{
		Dir: v.GetString("template.dir"),
	}
	cfg.Storage = StorageConfig{
		Provider:  v.GetString("storage.provider"),
		Region:    v.GetString("storage.region"),
		Bucket:    v.GetString("storage.bucket"),
		Endpoint:  v.GetString("storage.endpoint"),
		AccessKey: v.GetString("storage.access_key"),
		SecretKey: v.GetString("storage.secret_key"),
	}
	cfg.Scanner = ScannerConfig{
		APIKey:      v.GetString("scanner.api_key"),
		Model:       v.GetString("scanner.model"),
		TimeoutSecs: v.GetInt("scanner.timeout_secs"),
	}
	cfg.Email = EmailConfig{
		Provider:     v.GetString("email.provider"),
		Region:       v.GetString("email.region"),
		FromAddress:  v.GetString("email.from_address"),
		AdminAddress: v.GetString("email.admin_address"),
	}

	return cfg, nil
}
