package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	AccessSecret string
	AccessTTL    time.Duration
}

type SyncConfig struct {
	ExternalDSN string
}

type MapConfig struct {
	Token string
}

type UploadConfig struct {
	Dir      string
	BaseURL  string
	MaxBytes int64
}

type BootstrapConfig struct {
	RateLimit  int
	RateWindow time.Duration
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Sync        SyncConfig
	Map         MapConfig
	Upload      UploadConfig
	Bootstrap   BootstrapConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
			AccessTTL:    v.GetDuration("JWT_ACCESS_TTL"),
		},
		Sync: SyncConfig{
			ExternalDSN: v.GetString("EXTERNAL_DB_DSN"),
		},
		Map: MapConfig{
			Token: v.GetString("MAPBOX_TOKEN"),
		},
		Upload: UploadConfig{
			Dir:      v.GetString("UPLOAD_DIR"),
			BaseURL:  v.GetString("UPLOAD_BASE_URL"),
			MaxBytes: v.GetInt64("UPLOAD_MAX_BYTES"),
		},
		Bootstrap: BootstrapConfig{
			RateLimit:  v.GetInt("BOOTSTRAP_RATE_LIMIT"),
			RateWindow: v.GetDuration("BOOTSTRAP_RATE_WINDOW"),
		},
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Auth.AccessTTL <= 0 {
		cfg.Auth.AccessTTL = 24 * time.Hour
	}
	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = "./uploads"
	}
	if cfg.Upload.BaseURL == "" {
		cfg.Upload.BaseURL = "/uploads"
	}
	if cfg.Upload.MaxBytes <= 0 {
		cfg.Upload.MaxBytes = 5 << 20
	}
	if cfg.Bootstrap.RateLimit <= 0 {
		cfg.Bootstrap.RateLimit = 5
	}
	if cfg.Bootstrap.RateWindow <= 0 {
		cfg.Bootstrap.RateWindow = time.Minute
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	return nil
}
