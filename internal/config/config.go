// internal/config/config.go
package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite | postgres
	URL    string `mapstructure:"url"`
}

type AppConfig struct {
	StatusScheme          string  `mapstructure:"status_scheme"` // weakness | legacy
	WeakMinAttempts       int     `mapstructure:"weak_min_attempts"`
	WeakAccuracyThreshold float64 `mapstructure:"weak_accuracy_threshold"`
}

type DictionaryConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	CacheSizeMB int           `mapstructure:"cache_size_mb"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App        AppConfig        `mapstructure:"app"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Identity   struct {
		File string `mapstructure:"file"`
	} `mapstructure:"identity"`
	CORS CORSConfig `mapstructure:"cors"`
}

var Cfg Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.url", DefaultDatabaseURL)
	v.SetDefault("app.status_scheme", DefaultStatusScheme)
	v.SetDefault("app.weak_min_attempts", DefaultWeakMinAttempts)
	v.SetDefault("app.weak_accuracy_threshold", DefaultWeakAccuracyThreshold)
	v.SetDefault("dictionary.base_url", DefaultDictionaryBaseURL)
	v.SetDefault("dictionary.timeout", DefaultDictionaryTimeout)
	v.SetDefault("dictionary.cache_size_mb", DefaultDictionaryCacheSizeMB)
	v.SetDefault("dictionary.cache_ttl", DefaultDictionaryCacheTTL)
	v.SetDefault("identity.file", DefaultIdentityFile)
	v.SetDefault("cors.allowed_origins", []string{ProductionOrigin})
	v.SetDefault("cors.allowed_methods", []string{"GET", "PATCH", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "X-User-ID"})
	v.SetDefault("cors.max_age", 300)
}

// Load は path と カレントディレクトリから config.yaml を探して読み込みます。
// ファイルが無い場合はデフォルト値と環境変数 (APP_ 接頭辞) だけで組み立てます。
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP") // APP_DATABASE_URL など
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Error("Error reading config file", slog.Any("error", err))
			return nil, err
		}
		slog.Info("Config file not found. Using default settings and environment variables.")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("Error unmarshalling config", slog.Any("error", err))
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig は設定を読み込んでパッケージ変数 Cfg に格納します
func LoadConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Cfg = *cfg

	slog.Info("Config loaded successfully",
		slog.String("port", Cfg.Server.Port),
		slog.String("db_driver", Cfg.Database.Driver),
		slog.String("status_scheme", Cfg.App.StatusScheme),
	)
	return nil
}
