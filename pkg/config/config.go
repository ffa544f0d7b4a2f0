package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int    `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	Dataset struct {
		Path      string `yaml:"path"`
		StaticDir string `yaml:"static_dir"`
	} `yaml:"dataset"`
	Storage struct {
		Driver string `yaml:"driver"`
		URI    string `yaml:"uri"`
		DBName string `yaml:"dbname"`
	} `yaml:"storage"`
	Redis struct {
		Enabled     bool   `yaml:"enabled"`
		Host        string `yaml:"host"`
		Port        int    `yaml:"port"`
		Password    string `yaml:"password"`
		DB          int    `yaml:"db"`
		TTLSeconds  int    `yaml:"ttl_seconds"`
		TLSEnabled  bool   `yaml:"tls_enabled"`
		TLSCertFile string `yaml:"tls_cert_file"`
	} `yaml:"redis"`
	Auth struct {
		Enabled         bool   `yaml:"enabled"`
		PasswordHash    string `yaml:"password_hash"`
		JWTSecret       string `yaml:"jwt_secret"`
		TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
	} `yaml:"auth"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfigPath is used when CONFIG_PATH is not set.
const DefaultConfigPath = "configs/config.yaml"

// PathFromEnv returns the config file to load, honoring the CONFIG_PATH
// override.
func PathFromEnv() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultConfigPath
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	// Override with environment variables if set
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if path := os.Getenv("DATASET_PATH"); path != "" {
		cfg.Dataset.Path = path
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.Dataset.StaticDir = dir
	}
	if driver := os.Getenv("STORAGE_DRIVER"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Storage.URI = uri
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.Storage.DBName = dbname
	}
	if enabled := os.Getenv("REDIS_ENABLED"); enabled != "" {
		cfg.Redis.Enabled = enabled == "true"
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_PORT value: %v", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		dbNum, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value: %v", err)
		}
		cfg.Redis.DB = dbNum
	}
	if ttl := os.Getenv("CACHE_TTL_SECONDS"); ttl != "" {
		ttlNum, err := strconv.Atoi(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS value: %v", err)
		}
		cfg.Redis.TTLSeconds = ttlNum
	}
	if tlsEnabled := os.Getenv("REDIS_TLS_ENABLED"); tlsEnabled != "" {
		cfg.Redis.TLSEnabled = tlsEnabled == "true"
	}
	if tlsCertFile := os.Getenv("REDIS_TLS_CERT_FILE"); tlsCertFile != "" {
		cfg.Redis.TLSCertFile = tlsCertFile
	}
	if enabled := os.Getenv("AUTH_ENABLED"); enabled != "" {
		cfg.Auth.Enabled = enabled == "true"
	}
	if hash := os.Getenv("DASHBOARD_PASSWORD_HASH"); hash != "" {
		cfg.Auth.PasswordHash = hash
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	// Set default values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "debug"
	}
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "data/ny-housing-sample.csv"
	}
	if cfg.Dataset.StaticDir == "" {
		cfg.Dataset.StaticDir = "static"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "memory"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.TTLSeconds == 0 {
		cfg.Redis.TTLSeconds = 300
	}
	if cfg.Auth.TokenTTLMinutes == 0 {
		cfg.Auth.TokenTTLMinutes = 60
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}

	// Validation
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535")
	}
	if cfg.Server.Mode != "debug" && cfg.Server.Mode != "release" && cfg.Server.Mode != "test" {
		return nil, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.Server.Mode)
	}
	if cfg.Storage.Driver != "memory" && cfg.Storage.Driver != "mongo" {
		return nil, fmt.Errorf("STORAGE_DRIVER must be memory or mongo, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Driver == "mongo" {
		if cfg.Storage.URI == "" {
			return nil, fmt.Errorf("MONGO_URI is required when storage driver is mongo")
		}
		if cfg.Storage.DBName == "" {
			return nil, fmt.Errorf("DB_NAME is required when storage driver is mongo")
		}
	}
	if cfg.Redis.Enabled {
		if cfg.Redis.Port <= 0 || cfg.Redis.Port > 65535 {
			return nil, fmt.Errorf("REDIS_PORT must be between 1 and 65535")
		}
		if cfg.Redis.DB < 0 {
			return nil, fmt.Errorf("REDIS_DB must be non-negative")
		}
		if cfg.Redis.TLSEnabled && cfg.Redis.TLSCertFile != "" {
			if _, err := os.Stat(cfg.Redis.TLSCertFile); os.IsNotExist(err) {
				return nil, fmt.Errorf("TLS certificate file does not exist: %s", cfg.Redis.TLSCertFile)
			}
		}
	}
	if cfg.Auth.Enabled {
		if cfg.Auth.PasswordHash == "" {
			return nil, fmt.Errorf("DASHBOARD_PASSWORD_HASH is required when auth is enabled")
		}
		if cfg.Auth.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET is required when auth is enabled")
		}
	}

	return &cfg, nil
}
