package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		AccessSecret     string `yaml:"access_secret"`
		AccessTTLMinutes int    `yaml:"access_ttl_minutes"`
		RefreshSecret    string `yaml:"refresh_secret"`
		RefreshTTLDays   int    `yaml:"refresh_ttl_days"`
	} `yaml:"jwt"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // for local storage
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // for S3/R2
		Region    string `yaml:"region"`     // for S3
		AccessKey string `yaml:"access_key"` // for S3/R2
		SecretKey string `yaml:"secret_key"` // for S3/R2
		Endpoint  string `yaml:"endpoint"`   // for R2 or custom S3
	} `yaml:"storage"`

	Upload struct {
		MaxSize int64 `yaml:"max_size"` // max file size in bytes
	} `yaml:"upload"`
}

var AppConfig *Config

// LoadConfig populates AppConfig from config.yaml, with environment
// variables taking precedence for secrets and connection strings.
// A .env file is honored when present.
func LoadConfig() {
	var cfg Config

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	AppConfig = &cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.AccessSecret = v
	}
	if v := os.Getenv("REFRESH_KEY"); v != "" {
		cfg.JWT.RefreshSecret = v
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.AccessTTLMinutes == 0 {
		cfg.JWT.AccessTTLMinutes = 60
	}
	if cfg.JWT.RefreshTTLDays == 0 {
		cfg.JWT.RefreshTTLDays = 7
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./public"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024 // 5MB
	}
}

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
