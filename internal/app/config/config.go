package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	JWTSecret string

	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int

	MinIOHost      string
	MinIOPort      string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string

	// AllowRequestResubmission lets a rejected connection request be
	// resubmitted (reset to Pending). Off by default: a rejected pair
	// stays rejected.
	AllowRequestResubmission bool
}

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// Secrets and endpoints come from the environment
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}

	cfg.RedisHost = os.Getenv("REDIS_HOST")
	if cfg.RedisHost == "" {
		cfg.RedisHost = "127.0.0.1"
	}
	cfg.RedisPort = 6379
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.RedisPort = p
		}
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	cfg.MinIOHost = os.Getenv("MINIO_HOST")
	if cfg.MinIOHost == "" {
		cfg.MinIOHost = "127.0.0.1"
	}
	cfg.MinIOPort = os.Getenv("MINIO_PORT")
	if cfg.MinIOPort == "" {
		cfg.MinIOPort = "9000"
	}
	cfg.MinIOAccessKey = os.Getenv("MINIO_ACCESS_KEY")
	if cfg.MinIOAccessKey == "" {
		cfg.MinIOAccessKey = "minioadmin"
	}
	cfg.MinIOSecretKey = os.Getenv("MINIO_SECRET_KEY")
	if cfg.MinIOSecretKey == "" {
		cfg.MinIOSecretKey = "minioadmin"
	}
	if cfg.MinIOBucket == "" {
		cfg.MinIOBucket = "attachments"
	}

	log.Info("config parsed")

	return cfg, nil
}
