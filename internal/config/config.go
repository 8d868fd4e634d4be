package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server struct {
		Host                 string
		JWTSecret            string `toml:"jwt_secret"`
		ReadTimeout          time.Duration
		ReadHeaderTimeout    time.Duration
		WriteTimeout         time.Duration
		StrReadTimeout       string `toml:"read_timeout"`
		StrReadHeaderTimeout string `toml:"read_header_timeout"`
		StrWriteTimeout      string `toml:"write_timeout"`
	}
	Database struct {
		Host     string
		User     string
		Password string
		Database string
	}
	Redis struct {
		RedisAddr     string `toml:"redis_addr"`
		RedisPassword string `toml:"redis_password"`
		RedisDB       int    `toml:"redis_db"`
		SessionTTL    time.Duration
		StrSessionTTL string `toml:"session_ttl"`
	}
	Attendance struct {
		LateCutoff string `toml:"late_cutoff"`
	}
	Archive struct {
		Schedule string `toml:"schedule"`
	}
}

func GetConfig(logger *slog.Logger) (*Config, error) {
	data, err := os.ReadFile("configs/config.toml")
	if err != nil {
		logger.Error("Error read config.toml file", slog.String("error", err.Error()))
		return nil, err
	}

	var cfg *Config

	if _, tomlErr := toml.Decode(string(data), &cfg); tomlErr != nil {
		logger.Error("Error decode config.toml file", slog.String("error", tomlErr.Error()))
		return nil, tomlErr
	}

	cfg.Redis.SessionTTL, err = time.ParseDuration(cfg.Redis.StrSessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session_ttl: %w", err)
	}

	cfg.Server.ReadTimeout, err = time.ParseDuration(cfg.Server.StrReadTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid read_timeout: %w", err)
	}
	cfg.Server.ReadHeaderTimeout, err = time.ParseDuration(cfg.Server.StrReadHeaderTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid read_header_timeout: %w", err)
	}
	cfg.Server.WriteTimeout, err = time.ParseDuration(cfg.Server.StrWriteTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid write_timeout: %w", err)
	}

	if cfg.Server.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if cfg.Attendance.LateCutoff == "" {
		cfg.Attendance.LateCutoff = "09:45:00"
	}
	if _, err = time.Parse("15:04:05", cfg.Attendance.LateCutoff); err != nil {
		return nil, fmt.Errorf("invalid late_cutoff: %w", err)
	}

	if cfg.Archive.Schedule == "" {
		cfg.Archive.Schedule = "0 5 * * *"
	}

	logger.Info("Config is loaded")
	return cfg, nil
}
