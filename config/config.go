package config

import (
	"errors"
	"os"
)

// Runtime configuration, read once at startup from the environment.
type Config struct {
	ListenAddr string
	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string
	JWTSecret  []byte
}

func Load() (Config, error) {
	cfg := Config{
		ListenAddr: os.Getenv("LISTEN_ADDR"),
		DBUser:     os.Getenv("MYSQL_USER"),
		DBPassword: os.Getenv("MYSQL_PASSWORD"),
		DBHost:     os.Getenv("MYSQL_HOST"),
		DBName:     os.Getenv("MYSQL_DATABASE"),
		JWTSecret:  []byte(os.Getenv("JWT_SECRET")),
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":80"
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "db:3306"
	}
	if len(cfg.JWTSecret) == 0 {
		return Config{}, errors.New("JWT_SECRET must be set")
	}

	return cfg, nil
}
