package main

import (
	"errors"
	"os"
)

type AppConfig struct {
	DatabaseURL string
}

func LoadAppConfig() (*AppConfig, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	return &AppConfig{
		DatabaseURL: dbURL,
	}, nil
}
