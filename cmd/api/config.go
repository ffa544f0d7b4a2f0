package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"nychousing-insights/pkg/config"
	"nychousing-insights/pkg/logger"
)

// load environment variables and configuration
func LoadConfiguration() *config.Config {
	loadEnvironment()
	cfg := loadConfigFile()
	logger.InitLogger(os.Stdout, cfg.Logging.Level)
	return cfg
}

// load environment variables from .env file
func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on system environment variables: %v", err)
	}
}

// load the application configuration from a YAML file
func loadConfigFile() *config.Config {
	cfg, err := config.LoadConfig(config.PathFromEnv())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}
