package main

import (
	"log"
	"os"

	"homeinsight-listings/pkg/config"
	"homeinsight-listings/pkg/logger"

	"github.com/joho/godotenv"
)

// LoadConfiguration loads .env, the YAML config and the logger level, in that order.
func LoadConfiguration() *config.Config {
	loadEnvironment()
	cfg := loadConfigFile()
	logger.InitLogger(os.Stdout, cfg.Log.Level)
	return cfg
}

func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on system environment variables: %v", err)
	}
}

func loadConfigFile() *config.Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.GlobalLogger.Fatalf("Failed to load config: %v", err)
	}

	return cfg
}
