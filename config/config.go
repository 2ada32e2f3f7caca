package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Storage      Storage
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Storage struct {
	// DataDir is the base directory holding one JSON file per collection.
	// Created on first use if absent.
	DataDir string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATA_DIR", "./data")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Storage.DataDir = viper.GetString("DATA_DIR")
	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("data_dir", config.Storage.DataDir).Msg("Config loaded")
	return &config, nil
}
