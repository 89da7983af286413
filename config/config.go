package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB         DBConfig
	Telegram   TelegramConfig
	LLM        LLMConfig
	Restaurant string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type TelegramConfig struct {
	Token string
}

type LLMConfig struct {
	APIKey  string // OpenRouter / OpenAI-compatible key; empty disables dynamic menus
	BaseURL string
	Model   string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "chatbot"),
		},
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		LLM: LLMConfig{
			APIKey:  getEnv("OPENROUTER_API_KEY", ""),
			BaseURL: getEnv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:   getEnv("LLM_MODEL", "meta-llama/llama-3.2-1b-instruct:free"),
		},
		Restaurant: getEnv("RESTAURANT", "Korean"),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
