package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken   string
	AdminChatID     string
	SpreadsheetID   string
	SheetName       string
	CredentialsPath string
	OpenAIAPIKey    string
	AssistantID     string

	HTTPAddr     string
	Environment  string
	HistoryLimit int

	AssistantPollInterval time.Duration
	AssistantTimeout      time.Duration
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		TelegramToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		AdminChatID:     os.Getenv("TELEGRAM_ADMIN_CHAT_ID"),
		SpreadsheetID:   os.Getenv("GOOGLE_SHEET_ID"),
		SheetName:       os.Getenv("GOOGLE_SHEETS_NAME"),
		CredentialsPath: os.Getenv("GOOGLE_CREDENTIALS_PATH"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AssistantID:     os.Getenv("OPENAI_ASSISTANT_ID"),
		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		Environment:     os.Getenv("ENV"),
	}

	// Необязательные числовые параметры; нули означают значения по умолчанию
	cfg.HistoryLimit = intFromEnv("HISTORY_LIMIT")
	cfg.AssistantPollInterval = time.Duration(intFromEnv("ASSISTANT_POLL_INTERVAL_SECONDS")) * time.Second
	cfg.AssistantTimeout = time.Duration(intFromEnv("ASSISTANT_TIMEOUT_SECONDS")) * time.Second

	// Устанавливаем дефолтные значения
	if cfg.SheetName == "" {
		cfg.SheetName = "Лист1"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":5000"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// Проверяем обязательные поля
	required := map[string]string{
		"TELEGRAM_BOT_TOKEN":      cfg.TelegramToken,
		"TELEGRAM_ADMIN_CHAT_ID":  cfg.AdminChatID,
		"GOOGLE_SHEET_ID":         cfg.SpreadsheetID,
		"GOOGLE_CREDENTIALS_PATH": cfg.CredentialsPath,
		"OPENAI_API_KEY":          cfg.OpenAIAPIKey,
		"OPENAI_ASSISTANT_ID":     cfg.AssistantID,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%s is required but not set", name)
		}
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}

// intFromEnv читает целое из переменной окружения, 0 если не задано или мусор
func intFromEnv(name string) int {
	raw := os.Getenv(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using default", name, raw)
		return 0
	}
	return v
}
