package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	Timezone       string
	StorageBackend string // sqlite|file
	DBPath         string
	DataPath       string

	LLMEndpoint  string
	LLMAPIKey    string
	LLMModel     string
	GeminiAPIKey string
	GeminiModel  string

	TelegramToken  string
	TelegramChatID int64

	CheckIntervalMin int
	AutoRegenerate   bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	chatID, _ := strconv.ParseInt(get("TG_CHAT_ID", "0"), 10, 64)
	interval, err := strconv.Atoi(get("CHECK_INTERVAL_MIN", "15"))
	if err != nil || interval <= 0 {
		interval = 15
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		Timezone:         get("TZ", "Local"),
		StorageBackend:   get("STORAGE_BACKEND", "sqlite"),
		DBPath:           get("DB_PATH", "kaio.db"),
		DataPath:         get("DATA_PATH", "kaio-data"),
		LLMEndpoint:      get("LLM_ENDPOINT", ""),
		LLMAPIKey:        get("LLM_API_KEY", ""),
		LLMModel:         get("LLM_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:     get("GEMINI_API_KEY", ""),
		GeminiModel:      get("GEMINI_MODEL", "gemini-1.5-flash"),
		TelegramToken:    get("TG_TOKEN", ""),
		TelegramChatID:   chatID,
		CheckIntervalMin: interval,
		AutoRegenerate:   get("AUTO_REGENERATE", "false") == "true",
	}
	log.Printf("[cfg] port=%s backend=%s db=%s data=%s check=%dm auto=%v",
		cfg.Port, cfg.StorageBackend, cfg.DBPath, cfg.DataPath, cfg.CheckIntervalMin, cfg.AutoRegenerate)
	return cfg
}
