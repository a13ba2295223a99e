package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	HTTPAddr       string
	AdminSecret    string
	GeminiAPIKey   string
	GeminiModel    string
	WhatsAppNumber string
	StoreName      string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load(log *zap.Logger) Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		AdminSecret:    getenv("ADMIN_SECRET", "VELU@123"),
		GeminiAPIKey:   getenv("GEMINI_API_KEY", ""),
		GeminiModel:    getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", "9363115217"),
		StoreName:      getenv("STORE_NAME", "Velu Medicals and Generals"),
	}
	log.Info("config loaded",
		zap.String("http_addr", cfg.HTTPAddr),
		zap.String("gemini_model", cfg.GeminiModel),
		zap.String("store_name", cfg.StoreName),
		zap.Bool("gemini_key_set", cfg.GeminiAPIKey != ""),
	)
	return cfg
}
