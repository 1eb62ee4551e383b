package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Configuration
	ServerPort string

	// Database Configuration
	DatabasePath string

	// News Provider Configuration
	NewsAPIKey     string
	NewsBaseURL    string
	NewsCountry    string
	NewsPageSize   int
	NewsTimeoutSec int

	// LLM Configuration
	LLMProvider   string // "gemini" or "openai"
	GeminiKey     string
	OpenAIKey     string
	LLMBaseURL    string
	ChatModel     string
	SummaryModel  string
	GenTimeoutSec int

	// Chat Pipeline Configuration
	MaxPromptArticles  int
	ChatMaxTokens      int
	ChatTemperature    float64
	SummaryMaxTokens   int
	SummaryTemperature float64
}

func LoadConfig() *Config {
	// .env is optional; deployments usually set env vars directly
	_ = godotenv.Load()

	return &Config{
		ServerPort:   getEnv("PORT", "8080"),
		DatabasePath: getEnv("DB_PATH", "newschat.db"),

		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		NewsBaseURL:    getEnv("NEWS_BASE_URL", "https://newsapi.org/v2"),
		NewsCountry:    getEnv("NEWS_COUNTRY", "us"),
		NewsPageSize:   getEnvInt("NEWS_PAGE_SIZE", 20),
		NewsTimeoutSec: getEnvInt("NEWS_TIMEOUT_SECONDS", 10),

		LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		LLMBaseURL:    getEnv("LLM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai"),
		ChatModel:     getEnv("CHAT_MODEL", "gemini-1.5-flash"),
		SummaryModel:  getEnv("SUMMARY_MODEL", "gemini-1.5-flash"),
		GenTimeoutSec: getEnvInt("GEN_TIMEOUT_SECONDS", 30),

		MaxPromptArticles:  getEnvInt("MAX_PROMPT_ARTICLES", 4),
		ChatMaxTokens:      getEnvInt("CHAT_MAX_TOKENS", 200),
		ChatTemperature:    getEnvFloat("CHAT_TEMPERATURE", 0.7),
		SummaryMaxTokens:   getEnvInt("SUMMARY_MAX_TOKENS", 200),
		SummaryTemperature: getEnvFloat("SUMMARY_TEMPERATURE", 0.3),
	}
}

// LLMKey returns the credential for the configured provider. Missing keys are
// reported per request as configuration errors rather than at startup, so the
// news feed endpoint keeps working without an LLM credential.
func (c *Config) LLMKey() string {
	if c.LLMProvider == "openai" {
		return c.OpenAIKey
	}
	return c.GeminiKey
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
