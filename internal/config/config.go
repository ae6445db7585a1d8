package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Client   ClientConfig
	Tracing  TracingConfig
	Search   WebSearchConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
	TokenTTLMinutes    int
}

type DatabaseConfig struct {
	Driver     string // "postgres" or "sqlite"
	Connection string
}

type APIKeys struct {
	HuggingFace string
}

type AIConfig struct {
	LLMProvider   string // "echo", "ollama", "huggingface"
	LLMModel      string
	OllamaBaseURL string
}

// WebSearchConfig feeds the drug report and price comparison lookups. Both
// are disabled while the key or engine id is empty.
type WebSearchConfig struct {
	BaseURL  string
	APIKey   string
	EngineID string
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	SampleRatio float64
}

// ClientConfig drives the medinfo CLI and the panel workspace.
type ClientConfig struct {
	APIURL      string
	SessionFile string
	LogFilePath string
	Latitude    string
	Longitude   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			JWTSecret:          getEnv("JWT_SECRET", "medinfo-dev-secret"),
			TokenTTLMinutes:    getEnvAsInt("TOKEN_TTL_MINUTES", 60*24),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			Connection: getEnv("DB_CONNECTION_STRING", "medicine_db.sqlite3"),
		},
		Keys: APIKeys{
			HuggingFace: getEnv("HUGGINGFACE_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "echo"),
			LLMModel:      getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Client: ClientConfig{
			APIURL:      getEnv("MEDINFO_API_URL", "http://127.0.0.1:8000"),
			SessionFile: getEnv("MEDINFO_SESSION_FILE", defaultSessionFile()),
			LogFilePath: getEnv("MEDINFO_LOG_FILE", "logs/medinfo-cli.log"),
			Latitude:    getEnv("MEDINFO_LAT", ""),
			Longitude:   getEnv("MEDINFO_LNG", ""),
		},
		Search: WebSearchConfig{
			BaseURL:  getEnv("GOOGLE_SEARCH_BASE_URL", "https://www.googleapis.com"),
			APIKey:   getEnv("GOOGLE_API_KEY", ""),
			EngineID: getEnv("GOOGLE_CSE_ID", ""),
		},
		Tracing: TracingConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "medinfo-backend"),
			SampleRatio: getEnvAsFloat("OTEL_SAMPLE_RATIO", 1.0),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".medinfo-session.json"
	}
	return filepath.Join(home, ".medinfo", "session.json")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
