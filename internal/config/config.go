package config

import (
	"log"
	"strconv"

	"github.com/joho/godotenv"

	"os"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Ai        AIConfig
	Retrieval RetrievalConfig
	Condenser CondenserConfig
	Indexer   IndexerConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	EmbeddingProvider string // "ollama", "gemini" or "jina"
	OllamaBaseURL     string
	OllamaModel       string
	GoogleGemini      string
	Jina              string
	LLMProvider       string // "ollama" or "huggingface"
	LLMModel          string // e.g. "llama3", "qwen2.5"
	HuggingFace       string
}

type RetrievalConfig struct {
	TopK           int
	ScoreThreshold float64
}

type CondenserConfig struct {
	MaxPassages   int
	MaxInputChars int
	TimeoutSecs   int
}

type IndexerConfig struct {
	CorpusFile   string
	SourceName   string
	ChunkSize    int
	ChunkOverlap int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GoogleGemini:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Jina:              getEnv("JINA_API_KEY", ""),
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
			HuggingFace:       getEnv("HUGGINGFACE_API_KEY", ""),
		},
		Retrieval: RetrievalConfig{
			TopK:           getEnvAsInt("RETRIEVAL_TOP_K", 6),
			ScoreThreshold: getEnvAsFloat("RETRIEVAL_SCORE_THRESHOLD", 0.2),
		},
		Condenser: CondenserConfig{
			MaxPassages:   getEnvAsInt("CONDENSE_MAX_PASSAGES", 5),
			MaxInputChars: getEnvAsInt("CONDENSE_MAX_INPUT_CHARS", 1200),
			TimeoutSecs:   getEnvAsInt("CONDENSE_TIMEOUT_SECS", 60),
		},
		Indexer: IndexerConfig{
			CorpusFile:   getEnv("CORPUS_FILE", "data/abdominal_clean.txt"),
			SourceName:   getEnv("CORPUS_SOURCE", "mayo_abdominal_pain_causes"),
			ChunkSize:    getEnvAsInt("CORPUS_CHUNK_SIZE", 600),
			ChunkOverlap: getEnvAsInt("CORPUS_CHUNK_OVERLAP", 80),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
