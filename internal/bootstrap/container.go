package bootstrap

import (
	"log"

	"abdochat-be/internal/config"
	"abdochat-be/internal/controller"
	"abdochat-be/internal/pkg/logger"
	"abdochat-be/internal/repository/implementation"
	"abdochat-be/internal/service"
	"abdochat-be/pkg/embedding"
	"abdochat-be/pkg/embedding/jina"
	"abdochat-be/pkg/llm/factory"
	"abdochat-be/pkg/rag"

	"gorm.io/gorm"
)

// Container holds every long-lived service object. All of them are built
// once at process start and shared read-only across request handlers; none
// of them keeps per-request state.
type Container struct {
	TriageController controller.ITriageController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Embedding provider (text -> vector collaborator)
	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "gemini":
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	case "jina":
		embeddingProvider = jina.NewJinaProvider(cfg.Ai.Jina)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	default:
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	}

	// Summarization provider (text -> short text collaborator)
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFace,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Core pipeline
	passageRepo := implementation.NewPassageRepository(db)
	retriever := rag.NewRetriever(embeddingProvider, passageRepo, cfg.Retrieval.TopK, cfg.Retrieval.ScoreThreshold, sysLogger)
	condenser := rag.NewCondenser(llmProvider, cfg.Condenser.MaxPassages, cfg.Condenser.MaxInputChars, cfg.Condenser.TimeoutSecs, sysLogger)
	pipeline := rag.NewPipeline(retriever, condenser, sysLogger)

	triageService := service.NewTriageService(pipeline, sysLogger)

	return &Container{
		TriageController: controller.NewTriageController(triageService),
		Logger:           sysLogger,
	}
}
