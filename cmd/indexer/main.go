package main

import (
	"context"
	"log"
	"os"

	"abdochat-be/internal/config"
	"abdochat-be/internal/entity"
	"abdochat-be/internal/repository/implementation"
	"abdochat-be/pkg/database"
	"abdochat-be/pkg/embedding"
	"abdochat-be/pkg/embedding/jina"
	"abdochat-be/pkg/utils"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// The indexer is the offline index-construction collaborator: it reads the
// cleaned corpus text, chunks it, embeds every chunk and persists the
// passages. The serving path never writes the index; rerun this tool to
// rebuild it from a fresh corpus file.
func main() {
	cfg := config.Load()

	raw, err := os.ReadFile(cfg.Indexer.CorpusFile)
	if err != nil {
		log.Fatalf("Error: failed to read corpus file %s: %v", cfg.Indexer.CorpusFile, err)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: failed to connect to database: %v", err)
	}
	passageRepo := implementation.NewPassageRepository(db)

	var provider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "gemini":
		provider = embedding.NewGeminiProvider(cfg.Ai.GoogleGemini)
	case "jina":
		provider = jina.NewJinaProvider(cfg.Ai.Jina)
	default:
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	}

	chunks := utils.SplitText(string(raw), cfg.Indexer.ChunkSize, cfg.Indexer.ChunkOverlap)
	color.Cyan("Corpus %s: %d chunks (size %d, overlap %d)",
		cfg.Indexer.CorpusFile, len(chunks), cfg.Indexer.ChunkSize, cfg.Indexer.ChunkOverlap)

	passages := make([]*entity.Passage, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := provider.Generate(chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			log.Fatalf("Error: embedding chunk %d failed: %v", i, err)
		}
		passages = append(passages, &entity.Passage{
			Id:         uuid.New(),
			Content:    chunk,
			Source:     cfg.Indexer.SourceName,
			ChunkIndex: i,
			Embedding:  res.Embedding.Values,
		})
		if (i+1)%10 == 0 {
			color.White("  embedded %d/%d", i+1, len(chunks))
		}
	}

	ctx := context.Background()

	// Wipe previous rows for the source so the index always reflects the
	// latest corpus file.
	if err := passageRepo.DeleteBySource(ctx, cfg.Indexer.SourceName); err != nil {
		log.Fatalf("Error: failed to clear old passages: %v", err)
	}
	if err := passageRepo.CreateBulk(ctx, passages); err != nil {
		log.Fatalf("Error: failed to persist passages: %v", err)
	}

	total, err := passageRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Error: failed to count passages: %v", err)
	}
	color.Green("Indexed %d passages for source %q (%d total in store)",
		len(passages), cfg.Indexer.SourceName, total)
}
