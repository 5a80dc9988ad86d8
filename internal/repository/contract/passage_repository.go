package contract

import (
	"context"

	"abdochat-be/internal/entity"
)

// ScoredPassage wraps a Passage with its similarity score to the query
type ScoredPassage struct {
	Passage    *entity.Passage
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type PassageRepository interface {
	CreateBulk(ctx context.Context, passages []*entity.Passage) error
	DeleteBySource(ctx context.Context, source string) error
	Count(ctx context.Context) (int64, error)
	// SearchSimilarWithScore returns at most limit passages ordered by
	// similarity, excluding any result below threshold.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredPassage, error)
}
