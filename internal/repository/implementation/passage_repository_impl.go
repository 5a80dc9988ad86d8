package implementation

import (
	"context"

	"abdochat-be/internal/entity"
	"abdochat-be/internal/mapper"
	"abdochat-be/internal/model"
	"abdochat-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PassageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PassageMapper
}

func NewPassageRepository(db *gorm.DB) contract.PassageRepository {
	return &PassageRepositoryImpl{
		db:     db,
		mapper: mapper.NewPassageMapper(),
	}
}

func (r *PassageRepositoryImpl) CreateBulk(ctx context.Context, passages []*entity.Passage) error {
	models := r.mapper.ToModels(passages)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	// Write generated IDs back to the entities
	for i, m := range models {
		*passages[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *PassageRepositoryImpl) DeleteBySource(ctx context.Context, source string) error {
	return r.db.WithContext(ctx).Where("source = ?", source).Delete(&model.Passage{}).Error
}

func (r *PassageRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Passage{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore runs a cosine similarity search over the passages
// table. Cosine distance in pgvector is 1 - cosine_similarity, so
// 1 - (embedding <=> query_vector) recovers the similarity score; the
// threshold filter runs in SQL so callers never see sub-threshold hits.
func (r *PassageRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredPassage, error) {
	if limit <= 0 {
		limit = 6
	}

	type result struct {
		model.Passage
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("passages").
		Select("passages.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("1 - (embedding <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredPassage, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredPassage{
			Passage:    r.mapper.ToEntity(&res.Passage),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
