package rag

import (
	"context"
	"fmt"
	"time"

	"abdochat-be/internal/pkg/logger"
	"abdochat-be/internal/repository/contract"
	"abdochat-be/pkg/embedding"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

// Retriever runs semantic similarity searches against the passage index.
// The index is only ever written by the offline indexer, so the serving
// path treats it as read-only and is safe for concurrent use.
type Retriever struct {
	embedder   embedding.EmbeddingProvider
	passages   contract.PassageRepository
	queryCache *cache.Cache
	topK       int
	threshold  float64
	logger     logger.ILogger
}

func NewRetriever(embedder embedding.EmbeddingProvider, passages contract.PassageRepository, topK int, threshold float64, log logger.ILogger) *Retriever {
	if topK <= 0 {
		topK = 6
	}
	if threshold <= 0 {
		threshold = 0.2
	}
	return &Retriever{
		embedder:   embedder,
		passages:   passages,
		queryCache: cache.New(1*time.Hour, 10*time.Minute),
		topK:       topK,
		threshold:  threshold,
		logger:     log,
	}
}

// Retrieve runs the main-symptom and refine-answer searches and concatenates
// their hits, main hits first. The two sub-queries have no data dependency
// and run concurrently; the concatenation order is fixed regardless of which
// finishes first. Duplicates across the two result lists are kept.
func (r *Retriever) Retrieve(ctx context.Context, mainSymptom, refineAnswer string) ([]*contract.ScoredPassage, error) {
	var mainHits, refineHits []*contract.ScoredPassage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mainHits, err = r.search(gctx, mainSymptom)
		return err
	})
	g.Go(func() error {
		var err error
		refineHits, err = r.search(gctx, refineAnswer)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Debug("retriever", "dual-query retrieval done", map[string]interface{}{
		"main_hits":   len(mainHits),
		"refine_hits": len(refineHits),
	})

	return append(mainHits, refineHits...), nil
}

func (r *Retriever) search(ctx context.Context, query string) ([]*contract.ScoredPassage, error) {
	vec, err := r.embedQuery(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	hits, err := r.passages.SearchSimilarWithScore(ctx, vec, r.topK, r.threshold)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	return hits, nil
}

// embedQuery embeds the query text, caching vectors by exact text so
// repeated phrasings skip the embedding call. Empty text is a legal query.
func (r *Retriever) embedQuery(query string) ([]float32, error) {
	if cached, found := r.queryCache.Get(query); found {
		return cached.([]float32), nil
	}
	res, err := r.embedder.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, err
	}
	values := res.Embedding.Values
	r.queryCache.Set(query, values, cache.DefaultExpiration)
	return values, nil
}
