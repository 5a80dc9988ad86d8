package rag

import (
	"context"
	"fmt"
	"sync"

	"abdochat-be/internal/entity"
	"abdochat-be/internal/pkg/logger"
	"abdochat-be/internal/repository/contract"
	"abdochat-be/pkg/embedding"
	"abdochat-be/pkg/llm"

	"github.com/google/uuid"
)

// nopLogger keeps the pipeline quiet in tests.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

var _ logger.ILogger = nopLogger{}

// fakeEmbedder maps query text to a fixed vector and counts calls per text.
type fakeEmbedder struct {
	mu      sync.Mutex
	vectors map[string][]float32
	calls   map[string]int
	err     error
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{
		vectors: make(map[string][]float32),
		calls:   make(map[string]int),
	}
}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[text]++
	if f.err != nil {
		return nil, f.err
	}
	vec, ok := f.vectors[text]
	if !ok {
		vec = []float32{float32(len(text)), 0, 0}
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: vec},
	}, nil
}

func (f *fakeEmbedder) callCount(text string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[text]
}

// fakePassageRepo serves canned hits keyed by the query vector.
type fakePassageRepo struct {
	mu   sync.Mutex
	hits map[string][]*contract.ScoredPassage
	err  error
}

func newFakePassageRepo() *fakePassageRepo {
	return &fakePassageRepo{hits: make(map[string][]*contract.ScoredPassage)}
}

func vecKey(vec []float32) string {
	return fmt.Sprint(vec)
}

func (f *fakePassageRepo) CreateBulk(ctx context.Context, passages []*entity.Passage) error {
	return nil
}

func (f *fakePassageRepo) DeleteBySource(ctx context.Context, source string) error {
	return nil
}

func (f *fakePassageRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakePassageRepo) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredPassage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	hits := f.hits[vecKey(embedding)]
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

var _ contract.PassageRepository = (*fakePassageRepo)(nil)

// fakeLLM answers with replyFn applied to the last user message.
type fakeLLM struct {
	mu       sync.Mutex
	received []string
	replyFn  func(text string) (string, error)
}

func newFakeLLM(replyFn func(text string) (string, error)) *fakeLLM {
	return &fakeLLM{replyFn: replyFn}
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text := history[len(history)-1].Content
	f.mu.Lock()
	f.received = append(f.received, text)
	f.mu.Unlock()
	return f.replyFn(text)
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

var _ llm.LLMProvider = (*fakeLLM)(nil)

func makeHit(content string, score float64) *contract.ScoredPassage {
	return &contract.ScoredPassage{
		Passage: &entity.Passage{
			Id:      uuid.New(),
			Content: content,
			Source:  "mayo_abdominal_pain_causes",
		},
		Similarity: score,
	}
}
