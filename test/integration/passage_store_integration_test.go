package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"abdochat-be/internal/entity"
	"abdochat-be/internal/repository/implementation"
	"abdochat-be/pkg/database"
	"abdochat-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSource = "integration_test_corpus"

// Exercises the real pgvector round trip: bulk insert, thresholded cosine
// search, delete by source. Needs a migrated database; skipped otherwise.
func TestPassageStoreRoundTrip(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "failed to connect to DB")

	repo := implementation.NewPassageRepository(gormDB)
	ctx := context.Background()

	// Clean slate for the test source, and again on exit.
	require.NoError(t, repo.DeleteBySource(ctx, testSource))
	t.Cleanup(func() {
		_ = repo.DeleteBySource(ctx, testSource)
	})

	near := make([]float32, 768)
	near[0] = 1
	far := make([]float32, 768)
	far[1] = 1

	passages := []*entity.Passage{
		{Id: uuid.New(), Content: "near passage", Source: testSource, ChunkIndex: 0, Embedding: embedding.NormalizeVector(near)},
		{Id: uuid.New(), Content: "far passage", Source: testSource, ChunkIndex: 1, Embedding: embedding.NormalizeVector(far)},
	}
	require.NoError(t, repo.CreateBulk(ctx, passages))

	t.Run("Search excludes sub-threshold hits", func(t *testing.T) {
		query := make([]float32, 768)
		query[0] = 1

		hits, err := repo.SearchSimilarWithScore(ctx, embedding.NormalizeVector(query), 6, 0.2)
		require.NoError(t, err)
		require.NotEmpty(t, hits)

		assert.Equal(t, "near passage", hits[0].Passage.Content)
		assert.InDelta(t, 1.0, hits[0].Similarity, 0.01)
		for _, hit := range hits {
			assert.GreaterOrEqual(t, hit.Similarity, 0.2)
			assert.NotEqual(t, "far passage", hit.Passage.Content, "orthogonal passage must stay below threshold")
		}
	})

	t.Run("Delete by source clears the rows", func(t *testing.T) {
		require.NoError(t, repo.DeleteBySource(ctx, testSource))

		query := make([]float32, 768)
		query[0] = 1
		hits, err := repo.SearchSimilarWithScore(ctx, embedding.NormalizeVector(query), 6, 0.2)
		require.NoError(t, err)
		for _, hit := range hits {
			assert.NotEqual(t, testSource, hit.Passage.Source)
		}
	})
}
