package entity

import (
	"time"

	"github.com/google/uuid"
)

// Passage is one indexed chunk of the corpus text, owned by the vector
// store and read-only to the serving path.
type Passage struct {
	Id         uuid.UUID
	Content    string
	Source     string
	ChunkIndex int
	Embedding  []float32
	CreatedAt  time.Time
}
