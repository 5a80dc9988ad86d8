package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type Passage struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content    string          `gorm:"type:text"`
	Source     string          `gorm:"type:varchar(255);not null;index"` // corpus source identifier
	ChunkIndex int             `gorm:"default:0"`                        // 0-based position within the source
	Embedding  pgvector.Vector `gorm:"type:vector(768)"`                 // nomic-embed-text / text-embedding-004 use 768 dimensions
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (Passage) TableName() string {
	return "passages"
}
