package mapper

import (
	"abdochat-be/internal/entity"
	"abdochat-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type PassageMapper struct{}

func NewPassageMapper() *PassageMapper {
	return &PassageMapper{}
}

func (m *PassageMapper) ToEntity(p *model.Passage) *entity.Passage {
	if p == nil {
		return nil
	}
	return &entity.Passage{
		Id:         p.Id,
		Content:    p.Content,
		Source:     p.Source,
		ChunkIndex: p.ChunkIndex,
		Embedding:  p.Embedding.Slice(),
		CreatedAt:  p.CreatedAt,
	}
}

func (m *PassageMapper) ToModel(e *entity.Passage) *model.Passage {
	if e == nil {
		return nil
	}
	return &model.Passage{
		Id:         e.Id,
		Content:    e.Content,
		Source:     e.Source,
		ChunkIndex: e.ChunkIndex,
		Embedding:  pgvector.NewVector(e.Embedding),
		CreatedAt:  e.CreatedAt,
	}
}

func (m *PassageMapper) ToEntities(passages []*model.Passage) []*entity.Passage {
	entities := make([]*entity.Passage, len(passages))
	for i, p := range passages {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PassageMapper) ToModels(passages []*entity.Passage) []*model.Passage {
	models := make([]*model.Passage, len(passages))
	for i, e := range passages {
		models[i] = m.ToModel(e)
	}
	return models
}
