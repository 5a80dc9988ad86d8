package service

import (
	"context"

	"abdochat-be/internal/dto"
	"abdochat-be/internal/pkg/logger"
	"abdochat-be/pkg/rag"
)

type ITriageService interface {
	Validate(ctx context.Context, req *dto.ValidateRequest) *dto.ValidateResponse
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type triageService struct {
	pipeline *rag.Pipeline
	logger   logger.ILogger
}

func NewTriageService(pipeline *rag.Pipeline, log logger.ILogger) ITriageService {
	return &triageService{
		pipeline: pipeline,
		logger:   log,
	}
}

// Validate answers the pre-flight scope check. It uses the same gate as the
// chat path, so both endpoints always agree on the refusal.
func (s *triageService) Validate(ctx context.Context, req *dto.ValidateRequest) *dto.ValidateResponse {
	if !rag.IsInScope(req.MainSymptom) {
		return &dto.ValidateResponse{Ok: false, Reply: rag.ReplyOutOfScope}
	}
	return &dto.ValidateResponse{Ok: true}
}

func (s *triageService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	reply, err := s.pipeline.Answer(ctx, req.MainSymptom, req.RefineAnswer)
	if err != nil {
		s.logger.Error("triage", "chat pipeline failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return &dto.ChatResponse{Reply: reply}, nil
}
