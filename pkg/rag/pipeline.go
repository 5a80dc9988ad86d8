package rag

import (
	"context"

	"abdochat-be/internal/pkg/logger"
)

// Pipeline wires the scope gate, dual-query retriever, evidence condenser,
// red-flag detector and assembler into the per-request answer flow. It holds
// no per-request state and is safe for concurrent use.
type Pipeline struct {
	retriever *Retriever
	condenser *Condenser
	logger    logger.ILogger
}

func NewPipeline(retriever *Retriever, condenser *Condenser, log logger.ILogger) *Pipeline {
	return &Pipeline{
		retriever: retriever,
		condenser: condenser,
		logger:    log,
	}
}

// Answer processes one symptom query end to end. Out-of-scope input and
// empty retrieval results are normal replies, not errors; an error return
// means a collaborator (embedder, vector store) was unavailable.
func (p *Pipeline) Answer(ctx context.Context, mainSymptom, refineAnswer string) (string, error) {
	if !IsInScope(mainSymptom) {
		return ReplyOutOfScope, nil
	}

	evidence, err := p.retriever.Retrieve(ctx, mainSymptom, refineAnswer)
	if err != nil {
		return "", err
	}
	if len(evidence) == 0 {
		return ReplyNoEvidence, nil
	}

	items := p.condenser.Condense(ctx, evidence)
	bullets := Bullets(items)
	if len(bullets) < len(items) {
		p.logger.Info("pipeline", "some passages skipped during condensation", map[string]interface{}{
			"succeeded": len(bullets),
			"skipped":   len(items) - len(bullets),
		})
	}

	urgent := DetectUrgency(mainSymptom, refineAnswer)
	return Assemble(bullets, urgent), nil
}
