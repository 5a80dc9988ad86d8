package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"abdochat-be/internal/pkg/logger"
	"abdochat-be/internal/repository/contract"
	"abdochat-be/pkg/llm"
)

// condenseInstruction steers the summarizer toward disease-focused bullets.
const condenseInstruction = `You are a medical assistant.
From the retrieved text, list only possible diseases or medical conditions related to the symptoms.
For each condition:
- Give the name of the disease
- Provide a short description (2-3 lines)
Do NOT include generic text like 'abdominal pain can be mild or severe'.
Answer in 30 to 80 words.`

// CondensedItem is the per-passage outcome: either a bullet or a skip.
// Failed summarizations never fail the request; the assembler works off
// however many bullets succeeded.
type CondensedItem struct {
	Bullet  string
	Skipped bool
	Err     error
}

// Condenser reduces retrieved passages to short disease-oriented bullets
// via the summarization LLM.
type Condenser struct {
	provider      llm.LLMProvider
	maxPassages   int
	maxInputChars int
	timeout       time.Duration
	logger        logger.ILogger
}

func NewCondenser(provider llm.LLMProvider, maxPassages, maxInputChars, timeoutSecs int, log logger.ILogger) *Condenser {
	if maxPassages <= 0 {
		maxPassages = 5
	}
	if maxInputChars <= 0 {
		maxInputChars = 1200
	}
	if timeoutSecs <= 0 {
		timeoutSecs = 60
	}
	return &Condenser{
		provider:      provider,
		maxPassages:   maxPassages,
		maxInputChars: maxInputChars,
		timeout:       time.Duration(timeoutSecs) * time.Second,
		logger:        log,
	}
}

// Condense maps at most the first maxPassages hits to bullets, preserving
// input order. One bullet per successful hit, no dedup of near-identical
// bullets from overlapping main/refine results.
func (c *Condenser) Condense(ctx context.Context, evidence []*contract.ScoredPassage) []CondensedItem {
	n := len(evidence)
	if n > c.maxPassages {
		n = c.maxPassages
	}

	items := make([]CondensedItem, 0, n)
	for _, hit := range evidence[:n] {
		bullet, err := c.condenseOne(ctx, hit.Passage.Content)
		if err != nil {
			c.logger.Warn("condenser", "passage summarization skipped", map[string]interface{}{
				"passage_id": hit.Passage.Id.String(),
				"error":      err.Error(),
			})
			items = append(items, CondensedItem{Skipped: true, Err: err})
			continue
		}
		items = append(items, CondensedItem{Bullet: bullet})
	}
	return items
}

func (c *Condenser) condenseOne(ctx context.Context, content string) (string, error) {
	// Hard input cap for the summarization call; a blunt cut that may land
	// mid-sentence is accepted as a cost-control measure.
	text := truncateRunes(strings.TrimSpace(content), c.maxInputChars)

	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	summary, err := c.provider.Chat(cctx, []llm.Message{
		{Role: "system", Content: condenseInstruction},
		{Role: "user", Content: text},
	}, llm.WithTemperature(0), llm.WithMaxTokens(160))
	if err != nil {
		return "", err
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", fmt.Errorf("summarizer returned empty text")
	}
	return bulletMarker + summary, nil
}

// Bullets extracts the successful bullets in order.
func Bullets(items []CondensedItem) []string {
	bullets := make([]string, 0, len(items))
	for _, item := range items {
		if !item.Skipped {
			bullets = append(bullets, item.Bullet)
		}
	}
	return bullets
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
