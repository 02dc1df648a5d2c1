package analyses

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cashorclout-backend/internal/llm"
	"cashorclout-backend/internal/shared/metrics"
	"cashorclout-backend/internal/shared/telemetry"
)

// Service contains business logic for analyses.
type Service struct {
	Repo     Repo
	LLM      llm.Client
	Provider string
	Model    string
}

// Analyze runs a single claim analysis: one model call, a strict JSON parse
// of the reply, id assignment, and a best-effort store put. The id is
// assigned exactly once, at the moment the reply parses.
func (s *Service) Analyze(ctx context.Context, input Input) (Analysis, error) {
	if strings.TrimSpace(input.Idea) == "" || strings.TrimSpace(input.Claim) == "" {
		return Analysis{}, ErrInvalidInput
	}

	metrics.IncAnalysisStarted()
	start := time.Now()

	raw, err := s.LLM.AnalyzeClaim(ctx, llm.AnalyzeInput{
		Idea:      input.Idea,
		Claim:     input.Claim,
		Timeframe: input.Timeframe,
	})
	if err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, fmt.Errorf("llm analyze: %w", err)
	}

	var analysis Analysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, fmt.Errorf("parse llm reply: %w", err)
	}

	analysis.ID = NewID()
	analysis.Input = input
	analysis.Provider = s.Provider
	analysis.Model = s.Model
	analysis.CreatedAt = time.Now().UTC()

	// Durability is best-effort: a failed put loses the share link, not the
	// response the caller is waiting on.
	if err := s.Repo.Put(ctx, analysis); err != nil {
		telemetry.Error("analysis.put_failed", map[string]any{
			"analysis_id": analysis.ID,
			"error":       err.Error(),
		})
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Milliseconds()))
	return analysis, nil
}

// Get returns a stored analysis by ID.
func (s *Service) Get(ctx context.Context, id string) (Analysis, error) {
	if strings.TrimSpace(id) == "" {
		return Analysis{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}
