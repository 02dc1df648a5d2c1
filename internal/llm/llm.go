package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for claim analysis.
type Client interface {
	AnalyzeClaim(ctx context.Context, input AnalyzeInput) (json.RawMessage, error)
}

// AnalyzeInput captures the inputs needed for a claim analysis.
type AnalyzeInput struct {
	Idea      string
	Claim     string
	Timeframe string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// AnalyzeClaim returns ErrNotImplemented.
func (PlaceholderClient) AnalyzeClaim(ctx context.Context, input AnalyzeInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}
