package anthropic

import (
	"fmt"
	"strings"

	"cashorclout-backend/internal/llm"
)

// TimeframeNotSpecified substitutes for an empty timeframe in the prompt.
const TimeframeNotSpecified = "not specified"

// BuildPrompt creates the system and user messages for a claim analysis.
func BuildPrompt(input llm.AnalyzeInput) (system string, user string) {
	system, _ = llm.PromptTemplate("v1")
	return system, buildUserPrompt(input)
}

func buildUserPrompt(input llm.AnalyzeInput) string {
	timeframe := strings.TrimSpace(input.Timeframe)
	if timeframe == "" {
		timeframe = TimeframeNotSpecified
	}
	return strings.TrimSpace(fmt.Sprintf(`
AI Business Idea: %s
Income Claim: %s
Timeframe: %s

Run the full analysis.`, input.Idea, input.Claim, timeframe))
}
