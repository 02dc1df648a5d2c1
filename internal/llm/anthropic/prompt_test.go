package anthropic

import (
	"strings"
	"testing"

	"cashorclout-backend/internal/llm"
)

func TestBuildPrompt(t *testing.T) {
	system, user := BuildPrompt(llm.AnalyzeInput{
		Idea:      "AI content agency",
		Claim:     "€10,000/month",
		Timeframe: "30 days",
	})

	if !strings.Contains(system, "CashOrClout") {
		t.Fatalf("system prompt missing persona: %q", system)
	}
	if !strings.Contains(system, `"effortScore"`) || !strings.Contains(system, "Only if experienced") {
		t.Fatalf("system prompt missing schema rules")
	}

	for _, want := range []string{
		"AI Business Idea: AI content agency",
		"Income Claim: €10,000/month",
		"Timeframe: 30 days",
		"Run the full analysis.",
	} {
		if !strings.Contains(user, want) {
			t.Fatalf("user prompt missing %q:\n%s", want, user)
		}
	}
	if strings.HasPrefix(user, "\n") || strings.HasSuffix(user, "\n") {
		t.Fatalf("user prompt not trimmed: %q", user)
	}
}

func TestBuildPromptTimeframeDefault(t *testing.T) {
	for _, timeframe := range []string{"", "   "} {
		_, user := BuildPrompt(llm.AnalyzeInput{Idea: "x", Claim: "y", Timeframe: timeframe})
		if !strings.Contains(user, "Timeframe: "+TimeframeNotSpecified) {
			t.Fatalf("timeframe %q: expected %q placeholder:\n%s", timeframe, TimeframeNotSpecified, user)
		}
	}
}
