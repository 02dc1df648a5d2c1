package analyses

import "time"

// IsEasy enum values the model is instructed to use.
const (
	IsEasyYes         = "Yes"
	IsEasyNo          = "No"
	IsEasyExperienced = "Only if experienced"
)

// Input is the user-submitted idea/claim/timeframe triple, echoed back on
// the result for display and sharing.
type Input struct {
	Idea      string `json:"idea"`
	Claim     string `json:"claim"`
	Timeframe string `json:"timeframe"`
}

// Analysis is the model's structured judgement plus bookkeeping. Verdict and
// WhatWorks are the paid tier; everything else is the free preview.
type Analysis struct {
	PlainEnglish  string   `json:"plainEnglish"`
	Truths        []string `json:"truths"`
	EffortScore   int      `json:"effortScore"`
	IsEasy        string   `json:"isEasy"`
	WhyFeelsEasy  string   `json:"whyFeelsEasy"`
	WhyNot        string   `json:"whyNot"`
	RealisticTime string   `json:"realisticTime"`
	Verdict       string   `json:"verdict"`
	WhatWorks     string   `json:"whatWorks"`

	ID        string    `json:"id"`
	Input     Input     `json:"input"`
	Provider  string    `json:"-"`
	Model     string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
