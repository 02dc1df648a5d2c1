package web

import (
	"bytes"
	"html/template"

	"cashorclout-backend/internal/analyses"
)

// resultCardTmpl renders one analysis as the two-tier card. The locked zone
// always contains the verdict and alternative text in the document; locking
// only blurs them and overlays the unlock prompt.
// html/template escapes every model-produced string.
var resultCardTmpl = template.Must(template.New("resultCard").Parse(`<div class="card">
  <div class="card-header">
    <span class="card-tag">ANALYSIS</span>
    <span class="card-brand">CASHORCLOUT.COM</span>
  </div>
  <section class="card-section">
    <h3 class="section-label">IDEA IN PLAIN ENGLISH</h3>
    <p class="section-body">{{.PlainEnglish}}</p>
  </section>
  <section class="card-section">
    <h3 class="section-label">WHAT WOULD NEED TO BE TRUE</h3>
    <ul class="truth-list">
{{- range .Truths}}
      <li><span class="truth-dot">&rarr;</span>{{.}}</li>
{{- end}}
    </ul>
  </section>
  <div class="card-row">
    <section class="card-section half">
      <h3 class="section-label">EFFORT REALITY</h3>
      <div class="score-wrap">
        <div class="score-track"><div class="score-fill" style="width: {{.FillWidth}}%"></div></div>
        <span class="score-num">{{.EffortScore}}<span class="score-denom">/10</span></span>
      </div>
    </section>
    <section class="card-section half">
      <h3 class="section-label">ACTUALLY &quot;EASY&quot;?</h3>
      <span class="easy-badge {{.BadgeClass}}">{{.IsEasy}}</span>
    </section>
  </div>
  <div class="card-row">
    <section class="card-section half">
      <h3 class="section-label">WHY IT FEELS EASY</h3>
      <p class="section-body small">{{.WhyFeelsEasy}}</p>
    </section>
    <section class="card-section half">
      <h3 class="section-label">WHY IT'S NOT</h3>
      <p class="section-body small">{{.WhyNot}}</p>
    </section>
  </div>
  <section class="card-section">
    <h3 class="section-label">REALISTIC TIME BEFORE FIRST &euro;1</h3>
    <p class="time-value">{{.RealisticTime}}</p>
  </section>
  <div class="locked-zone {{if .Locked}}is-locked{{else}}is-unlocked{{end}}">
{{- if .Locked}}
    <div class="lock-overlay">
      <div class="lock-content">
        <p class="lock-title">Verdict + What Actually Works</p>
        <p class="lock-sub">The part the gurus don't want you to read.</p>
        <button class="unlock-btn" data-analysis-id="{{.AnalysisID}}">Unlock for &euro;19</button>
      </div>
    </div>
{{- end}}
    <section class="card-section">
      <h3 class="section-label">VERDICT</h3>
      <p class="verdict-text{{if .Locked}} blurred{{end}}">{{.Verdict}}</p>
    </section>
    <section class="card-section">
      <h3 class="section-label">WHAT WOULD ACTUALLY WORK INSTEAD</h3>
      <p class="section-body{{if .Locked}} blurred{{end}}">{{.WhatWorks}}</p>
    </section>
  </div>
  <div class="card-footer">
    <button class="share-btn" data-confirm-ms="2000">Share this analysis</button>
    <button class="restart-btn" data-action="start-over">Analyze another idea</button>
  </div>
</div>
`))

type cardData struct {
	PlainEnglish  string
	Truths        []string
	EffortScore   int
	FillWidth     int
	IsEasy        string
	BadgeClass    string
	WhyFeelsEasy  string
	WhyNot        string
	RealisticTime string
	Verdict       string
	WhatWorks     string
	AnalysisID    string
	Locked        bool
}

// FillWidth is the effort gauge fill as a percentage: exactly score x 10.
func FillWidth(score int) int {
	return score * 10
}

// BadgeClass maps the isEasy enum onto its three badge styles.
func BadgeClass(isEasy string) string {
	switch isEasy {
	case analyses.IsEasyYes:
		return "yes"
	case analyses.IsEasyNo:
		return "no"
	default:
		return "maybe"
	}
}

// RenderCard renders the analysis card for the given lock state.
func RenderCard(analysis analyses.Analysis, locked bool) (template.HTML, error) {
	data := cardData{
		PlainEnglish:  analysis.PlainEnglish,
		Truths:        analysis.Truths,
		EffortScore:   analysis.EffortScore,
		FillWidth:     FillWidth(analysis.EffortScore),
		IsEasy:        analysis.IsEasy,
		BadgeClass:    BadgeClass(analysis.IsEasy),
		WhyFeelsEasy:  analysis.WhyFeelsEasy,
		WhyNot:        analysis.WhyNot,
		RealisticTime: analysis.RealisticTime,
		Verdict:       analysis.Verdict,
		WhatWorks:     analysis.WhatWorks,
		AnalysisID:    analysis.ID,
		Locked:        locked,
	}
	var buf bytes.Buffer
	if err := resultCardTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
