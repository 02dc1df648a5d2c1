package web

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashorclout-backend/internal/analyses"
	"cashorclout-backend/internal/shared/telemetry"
	"cashorclout-backend/internal/view"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/static/app.css">
</head>
<body>
  <div class="app">
    <nav class="nav">
      <a class="nav-logo" href="/">COC</a>
      <span class="nav-tagline">CashOrClout</span>
    </nav>
    <main class="main">
{{.Body}}
    </main>
    <footer class="footer">
      <span>&copy; 2025 CashOrClout</span>
      <span class="dot">&middot;</span>
      <span>We don't sell dreams. We sell clarity.</span>
    </footer>
  </div>
  <script src="/static/app.js"></script>
</body>
</html>
`))

var landingTmpl = template.Must(template.New("landing").Parse(`<div class="hero">
  <div class="hero-eyebrow">The BS Detector for AI Money Claims</div>
  <h1 class="hero-title">Cash Or<br>Clout.</h1>
  <p class="hero-sub">
    Every week, thousands of creators claim you can make &euro;10k/month with AI in 30 days.<br>
    We stress-test those claims. Coldly. Precisely. No fluff.
  </p>
  <button class="hero-cta" data-action="start">Analyze an idea &rarr;</button>
  <div class="hero-proof">
    <span>Free preview</span>
    <span class="dot">&middot;</span>
    <span>Full verdict &euro;19</span>
    <span class="dot">&middot;</span>
    <span>Results in seconds</span>
  </div>
</div>
`))

var notFoundTmpl = template.Must(template.New("notFound").Parse(`<div class="missing">
  <h2>Analysis not found</h2>
  <p>This link has expired or never existed. Run a fresh analysis instead.</p>
  <a class="hero-cta" href="/">Analyze an idea &rarr;</a>
</div>
`))

type pageData struct {
	Title string
	Body  template.HTML
}

// Handler serves the server-rendered pages: the landing screen and the
// shareable result page.
type Handler struct {
	Svc *analyses.Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *analyses.Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches page routes to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.landing)
	r.GET("/result/:id", h.resultPage)
}

func (h *Handler) landing(c *gin.Context) {
	body, err := renderTemplate(landingTmpl, nil)
	if err != nil {
		pageError(c, err)
		return
	}
	writePage(c, http.StatusOK, "CashOrClout — Cash or Clout?", body)
}

func (h *Handler) resultPage(c *gin.Context) {
	id := c.Param("id")

	analysis, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, analyses.ErrNotFound) {
			body, rerr := renderTemplate(notFoundTmpl, nil)
			if rerr != nil {
				pageError(c, rerr)
				return
			}
			writePage(c, http.StatusNotFound, "CashOrClout — Not found", body)
			return
		}
		pageError(c, err)
		return
	}

	// The unlock indicator is client-controlled and unverified.
	locked := !view.UnlockedFromQuery(c.Request.URL.Query())
	card, err := RenderCard(analysis, locked)
	if err != nil {
		pageError(c, err)
		return
	}
	c.Set("analysisId", analysis.ID)
	writePage(c, http.StatusOK, "CashOrClout — Analysis", card)
}

func renderTemplate(tmpl *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func writePage(c *gin.Context, status int, title string, body template.HTML) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{Title: title, Body: body}); err != nil {
		pageError(c, err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func pageError(c *gin.Context, err error) {
	telemetry.Error("web.render_failed", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.String(http.StatusInternalServerError, "Something went wrong. Try again.")
}
