package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cashorclout-backend/internal/analyses"
	"cashorclout-backend/internal/checkout"
	"cashorclout-backend/internal/llm"
	"cashorclout-backend/internal/shared/config"
	"cashorclout-backend/internal/shared/metrics"
	"cashorclout-backend/internal/shared/server/middleware"
	"cashorclout-backend/internal/shared/server/respond"
	"cashorclout-backend/internal/web"
)

// Deps are the external collaborators, constructed once at process start
// and injected rather than recreated per request.
type Deps struct {
	LLM      llm.Client
	Checkout checkout.Provider
	Repo     analyses.Repo
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	analysisSvc := &analyses.Service{
		Repo:     deps.Repo,
		LLM:      deps.LLM,
		Provider: "anthropic",
		Model:    cfg.LLMModel,
	}
	analysisHandler := analyses.NewHandler(analysisSvc)

	checkoutSvc := &checkout.Service{
		Provider:   deps.Checkout,
		PriceID:    cfg.StripePriceID,
		SiteOrigin: cfg.SiteOrigin,
	}
	checkoutHandler := checkout.NewHandler(checkoutSvc)

	webHandler := web.NewHandler(analysisSvc)

	root := r.Group("/")
	analysisHandler.RegisterRoutes(root)
	checkoutHandler.RegisterRoutes(root)
	webHandler.RegisterRoutes(r)
	web.RegisterStatic(r)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
