package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashorclout-backend/internal/shared/server/respond"
)

// FailureMessage is the only analysis error detail the client ever sees.
const FailureMessage = "Analysis failed. Try again."

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/analyses/:id", h.getAnalysis)
}

func (h *Handler) analyze(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusInternalServerError, "bad_request_body", FailureMessage, err.Error())
		return
	}

	analysis, err := h.Svc.Analyze(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", ErrInvalidInput.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "analysis_failed", FailureMessage, err.Error())
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.OK(c, analysis)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	id := c.Param("id")

	analysis, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", err.Error())
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.OK(c, analysis)
}
