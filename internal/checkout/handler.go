package checkout

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashorclout-backend/internal/shared/server/respond"
)

// FailureMessage is the only checkout error detail the client ever sees.
const FailureMessage = "Payment setup failed."

// Handler wires HTTP handlers to the checkout service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches checkout routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-checkout", h.createCheckout)
}

type createCheckoutRequest struct {
	AnalysisID string `json:"analysisId"`
}

type createCheckoutResponse struct {
	URL string `json:"url"`
}

func (h *Handler) createCheckout(c *gin.Context) {
	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusInternalServerError, "bad_request_body", FailureMessage, err.Error())
		return
	}

	url, err := h.Svc.CreateSession(c.Request.Context(), req.AnalysisID, c.GetHeader("Origin"))
	if err != nil {
		if errors.Is(err, ErrMissingAnalysisID) {
			respond.Error(c, http.StatusBadRequest, "validation_error", ErrMissingAnalysisID.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "checkout_failed", FailureMessage, err.Error())
		return
	}

	c.Set("analysisId", req.AnalysisID)
	respond.OK(c, createCheckoutResponse{URL: url})
}
