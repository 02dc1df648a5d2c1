package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"cashorclout-backend/internal/shared/metrics"
)

// ErrMissingAnalysisID signals a checkout request without an analysis id.
var ErrMissingAnalysisID = errors.New("analysisId is required")

// Service creates unlock checkout sessions for analyses.
type Service struct {
	Provider   Provider
	PriceID    string
	SiteOrigin string
}

// CreateSession asks the payment provider for a one-time-payment session
// unlocking the given analysis and returns the redirect URL. origin is the
// caller's Origin header; when empty the canonical site origin is used.
func (s *Service) CreateSession(ctx context.Context, analysisID, origin string) (string, error) {
	analysisID = strings.TrimSpace(analysisID)
	if analysisID == "" {
		return "", ErrMissingAnalysisID
	}
	if strings.TrimSpace(origin) == "" {
		origin = s.SiteOrigin
	}

	session, err := s.Provider.CreateSession(ctx, SessionParams{
		PriceID:           s.PriceID,
		Quantity:          1,
		SuccessURL:        SuccessURL(origin, analysisID),
		CancelURL:         CancelURL(origin, analysisID),
		ClientReferenceID: uuid.NewString(),
		AnalysisID:        analysisID,
	})
	if err != nil {
		metrics.IncCheckoutFailed()
		return "", err
	}

	metrics.IncCheckoutCreated()
	return session.URL, nil
}

// SuccessURL is where the provider redirects after payment; only this URL
// carries the unlock indicator.
func SuccessURL(origin, analysisID string) string {
	return fmt.Sprintf("%s/result/%s?unlocked=true", origin, analysisID)
}

// CancelURL is where the provider redirects on an abandoned payment.
func CancelURL(origin, analysisID string) string {
	return fmt.Sprintf("%s/result/%s", origin, analysisID)
}
