package checkout

import "context"

// SessionParams describes the one-time-payment session to create.
type SessionParams struct {
	PriceID           string
	Quantity          int64
	SuccessURL        string
	CancelURL         string
	ClientReferenceID string
	AnalysisID        string
}

// Session is the provider-issued session; only the redirect URL matters here.
type Session struct {
	ID  string
	URL string
}

// Provider creates hosted checkout sessions with an external payment service.
type Provider interface {
	CreateSession(ctx context.Context, params SessionParams) (Session, error)
}
