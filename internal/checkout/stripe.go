package checkout

import (
	"context"
	"fmt"
	"strings"

	stripe "github.com/stripe/stripe-go/v79"
	stripeclient "github.com/stripe/stripe-go/v79/client"
)

// StripeProvider implements Provider using Stripe Checkout Sessions.
type StripeProvider struct {
	api *stripeclient.API
}

// NewStripeProvider constructs a StripeProvider with its own API client,
// built once at process start.
func NewStripeProvider(secretKey string) (*StripeProvider, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	api := &stripeclient.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api}, nil
}

// CreateSession creates a card, mode=payment checkout session and returns
// its redirect URL. The analysis id rides along as session metadata for
// later reconciliation on the provider side.
func (p *StripeProvider) CreateSession(ctx context.Context, params SessionParams) (Session, error) {
	quantity := params.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(params.PriceID),
				Quantity: stripe.Int64(quantity),
			},
		},
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}
	if params.ClientReferenceID != "" {
		sessionParams.ClientReferenceID = stripe.String(params.ClientReferenceID)
	}
	sessionParams.AddMetadata("analysisId", params.AnalysisID)

	created, err := p.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return Session{}, fmt.Errorf("stripe create session: %w", err)
	}
	return Session{ID: created.ID, URL: created.URL}, nil
}

var _ Provider = (*StripeProvider)(nil)
