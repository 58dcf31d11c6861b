package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeConfig holds the Stripe account settings for the Pro checkout.
type StripeConfig struct {
	SecretKey  string
	PriceID    string
	SuccessURL string
	CancelURL  string
}

// StripeProvider implements Provider using Stripe hosted checkout sessions.
type StripeProvider struct {
	cfg StripeConfig
}

// NewStripeProvider creates a Stripe-backed payment provider.
func NewStripeProvider(cfg StripeConfig) *StripeProvider {
	stripe.Key = cfg.SecretKey
	return &StripeProvider{cfg: cfg}
}

// CreateCheckout starts a hosted Stripe checkout session for the Pro price.
// The success URL carries the checkout session ID so the confirm endpoint can
// verify the charge; the session ID is attached as the client reference.
func (p *StripeProvider) CreateCheckout(ctx context.Context, sessionID string) (*Checkout, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(p.cfg.SuccessURL + "?checkout_id={CHECKOUT_SESSION_ID}"),
		CancelURL:         stripe.String(p.cfg.CancelURL),
		ClientReferenceID: stripe.String(sessionID),
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &Checkout{ID: s.ID, URL: s.URL}, nil
}

// VerifyCheckout retrieves the checkout session from Stripe and reports
// whether it was actually paid.
func (p *StripeProvider) VerifyCheckout(ctx context.Context, checkoutID string) (bool, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	}

	s, err := checkoutsession.Get(checkoutID, params)
	if err != nil {
		return false, fmt.Errorf("failed to retrieve checkout session %s: %w", checkoutID, err)
	}

	return s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}
