// Package payments integrates the hosted checkout flow that gates the Pro tier.
package payments

import "context"

// Checkout is a hosted checkout the user is redirected to.
type Checkout struct {
	ID  string
	URL string
}

// Provider is the narrow interface to the payment provider. Entitlement is
// only granted after VerifyCheckout confirms the charge server-side; the
// success-redirect query parameter alone is never trusted.
type Provider interface {
	// CreateCheckout starts a hosted checkout for the given session and
	// returns the URL to redirect the user to.
	CreateCheckout(ctx context.Context, sessionID string) (*Checkout, error)

	// VerifyCheckout asks the provider whether the checkout was paid.
	VerifyCheckout(ctx context.Context, checkoutID string) (bool, error)
}
