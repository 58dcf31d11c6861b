package payments

import (
	"context"
	"fmt"
	"sync"
)

// FakeProvider is an in-memory Provider for tests and local development.
// Checkouts start unpaid; call MarkPaid to simulate a completed payment.
type FakeProvider struct {
	mu      sync.Mutex
	nextID  int
	paid    map[string]bool
	created map[string]string // checkout ID -> session ID

	// CreateErr and VerifyErr, when set, are returned by the respective calls.
	CreateErr error
	VerifyErr error
}

// NewFakeProvider creates an empty fake provider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		paid:    make(map[string]bool),
		created: make(map[string]string),
	}
}

// CreateCheckout returns a fake checkout with a predictable ID.
func (p *FakeProvider) CreateCheckout(_ context.Context, sessionID string) (*Checkout, error) {
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	id := fmt.Sprintf("cs_fake_%d", p.nextID)
	p.created[id] = sessionID

	return &Checkout{
		ID:  id,
		URL: "https://checkout.example.com/" + id,
	}, nil
}

// VerifyCheckout reports whether MarkPaid was called for the checkout.
func (p *FakeProvider) VerifyCheckout(_ context.Context, checkoutID string) (bool, error) {
	if p.VerifyErr != nil {
		return false, p.VerifyErr
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.created[checkoutID]; !ok {
		return false, fmt.Errorf("unknown checkout session: %s", checkoutID)
	}
	return p.paid[checkoutID], nil
}

// MarkPaid simulates the user completing payment for a checkout.
func (p *FakeProvider) MarkPaid(checkoutID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paid[checkoutID] = true
}
