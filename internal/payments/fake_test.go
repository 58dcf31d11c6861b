package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeProvider_CheckoutLifecycle(t *testing.T) {
	provider := NewFakeProvider()
	ctx := context.Background()

	checkout, err := provider.CreateCheckout(ctx, "session-1")
	require.NoError(t, err)
	require.NotEmpty(t, checkout.ID)
	require.NotEmpty(t, checkout.URL)

	// Unpaid until MarkPaid.
	paid, err := provider.VerifyCheckout(ctx, checkout.ID)
	require.NoError(t, err)
	assert.False(t, paid)

	provider.MarkPaid(checkout.ID)
	paid, err = provider.VerifyCheckout(ctx, checkout.ID)
	require.NoError(t, err)
	assert.True(t, paid)
}

func TestFakeProvider_UnknownCheckout(t *testing.T) {
	provider := NewFakeProvider()

	_, err := provider.VerifyCheckout(context.Background(), "cs_missing")
	assert.Error(t, err)
}
