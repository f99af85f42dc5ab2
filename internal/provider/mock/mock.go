package mock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Nghalu/KingdomFarming/internal/provider"
)

// Provider is a mock payment gateway that always opens a session.
// It is intended for development and testing purposes.
type Provider struct{}

// NewProvider creates a new mock payment gateway.
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "mock"
}

// Initiate simulates opening a payment session with the gateway.
func (p *Provider) Initiate(_ context.Context, req *provider.ChargeRequest) (*provider.ChargeSession, error) {
	// Simulate a small processing delay.
	time.Sleep(50 * time.Millisecond)

	ref := "mock_chg_" + uuid.New().String()
	return &provider.ChargeSession{
		ProviderRef: ref,
		PaymentLink: "https://pay.mock.local/checkout/" + ref,
		Status:      provider.SessionStatusPending,
	}, nil
}
