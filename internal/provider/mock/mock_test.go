package mock

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nghalu/KingdomFarming/internal/provider"
)

func TestProvider_Name(t *testing.T) {
	p := NewProvider()
	assert.Equal(t, "mock", p.Name())
}

func TestProvider_Initiate_OpensPendingSession(t *testing.T) {
	p := NewProvider()

	session, err := p.Initiate(context.Background(), &provider.ChargeRequest{
		Amount:    145,
		Currency:  "LSL",
		Method:    "mobile-money",
		Phone:     "+26658653136",
		Reference: "KF-test",
	})

	require.NoError(t, err)
	assert.Equal(t, provider.SessionStatusPending, session.Status)
	assert.True(t, strings.HasPrefix(session.ProviderRef, "mock_chg_"))
	assert.Equal(t, "https://pay.mock.local/checkout/"+session.ProviderRef, session.PaymentLink)
	assert.Empty(t, session.FailureReason)
}

func TestProvider_Initiate_UniqueRefs(t *testing.T) {
	p := NewProvider()

	first, err := p.Initiate(context.Background(), &provider.ChargeRequest{Amount: 95, Currency: "LSL"})
	require.NoError(t, err)
	second, err := p.Initiate(context.Background(), &provider.ChargeRequest{Amount: 95, Currency: "LSL"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ProviderRef, second.ProviderRef)
}
