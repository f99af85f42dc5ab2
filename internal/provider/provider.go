package provider

import (
	"context"
)

// Session status values reported by a payment gateway.
const (
	SessionStatusPending   = "pending"
	SessionStatusSucceeded = "succeeded"
	SessionStatusFailed    = "failed"
)

// ChargeRequest holds the parameters for opening a payment session with
// the gateway. Amount is the full payable in whole currency units.
type ChargeRequest struct {
	Amount       int64
	Currency     string
	Method       string
	Phone        string
	Email        string
	CustomerName string
	Reference    string
	Description  string
}

// ChargeSession is the gateway's handle for a payment in flight. The
// consumer is sent to PaymentLink to authorize the charge; the gateway
// reports the outcome against ProviderRef.
type ChargeSession struct {
	ProviderRef   string
	PaymentLink   string
	Status        string
	FailureReason string
}

// Provider defines the interface for payment gateway integrations.
type Provider interface {
	// Name returns the provider name (e.g., "mock", "flutterwave").
	Name() string

	// Initiate opens a payment session with the gateway for the given
	// charge and returns the session handle.
	Initiate(ctx context.Context, req *ChargeRequest) (*ChargeSession, error)
}
