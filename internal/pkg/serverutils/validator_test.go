package serverutils

import (
	"testing"

	"cholestofit-be/internal/dto"
	"cholestofit-be/pkg/billing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Amount int64  `validate:"required,min=1"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     sampleRequest{Email: "user@example.com", Amount: 500},
			wantErr: false,
		},
		{
			name:    "missing email",
			req:     sampleRequest{Amount: 500},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     sampleRequest{Email: "not-an-email", Amount: 500},
			wantErr: true,
		},
		{
			name:    "zero amount",
			req:     sampleRequest{Email: "user@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Checkout amounts must be screened at request time: anything over the
// deposit cap could be paid via the gateway but never credited at settlement.
func TestValidateTopUpCheckoutBounds(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		wantErr bool
	}{
		{name: "minimum accepted", amount: 100},
		{name: "cap accepted", amount: billing.DefaultDepositCapCents},
		{name: "below minimum rejected", amount: 99, wantErr: true},
		{name: "over cap rejected", amount: 2_000_000, wantErr: true},
		{name: "missing amount rejected", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(dto.TopUpCheckoutRequest{AmountCents: tt.amount})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
