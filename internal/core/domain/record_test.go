package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wheatworks/millbook/internal/core/domain"
)

func TestStatusForMethod(t *testing.T) {
	assert.Equal(t, domain.Paid, domain.StatusForMethod(domain.Cash))
	assert.Equal(t, domain.Pending, domain.StatusForMethod(domain.Borrow))
}

func TestNextPaymentStatus(t *testing.T) {
	paid := domain.Paid
	pending := domain.Pending

	tests := []struct {
		name      string
		method    domain.PaymentMethod
		requested *domain.PaymentStatus
		current   domain.PaymentStatus
		want      domain.PaymentStatus
	}{
		{
			name:    "cash forces paid regardless of current status",
			method:  domain.Cash,
			current: domain.Pending,
			want:    domain.Paid,
		},
		{
			name:      "cash ignores an explicit pending request",
			method:    domain.Cash,
			requested: &pending,
			current:   domain.Paid,
			want:      domain.Paid,
		},
		{
			name:      "borrow honours an explicit paid request",
			method:    domain.Borrow,
			requested: &paid,
			current:   domain.Pending,
			want:      domain.Paid,
		},
		{
			name:      "borrow honours an explicit pending request",
			method:    domain.Borrow,
			requested: &pending,
			current:   domain.Paid,
			want:      domain.Pending,
		},
		{
			name:    "borrow keeps current status when nothing requested",
			method:  domain.Borrow,
			current: domain.Paid,
			want:    domain.Paid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.NextPaymentStatus(tt.method, tt.requested, tt.current)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlourTypeIsValid(t *testing.T) {
	for _, f := range domain.FlourTypes {
		assert.True(t, f.IsValid(), "%s should be a valid flour type", f)
	}
	assert.False(t, domain.FlourType("SOOJI").IsValid())
	assert.False(t, domain.FlourType("").IsValid())
	// Enum values are uppercase; lowercase input is not silently accepted.
	assert.False(t, domain.FlourType("atta").IsValid())
}
