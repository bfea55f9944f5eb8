package domain_test

import (
	"testing"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_CountsTowardSpent(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        bool
	}{
		{
			name: "paid expense linked to a project",
			transaction: domain.Transaction{
				ProjectID: "p1",
				Amount:    decimal.NewFromInt(45000),
				Type:      domain.Expense,
				Status:    domain.TransactionPaid,
			},
			want: true,
		},
		{
			name: "pending expense",
			transaction: domain.Transaction{
				ProjectID: "p1",
				Type:      domain.Expense,
				Status:    domain.TransactionPending,
			},
			want: false,
		},
		{
			name: "paid income",
			transaction: domain.Transaction{
				ProjectID: "p1",
				Type:      domain.Income,
				Status:    domain.TransactionPaid,
			},
			want: false,
		},
		{
			name: "paid expense without project",
			transaction: domain.Transaction{
				Type:   domain.Expense,
				Status: domain.TransactionPaid,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transaction.CountsTowardSpent())
		})
	}
}
