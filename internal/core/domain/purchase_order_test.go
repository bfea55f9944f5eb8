package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEstimateTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice string
		want      string
	}{
		{name: "cement bags", quantity: 100, unitPrice: "32.50", want: "3250"},
		{name: "zero quantity", quantity: 0, unitPrice: "800", want: "0"},
		{name: "fractional price", quantity: 3, unitPrice: "0.333", want: "0.999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.EstimateTotal(tt.quantity, decimal.RequireFromString(tt.unitPrice))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestPurchaseOrder_PurchaseExpense(t *testing.T) {
	po := domain.PurchaseOrder{
		ID:            "po1",
		ProjectID:     "p1",
		ItemName:      "Cimento",
		Quantity:      100,
		TotalEstimate: decimal.RequireFromString("3250"),
		Status:        domain.PurchaseOrderPending,
	}
	day := time.Date(2024, 3, 10, 15, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	txn := po.PurchaseExpense(day)

	assert.Empty(t, txn.ID)
	assert.Equal(t, "p1", txn.ProjectID)
	assert.Equal(t, "Compra: Cimento", txn.Description)
	assert.True(t, po.TotalEstimate.Equal(txn.Amount))
	assert.Equal(t, domain.Expense, txn.Type)
	assert.Equal(t, domain.PurchaseCategory, txn.Category)
	assert.Equal(t, domain.TransactionPaid, txn.Status)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), txn.Date)
	assert.True(t, txn.CountsTowardSpent())
}

func TestStockItem_Matches(t *testing.T) {
	item := domain.StockItem{ProjectID: "p1", Name: "Cimento", Quantity: 5, MinQuantity: 10}

	assert.True(t, item.Matches("p1", "Cimento"))
	assert.False(t, item.Matches("p1", "cimento"))
	assert.False(t, item.Matches("p2", "Cimento"))
	assert.True(t, item.IsLow())
}
