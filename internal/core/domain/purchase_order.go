package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus is the state of a purchase request.
// Only PENDING -> PURCHASED is reachable; APPROVED and REJECTED exist for stored data.
type PurchaseOrderStatus string

const (
	PurchaseOrderPending   PurchaseOrderStatus = "PENDING"
	PurchaseOrderApproved  PurchaseOrderStatus = "APPROVED"
	PurchaseOrderRejected  PurchaseOrderStatus = "REJECTED"
	PurchaseOrderPurchased PurchaseOrderStatus = "PURCHASED"
)

const (
	PurchaseCategory          = "Material"
	PurchaseDescriptionPrefix = "Compra: "
)

// PurchaseOrder is a request to buy material for a project.
type PurchaseOrder struct {
	ID                string              `json:"id"`
	ProjectID         string              `json:"projectId"`
	RequesterID       string              `json:"requesterId"`
	ItemName          string              `json:"itemName"`
	Quantity          int                 `json:"quantity"`
	UnitPriceEstimate decimal.Decimal     `json:"unitPriceEstimate"`
	TotalEstimate     decimal.Decimal     `json:"totalEstimate"` // fixed at request time
	Status            PurchaseOrderStatus `json:"status"`
	Date              time.Time           `json:"date"`
}

func (p PurchaseOrder) GetID() string    { return p.ID }
func (p *PurchaseOrder) SetID(id string) { p.ID = id }

// EstimateTotal computes quantity x unit price.
func EstimateTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// PurchaseExpense builds the ledger entry recorded when the order is purchased on the given day.
func (p PurchaseOrder) PurchaseExpense(day time.Time) Transaction {
	return Transaction{
		ProjectID:   p.ProjectID,
		Description: PurchaseDescriptionPrefix + p.ItemName,
		Amount:      p.TotalEstimate,
		Type:        Expense,
		Category:    PurchaseCategory,
		Date:        DateOf(day),
		Status:      TransactionPaid,
	}
}

// ApprovalResult reports every entity touched by a purchase approval and how each was mirrored.
type ApprovalResult struct {
	Order           PurchaseOrder `json:"order"`
	Transaction     Transaction   `json:"transaction"`
	Stock           StockItem     `json:"stock"`
	OrderSync       SyncResult    `json:"orderSync"`
	TransactionSync SyncResult    `json:"transactionSync"`
	StockSync       SyncResult    `json:"stockSync"`
}

// Applied is false when the order was unknown or no longer pending.
func (r ApprovalResult) Applied() bool {
	return r.OrderSync.Status != SyncNoop
}
