package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is a row of the purchase_orders table.
// The order date is stored as created_at.
type PurchaseOrder struct {
	ID                string          `db:"id"`
	ProjectID         string          `db:"project_id"`
	RequesterID       string          `db:"requester_id"`
	ItemName          string          `db:"item_name"`
	Quantity          int             `db:"quantity"`
	UnitPriceEstimate decimal.Decimal `db:"unit_price_estimate"`
	TotalEstimate     decimal.Decimal `db:"total_estimate"`
	Status            string          `db:"status"`
	CreatedAt         time.Time       `db:"created_at"`
}
