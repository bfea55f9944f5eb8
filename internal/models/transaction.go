package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	ID          string          `db:"id"`
	ProjectID   *string         `db:"project_id"` // NULL for company-wide entries
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Type        string          `db:"type"`
	Category    string          `db:"category"`
	Date        time.Time       `db:"date"`
	Status      string          `db:"status"`
}
