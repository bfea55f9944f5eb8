package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// TransactionStatus tracks settlement of a transaction.
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "PENDING"
	TransactionPaid    TransactionStatus = "PAID"
	TransactionOverdue TransactionStatus = "OVERDUE"
)

// Transaction is a single entry of the financial ledger.
type Transaction struct {
	ID          string            `json:"id"`
	ProjectID   string            `json:"projectId,omitempty"` // empty for company-wide entries
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"` // non-negative
	Type        TransactionType   `json:"type"`
	Category    string            `json:"category"`
	Date        time.Time         `json:"date"`
	Status      TransactionStatus `json:"status"`
}

func (t Transaction) GetID() string    { return t.ID }
func (t *Transaction) SetID(id string) { t.ID = id }

// CountsTowardSpent reports whether the transaction is a paid expense linked to a project.
func (t Transaction) CountsTowardSpent() bool {
	return t.ProjectID != "" && t.Type == Expense && t.Status == TransactionPaid
}
