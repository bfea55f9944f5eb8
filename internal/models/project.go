package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a row of the projects table.
type Project struct {
	ID             string          `db:"id"`
	ClientID       *string         `db:"client_id"`
	Name           string          `db:"name"`
	Address        string          `db:"address"`
	Status         string          `db:"status"`
	Budget         decimal.Decimal `db:"budget"`
	Spent          decimal.Decimal `db:"spent"` // maintained by trigger
	StartDate      *time.Time      `db:"start_date"`
	CompletionDate *time.Time      `db:"completion_date"`
	Progress       int             `db:"progress"`
	ImageURL       string          `db:"image_url"`
}
