package models

import "time"

// StockItem is a row of the stock_items table.
type StockItem struct {
	ID          string    `db:"id"`
	ProjectID   string    `db:"project_id"`
	Name        string    `db:"name"`
	Quantity    int       `db:"quantity"`
	MinQuantity int       `db:"min_quantity"`
	Unit        string    `db:"unit"`
	LastUpdated time.Time `db:"last_updated"`
}
