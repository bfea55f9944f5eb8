package domain

import "time"

// DateOf truncates t to a calendar date in UTC.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Snapshot is a full copy of the six workspace collections.
// It is what the remote store returns on a bulk fetch and what seed data decodes into.
type Snapshot struct {
	Clients        []Client        `json:"clients"`
	Projects       []Project       `json:"projects"`
	Transactions   []Transaction   `json:"transactions"`
	StockItems     []StockItem     `json:"stockItems"`
	PurchaseOrders []PurchaseOrder `json:"purchaseOrders"`
	DailyLogs      []DailyLog      `json:"dailyLogs"`
}
