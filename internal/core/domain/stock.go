package domain

import "time"

// Defaults applied to stock items created by a purchase approval.
const (
	DefaultMinQuantity = 10
	DefaultStockUnit   = "un"
)

// StockItem is a quantity of a named material held against a project.
// Two items with the same (ProjectID, Name) are the same logical item.
type StockItem struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"minQuantity"` // reorder threshold
	Unit        string    `json:"unit"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (s StockItem) GetID() string    { return s.ID }
func (s *StockItem) SetID(id string) { s.ID = id }

// IsLow reports whether the item is at or below its reorder threshold.
func (s StockItem) IsLow() bool {
	return s.Quantity <= s.MinQuantity
}

// Matches compares the logical key. The comparison is exact and case-sensitive.
func (s StockItem) Matches(projectID, name string) bool {
	return s.ProjectID == projectID && s.Name == name
}
