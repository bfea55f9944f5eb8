package domain

import "github.com/shopspring/decimal"

// DashboardSummary holds the headline figures of the workspace.
type DashboardSummary struct {
	TotalIncome      decimal.Decimal       `json:"totalIncome"`
	TotalExpense     decimal.Decimal       `json:"totalExpense"`
	Balance          decimal.Decimal       `json:"balance"`
	ActiveProjects   int                   `json:"activeProjects"`
	ProjectsByStatus map[ProjectStatus]int `json:"projectsByStatus"`
	LowStockItems    int                   `json:"lowStockItems"`
	PendingOrders    int                   `json:"pendingOrders"`
}
