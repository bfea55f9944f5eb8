package workspace

import (
	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Dashboard sums the ledger regardless of settlement status and counts projects per status.
func (s *Store) Dashboard() domain.DashboardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := domain.DashboardSummary{
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
		ProjectsByStatus: make(map[domain.ProjectStatus]int, len(domain.ProjectStatuses)),
	}
	for _, st := range domain.ProjectStatuses {
		summary.ProjectsByStatus[st] = 0
	}

	for _, t := range s.transactions {
		switch t.Type {
		case domain.Income:
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		case domain.Expense:
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)

	for _, p := range s.projects {
		summary.ProjectsByStatus[p.Status]++
		if p.Status == domain.ProjectInProgress {
			summary.ActiveProjects++
		}
	}
	for _, item := range s.stock {
		if item.IsLow() {
			summary.LowStockItems++
		}
	}
	for _, o := range s.orders {
		if o.Status == domain.PurchaseOrderPending {
			summary.PendingOrders++
		}
	}
	return summary
}
