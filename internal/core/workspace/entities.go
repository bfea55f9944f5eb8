package workspace

import (
	"context"

	"github.com/SscSPs/construct_erp/internal/core/domain"
)

func (s *Store) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.clients)
}

func (s *Store) AddClient(ctx context.Context, client domain.Client) (domain.Client, domain.SyncResult) {
	return clientResource.add(ctx, s, client)
}

func (s *Store) UpdateClient(ctx context.Context, client domain.Client) (domain.Client, domain.SyncResult) {
	return clientResource.replace(ctx, s, client)
}

// RemoveClient deletes the client. Projects keep their reference to it.
func (s *Store) RemoveClient(ctx context.Context, clientID string) domain.SyncResult {
	return clientResource.delete(ctx, s, clientID)
}

func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.projects)
}

func (s *Store) Project(projectID string) (domain.Project, bool) {
	return projectResource.find(s, projectID)
}

// AddProject inserts a project. A new project starts with the spent it was given.
func (s *Store) AddProject(ctx context.Context, project domain.Project) (domain.Project, domain.SyncResult) {
	return projectResource.add(ctx, s, project)
}

// UpdateProject replaces a project but keeps the stored spent.
func (s *Store) UpdateProject(ctx context.Context, project domain.Project) (domain.Project, domain.SyncResult) {
	return projectResource.replace(ctx, s, project)
}

func (s *Store) RemoveProject(ctx context.Context, projectID string) domain.SyncResult {
	return projectResource.delete(ctx, s, projectID)
}

// Transactions lists the ledger newest first. An empty kind lists every entry.
func (s *Store) Transactions(kind domain.TransactionType) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if kind == "" {
		return copyOf(s.transactions)
	}
	out := make([]domain.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if t.Type == kind {
			out = append(out, t)
		}
	}
	return out
}

// AddTransaction prepends txn. A paid expense grows its project's spent.
func (s *Store) AddTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, domain.SyncResult) {
	return transactionResource.add(ctx, s, txn)
}

func (s *Store) UpdateTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, domain.SyncResult) {
	return transactionResource.replace(ctx, s, txn)
}

// RemoveTransaction deletes the entry. Project spent is not reduced.
func (s *Store) RemoveTransaction(ctx context.Context, transactionID string) domain.SyncResult {
	return transactionResource.delete(ctx, s, transactionID)
}

func (s *Store) StockItems() []domain.StockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.stock)
}

// LowStock lists items at or below their reorder threshold.
func (s *Store) LowStock() []domain.StockItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.StockItem, 0)
	for _, item := range s.stock {
		if item.IsLow() {
			out = append(out, item)
		}
	}
	return out
}

func (s *Store) AddStockItem(ctx context.Context, item domain.StockItem) (domain.StockItem, domain.SyncResult) {
	if item.LastUpdated.IsZero() {
		item.LastUpdated = s.now()
	}
	return stockResource.add(ctx, s, item)
}

func (s *Store) UpdateStockItem(ctx context.Context, item domain.StockItem) (domain.StockItem, domain.SyncResult) {
	item.LastUpdated = s.now()
	return stockResource.replace(ctx, s, item)
}

func (s *Store) RemoveStockItem(ctx context.Context, itemID string) domain.SyncResult {
	return stockResource.delete(ctx, s, itemID)
}

func (s *Store) PurchaseOrders() []domain.PurchaseOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOf(s.orders)
}

// RequestPurchase files a new PENDING order and fixes its total estimate.
func (s *Store) RequestPurchase(ctx context.Context, order domain.PurchaseOrder) (domain.PurchaseOrder, domain.SyncResult) {
	order.Status = domain.PurchaseOrderPending
	order.TotalEstimate = domain.EstimateTotal(order.Quantity, order.UnitPriceEstimate)
	if order.Date.IsZero() {
		order.Date = domain.DateOf(s.now())
	}
	return purchaseOrderResource.add(ctx, s, order)
}

func (s *Store) RemovePurchaseOrder(ctx context.Context, orderID string) domain.SyncResult {
	return purchaseOrderResource.delete(ctx, s, orderID)
}

func (s *Store) DailyLogs() []domain.DailyLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyLogs(s.logs)
}

func (s *Store) DailyLog(logID string) (domain.DailyLog, bool) {
	return dailyLogResource.find(s, logID)
}

func (s *Store) AddDailyLog(ctx context.Context, log domain.DailyLog) (domain.DailyLog, domain.SyncResult) {
	if log.Date.IsZero() {
		log.Date = domain.DateOf(s.now())
	}
	return dailyLogResource.add(ctx, s, log)
}

func (s *Store) UpdateDailyLog(ctx context.Context, log domain.DailyLog) (domain.DailyLog, domain.SyncResult) {
	return dailyLogResource.replace(ctx, s, log)
}

func (s *Store) RemoveDailyLog(ctx context.Context, logID string) domain.SyncResult {
	return dailyLogResource.delete(ctx, s, logID)
}
