package workspace

import (
	"context"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
)

// ApprovePurchaseOrder marks a PENDING order PURCHASED, books the matching
// expense and restocks the item. The order status and the expense change
// together, in one remote call once the order exists remotely; the stock
// upsert is a separate best-effort step.
// Unknown or already processed orders are a no-op.
func (s *Store) ApprovePurchaseOrder(ctx context.Context, orderID string) domain.ApprovalResult {
	s.mu.Lock()
	idx := indexOf(s.orders, orderID)
	if idx < 0 || s.orders[idx].Status != domain.PurchaseOrderPending {
		var result domain.ApprovalResult
		if idx >= 0 {
			result.Order = s.orders[idx]
		}
		s.mu.Unlock()

		noop := s.record(ctx, purchaseOrderResource.name, "approve", domain.SyncResult{ID: orderID, Status: domain.SyncNoop})
		result.OrderSync = noop
		result.TransactionSync = domain.SyncResult{Status: domain.SyncNoop}
		result.StockSync = domain.SyncResult{Status: domain.SyncNoop}
		return result
	}

	s.orders[idx].Status = domain.PurchaseOrderPurchased
	order := s.orders[idx]
	deferred := s.markPendingLocked(order.ID, false)
	expense := transactionResource.stageLocked(s, order.PurchaseExpense(s.now()))
	epoch := s.epoch
	s.mu.Unlock()

	s.log(ctx).Info("Purchase order approved", "order_id", order.ID, "project_id", order.ProjectID, "total", order.TotalEstimate.String())

	result := domain.ApprovalResult{Order: order}
	if s.remote != nil && !deferred {
		var approveErr error
		result.Transaction, result.TransactionSync = transactionResource.confirmWith(ctx, s, expense, func(ctx context.Context, remote portsrepo.RemoteStore) (string, error) {
			id, err := remote.ApprovePurchaseOrder(ctx, order.ID, expense.item)
			approveErr = err
			return id, err
		})
		orderSync := domain.SyncResult{ID: order.ID, Status: domain.SyncConfirmed}
		if approveErr != nil {
			orderSync.Status, orderSync.Err = domain.SyncFailed, approveErr
		}
		result.OrderSync = s.record(ctx, purchaseOrderResource.name, "approve", orderSync)
	} else {
		// offline, or the status write waits for the order's create
		result.OrderSync = s.settle(ctx, purchaseOrderResource.name, "update", order.ID, deferred, func(ctx context.Context, remote portsrepo.RemoteStore) error {
			return remote.UpdatePurchaseOrderStatus(ctx, order.ID, domain.PurchaseOrderPurchased)
		})
		result.Transaction, result.TransactionSync = transactionResource.confirm(ctx, s, expense)
	}
	result.Stock, result.StockSync = s.upsertStock(ctx, order.ProjectID, order.ItemName, order.Quantity, epoch)
	return result
}

// UpsertStock adds quantity to the item matching (projectID, name) exactly,
// or creates it with the default threshold and unit.
func (s *Store) UpsertStock(ctx context.Context, projectID, name string, quantity int) (domain.StockItem, domain.SyncResult) {
	s.mu.RLock()
	epoch := s.epoch
	s.mu.RUnlock()
	return s.upsertStock(ctx, projectID, name, quantity, epoch)
}

func (s *Store) upsertStock(ctx context.Context, projectID, name string, quantity int, epoch uint64) (domain.StockItem, domain.SyncResult) {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return domain.StockItem{}, s.record(ctx, stockResource.name, "upsert", domain.SyncResult{Status: domain.SyncDiscarded})
	}

	now := s.now()
	for i := range s.stock {
		if !s.stock[i].Matches(projectID, name) {
			continue
		}
		s.stock[i].Quantity += quantity
		s.stock[i].LastUpdated = now
		item := s.stock[i]
		deferred := s.markPendingLocked(item.ID, false)
		s.mu.Unlock()

		return item, s.settle(ctx, stockResource.name, "update", item.ID, deferred, func(ctx context.Context, remote portsrepo.RemoteStore) error {
			return remote.UpdateStockItem(ctx, item)
		})
	}

	staged := stockResource.stageLocked(s, domain.StockItem{
		ProjectID:   projectID,
		Name:        name,
		Quantity:    quantity,
		MinQuantity: domain.DefaultMinQuantity,
		Unit:        domain.DefaultStockUnit,
		LastUpdated: now,
	})
	s.mu.Unlock()
	return stockResource.confirm(ctx, s, staged)
}
