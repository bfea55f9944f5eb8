package services

import (
	"context"

	"github.com/SscSPs/construct_erp/internal/core/domain"
)

// ClientSvc covers the client registry.
type ClientSvc interface {
	Clients() []domain.Client
	AddClient(ctx context.Context, client domain.Client) (domain.Client, domain.SyncResult)
	UpdateClient(ctx context.Context, client domain.Client) (domain.Client, domain.SyncResult)
	RemoveClient(ctx context.Context, clientID string) domain.SyncResult
}

// ProjectSvc covers project tracking.
type ProjectSvc interface {
	Projects() []domain.Project
	Project(projectID string) (domain.Project, bool)
	AddProject(ctx context.Context, project domain.Project) (domain.Project, domain.SyncResult)
	UpdateProject(ctx context.Context, project domain.Project) (domain.Project, domain.SyncResult)
	RemoveProject(ctx context.Context, projectID string) domain.SyncResult
}

// TransactionSvc covers the financial ledger.
type TransactionSvc interface {
	// Transactions lists entries newest first; an empty kind lists all.
	Transactions(kind domain.TransactionType) []domain.Transaction
	AddTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, domain.SyncResult)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, domain.SyncResult)
	RemoveTransaction(ctx context.Context, transactionID string) domain.SyncResult
}

// InventorySvc covers stock and purchase orders.
type InventorySvc interface {
	StockItems() []domain.StockItem
	LowStock() []domain.StockItem
	AddStockItem(ctx context.Context, item domain.StockItem) (domain.StockItem, domain.SyncResult)
	UpdateStockItem(ctx context.Context, item domain.StockItem) (domain.StockItem, domain.SyncResult)
	RemoveStockItem(ctx context.Context, itemID string) domain.SyncResult

	PurchaseOrders() []domain.PurchaseOrder
	RequestPurchase(ctx context.Context, order domain.PurchaseOrder) (domain.PurchaseOrder, domain.SyncResult)
	RemovePurchaseOrder(ctx context.Context, orderID string) domain.SyncResult

	// ApprovePurchaseOrder marks a pending order purchased, books the expense and restocks the item.
	ApprovePurchaseOrder(ctx context.Context, orderID string) domain.ApprovalResult
}

// DailyLogSvc covers the site journal.
type DailyLogSvc interface {
	DailyLogs() []domain.DailyLog
	DailyLog(logID string) (domain.DailyLog, bool)
	AddDailyLog(ctx context.Context, log domain.DailyLog) (domain.DailyLog, domain.SyncResult)
	UpdateDailyLog(ctx context.Context, log domain.DailyLog) (domain.DailyLog, domain.SyncResult)
	RemoveDailyLog(ctx context.Context, logID string) domain.SyncResult
}

// WorkspaceSvc is the per-session domain store as seen by the handlers.
type WorkspaceSvc interface {
	ClientSvc
	ProjectSvc
	TransactionSvc
	InventorySvc
	DailyLogSvc

	// Dashboard summarizes the workspace.
	Dashboard() domain.DashboardSummary
}
