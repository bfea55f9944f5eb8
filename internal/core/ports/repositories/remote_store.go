package repositories

import (
	"context"

	"github.com/SscSPs/construct_erp/internal/core/domain"
)

// ClientRemote mirrors the clients resource.
type ClientRemote interface {
	// ListClients retrieves every stored client.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// CreateClient persists a client and returns the ID assigned by the backend.
	CreateClient(ctx context.Context, client domain.Client) (string, error)

	// UpdateClient overwrites the client identified by client.ID.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client by ID.
	DeleteClient(ctx context.Context, clientID string) error
}

// ProjectRemote mirrors the projects resource.
type ProjectRemote interface {
	// ListProjects retrieves every stored project.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// CreateProject persists a project and returns the ID assigned by the backend.
	CreateProject(ctx context.Context, project domain.Project) (string, error)

	// UpdateProject overwrites the project identified by project.ID. Spent is owned by the backend and is not written.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes a project by ID.
	DeleteProject(ctx context.Context, projectID string) error
}

// TransactionRemote mirrors the transactions resource.
type TransactionRemote interface {
	// ListTransactions retrieves every stored transaction, newest date first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// CreateTransaction persists a transaction and returns the ID assigned by the backend.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (string, error)

	// UpdateTransaction overwrites the transaction identified by txn.ID.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction by ID.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// StockRemote mirrors the stock_items resource.
type StockRemote interface {
	// ListStockItems retrieves every stored stock item.
	ListStockItems(ctx context.Context) ([]domain.StockItem, error)

	// CreateStockItem persists a stock item and returns the ID assigned by the backend.
	CreateStockItem(ctx context.Context, item domain.StockItem) (string, error)

	// UpdateStockItem overwrites the stock item identified by item.ID.
	UpdateStockItem(ctx context.Context, item domain.StockItem) error

	// DeleteStockItem removes a stock item by ID.
	DeleteStockItem(ctx context.Context, itemID string) error
}

// PurchaseOrderRemote mirrors the purchase_orders resource.
type PurchaseOrderRemote interface {
	// ListPurchaseOrders retrieves every stored purchase order.
	ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)

	// CreatePurchaseOrder persists a purchase order and returns the ID assigned by the backend.
	CreatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) (string, error)

	// UpdatePurchaseOrderStatus changes only the status column of an order.
	UpdatePurchaseOrderStatus(ctx context.Context, orderID string, status domain.PurchaseOrderStatus) error

	// ApprovePurchaseOrder marks a PENDING order PURCHASED and persists its expense atomically.
	// It returns the ID assigned to the expense and fails if the order is no longer PENDING.
	ApprovePurchaseOrder(ctx context.Context, orderID string, expense domain.Transaction) (string, error)

	// DeletePurchaseOrder removes a purchase order by ID.
	DeletePurchaseOrder(ctx context.Context, orderID string) error
}

// DailyLogRemote mirrors the daily_logs resource.
type DailyLogRemote interface {
	// ListDailyLogs retrieves every stored daily log.
	ListDailyLogs(ctx context.Context) ([]domain.DailyLog, error)

	// CreateDailyLog persists a daily log and returns the ID assigned by the backend.
	CreateDailyLog(ctx context.Context, log domain.DailyLog) (string, error)

	// UpdateDailyLog writes content, weather, date and images of the log identified by log.ID.
	UpdateDailyLog(ctx context.Context, log domain.DailyLog) error

	// DeleteDailyLog removes a daily log by ID.
	DeleteDailyLog(ctx context.Context, logID string) error
}

// SnapshotFetcher performs the bulk fetch done at session start.
type SnapshotFetcher interface {
	// FetchAll reads all six collections. It either returns all of them or an error.
	FetchAll(ctx context.Context) (domain.Snapshot, error)
}

// RemoteStore combines every resource of the persistence boundary.
type RemoteStore interface {
	ClientRemote
	ProjectRemote
	TransactionRemote
	StockRemote
	PurchaseOrderRemote
	DailyLogRemote
	SnapshotFetcher
}
