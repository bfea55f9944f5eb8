package workspace_test

import (
	"context"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockRemoteStore is a mock type for the RemoteStore interface
type MockRemoteStore struct {
	mock.Mock
}

var _ portsrepo.RemoteStore = (*MockRemoteStore)(nil)

func (m *MockRemoteStore) FetchAll(ctx context.Context) (domain.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

// --- clients ---

func (m *MockRemoteStore) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockRemoteStore) CreateClient(ctx context.Context, client domain.Client) (string, error) {
	args := m.Called(ctx, client)
	return args.String(0), args.Error(1)
}

func (m *MockRemoteStore) UpdateClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockRemoteStore) DeleteClient(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}

// --- projects ---

func (m *MockRemoteStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockRemoteStore) CreateProject(ctx context.Context, project domain.Project) (string, error) {
	args := m.Called(ctx, project)
	return args.String(0), args.Error(1)
}

func (m *MockRemoteStore) UpdateProject(ctx context.Context, project domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *MockRemoteStore) DeleteProject(ctx context.Context, projectID string) error {
	return m.Called(ctx, projectID).Error(0)
}

// --- transactions ---

func (m *MockRemoteStore) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockRemoteStore) CreateTransaction(ctx context.Context, txn domain.Transaction) (string, error) {
	args := m.Called(ctx, txn)
	return args.String(0), args.Error(1)
}

func (m *MockRemoteStore) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockRemoteStore) DeleteTransaction(ctx context.Context, transactionID string) error {
	return m.Called(ctx, transactionID).Error(0)
}

// --- stock ---

func (m *MockRemoteStore) ListStockItems(ctx context.Context) ([]domain.StockItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockItem), args.Error(1)
}

func (m *MockRemoteStore) CreateStockItem(ctx context.Context, item domain.StockItem) (string, error) {
	args := m.Called(ctx, item)
	return args.String(0), args.Error(1)
}

func (m *MockRemoteStore) UpdateStockItem(ctx context.Context, item domain.StockItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockRemoteStore) DeleteStockItem(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

// --- purchase orders ---

func (m *MockRemoteStore) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockRemoteStore) CreatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *MockRemoteStore) UpdatePurchaseOrderStatus(ctx context.Context, orderID string, status domain.PurchaseOrderStatus) error {
	return m.Called(ctx, orderID, status).Error(0)
}

func (m *MockRemoteStore) ApprovePurchaseOrder(ctx context.Context, orderID string, expense domain.Transaction) (string, error) {
	args := m.Called(ctx, orderID, expense)
	return args.String(0), args.Error(1)
}

func (m *MockRemoteStore) DeletePurchaseOrder(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}

// --- daily logs ---

func (m *MockRemoteStore) ListDailyLogs(ctx context.Context) ([]domain.DailyLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyLog), args.Error(1)
}

func (m *MockRemoteStore) CreateDailyLog(ctx context.Context, log domain.DailyLog) (string, error) {
	args := m.Called(ctx, log)
	return args.String(0), args.Error(1)
}

func (m *MockRemoteStore) UpdateDailyLog(ctx context.Context, log domain.DailyLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *MockRemoteStore) DeleteDailyLog(ctx context.Context, logID string) error {
	return m.Called(ctx, logID).Error(0)
}
