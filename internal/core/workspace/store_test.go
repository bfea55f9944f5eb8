package workspace_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/SscSPs/construct_erp/internal/core/workspace"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func horizonSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Clients: []domain.Client{
			{ID: "c1", Name: "Tech Solutions Ltda", Type: domain.ClientOrganization, Document: "12.345.678/0001-90"},
		},
		Projects: []domain.Project{
			{
				ID: "p1", ClientID: "c1", Name: "Edifício Horizon", Status: domain.ProjectInProgress,
				Budget: decimal.NewFromInt(5000000), Spent: decimal.NewFromInt(2150000),
				StartDate: date("2023-06-01"), CompletionDate: date("2024-12-01"), Progress: 45,
			},
			{ID: "p2", ClientID: "c1", Name: "Casa de Veraneio", Status: domain.ProjectPlanning, Budget: decimal.NewFromInt(850000), Spent: decimal.NewFromInt(25000)},
		},
		Transactions: []domain.Transaction{
			{ID: "t1", ProjectID: "p1", Description: "Pagamento 1ª Medição", Amount: decimal.NewFromInt(500000), Type: domain.Income, Category: "Recebimento de Obra", Date: date("2023-07-05"), Status: domain.TransactionPaid},
			{ID: "t4", Description: "Licença de Software", Amount: decimal.NewFromInt(1500), Type: domain.Expense, Category: "Operacional", Date: date("2023-08-05"), Status: domain.TransactionPending},
		},
		StockItems: []domain.StockItem{
			{ID: "s1", ProjectID: "p1", Name: "Cimento CP-II", Quantity: 50, MinQuantity: 20, Unit: "saco", LastUpdated: date("2023-10-25")},
		},
		PurchaseOrders: []domain.PurchaseOrder{
			{
				ID: "po1", ProjectID: "p1", RequesterID: "u2", ItemName: "Cimento CP-II", Quantity: 100,
				UnitPriceEstimate: decimal.RequireFromString("32.50"), TotalEstimate: decimal.NewFromInt(3250),
				Status: domain.PurchaseOrderPending, Date: date("2024-03-01"),
			},
		},
		DailyLogs: []domain.DailyLog{
			{ID: "l1", ProjectID: "p1", AuthorID: "u2", Content: "Concretagem da laje", Date: date("2023-09-15"), Weather: domain.WeatherSunny, Images: []string{"a.jpg"}},
		},
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []string
}

func (o *recordingObserver) ObserveSync(resource, op string, status domain.SyncStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, resource+"/"+op+"/"+string(status))
}

func spentOf(t *testing.T, s *workspace.Store, projectID string) string {
	t.Helper()
	p, ok := s.Project(projectID)
	require.True(t, ok)
	return p.Spent.String()
}

// --- offline behavior ---

func TestAddClient_OfflineAssignsLocalID(t *testing.T) {
	s := workspace.New(workspace.WithClock(clock))

	client, res := s.AddClient(context.Background(), domain.Client{Name: "Nova Obra SA", Type: domain.ClientOrganization})

	assert.Equal(t, domain.SyncLocal, res.Status)
	assert.True(t, strings.HasPrefix(client.ID, "c-"))
	assert.Equal(t, client.ID, res.ID)
	require.Len(t, s.Clients(), 1)
	assert.Equal(t, client.ID, s.Clients()[0].ID)
}

func TestAddTransaction_PrependsAndCountsPaidExpense(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()), workspace.WithClock(clock))

	txn, res := s.AddTransaction(context.Background(), domain.Transaction{
		ProjectID: "p1", Description: "Aço CA-50", Amount: decimal.NewFromInt(10000),
		Type: domain.Expense, Category: "Material", Date: date("2024-03-09"), Status: domain.TransactionPaid,
	})

	assert.Equal(t, domain.SyncLocal, res.Status)
	assert.Equal(t, txn.ID, s.Transactions("")[0].ID)
	assert.Equal(t, "2160000", spentOf(t, s, "p1"))

	// pending expenses and income do not count
	s.AddTransaction(context.Background(), domain.Transaction{ProjectID: "p1", Amount: decimal.NewFromInt(7), Type: domain.Expense, Status: domain.TransactionPending})
	s.AddTransaction(context.Background(), domain.Transaction{ProjectID: "p1", Amount: decimal.NewFromInt(7), Type: domain.Income, Status: domain.TransactionPaid})
	assert.Equal(t, "2160000", spentOf(t, s, "p1"))
}

func TestUpdateTransaction_TransitionToPaidExpenseCountsOnce(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()))
	ctx := context.Background()

	txn, _ := s.AddTransaction(ctx, domain.Transaction{ProjectID: "p1", Amount: decimal.NewFromInt(1000), Type: domain.Expense, Status: domain.TransactionPending})
	assert.Equal(t, "2150000", spentOf(t, s, "p1"))

	txn.Status = domain.TransactionPaid
	_, res := s.UpdateTransaction(ctx, txn)
	assert.Equal(t, domain.SyncLocal, res.Status)
	assert.Equal(t, "2151000", spentOf(t, s, "p1"))

	txn.Description = "edited"
	s.UpdateTransaction(ctx, txn)
	assert.Equal(t, "2151000", spentOf(t, s, "p1"))
}

func TestUpdateProject_KeepsSpent(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()))

	p, _ := s.Project("p1")
	p.Spent = decimal.Zero
	p.Progress = 60
	updated, res := s.UpdateProject(context.Background(), p)

	assert.Equal(t, domain.SyncLocal, res.Status)
	assert.Equal(t, 60, updated.Progress)
	assert.Equal(t, "2150000", updated.Spent.String())
	assert.Equal(t, "2150000", spentOf(t, s, "p1"))
}

func TestUnknownIDs_AreNoop(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()))
	ctx := context.Background()

	_, res := s.UpdateClient(ctx, domain.Client{ID: "missing", Name: "x"})
	assert.Equal(t, domain.SyncNoop, res.Status)
	assert.NoError(t, res.Err)

	assert.Equal(t, domain.SyncNoop, s.RemoveProject(ctx, "missing").Status)
	assert.Equal(t, domain.SyncNoop, s.RemoveDailyLog(ctx, "missing").Status)
	assert.Len(t, s.Clients(), 1)
	assert.Len(t, s.Projects(), 2)
}

func TestRemoveTransaction_DoesNotReduceSpent(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()), workspace.WithClock(clock))
	ctx := context.Background()

	txn, _ := s.AddTransaction(ctx, domain.Transaction{ProjectID: "p1", Amount: decimal.NewFromInt(500), Type: domain.Expense, Status: domain.TransactionPaid})
	res := s.RemoveTransaction(ctx, txn.ID)

	assert.Equal(t, domain.SyncLocal, res.Status)
	assert.Equal(t, "2150500", spentOf(t, s, "p1"))
	for _, tr := range s.Transactions("") {
		assert.NotEqual(t, txn.ID, tr.ID)
	}
}

func TestUpdateTransaction_RepointingPaidExpenseKeepsSpent(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()), workspace.WithClock(clock))
	ctx := context.Background()

	txn, _ := s.AddTransaction(ctx, domain.Transaction{ProjectID: "p1", Amount: decimal.NewFromInt(500), Type: domain.Expense, Status: domain.TransactionPaid})
	require.Equal(t, "2150500", spentOf(t, s, "p1"))

	txn.ProjectID = "p2"
	moved, res := s.UpdateTransaction(ctx, txn)

	assert.Equal(t, domain.SyncLocal, res.Status)
	assert.Equal(t, "p2", moved.ProjectID)
	// only the first transition into a paid expense counts
	assert.Equal(t, "2150500", spentOf(t, s, "p1"))
	assert.Equal(t, "25000", spentOf(t, s, "p2"))
}

func TestListsAreCopies(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()))

	logs := s.DailyLogs()
	logs[0].Images[0] = "tampered.jpg"
	logs[0].Content = "tampered"

	fresh := s.DailyLogs()
	assert.Equal(t, "a.jpg", fresh[0].Images[0])
	assert.Equal(t, "Concretagem da laje", fresh[0].Content)

	assert.NotNil(t, workspace.New().Clients())
}

func TestTransactions_FilterByType(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()))

	assert.Len(t, s.Transactions(""), 2)
	income := s.Transactions(domain.Income)
	require.Len(t, income, 1)
	assert.Equal(t, "t1", income[0].ID)
	expense := s.Transactions(domain.Expense)
	require.Len(t, expense, 1)
	assert.Equal(t, "t4", expense[0].ID)
}

func TestDashboard(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()))

	d := s.Dashboard()

	assert.Equal(t, "500000", d.TotalIncome.String())
	assert.Equal(t, "1500", d.TotalExpense.String())
	assert.Equal(t, "498500", d.Balance.String())
	assert.Equal(t, 1, d.ActiveProjects)
	assert.Equal(t, 1, d.ProjectsByStatus[domain.ProjectInProgress])
	assert.Equal(t, 1, d.ProjectsByStatus[domain.ProjectPlanning])
	assert.Equal(t, 0, d.ProjectsByStatus[domain.ProjectPaused])
	assert.Equal(t, 0, d.LowStockItems)
	assert.Equal(t, 1, d.PendingOrders)
}

func TestLowStock(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()))
	ctx := context.Background()

	assert.Empty(t, s.LowStock())

	item, _ := s.AddStockItem(ctx, domain.StockItem{ProjectID: "p2", Name: "Areia Média", Quantity: 5, MinQuantity: 5, Unit: "m³"})
	low := s.LowStock()
	require.Len(t, low, 1)
	assert.Equal(t, item.ID, low[0].ID)
}

func TestRequestPurchase_FixesTotalAndStatus(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()), workspace.WithClock(clock))

	order, res := s.RequestPurchase(context.Background(), domain.PurchaseOrder{
		ProjectID: "p2", RequesterID: "u2", ItemName: "Areia Média", Quantity: 10,
		UnitPriceEstimate: decimal.NewFromInt(120), Status: domain.PurchaseOrderPurchased,
	})

	assert.Equal(t, domain.SyncLocal, res.Status)
	assert.Equal(t, domain.PurchaseOrderPending, order.Status)
	assert.Equal(t, "1200", order.TotalEstimate.String())
	assert.Equal(t, date("2024-03-10"), order.Date)
	assert.Equal(t, order.ID, s.PurchaseOrders()[0].ID)
}

// --- remote reconciliation ---

func TestAddClient_RebindsToRemoteID(t *testing.T) {
	remote := new(MockRemoteStore)
	observer := &recordingObserver{}
	s := workspace.New(workspace.WithRemote(remote), workspace.WithObserver(observer))

	remote.On("CreateClient", mock.Anything, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "Construtora Alfa" && strings.HasPrefix(c.ID, "c-")
	})).Return("8c6f-remote", nil).Once()

	client, res := s.AddClient(context.Background(), domain.Client{Name: "Construtora Alfa"})

	assert.Equal(t, domain.SyncConfirmed, res.Status)
	assert.Equal(t, "8c6f-remote", client.ID)
	clients := s.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, "8c6f-remote", clients[0].ID)
	assert.Equal(t, []string{"clients/create/CONFIRMED"}, observer.events)
	remote.AssertExpectations(t)
}

func TestAddClient_RemoteFailureKeepsLocalEntry(t *testing.T) {
	remote := new(MockRemoteStore)
	s := workspace.New(workspace.WithRemote(remote))
	boom := errors.New("connection refused")

	remote.On("CreateClient", mock.Anything, mock.Anything).Return("", boom).Once()

	client, res := s.AddClient(context.Background(), domain.Client{Name: "Construtora Alfa"})

	assert.Equal(t, domain.SyncFailed, res.Status)
	assert.ErrorIs(t, res.Err, boom)
	require.Len(t, s.Clients(), 1)
	assert.Equal(t, client.ID, s.Clients()[0].ID)
	assert.True(t, strings.HasPrefix(client.ID, "c-"))
}

func TestAddClient_RemovedWhileInFlightDeletesOrphan(t *testing.T) {
	remote := new(MockRemoteStore)
	s := workspace.New(workspace.WithRemote(remote))
	ctx := context.Background()

	var removal domain.SyncResult
	remote.On("CreateClient", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			removal = s.RemoveClient(ctx, args.Get(1).(domain.Client).ID)
		}).
		Return("remote-1", nil).Once()
	remote.On("DeleteClient", mock.Anything, "remote-1").Return(nil).Once()

	_, res := s.AddClient(ctx, domain.Client{Name: "Construtora Alfa"})

	assert.Equal(t, domain.SyncDeferred, removal.Status)
	assert.Equal(t, domain.SyncDiscarded, res.Status)
	assert.Empty(t, s.Clients())
	remote.AssertExpectations(t)
}

func TestAddClient_UpdatedWhileInFlightPushesLatest(t *testing.T) {
	remote := new(MockRemoteStore)
	s := workspace.New(workspace.WithRemote(remote))
	ctx := context.Background()

	var edit domain.SyncResult
	remote.On("CreateClient", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(domain.Client)
			c.Phone = "(11) 5555-0000"
			_, edit = s.UpdateClient(ctx, c)
		}).
		Return("remote-1", nil).Once()
	remote.On("UpdateClient", mock.Anything, mock.MatchedBy(func(c domain.Client) bool {
		return c.ID == "remote-1" && c.Phone == "(11) 5555-0000"
	})).Return(nil).Once()

	client, res := s.AddClient(ctx, domain.Client{Name: "Construtora Alfa"})

	assert.Equal(t, domain.SyncDeferred, edit.Status)
	assert.Equal(t, domain.SyncConfirmed, res.Status)
	assert.Equal(t, "(11) 5555-0000", client.Phone)
	require.Len(t, s.Clients(), 1)
	assert.Equal(t, "remote-1", s.Clients()[0].ID)
	remote.AssertExpectations(t)
}

func TestAddClient_LateAcknowledgmentAfterDetachIsDiscarded(t *testing.T) {
	remote := new(MockRemoteStore)
	s := workspace.New(workspace.WithRemote(remote))

	remote.On("CreateClient", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { s.Detach() }).
		Return("remote-1", nil).Once()

	_, res := s.AddClient(context.Background(), domain.Client{Name: "Construtora Alfa"})

	assert.Equal(t, domain.SyncDiscarded, res.Status)
	require.Len(t, s.Clients(), 1)
	assert.True(t, strings.HasPrefix(s.Clients()[0].ID, "c-"))
	remote.AssertNotCalled(t, "DeleteClient", mock.Anything, mock.Anything)
}

func TestAddProject_RebindsForeignKeys(t *testing.T) {
	remote := new(MockRemoteStore)
	s := workspace.New(workspace.WithRemote(remote))
	ctx := context.Background()

	remote.On("CreateProject", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			localID := args.Get(1).(domain.Project).ID
			s.AddTransaction(ctx, domain.Transaction{ProjectID: localID, Amount: decimal.NewFromInt(10), Type: domain.Income, Status: domain.TransactionPaid})
		}).
		Return("proj-remote", nil).Once()
	remote.On("CreateTransaction", mock.Anything, mock.Anything).Return("txn-remote", nil).Once()

	project, res := s.AddProject(ctx, domain.Project{Name: "Galpão", Status: domain.ProjectPlanning})

	assert.Equal(t, domain.SyncConfirmed, res.Status)
	assert.Equal(t, "proj-remote", project.ID)
	txns := s.Transactions("")
	require.Len(t, txns, 1)
	assert.Equal(t, "txn-remote", txns[0].ID)
	assert.Equal(t, "proj-remote", txns[0].ProjectID)
}

func TestUpdateAndRemove_ReportRemoteOutcome(t *testing.T) {
	remote := new(MockRemoteStore)
	s := workspace.New(workspace.WithRemote(remote), workspace.WithSeed(horizonSnapshot()))
	ctx := context.Background()

	remote.On("UpdateDailyLog", mock.Anything, mock.MatchedBy(func(l domain.DailyLog) bool { return l.ID == "l1" })).Return(nil).Once()
	remote.On("DeleteStockItem", mock.Anything, "s1").Return(errors.New("timeout")).Once()

	log, _ := s.DailyLog("l1")
	log.Images = append(log.Images, "b.jpg")
	_, res := s.UpdateDailyLog(ctx, log)
	assert.Equal(t, domain.SyncConfirmed, res.Status)

	res = s.RemoveStockItem(ctx, "s1")
	assert.Equal(t, domain.SyncFailed, res.Status)
	assert.Empty(t, s.StockItems())

	stored, _ := s.DailyLog("l1")
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, stored.Images)
	remote.AssertExpectations(t)
}

func TestReload(t *testing.T) {
	remote := new(MockRemoteStore)
	s := workspace.New(workspace.WithRemote(remote))
	ctx := context.Background()

	remote.On("FetchAll", mock.Anything).Return(horizonSnapshot(), nil).Once()
	require.NoError(t, s.Reload(ctx))
	assert.Len(t, s.Projects(), 2)

	remote.On("FetchAll", mock.Anything).Return(domain.Snapshot{}, errors.New("db down")).Once()
	assert.Error(t, s.Reload(ctx))
	assert.Len(t, s.Projects(), 2)
}

func TestReload_WithoutRemoteIsNoop(t *testing.T) {
	s := workspace.New(workspace.WithSeed(horizonSnapshot()))
	assert.NoError(t, s.Reload(context.Background()))
	assert.Len(t, s.Clients(), 1)
}
