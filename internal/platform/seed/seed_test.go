package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/SscSPs/construct_erp/internal/platform/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	data, err := seed.Default()
	require.NoError(t, err)

	require.Len(t, data.Users, 3)
	assert.Equal(t, domain.RoleAdmin, data.Users[0].Role)
	assert.Equal(t, domain.RoleEngineer, data.Users[1].Role)
	assert.Equal(t, domain.RoleFinance, data.Users[2].Role)

	ws := data.Workspace
	assert.Len(t, ws.Clients, 2)
	assert.Len(t, ws.Projects, 3)
	assert.Len(t, ws.Transactions, 5)
	assert.Len(t, ws.StockItems, 3)
	assert.Len(t, ws.PurchaseOrders, 2)
	assert.Len(t, ws.DailyLogs, 2)

	p1 := ws.Projects[0]
	assert.Equal(t, "Edifício Horizon", p1.Name)
	assert.Equal(t, "2150000", p1.Spent.String())
	assert.Equal(t, "2023-06-01", p1.StartDate.Format("2006-01-02"))

	assert.Empty(t, ws.Transactions[3].ProjectID)
	assert.Equal(t, domain.PurchaseOrderPending, ws.PurchaseOrders[0].Status)
	assert.Equal(t, "1600", ws.PurchaseOrders[0].TotalEstimate.String())
	// stored totals are taken as given, not recomputed from quantity and unit price
	assert.Equal(t, "800", ws.PurchaseOrders[0].UnitPriceEstimate.String())
	assert.Len(t, ws.DailyLogs[0].Images, 2)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - {id: u9, name: Teste, email: t@x.com, role: FINANCE}
projects:
  - {id: p9, name: Obra, status: PAUSED, budget: "10.50"}
`), 0o600))

	data, err := seed.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "u9", data.Users[0].ID)
	assert.Equal(t, "10.5", data.Workspace.Projects[0].Budget.String())
	assert.NotNil(t, data.Workspace.Clients)
}

func TestParse_Errors(t *testing.T) {
	_, err := seed.Parse([]byte(`users: [{id: u1, role: BOSS}]`))
	assert.ErrorContains(t, err, "unknown role")

	_, err = seed.Parse([]byte(`transactions: [{id: t1, amount: "lots"}]`))
	assert.ErrorContains(t, err, "transaction t1 amount")

	_, err = seed.Parse([]byte(`dailyLogs: [{id: l1, date: "15/09/2023"}]`))
	assert.ErrorContains(t, err, "log l1 date")
}
