package domain_test

import (
	"testing"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func views(items []domain.NavItem) []domain.View {
	out := make([]domain.View, len(items))
	for i, item := range items {
		out[i] = item.View
	}
	return out
}

func TestNavigationFor(t *testing.T) {
	tests := []struct {
		role domain.Role
		want []domain.View
	}{
		{
			role: domain.RoleAdmin,
			want: []domain.View{domain.ViewDashboard, domain.ViewProjects, domain.ViewFinance, domain.ViewClients, domain.ViewInventory, domain.ViewLogs, domain.ViewSettings},
		},
		{
			role: domain.RoleEngineer,
			want: []domain.View{domain.ViewDashboard, domain.ViewProjects, domain.ViewInventory, domain.ViewLogs, domain.ViewSettings},
		},
		{
			role: domain.RoleFinance,
			want: []domain.View{domain.ViewDashboard, domain.ViewProjects, domain.ViewFinance, domain.ViewClients, domain.ViewSettings},
		},
		{
			role: domain.Role("GUEST"),
			want: []domain.View{},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, views(domain.NavigationFor(tt.role)))
		})
	}
}

func TestCanAccess(t *testing.T) {
	assert.True(t, domain.CanAccess(domain.RoleFinance, domain.ViewClients))
	assert.False(t, domain.CanAccess(domain.RoleEngineer, domain.ViewClients))
	assert.False(t, domain.CanAccess(domain.RoleFinance, domain.ViewInventory))
	assert.True(t, domain.CanAccess(domain.RoleEngineer, domain.ViewLogs))
	assert.False(t, domain.CanAccess(domain.RoleAdmin, domain.View("reports")))
}
