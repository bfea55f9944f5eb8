package domain

// View names a top-level screen of the application.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewProjects  View = "projects"
	ViewFinance   View = "finance"
	ViewClients   View = "clients"
	ViewInventory View = "inventory"
	ViewLogs      View = "logs"
	ViewSettings  View = "settings"
)

// NavItem is an entry of the navigation manifest.
type NavItem struct {
	View  View   `json:"view"`
	Label string `json:"label"`
	Roles []Role `json:"-"`
}

var allRoles = []Role{RoleAdmin, RoleEngineer, RoleFinance}

var navigation = []NavItem{
	{View: ViewDashboard, Label: "Dashboard", Roles: allRoles},
	{View: ViewProjects, Label: "Obras", Roles: allRoles},
	{View: ViewFinance, Label: "Financeiro", Roles: []Role{RoleAdmin, RoleFinance}},
	{View: ViewClients, Label: "Clientes", Roles: []Role{RoleAdmin, RoleFinance}},
	{View: ViewInventory, Label: "Estoque & Compras", Roles: []Role{RoleAdmin, RoleEngineer}},
	{View: ViewLogs, Label: "Diário de Obra", Roles: []Role{RoleAdmin, RoleEngineer}},
	{View: ViewSettings, Label: "Configurações", Roles: allRoles},
}

// NavigationFor filters the manifest down to the views role may open, in manifest order.
func NavigationFor(role Role) []NavItem {
	items := make([]NavItem, 0, len(navigation))
	for _, item := range navigation {
		if item.allows(role) {
			items = append(items, item)
		}
	}
	return items
}

// CanAccess reports whether role may open view.
func CanAccess(role Role, view View) bool {
	for _, item := range navigation {
		if item.View == view {
			return item.allows(role)
		}
	}
	return false
}

func (n NavItem) allows(role Role) bool {
	for _, r := range n.Roles {
		if r == role {
			return true
		}
	}
	return false
}
