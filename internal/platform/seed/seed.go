// Package seed loads the demo users and workspace used when no database is configured.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

const dateLayout = "2006-01-02"

// Data is a decoded seed file.
type Data struct {
	Users     []domain.User
	Workspace domain.Snapshot
}

type fileRecord struct {
	Users          []userRecord          `yaml:"users"`
	Clients        []clientRecord        `yaml:"clients"`
	Projects       []projectRecord       `yaml:"projects"`
	Transactions   []transactionRecord   `yaml:"transactions"`
	StockItems     []stockRecord         `yaml:"stockItems"`
	PurchaseOrders []purchaseOrderRecord `yaml:"purchaseOrders"`
	DailyLogs      []dailyLogRecord      `yaml:"dailyLogs"`
}

type userRecord struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Role   string `yaml:"role"`
	Avatar string `yaml:"avatar"`
}

type clientRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Document string `yaml:"document"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Address  string `yaml:"address"`
	City     string `yaml:"city"`
	State    string `yaml:"state"`
}

type projectRecord struct {
	ID             string `yaml:"id"`
	ClientID       string `yaml:"clientId"`
	Name           string `yaml:"name"`
	Address        string `yaml:"address"`
	Status         string `yaml:"status"`
	Budget         string `yaml:"budget"`
	Spent          string `yaml:"spent"`
	StartDate      string `yaml:"startDate"`
	CompletionDate string `yaml:"completionDate"`
	Progress       int    `yaml:"progress"`
	Image          string `yaml:"image"`
}

type transactionRecord struct {
	ID          string `yaml:"id"`
	ProjectID   string `yaml:"projectId"`
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
	Type        string `yaml:"type"`
	Category    string `yaml:"category"`
	Date        string `yaml:"date"`
	Status      string `yaml:"status"`
}

type stockRecord struct {
	ID          string `yaml:"id"`
	ProjectID   string `yaml:"projectId"`
	Name        string `yaml:"name"`
	Quantity    int    `yaml:"quantity"`
	MinQuantity int    `yaml:"minQuantity"`
	Unit        string `yaml:"unit"`
	LastUpdated string `yaml:"lastUpdated"`
}

type purchaseOrderRecord struct {
	ID                string `yaml:"id"`
	ProjectID         string `yaml:"projectId"`
	RequesterID       string `yaml:"requesterId"`
	ItemName          string `yaml:"itemName"`
	Quantity          int    `yaml:"quantity"`
	UnitPriceEstimate string `yaml:"unitPriceEstimate"`
	TotalEstimate     string `yaml:"totalEstimate"`
	Status            string `yaml:"status"`
	Date              string `yaml:"date"`
}

type dailyLogRecord struct {
	ID        string   `yaml:"id"`
	ProjectID string   `yaml:"projectId"`
	AuthorID  string   `yaml:"authorId"`
	Content   string   `yaml:"content"`
	Date      string   `yaml:"date"`
	Weather   string   `yaml:"weather"`
	Images    []string `yaml:"images"`
}

// Default returns the embedded demo data.
func Default() (*Data, error) {
	return Parse(defaultSeed)
}

// Load reads a seed file from path, or the embedded data when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a seed document.
func Parse(raw []byte) (*Data, error) {
	var rec fileRecord
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	p := &parser{}
	data := &Data{
		Users: make([]domain.User, 0, len(rec.Users)),
		Workspace: domain.Snapshot{
			Clients:        make([]domain.Client, 0, len(rec.Clients)),
			Projects:       make([]domain.Project, 0, len(rec.Projects)),
			Transactions:   make([]domain.Transaction, 0, len(rec.Transactions)),
			StockItems:     make([]domain.StockItem, 0, len(rec.StockItems)),
			PurchaseOrders: make([]domain.PurchaseOrder, 0, len(rec.PurchaseOrders)),
			DailyLogs:      make([]domain.DailyLog, 0, len(rec.DailyLogs)),
		},
	}

	for _, u := range rec.Users {
		role := domain.Role(u.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("seed user %s: unknown role %q", u.ID, u.Role)
		}
		data.Users = append(data.Users, domain.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: role, Avatar: u.Avatar})
	}
	for _, c := range rec.Clients {
		data.Workspace.Clients = append(data.Workspace.Clients, domain.Client{
			ID: c.ID, Name: c.Name, Type: domain.ClientType(c.Type), Document: c.Document,
			Email: c.Email, Phone: c.Phone, Address: c.Address, City: c.City, State: c.State,
		})
	}
	for _, r := range rec.Projects {
		data.Workspace.Projects = append(data.Workspace.Projects, domain.Project{
			ID: r.ID, ClientID: r.ClientID, Name: r.Name, Address: r.Address,
			Status:         domain.ProjectStatus(r.Status),
			Budget:         p.amount("project "+r.ID+" budget", r.Budget),
			Spent:          p.amount("project "+r.ID+" spent", r.Spent),
			StartDate:      p.date("project "+r.ID+" startDate", r.StartDate),
			CompletionDate: p.date("project "+r.ID+" completionDate", r.CompletionDate),
			Progress:       r.Progress,
			Image:          r.Image,
		})
	}
	for _, r := range rec.Transactions {
		data.Workspace.Transactions = append(data.Workspace.Transactions, domain.Transaction{
			ID: r.ID, ProjectID: r.ProjectID, Description: r.Description,
			Amount:   p.amount("transaction "+r.ID+" amount", r.Amount),
			Type:     domain.TransactionType(r.Type),
			Category: r.Category,
			Date:     p.date("transaction "+r.ID+" date", r.Date),
			Status:   domain.TransactionStatus(r.Status),
		})
	}
	for _, r := range rec.StockItems {
		data.Workspace.StockItems = append(data.Workspace.StockItems, domain.StockItem{
			ID: r.ID, ProjectID: r.ProjectID, Name: r.Name, Quantity: r.Quantity, MinQuantity: r.MinQuantity, Unit: r.Unit,
			LastUpdated: p.date("stock "+r.ID+" lastUpdated", r.LastUpdated),
		})
	}
	for _, r := range rec.PurchaseOrders {
		data.Workspace.PurchaseOrders = append(data.Workspace.PurchaseOrders, domain.PurchaseOrder{
			ID: r.ID, ProjectID: r.ProjectID, RequesterID: r.RequesterID, ItemName: r.ItemName, Quantity: r.Quantity,
			UnitPriceEstimate: p.amount("order "+r.ID+" unitPriceEstimate", r.UnitPriceEstimate),
			TotalEstimate:     p.amount("order "+r.ID+" totalEstimate", r.TotalEstimate),
			Status:            domain.PurchaseOrderStatus(r.Status),
			Date:              p.date("order "+r.ID+" date", r.Date),
		})
	}
	for _, r := range rec.DailyLogs {
		images := r.Images
		if images == nil {
			images = []string{}
		}
		data.Workspace.DailyLogs = append(data.Workspace.DailyLogs, domain.DailyLog{
			ID: r.ID, ProjectID: r.ProjectID, AuthorID: r.AuthorID, Content: r.Content,
			Date:    p.date("log "+r.ID+" date", r.Date),
			Weather: domain.Weather(r.Weather),
			Images:  images,
		})
	}

	if p.err != nil {
		return nil, p.err
	}
	return data, nil
}

// parser keeps the first conversion error so records decode in one pass.
type parser struct {
	err error
}

func (p *parser) amount(field, s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("seed %s: %w", field, err)
	}
	return d
}

func (p *parser) date(field, s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("seed %s: %w", field, err)
	}
	return t
}
