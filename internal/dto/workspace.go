package dto

import (
	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClientRequest is the body of client create and update.
type ClientRequest struct {
	Name     string            `json:"name" binding:"required"`
	Type     domain.ClientType `json:"type" binding:"required,oneof=PF PJ"`
	Document string            `json:"document" binding:"required"`
	Email    string            `json:"email" binding:"omitempty,email"`
	Phone    string            `json:"phone"`
	Address  string            `json:"address"`
	City     string            `json:"city"`
	State    string            `json:"state" binding:"omitempty,len=2"`
}

func (r ClientRequest) ToDomain(id string) domain.Client {
	return domain.Client{
		ID:       id,
		Name:     r.Name,
		Type:     r.Type,
		Document: r.Document,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		City:     r.City,
		State:    r.State,
	}
}

// ProjectRequest is the body of project create and update. Spent is not accepted on update.
type ProjectRequest struct {
	ClientID       string               `json:"clientId"`
	Name           string               `json:"name" binding:"required"`
	Address        string               `json:"address"`
	Status         domain.ProjectStatus `json:"status" binding:"required,oneof=PLANNING IN_PROGRESS COMPLETED PAUSED"`
	Budget         decimal.Decimal      `json:"budget" binding:"gte=0"`
	Spent          decimal.Decimal      `json:"spent" binding:"gte=0"`
	StartDate      string               `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	CompletionDate string               `json:"completionDate" binding:"omitempty,datetime=2006-01-02"`
	Progress       int                  `json:"progress" binding:"min=0,max=100"`
	Image          string               `json:"image" binding:"omitempty,url"`
}

func (r ProjectRequest) ToDomain(id string) domain.Project {
	return domain.Project{
		ID:             id,
		ClientID:       r.ClientID,
		Name:           r.Name,
		Address:        r.Address,
		Status:         r.Status,
		Budget:         r.Budget,
		Spent:          r.Spent,
		StartDate:      parseDate(r.StartDate),
		CompletionDate: parseDate(r.CompletionDate),
		Progress:       r.Progress,
		Image:          r.Image,
	}
}

// TransactionRequest is the body of transaction create and update.
type TransactionRequest struct {
	ProjectID   string                   `json:"projectId"`
	Description string                   `json:"description" binding:"required"`
	Amount      decimal.Decimal          `json:"amount" binding:"gte=0"`
	Type        domain.TransactionType   `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category    string                   `json:"category" binding:"required"`
	Date        string                   `json:"date" binding:"required,datetime=2006-01-02"`
	Status      domain.TransactionStatus `json:"status" binding:"required,oneof=PENDING PAID OVERDUE"`
}

func (r TransactionRequest) ToDomain(id string) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		ProjectID:   r.ProjectID,
		Description: r.Description,
		Amount:      r.Amount,
		Type:        r.Type,
		Category:    r.Category,
		Date:        parseDate(r.Date),
		Status:      r.Status,
	}
}

// ListTransactionsParams filters the ledger.
type ListTransactionsParams struct {
	Type domain.TransactionType `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// StockItemRequest is the body of stock create and update.
type StockItemRequest struct {
	ProjectID   string `json:"projectId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Quantity    int    `json:"quantity" binding:"min=0"`
	MinQuantity int    `json:"minQuantity" binding:"min=0"`
	Unit        string `json:"unit" binding:"required"`
}

func (r StockItemRequest) ToDomain(id string) domain.StockItem {
	return domain.StockItem{
		ID:          id,
		ProjectID:   r.ProjectID,
		Name:        r.Name,
		Quantity:    r.Quantity,
		MinQuantity: r.MinQuantity,
		Unit:        r.Unit,
	}
}

// PurchaseRequest asks to buy material. The requester is the caller.
type PurchaseRequest struct {
	ProjectID         string          `json:"projectId" binding:"required"`
	ItemName          string          `json:"itemName" binding:"required"`
	Quantity          int             `json:"quantity" binding:"gt=0"`
	UnitPriceEstimate decimal.Decimal `json:"unitPriceEstimate" binding:"gte=0"`
	Date              string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (r PurchaseRequest) ToDomain(requesterID string) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		ProjectID:         r.ProjectID,
		RequesterID:       requesterID,
		ItemName:          r.ItemName,
		Quantity:          r.Quantity,
		UnitPriceEstimate: r.UnitPriceEstimate,
		Date:              parseDate(r.Date),
	}
}

// DailyLogRequest is the body of daily log create and update.
type DailyLogRequest struct {
	ProjectID string         `json:"projectId" binding:"required"`
	Content   string         `json:"content" binding:"required"`
	Date      string         `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Weather   domain.Weather `json:"weather" binding:"required,oneof=SUNNY RAINY CLOUDY"`
	Images    []string       `json:"images" binding:"omitempty,dive,required"`
}

func (r DailyLogRequest) ToDomain(id, authorID string) domain.DailyLog {
	images := r.Images
	if images == nil {
		images = []string{}
	}
	return domain.DailyLog{
		ID:        id,
		ProjectID: r.ProjectID,
		AuthorID:  authorID,
		Content:   r.Content,
		Date:      parseDate(r.Date),
		Weather:   r.Weather,
		Images:    images,
	}
}
