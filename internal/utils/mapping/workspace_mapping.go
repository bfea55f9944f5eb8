package mapping

import (
	"time"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/SscSPs/construct_erp/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ID:       d.ID,
		Name:     d.Name,
		Type:     string(d.Type),
		Document: d.Document,
		Email:    d.Email,
		Phone:    d.Phone,
		Address:  d.Address,
		City:     d.City,
		State:    d.State,
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ID:       m.ID,
		Name:     m.Name,
		Type:     domain.ClientType(m.Type),
		Document: m.Document,
		Email:    m.Email,
		Phone:    m.Phone,
		Address:  m.Address,
		City:     m.City,
		State:    m.State,
	}
}

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ID:             d.ID,
		ClientID:       nullableString(d.ClientID),
		Name:           d.Name,
		Address:        d.Address,
		Status:         string(d.Status),
		Budget:         d.Budget,
		Spent:          d.Spent,
		StartDate:      nullableDate(d.StartDate),
		CompletionDate: nullableDate(d.CompletionDate),
		Progress:       d.Progress,
		ImageURL:       d.Image,
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ID:             m.ID,
		ClientID:       stringOrEmpty(m.ClientID),
		Name:           m.Name,
		Address:        m.Address,
		Status:         domain.ProjectStatus(m.Status),
		Budget:         m.Budget,
		Spent:          m.Spent,
		StartDate:      dateOrZero(m.StartDate),
		CompletionDate: dateOrZero(m.CompletionDate),
		Progress:       m.Progress,
		Image:          m.ImageURL,
	}
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:          d.ID,
		ProjectID:   nullableString(d.ProjectID),
		Description: d.Description,
		Amount:      d.Amount,
		Type:        string(d.Type),
		Category:    d.Category,
		Date:        d.Date,
		Status:      string(d.Status),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:          m.ID,
		ProjectID:   stringOrEmpty(m.ProjectID),
		Description: m.Description,
		Amount:      m.Amount,
		Type:        domain.TransactionType(m.Type),
		Category:    m.Category,
		Date:        m.Date,
		Status:      domain.TransactionStatus(m.Status),
	}
}

// ToModelStockItem converts a domain StockItem to a model StockItem
func ToModelStockItem(d domain.StockItem) models.StockItem {
	return models.StockItem{
		ID:          d.ID,
		ProjectID:   d.ProjectID,
		Name:        d.Name,
		Quantity:    d.Quantity,
		MinQuantity: d.MinQuantity,
		Unit:        d.Unit,
		LastUpdated: d.LastUpdated,
	}
}

// ToDomainStockItem converts a model StockItem to a domain StockItem
func ToDomainStockItem(m models.StockItem) domain.StockItem {
	return domain.StockItem{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Quantity:    m.Quantity,
		MinQuantity: m.MinQuantity,
		Unit:        m.Unit,
		LastUpdated: m.LastUpdated,
	}
}

// ToModelPurchaseOrder converts a domain PurchaseOrder to a model PurchaseOrder
func ToModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		ID:                d.ID,
		ProjectID:         d.ProjectID,
		RequesterID:       d.RequesterID,
		ItemName:          d.ItemName,
		Quantity:          d.Quantity,
		UnitPriceEstimate: d.UnitPriceEstimate,
		TotalEstimate:     d.TotalEstimate,
		Status:            string(d.Status),
		CreatedAt:         d.Date,
	}
}

// ToDomainPurchaseOrder converts a model PurchaseOrder to a domain PurchaseOrder
func ToDomainPurchaseOrder(m models.PurchaseOrder) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		ID:                m.ID,
		ProjectID:         m.ProjectID,
		RequesterID:       m.RequesterID,
		ItemName:          m.ItemName,
		Quantity:          m.Quantity,
		UnitPriceEstimate: m.UnitPriceEstimate,
		TotalEstimate:     m.TotalEstimate,
		Status:            domain.PurchaseOrderStatus(m.Status),
		Date:              m.CreatedAt,
	}
}

// ToModelDailyLog converts a domain DailyLog to a model DailyLog
func ToModelDailyLog(d domain.DailyLog) models.DailyLog {
	images := make([]string, len(d.Images))
	copy(images, d.Images)
	return models.DailyLog{
		ID:        d.ID,
		ProjectID: d.ProjectID,
		AuthorID:  d.AuthorID,
		Content:   d.Content,
		Date:      d.Date,
		Weather:   string(d.Weather),
		Images:    images,
	}
}

// ToDomainDailyLog converts a model DailyLog to a domain DailyLog
func ToDomainDailyLog(m models.DailyLog) domain.DailyLog {
	images := make([]string, len(m.Images))
	copy(images, m.Images)
	return domain.DailyLog{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		Date:      m.Date,
		Weather:   domain.Weather(m.Weather),
		Images:    images,
	}
}

// toDomainSlice converts model rows with the given mapper
func toDomainSlice[M, D any](ms []M, fn func(M) D) []D {
	ds := make([]D, len(ms))
	for i, m := range ms {
		ds[i] = fn(m)
	}
	return ds
}

func ToDomainClientSlice(ms []models.Client) []domain.Client {
	return toDomainSlice(ms, ToDomainClient)
}

func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	return toDomainSlice(ms, ToDomainProject)
}

func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	return toDomainSlice(ms, ToDomainTransaction)
}

func ToDomainStockItemSlice(ms []models.StockItem) []domain.StockItem {
	return toDomainSlice(ms, ToDomainStockItem)
}

func ToDomainPurchaseOrderSlice(ms []models.PurchaseOrder) []domain.PurchaseOrder {
	return toDomainSlice(ms, ToDomainPurchaseOrder)
}

func ToDomainDailyLogSlice(ms []models.DailyLog) []domain.DailyLog {
	return toDomainSlice(ms, ToDomainDailyLog)
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func dateOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
