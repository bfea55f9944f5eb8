package dto

import "github.com/SscSPs/construct_erp/internal/core/domain"

// SyncResponse reports how a mutation was mirrored.
type SyncResponse struct {
	ID     string            `json:"id"`
	Status domain.SyncStatus `json:"status"`
	Error  string            `json:"error,omitempty"`
}

// MutationResponse wraps the entity after a mutation together with its sync outcome.
type MutationResponse struct {
	Data any          `json:"data,omitempty"`
	Sync SyncResponse `json:"sync"`
}

// ListResponse wraps a collection.
type ListResponse struct {
	Data any `json:"data"`
}

func ToSyncResponse(res domain.SyncResult) SyncResponse {
	out := SyncResponse{ID: res.ID, Status: res.Status}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

// ToMutationResponse omits data when nothing was changed.
func ToMutationResponse(data any, res domain.SyncResult) MutationResponse {
	if res.Status == domain.SyncNoop {
		data = nil
	}
	return MutationResponse{Data: data, Sync: ToSyncResponse(res)}
}

// ApprovalResponse reports every entity touched by a purchase approval.
type ApprovalResponse struct {
	Order           domain.PurchaseOrder `json:"order"`
	Transaction     *domain.Transaction  `json:"transaction,omitempty"`
	Stock           *domain.StockItem    `json:"stock,omitempty"`
	OrderSync       SyncResponse         `json:"orderSync"`
	TransactionSync SyncResponse         `json:"transactionSync"`
	StockSync       SyncResponse         `json:"stockSync"`
}

func ToApprovalResponse(r domain.ApprovalResult) ApprovalResponse {
	out := ApprovalResponse{
		Order:           r.Order,
		OrderSync:       ToSyncResponse(r.OrderSync),
		TransactionSync: ToSyncResponse(r.TransactionSync),
		StockSync:       ToSyncResponse(r.StockSync),
	}
	if r.Applied() {
		txn, stock := r.Transaction, r.Stock
		out.Transaction = &txn
		out.Stock = &stock
	}
	return out
}
