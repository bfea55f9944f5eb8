package workspace

import (
	"context"
	"slices"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
)

type entity[T any] interface {
	*T
	GetID() string
	SetID(string)
}

// resource describes how one collection is stored and mirrored.
// The hooks run with the store lock held.
type resource[T any, P entity[T]] struct {
	name    string
	prefix  string
	prepend bool
	items   func(*Store) *[]T

	create func(context.Context, portsrepo.RemoteStore, T) (string, error)
	update func(context.Context, portsrepo.RemoteStore, T) error
	remove func(context.Context, portsrepo.RemoteStore, string) error

	// clone detaches reference fields from caller-owned memory.
	clone func(T) T
	// merge decides the stored value when prev is replaced by next.
	merge func(s *Store, prev, next T) T
	// added runs after a new entry is inserted.
	added func(s *Store, item T)
	// rebound rewrites references after a local ID became remote.
	rebound func(s *Store, localID, remoteID string)
}

// ticket identifies a staged entry awaiting its remote create.
type ticket[T any] struct {
	item    T
	localID string
	epoch   uint64
}

func indexOf[T any, P entity[T]](items []T, id string) int {
	for i := range items {
		if P(&items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

// stageLocked inserts item under a local ID. The caller holds the lock.
func (r resource[T, P]) stageLocked(s *Store, item T) ticket[T] {
	if r.clone != nil {
		item = r.clone(item)
	}
	if P(&item).GetID() == "" {
		P(&item).SetID(s.localID(r.prefix))
	}
	id := P(&item).GetID()

	items := r.items(s)
	if r.prepend {
		*items = slices.Insert(*items, 0, item)
	} else {
		*items = append(*items, item)
	}
	if r.added != nil {
		r.added(s, item)
	}
	if s.remote != nil {
		s.pending[id] = &pendingCreate{}
	}
	return ticket[T]{item: item, localID: id, epoch: s.epoch}
}

func (r resource[T, P]) add(ctx context.Context, s *Store, item T) (T, domain.SyncResult) {
	s.mu.Lock()
	t := r.stageLocked(s, item)
	s.mu.Unlock()
	return r.confirm(ctx, s, t)
}

// confirm issues the remote create for a staged entry and rebinds its ID.
func (r resource[T, P]) confirm(ctx context.Context, s *Store, t ticket[T]) (T, domain.SyncResult) {
	return r.confirmWith(ctx, s, t, func(ctx context.Context, remote portsrepo.RemoteStore) (string, error) {
		return r.create(ctx, remote, t.item)
	})
}

// confirmWith is confirm with the remote create supplied by the caller.
func (r resource[T, P]) confirmWith(ctx context.Context, s *Store, t ticket[T], create func(context.Context, portsrepo.RemoteStore) (string, error)) (T, domain.SyncResult) {
	item := t.item
	if r.clone != nil {
		item = r.clone(item)
	}
	if s.remote == nil {
		return item, s.record(ctx, r.name, "create", domain.SyncResult{ID: t.localID, Status: domain.SyncLocal})
	}

	remoteID, err := create(context.WithoutCancel(ctx), s.remote)

	s.mu.Lock()
	if s.epoch != t.epoch {
		s.mu.Unlock()
		if err != nil {
			return item, s.record(ctx, r.name, "create", domain.SyncResult{ID: t.localID, Status: domain.SyncFailed, Err: err})
		}
		P(&item).SetID(remoteID)
		return item, s.record(ctx, r.name, "create", domain.SyncResult{ID: remoteID, Status: domain.SyncDiscarded})
	}

	pc, ok := s.pending[t.localID]
	delete(s.pending, t.localID)
	if err != nil {
		s.mu.Unlock()
		return item, s.record(ctx, r.name, "create", domain.SyncResult{ID: t.localID, Status: domain.SyncFailed, Err: err})
	}

	items := r.items(s)
	idx := indexOf[T, P](*items, t.localID)
	if !ok || pc.removed || idx < 0 {
		s.mu.Unlock()
		// removed while in flight: the row just created is an orphan
		if delErr := r.remove(context.WithoutCancel(ctx), s.remote, remoteID); delErr != nil {
			s.record(ctx, r.name, "delete", domain.SyncResult{ID: remoteID, Status: domain.SyncFailed, Err: delErr})
		}
		P(&item).SetID(remoteID)
		return item, s.record(ctx, r.name, "create", domain.SyncResult{ID: remoteID, Status: domain.SyncDiscarded})
	}

	P(&(*items)[idx]).SetID(remoteID)
	if r.rebound != nil {
		r.rebound(s, t.localID, remoteID)
	}
	current := (*items)[idx]
	if r.clone != nil {
		current = r.clone(current)
	}
	dirty := pc.dirty
	s.mu.Unlock()

	if dirty {
		if err := r.update(context.WithoutCancel(ctx), s.remote, current); err != nil {
			return current, s.record(ctx, r.name, "create", domain.SyncResult{ID: remoteID, Status: domain.SyncFailed, Err: err})
		}
	}
	return current, s.record(ctx, r.name, "create", domain.SyncResult{ID: remoteID, Status: domain.SyncConfirmed})
}

func (r resource[T, P]) replace(ctx context.Context, s *Store, item T) (T, domain.SyncResult) {
	id := P(&item).GetID()
	if r.clone != nil {
		item = r.clone(item)
	}

	s.mu.Lock()
	items := r.items(s)
	idx := indexOf[T, P](*items, id)
	if idx < 0 {
		s.mu.Unlock()
		return item, s.record(ctx, r.name, "update", domain.SyncResult{ID: id, Status: domain.SyncNoop})
	}
	if r.merge != nil {
		item = r.merge(s, (*items)[idx], item)
	}
	(*items)[idx] = item
	deferred := s.markPendingLocked(id, false)
	if r.clone != nil {
		item = r.clone(item)
	}
	s.mu.Unlock()

	return item, s.settle(ctx, r.name, "update", id, deferred, func(ctx context.Context, remote portsrepo.RemoteStore) error {
		return r.update(ctx, remote, item)
	})
}

func (r resource[T, P]) delete(ctx context.Context, s *Store, id string) domain.SyncResult {
	s.mu.Lock()
	items := r.items(s)
	idx := indexOf[T, P](*items, id)
	if idx < 0 {
		s.mu.Unlock()
		return s.record(ctx, r.name, "delete", domain.SyncResult{ID: id, Status: domain.SyncNoop})
	}
	*items = slices.Delete(*items, idx, idx+1)
	deferred := s.markPendingLocked(id, true)
	s.mu.Unlock()

	return s.settle(ctx, r.name, "delete", id, deferred, func(ctx context.Context, remote portsrepo.RemoteStore) error {
		return r.remove(ctx, remote, id)
	})
}

func (r resource[T, P]) find(s *Store, id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := *r.items(s)
	idx := indexOf[T, P](items, id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	item := items[idx]
	if r.clone != nil {
		item = r.clone(item)
	}
	return item, true
}

// addSpentLocked grows a project's spent counter. Unknown projects are ignored.
func (s *Store) addSpentLocked(txn domain.Transaction) {
	idx := indexOf(s.projects, txn.ProjectID)
	if idx < 0 {
		return
	}
	s.projects[idx].Spent = s.projects[idx].Spent.Add(txn.Amount)
}

var clientResource = resource[domain.Client, *domain.Client]{
	name:   "clients",
	prefix: "c",
	items:  func(s *Store) *[]domain.Client { return &s.clients },
	create: func(ctx context.Context, r portsrepo.RemoteStore, c domain.Client) (string, error) {
		return r.CreateClient(ctx, c)
	},
	update: func(ctx context.Context, r portsrepo.RemoteStore, c domain.Client) error {
		return r.UpdateClient(ctx, c)
	},
	remove: func(ctx context.Context, r portsrepo.RemoteStore, id string) error {
		return r.DeleteClient(ctx, id)
	},
	rebound: func(s *Store, localID, remoteID string) {
		for i := range s.projects {
			if s.projects[i].ClientID == localID {
				s.projects[i].ClientID = remoteID
			}
		}
	},
}

var projectResource = resource[domain.Project, *domain.Project]{
	name:   "projects",
	prefix: "p",
	items:  func(s *Store) *[]domain.Project { return &s.projects },
	create: func(ctx context.Context, r portsrepo.RemoteStore, p domain.Project) (string, error) {
		return r.CreateProject(ctx, p)
	},
	update: func(ctx context.Context, r portsrepo.RemoteStore, p domain.Project) error {
		return r.UpdateProject(ctx, p)
	},
	remove: func(ctx context.Context, r portsrepo.RemoteStore, id string) error {
		return r.DeleteProject(ctx, id)
	},
	merge: func(_ *Store, prev, next domain.Project) domain.Project {
		next.Spent = prev.Spent
		return next
	},
	rebound: func(s *Store, localID, remoteID string) {
		for i := range s.transactions {
			if s.transactions[i].ProjectID == localID {
				s.transactions[i].ProjectID = remoteID
			}
		}
		for i := range s.stock {
			if s.stock[i].ProjectID == localID {
				s.stock[i].ProjectID = remoteID
			}
		}
		for i := range s.orders {
			if s.orders[i].ProjectID == localID {
				s.orders[i].ProjectID = remoteID
			}
		}
		for i := range s.logs {
			if s.logs[i].ProjectID == localID {
				s.logs[i].ProjectID = remoteID
			}
		}
	},
}

var transactionResource = resource[domain.Transaction, *domain.Transaction]{
	name:    "transactions",
	prefix:  "t",
	prepend: true,
	items:   func(s *Store) *[]domain.Transaction { return &s.transactions },
	create: func(ctx context.Context, r portsrepo.RemoteStore, t domain.Transaction) (string, error) {
		return r.CreateTransaction(ctx, t)
	},
	update: func(ctx context.Context, r portsrepo.RemoteStore, t domain.Transaction) error {
		return r.UpdateTransaction(ctx, t)
	},
	remove: func(ctx context.Context, r portsrepo.RemoteStore, id string) error {
		return r.DeleteTransaction(ctx, id)
	},
	added: func(s *Store, t domain.Transaction) {
		if t.CountsTowardSpent() {
			s.addSpentLocked(t)
		}
	},
	merge: func(s *Store, prev, next domain.Transaction) domain.Transaction {
		if next.CountsTowardSpent() && !prev.CountsTowardSpent() {
			s.addSpentLocked(next)
		}
		return next
	},
}

var stockResource = resource[domain.StockItem, *domain.StockItem]{
	name:   "stock_items",
	prefix: "s",
	items:  func(s *Store) *[]domain.StockItem { return &s.stock },
	create: func(ctx context.Context, r portsrepo.RemoteStore, i domain.StockItem) (string, error) {
		return r.CreateStockItem(ctx, i)
	},
	update: func(ctx context.Context, r portsrepo.RemoteStore, i domain.StockItem) error {
		return r.UpdateStockItem(ctx, i)
	},
	remove: func(ctx context.Context, r portsrepo.RemoteStore, id string) error {
		return r.DeleteStockItem(ctx, id)
	},
}

var purchaseOrderResource = resource[domain.PurchaseOrder, *domain.PurchaseOrder]{
	name:    "purchase_orders",
	prefix:  "po",
	prepend: true,
	items:   func(s *Store) *[]domain.PurchaseOrder { return &s.orders },
	create: func(ctx context.Context, r portsrepo.RemoteStore, o domain.PurchaseOrder) (string, error) {
		return r.CreatePurchaseOrder(ctx, o)
	},
	// orders only ever change status
	update: func(ctx context.Context, r portsrepo.RemoteStore, o domain.PurchaseOrder) error {
		return r.UpdatePurchaseOrderStatus(ctx, o.ID, o.Status)
	},
	remove: func(ctx context.Context, r portsrepo.RemoteStore, id string) error {
		return r.DeletePurchaseOrder(ctx, id)
	},
}

var dailyLogResource = resource[domain.DailyLog, *domain.DailyLog]{
	name:    "daily_logs",
	prefix:  "l",
	prepend: true,
	items:   func(s *Store) *[]domain.DailyLog { return &s.logs },
	create: func(ctx context.Context, r portsrepo.RemoteStore, l domain.DailyLog) (string, error) {
		return r.CreateDailyLog(ctx, l)
	},
	update: func(ctx context.Context, r portsrepo.RemoteStore, l domain.DailyLog) error {
		return r.UpdateDailyLog(ctx, l)
	},
	remove: func(ctx context.Context, r portsrepo.RemoteStore, id string) error {
		return r.DeleteDailyLog(ctx, id)
	},
	clone: cloneLog,
}
