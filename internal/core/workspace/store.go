// Package workspace holds the in-memory domain state of a session and mirrors
// every mutation to an optional remote store.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construct_erp/internal/core/ports/services"
	"github.com/SscSPs/construct_erp/internal/middleware"
	"github.com/google/uuid"
)

// SyncObserver is told the outcome of every mutation.
type SyncObserver interface {
	ObserveSync(resource, op string, status domain.SyncStatus)
}

type noopObserver struct{}

func (noopObserver) ObserveSync(string, string, domain.SyncStatus) {}

// pendingCreate tracks what happened to an entry while its remote create was in flight.
type pendingCreate struct {
	dirty   bool
	removed bool
}

// Store is the domain state of one workspace.
// The mutex guards memory only and is never held across a remote call.
type Store struct {
	mu sync.RWMutex

	clients      []domain.Client
	projects     []domain.Project
	transactions []domain.Transaction
	stock        []domain.StockItem
	orders       []domain.PurchaseOrder
	logs         []domain.DailyLog

	// pending is keyed by local ID.
	pending map[string]*pendingCreate
	// epoch changes whenever the state is replaced or the session ends.
	epoch uint64

	remote   portsrepo.RemoteStore
	now      func() time.Time
	observer SyncObserver
	logger   *slog.Logger
}

var _ portssvc.WorkspaceSvc = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithRemote mirrors mutations to remote. Without it every result is LOCAL.
func WithRemote(remote portsrepo.RemoteStore) Option {
	return func(s *Store) {
		s.remote = remote
	}
}

// WithSeed installs the initial collections.
func WithSeed(snapshot domain.Snapshot) Option {
	return func(s *Store) {
		s.replaceLocked(snapshot)
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithObserver(observer SyncObserver) Option {
	return func(s *Store) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		pending:  make(map[string]*pendingCreate),
		now:      time.Now,
		observer: noopObserver{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace installs snapshot wholesale. Acknowledgments of earlier creates are discarded.
func (s *Store) Replace(snapshot domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(snapshot)
}

// Reload fetches all six collections and replaces local state.
// On error the local state is left untouched.
func (s *Store) Reload(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}
	snapshot, err := s.remote.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch workspace: %w", err)
	}
	s.Replace(snapshot)
	s.log(ctx).Info("Workspace reloaded",
		slog.Int("clients", len(snapshot.Clients)),
		slog.Int("projects", len(snapshot.Projects)),
		slog.Int("transactions", len(snapshot.Transactions)))
	return nil
}

// Detach ends the session bound to the store. Collections stay cached.
func (s *Store) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.pending = make(map[string]*pendingCreate)
}

// Snapshot returns a copy of every collection.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Snapshot{
		Clients:        copyOf(s.clients),
		Projects:       copyOf(s.projects),
		Transactions:   copyOf(s.transactions),
		StockItems:     copyOf(s.stock),
		PurchaseOrders: copyOf(s.orders),
		DailyLogs:      copyLogs(s.logs),
	}
}

func (s *Store) replaceLocked(snapshot domain.Snapshot) {
	s.clients = copyOf(snapshot.Clients)
	s.projects = copyOf(snapshot.Projects)
	s.transactions = copyOf(snapshot.Transactions)
	s.stock = copyOf(snapshot.StockItems)
	s.orders = copyOf(snapshot.PurchaseOrders)
	s.logs = copyLogs(snapshot.DailyLogs)
	s.epoch++
	s.pending = make(map[string]*pendingCreate)
}

// markPendingLocked flags an entry whose create has not been acknowledged.
// It reports whether the remote write must wait for the acknowledgment.
func (s *Store) markPendingLocked(id string, removed bool) bool {
	pc, ok := s.pending[id]
	if !ok {
		return false
	}
	if removed {
		pc.removed = true
	} else {
		pc.dirty = true
	}
	return true
}

// settle runs a remote update or delete for an entry already changed in memory.
func (s *Store) settle(ctx context.Context, resource, op, id string, deferred bool, call func(context.Context, portsrepo.RemoteStore) error) domain.SyncResult {
	res := domain.SyncResult{ID: id}
	switch {
	case s.remote == nil:
		res.Status = domain.SyncLocal
	case deferred:
		res.Status = domain.SyncDeferred
	default:
		if err := call(context.WithoutCancel(ctx), s.remote); err != nil {
			res.Status = domain.SyncFailed
			res.Err = err
		} else {
			res.Status = domain.SyncConfirmed
		}
	}
	return s.record(ctx, resource, op, res)
}

func (s *Store) record(ctx context.Context, resource, op string, res domain.SyncResult) domain.SyncResult {
	s.observer.ObserveSync(resource, op, res.Status)

	logger := s.log(ctx)
	attrs := []any{
		slog.String("resource", resource),
		slog.String("op", op),
		slog.String("id", res.ID),
		slog.String("status", string(res.Status)),
	}
	switch res.Status {
	case domain.SyncFailed:
		logger.Warn("Remote sync failed", append(attrs, slog.String("error", errString(res.Err)))...)
	case domain.SyncDiscarded:
		logger.Info("Remote acknowledgment discarded", attrs...)
	default:
		logger.Debug("Mutation applied", attrs...)
	}
	return res
}

func (s *Store) log(ctx context.Context) *slog.Logger {
	if logger, ok := middleware.LoggerFromCtx(ctx); ok {
		return logger
	}
	return s.logger
}

func (s *Store) localID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func copyOf[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func copyLogs(logs []domain.DailyLog) []domain.DailyLog {
	out := make([]domain.DailyLog, len(logs))
	for i, l := range logs {
		out[i] = cloneLog(l)
	}
	return out
}

func cloneLog(l domain.DailyLog) domain.DailyLog {
	images := make([]string, len(l.Images))
	copy(images, l.Images)
	l.Images = images
	return l
}
