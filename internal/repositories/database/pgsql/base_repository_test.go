package pgsql

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/construct_erp/internal/apperrors"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubTx is only passed around; calling any pgx.Tx method panics.
type stubTx struct {
	pgx.Tx
}

// MockTransactionManager is a mock type for the TransactionManager interface
type MockTransactionManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTransactionManager)(nil)

func (m *MockTransactionManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionManager) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func TestInTx_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	tx := &stubTx{}
	tm := new(MockTransactionManager)
	tm.On("Begin", ctx).Return(tx, nil).Once()
	tm.On("Commit", ctx, tx).Return(nil).Once()
	tm.On("Rollback", ctx, tx).Return(nil).Once()

	var got pgx.Tx
	err := inTx(ctx, tm, func(inner pgx.Tx) error {
		got = inner
		return nil
	})

	require.NoError(t, err)
	assert.Same(t, tx, got)
	tm.AssertExpectations(t)
}

func TestInTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	tx := &stubTx{}
	tm := new(MockTransactionManager)
	tm.On("Begin", ctx).Return(tx, nil).Once()
	tm.On("Rollback", ctx, tx).Return(nil).Once()

	conflict := apperrors.NewConflictError("purchase order po1 is missing or not pending")
	err := inTx(ctx, tm, func(pgx.Tx) error { return conflict })

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	tm.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
	tm.AssertExpectations(t)
}

func TestInTx_BeginFailure(t *testing.T) {
	ctx := context.Background()
	tm := new(MockTransactionManager)
	tm.On("Begin", ctx).Return(nil, errors.New("pool closed")).Once()

	called := false
	err := inTx(ctx, tm, func(pgx.Tx) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
	tm.AssertExpectations(t)
}

func TestWriteError(t *testing.T) {
	unique := writeError(&pgconn.PgError{Code: "23505", Detail: "Key (document)=(123) already exists."}, "failed to create client")
	assert.ErrorIs(t, unique, apperrors.ErrDuplicate)

	var appErr *apperrors.AppError
	fk := writeError(&pgconn.PgError{Code: "23503"}, "failed to create transaction")
	require.ErrorAs(t, fk, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	other := writeError(errors.New("connection reset"), "failed to update project")
	assert.EqualError(t, other, "failed to update project: connection reset")
}

func TestExpectRow(t *testing.T) {
	assert.NoError(t, expectRow(pgconn.NewCommandTag("UPDATE 1"), "client", "c1"))
	assert.ErrorIs(t, expectRow(pgconn.NewCommandTag("DELETE 0"), "client", "c1"), apperrors.ErrNotFound)
}
