package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/construct_erp/internal/apperrors"
	"github.com/SscSPs/construct_erp/internal/core/domain"
	"github.com/SscSPs/construct_erp/internal/core/services"
	"github.com/SscSPs/construct_erp/internal/core/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPhotoStore struct {
	mock.Mock
}

func (m *MockPhotoStore) PutPhoto(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

func logWorkspace() *workspace.Store {
	return workspace.New(workspace.WithSeed(domain.Snapshot{
		DailyLogs: []domain.DailyLog{{
			ID: "l1", ProjectID: "p1", AuthorID: "u2", Content: "Concretagem da laje",
			Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Weather: domain.WeatherSunny,
			Images: []string{"https://picsum.photos/200/300"},
		}},
	}))
}

func TestAttachPhoto_AppendsURL(t *testing.T) {
	store := new(MockPhotoStore)
	store.On("PutPhoto", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "logs/l1/") && strings.HasSuffix(key, ".jpg")
	}), mock.Anything, "image/jpeg").Return("https://bucket.example.com/logs/l1/x.jpg", nil).Once()
	ws := logWorkspace()

	log, res, err := services.NewPhotoService(store).AttachPhoto(context.Background(), ws, "l1", "Laje.JPG", strings.NewReader("jpeg"), "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, domain.SyncLocal, res.Status)
	assert.Equal(t, []string{"https://picsum.photos/200/300", "https://bucket.example.com/logs/l1/x.jpg"}, log.Images)
	stored, _ := ws.DailyLog("l1")
	assert.Len(t, stored.Images, 2)
	store.AssertExpectations(t)
}

func TestAttachPhoto_UnknownLog(t *testing.T) {
	store := new(MockPhotoStore)

	_, _, err := services.NewPhotoService(store).AttachPhoto(context.Background(), logWorkspace(), "l9", "a.png", strings.NewReader("png"), "image/png")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	store.AssertNotCalled(t, "PutPhoto", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachPhoto_UploadFailureLeavesLog(t *testing.T) {
	store := new(MockPhotoStore)
	store.On("PutPhoto", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("access denied")).Once()
	ws := logWorkspace()

	_, _, err := services.NewPhotoService(store).AttachPhoto(context.Background(), ws, "l1", "a.png", strings.NewReader("png"), "image/png")

	assert.Error(t, err)
	stored, _ := ws.DailyLog("l1")
	assert.Len(t, stored.Images, 1)
}

func TestAttachPhoto_Disabled(t *testing.T) {
	svc := services.NewPhotoService(nil)

	assert.False(t, svc.Enabled())
	_, _, err := svc.AttachPhoto(context.Background(), logWorkspace(), "l1", "a.png", strings.NewReader("png"), "image/png")
	assert.Error(t, err)
}
