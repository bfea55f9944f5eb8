package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/SscSPs/construct_erp/internal/apperrors"
	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/construct_erp/internal/core/ports/services"
	"github.com/google/uuid"
)

type photoService struct {
	BaseService
	store portsrepo.PhotoStore
}

// NewPhotoService creates the daily-log photo service. store may be nil.
func NewPhotoService(store portsrepo.PhotoStore) portssvc.PhotoSvc {
	return &photoService{store: store}
}

func (s *photoService) Enabled() bool {
	return s.store != nil
}

func (s *photoService) AttachPhoto(ctx context.Context, ws portssvc.DailyLogSvc, logID, filename string, body io.Reader, contentType string) (domain.DailyLog, domain.SyncResult, error) {
	if s.store == nil {
		return domain.DailyLog{}, domain.SyncResult{}, apperrors.NewAppError(http.StatusNotImplemented, "photo storage is not configured", nil)
	}
	log, ok := ws.DailyLog(logID)
	if !ok {
		return domain.DailyLog{}, domain.SyncResult{}, apperrors.NewNotFoundError(fmt.Sprintf("daily log %s not found", logID))
	}

	key := fmt.Sprintf("logs/%s/%s%s", logID, uuid.NewString(), strings.ToLower(filepath.Ext(filename)))
	url, err := s.store.PutPhoto(ctx, key, body, contentType)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload photo", slog.String("log_id", logID))
		return domain.DailyLog{}, domain.SyncResult{}, fmt.Errorf("failed to store photo: %w", err)
	}

	log.Images = append(log.Images, url)
	updated, res := ws.UpdateDailyLog(ctx, log)
	s.LogInfo(ctx, "Photo attached to daily log", slog.String("log_id", res.ID), slog.String("key", key))
	return updated, res, nil
}
