package services

import (
	"context"
	"io"

	"github.com/SscSPs/construct_erp/internal/core/domain"
)

// PhotoSvc attaches uploaded photos to daily logs.
type PhotoSvc interface {
	// Enabled reports whether object storage is configured.
	Enabled() bool

	// AttachPhoto uploads the file and appends its URL to the log's images.
	AttachPhoto(ctx context.Context, ws DailyLogSvc, logID, filename string, body io.Reader, contentType string) (domain.DailyLog, domain.SyncResult, error)
}
