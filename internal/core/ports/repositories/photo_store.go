package repositories

import (
	"context"
	"io"
)

// PhotoStore keeps daily-log photos in object storage.
type PhotoStore interface {
	// PutPhoto uploads the object under key and returns the URL to store on the log.
	PutPhoto(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
