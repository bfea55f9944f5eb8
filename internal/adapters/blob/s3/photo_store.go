// Package s3 keeps daily-log photos in an S3-compatible bucket (AWS S3 or MinIO).
package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds the bucket settings. Credentials come from the default AWS chain.
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional, e.g. a MinIO URL
	PathStyle bool
	// PublicBaseURL overrides the URL prefix stored on the log.
	PublicBaseURL string
}

// PhotoStore uploads photos with PutObject.
type PhotoStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ portsrepo.PhotoStore = (*PhotoStore)(nil)

// New creates a PhotoStore from cfg.
func New(ctx context.Context, cfg Config) (*PhotoStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newPhotoStore(client, cfg, region), nil
}

func newPhotoStore(client *s3.Client, cfg Config, region string) *PhotoStore {
	return &PhotoStore{client: client, bucket: cfg.Bucket, baseURL: publicBaseURL(cfg, region)}
}

// PutPhoto uploads body under key and returns its public URL.
func (s *PhotoStore) PutPhoto(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{Bucket: aws.String(s.bucket), Key: aws.String(key), Body: body}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload photo %s: %w", key, err)
	}
	return s.baseURL + "/" + escapeKey(key), nil
}

func publicBaseURL(cfg Config, region string) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if cfg.Endpoint != "" {
		base := strings.TrimRight(cfg.Endpoint, "/")
		if cfg.PathStyle {
			return base + "/" + cfg.Bucket
		}
		if u, err := url.Parse(base); err == nil && u.Host != "" {
			u.Host = cfg.Bucket + "." + u.Host
			return u.String()
		}
		return base + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
