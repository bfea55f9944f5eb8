package s3

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRoundTripper answers every PUT with 200 and remembers what was sent.
type recordingRoundTripper struct {
	mu     sync.Mutex
	puts   map[string]string
	status int
}

func (m *recordingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if req.Body != nil {
		_, _ = io.Copy(io.Discard, req.Body)
	}
	status := m.status
	if status == 0 {
		status = http.StatusOK
	}
	if req.Method == http.MethodPut && status == http.StatusOK {
		m.puts[req.URL.Path] = req.Header.Get("Content-Type")
	}
	return &http.Response{StatusCode: status, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{"ETag": {"\"etag\""}}}, nil
}

func newMockPhotoStore(t *testing.T, rt http.RoundTripper, cfg Config) *PhotoStore {
	t.Helper()
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")),
	)
	require.NoError(t, err)
	client := awsS3.NewFromConfig(awsCfg, func(o *awsS3.Options) {
		o.BaseEndpoint = aws.String("https://mock.s3.local")
		o.HTTPClient = &http.Client{Transport: rt}
		o.UsePathStyle = true
	})
	return newPhotoStore(client, cfg, "us-east-1")
}

func TestPutPhoto(t *testing.T) {
	rt := &recordingRoundTripper{puts: map[string]string{}}
	store := newMockPhotoStore(t, rt, Config{Bucket: "diario", Endpoint: "https://mock.s3.local", PathStyle: true})

	url, err := store.PutPhoto(context.Background(), "logs/l1/foto 1.jpg", strings.NewReader("jpeg"), "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "https://mock.s3.local/diario/logs/l1/foto%201.jpg", url)
	assert.Equal(t, "image/jpeg", rt.puts["/diario/logs/l1/foto 1.jpg"])
}

func TestPutPhoto_Error(t *testing.T) {
	rt := &recordingRoundTripper{puts: map[string]string{}, status: http.StatusForbidden}
	store := newMockPhotoStore(t, rt, Config{Bucket: "diario"})

	_, err := store.PutPhoto(context.Background(), "logs/l1/a.png", strings.NewReader("png"), "image/png")

	assert.Error(t, err)
	assert.Empty(t, rt.puts)
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"aws", Config{Bucket: "diario"}, "https://diario.s3.sa-east-1.amazonaws.com"},
		{"explicit", Config{Bucket: "diario", PublicBaseURL: "https://cdn.example.com/"}, "https://cdn.example.com"},
		{"path style", Config{Bucket: "diario", Endpoint: "http://minio:9000", PathStyle: true}, "http://minio:9000/diario"},
		{"virtual host", Config{Bucket: "diario", Endpoint: "https://storage.example.com"}, "https://diario.storage.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg, "sa-east-1"))
		})
	}
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}
