package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemStorage(t *testing.T) (*blobStorage, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, config.StorageConfig{
		PublicBaseURL: "https://cdn.example.com/images/",
		UploadPrefix:  "products/",
	}, testLogger()).(*blobStorage)
	storage.now = func() time.Time { return fixedNow }

	return storage, bucket
}

func TestBlobStorage_PutObject(t *testing.T) {
	storage, bucket := newMemStorage(t)
	ctx := context.Background()

	publicURL, err := storage.PutObject(ctx, "My Lamp (1).png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	objectName := "products/" + "1714564800000000000" + "-My-Lamp-1-.png"
	assert.Equal(t, "https://cdn.example.com/images/"+objectName, publicURL)

	data, err := bucket.ReadAll(ctx, objectName)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, objectName)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobStorage_DeleteObject(t *testing.T) {
	storage, bucket := newMemStorage(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		urlOrName func(objectName string) string
	}{
		{name: "public-url", urlOrName: func(objectName string) string { return storage.PublicURL(objectName) }},
		{name: "object-name", urlOrName: func(objectName string) string { return objectName }},
		{name: "foreign-url", urlOrName: func(objectName string) string { return "https://other.example.com/" + objectName }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objectName := "products/" + tt.name
			require.NoError(t, bucket.WriteAll(ctx, objectName, []byte("x"), nil))

			require.NoError(t, storage.DeleteObject(ctx, tt.urlOrName(objectName)))

			exists, err := bucket.Exists(ctx, objectName)
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestBlobStorage_DeleteMissingObject(t *testing.T) {
	storage, _ := newMemStorage(t)

	assert.NoError(t, storage.DeleteObject(context.Background(), "products/missing.png"))
	assert.NoError(t, storage.DeleteObject(context.Background(), ""))
}

func TestBlobStorage_ObjectName(t *testing.T) {
	storage, _ := newMemStorage(t)

	tests := []struct {
		fileName string
		want     string
	}{
		{fileName: "chair.jpg", want: "products/1714564800000000000-chair.jpg"},
		{fileName: "../../etc/passwd", want: "products/1714564800000000000-passwd"},
		{fileName: `C:\photos\sofa.webp`, want: "products/1714564800000000000-sofa.webp"},
		{fileName: "", want: "products/1714564800000000000-upload"},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.objectName(tt.fileName))
		})
	}
}

func TestBlobStorage_RequestUploadURL(t *testing.T) {
	ctx := context.Background()
	bucket, err := OpenBucket(ctx, config.StorageConfig{
		BucketURL:     "file://" + t.TempDir(),
		SignerSecret:  "signing-secret",
		SignerBaseURL: "http://localhost:8080/uploads",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, config.StorageConfig{
		PublicBaseURL: "http://localhost:8080/static",
		UploadURLTTL:  time.Minute,
	}, testLogger()).(*blobStorage)
	storage.now = func() time.Time { return fixedNow }

	upload, err := storage.RequestUploadURL(ctx, "desk.png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, "uploads/1714564800000000000-desk.png", upload.ObjectName)
	assert.Equal(t, "http://localhost:8080/static/uploads/1714564800000000000-desk.png", upload.PublicURL)
	assert.True(t, strings.HasPrefix(upload.URL, "http://localhost:8080/uploads"))
	assert.Contains(t, upload.URL, "signature=")
	assert.Equal(t, fixedNow.Add(time.Minute), upload.ExpiresAt)
}
