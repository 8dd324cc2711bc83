package service

import (
	"context"
	"io"
	"time"
)

// UploadURL is a short-lived pre-authorized URL for a direct object upload.
type UploadURL struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	PublicURL  string    `json:"public_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ObjectStorage defines the narrow contract to the product image bucket.
type ObjectStorage interface {
	// RequestUploadURL reserves an object name derived from fileName and signs a PUT URL for it.
	RequestUploadURL(ctx context.Context, fileName, contentType string) (*UploadURL, error)

	// PutObject uploads content under a name derived from fileName and returns its public URL.
	PutObject(ctx context.Context, fileName, contentType string, r io.Reader) (string, error)

	// DeleteObject removes the object behind a public URL or object name.
	DeleteObject(ctx context.Context, urlOrName string) error

	// PublicURL returns the public URL for an object name.
	PublicURL(objectName string) string
}
