// Package storage implements the product image bucket on top of gocloud.dev/blob.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const (
	defaultBucketURL    = "mem://"
	defaultUploadPrefix = "uploads/"
	defaultUploadURLTTL = 5 * time.Minute
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	prefix        string
	uploadTTL     time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// Params holds dependencies for the object storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown
func New(params Params) (service.ObjectStorage, error) {
	var cfg config.StorageConfig
	if params.Config.Storage != nil {
		cfg = *params.Config.Storage
	}
	if cfg.BucketURL == "" {
		params.Logger.Warn("Storage bucket not configured, using in-memory bucket")
		cfg.BucketURL = defaultBucketURL
	}

	bucket, err := OpenBucket(params.Ctx, cfg)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing storage bucket")

			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, cfg, params.Logger), nil
}

// OpenBucket opens a bucket from its driver URL. Local file buckets are given an
// HMAC URL signer so they can hand out upload URLs like the cloud drivers.
func OpenBucket(ctx context.Context, cfg config.StorageConfig) (*blob.Bucket, error) {
	if strings.HasPrefix(cfg.BucketURL, "file://") && cfg.SignerSecret != "" {
		dir := strings.TrimPrefix(cfg.BucketURL, "file://")
		if i := strings.Index(dir, "?"); i >= 0 {
			dir = dir[:i]
		}

		signerBase, err := url.Parse(cfg.SignerBaseURL)
		if err != nil {
			return nil, errors.Wrap(err, "parse signer base url")
		}

		bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
			URLSigner: fileblob.NewURLSignerHMAC(signerBase, []byte(cfg.SignerSecret)),
			CreateDir: true,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "open file bucket %s", dir)
		}

		return bucket, nil
	}

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	return bucket, nil
}

// NewBlobStorage wraps an open bucket
func NewBlobStorage(bucket *blob.Bucket, cfg config.StorageConfig, logger *slog.Logger) service.ObjectStorage {
	prefix := cfg.UploadPrefix
	if prefix == "" {
		prefix = defaultUploadPrefix
	}
	uploadTTL := cfg.UploadURLTTL
	if uploadTTL <= 0 {
		uploadTTL = defaultUploadURLTTL
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		prefix:        prefix,
		uploadTTL:     uploadTTL,
		logger:        logger,
		now:           time.Now,
	}
}

// RequestUploadURL reserves an object name and signs a PUT URL for it
func (s *blobStorage) RequestUploadURL(ctx context.Context, fileName, contentType string) (*service.UploadURL, error) {
	objectName := s.objectName(fileName)
	expiresAt := s.now().Add(s.uploadTTL)

	signed, err := s.bucket.SignedURL(ctx, objectName, &blob.SignedURLOptions{
		Expiry:      s.uploadTTL,
		Method:      http.MethodPut,
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "sign upload url for %s", objectName)
	}

	return &service.UploadURL{
		ObjectName: objectName,
		URL:        signed,
		PublicURL:  s.PublicURL(objectName),
		ExpiresAt:  expiresAt,
	}, nil
}

// PutObject uploads content and returns its public URL
func (s *blobStorage) PutObject(ctx context.Context, fileName, contentType string, r io.Reader) (string, error) {
	objectName := s.objectName(fileName)

	if err := s.bucket.Upload(ctx, objectName, r, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "upload object %s", objectName)
	}

	s.logger.Debug("Object uploaded", slog.String("object", objectName))

	return s.PublicURL(objectName), nil
}

// DeleteObject removes the object behind a public URL or object name. A missing object is not an error.
func (s *blobStorage) DeleteObject(ctx context.Context, urlOrName string) error {
	objectName := s.objectNameFrom(urlOrName)
	if objectName == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, objectName); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete object %s", objectName)
	}

	return nil
}

// PublicURL returns the public URL for an object name
func (s *blobStorage) PublicURL(objectName string) string {
	if s.publicBaseURL == "" {
		return "/" + objectName
	}

	return s.publicBaseURL + "/" + objectName
}

// objectName derives a collision-resistant key: <prefix><unix-nanos>-<sanitized base name>.
func (s *blobStorage) objectName(fileName string) string {
	base := unsafeNameChars.ReplaceAllString(path.Base(strings.ReplaceAll(fileName, "\\", "/")), "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		base = "upload"
	}

	return s.prefix + strconv.FormatInt(s.now().UnixNano(), 10) + "-" + base
}

func (s *blobStorage) objectNameFrom(urlOrName string) string {
	urlOrName = strings.TrimSpace(urlOrName)
	if urlOrName == "" {
		return ""
	}
	if s.publicBaseURL != "" && strings.HasPrefix(urlOrName, s.publicBaseURL+"/") {
		return strings.TrimPrefix(urlOrName, s.publicBaseURL+"/")
	}

	parsed, err := url.Parse(urlOrName)
	if err == nil && parsed.Scheme != "" && parsed.Host != "" {
		return strings.TrimPrefix(parsed.Path, "/")
	}

	return strings.TrimPrefix(urlOrName, "/")
}

// Module provides the object storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
