package storage

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/google/uuid"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// DefaultUploadTTL is the default lifetime of an issued upload URL
const DefaultUploadTTL = 15 * time.Minute

// Client issues V4 signed upload URLs against a GCS bucket. File content
// goes straight from the browser to the bucket.
type Client struct {
	gcs       *storage.Client
	bucket    string
	uploadTTL time.Duration
}

var _ interfaces.ObjectStorage = &Client{}

// Option is a functional option for Client configuration
type Option func(*Client)

// WithUploadTTL sets the lifetime of issued upload URLs
func WithUploadTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.uploadTTL = ttl
	}
}

// New creates a new GCS-backed object storage service
func New(ctx context.Context, bucket string, opts ...Option) (*Client, error) {
	if bucket == "" {
		return nil, goerr.New("storage bucket is required")
	}

	gcs, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	c := &Client{
		gcs:       gcs,
		bucket:    bucket,
		uploadTTL: DefaultUploadTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases the underlying storage client
func (c *Client) Close() error {
	return c.gcs.Close()
}

// IssueUploadURL returns a signed PUT URL for one attachment object. The
// object key is prefixed with the report ID and a random element so file
// names can never collide or be guessed.
func (c *Client) IssueUploadURL(ctx context.Context, reportID types.ReportID, fileName, fileType string) (*interfaces.UploadTarget, error) {
	if fileName == "" {
		return nil, goerr.New("file name is required")
	}

	object := path.Join("reports", reportID.String(), uuid.New().String(), fileName)
	expiresAt := time.Now().UTC().Add(c.uploadTTL)

	url, err := c.gcs.Bucket(c.bucket).SignedURL(object, &storage.SignedURLOptions{
		Scheme:      storage.SigningSchemeV4,
		Method:      http.MethodPut,
		Expires:     expiresAt,
		ContentType: fileType,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sign upload URL",
			goerr.V("bucket", c.bucket),
			goerr.V("object", object),
		)
	}

	return &interfaces.UploadTarget{
		UploadURL: url,
		PublicURL: fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucket, object),
		ExpiresAt: expiresAt,
	}, nil
}
