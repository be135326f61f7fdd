package config

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/service/storage"
	"github.com/urfave/cli/v3"
)

// Storage holds CLI flags for attachment storage configuration
type Storage struct {
	bucket    string
	uploadTTL time.Duration
}

// Flags returns CLI flags for storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "attachment-bucket",
			Usage:       "GCS bucket for attachment uploads (attachments disabled when omitted)",
			Sources:     cli.EnvVars("INTAKEBOX_ATTACHMENT_BUCKET"),
			Destination: &s.bucket,
		},
		&cli.DurationFlag{
			Name:        "upload-url-ttl",
			Usage:       "Lifetime of signed upload URLs",
			Value:       storage.DefaultUploadTTL,
			Sources:     cli.EnvVars("INTAKEBOX_UPLOAD_URL_TTL"),
			Destination: &s.uploadTTL,
		},
	}
}

// Configure creates the object storage client. Returns nil if no bucket
// is configured.
func (s *Storage) Configure(ctx context.Context) (interfaces.ObjectStorage, error) {
	if s.bucket == "" {
		return nil, nil
	}

	client, err := storage.New(ctx, s.bucket, storage.WithUploadTTL(s.uploadTTL))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", s.bucket))
	}
	return client, nil
}
