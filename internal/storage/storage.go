// Package storage archives uploaded audio in an S3 compatible bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/JesusPQ15/Transcription-page/internal/config"
)

// defaultRegion avoids a bucket location lookup before each request
const defaultRegion = "us-east-1"

// Archiver stores uploaded audio and returns the object key
type Archiver interface {
	Archive(ctx context.Context, requestID, filename, contentType string, data []byte) (string, error)
}

// Nop skips archiving
type Nop struct{}

// Archive returns an empty key
func (Nop) Archive(context.Context, string, string, string, []byte) (string, error) {
	return "", nil
}

// MinioArchiver implements Archiver using MinIO
type MinioArchiver struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

// NewMinioArchiver creates the client. It does not touch the network.
func NewMinioArchiver(cfg config.StorageConfig) (*MinioArchiver, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: defaultRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	bucket := cfg.Bucket
	if bucket == "" {
		bucket = config.DefaultBucket
	}

	return &MinioArchiver{
		client: client,
		bucket: bucket,
		now:    time.Now,
	}, nil
}

// EnsureBucket creates the bucket when it does not exist
func (s *MinioArchiver) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: defaultRegion}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Archive uploads data under audio/<yyyy>/<mm>/<dd>/<requestID>.<ext>
func (s *MinioArchiver) Archive(ctx context.Context, requestID, filename, contentType string, data []byte) (string, error) {
	key := ObjectKey(s.now(), requestID, filename)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-name": filename,
			"request-id":    requestID,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to MinIO: %w", err)
	}
	return key, nil
}

// ObjectKey builds the archive key for an upload
func ObjectKey(at time.Time, requestID, filename string) string {
	ext := path.Ext(filename)
	return fmt.Sprintf("audio/%s/%s%s", at.UTC().Format("2006/01/02"), requestID, ext)
}
