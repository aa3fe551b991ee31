package port

import (
	"context"
	"io"
	"time"
)

// FileInfo describes a stored object.
type FileInfo struct {
	SizeBytes   int64
	ContentType string
}

// Storage abstracts the object store holding video files and thumbnails.
type Storage interface {
	InitBucket(bucket string) error
	GeneratePresignedUploadURL(ctx context.Context, bucket, objectKey string, expiry time.Duration) (string, error)
	GeneratePresignedDownloadURL(ctx context.Context, bucket, objectKey string, expiry time.Duration) (string, error)
	StatFile(ctx context.Context, bucket, objectKey string) (FileInfo, error)
	GetFile(ctx context.Context, bucket, objectKey string) (io.ReadCloser, error)
	RemoveFile(ctx context.Context, bucket, objectKey string) error
}
