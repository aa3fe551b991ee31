package mock

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/fhuszti/videos-ms-go/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	StatInfoOut port.FileInfo
	GetOut      []byte
	UploadURL   string
	DownloadURL string

	// captured inputs
	Bucket    string
	ObjectKey string
	TTL       time.Duration

	// errors
	InitBucketErr           error
	GenerateUploadLinkErr   error
	GenerateDownloadLinkErr error
	StatErr                 error
	GetErr                  error
	RemoveErr               error

	// call flags
	InitBucketCalled           bool
	GenerateUploadLinkCalled   bool
	GenerateDownloadLinkCalled bool
	StatCalled                 bool
	GetCalled                  bool
	RemoveCalled               bool
	RemovedKeys                []string
}

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) GeneratePresignedUploadURL(ctx context.Context, bucket, objectKey string, expiry time.Duration) (string, error) {
	m.GenerateUploadLinkCalled = true
	m.Bucket = bucket
	m.ObjectKey = objectKey
	m.TTL = expiry
	if m.GenerateUploadLinkErr != nil {
		return "", m.GenerateUploadLinkErr
	}
	if m.UploadURL != "" {
		return m.UploadURL, nil
	}
	return "https://example.com/upload", nil
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, bucket, objectKey string, expiry time.Duration) (string, error) {
	m.GenerateDownloadLinkCalled = true
	m.Bucket = bucket
	m.ObjectKey = objectKey
	m.TTL = expiry
	if m.GenerateDownloadLinkErr != nil {
		return "", m.GenerateDownloadLinkErr
	}
	if m.DownloadURL != "" {
		return m.DownloadURL, nil
	}
	return "https://example.com/download", nil
}

func (m *Storage) StatFile(ctx context.Context, bucket, objectKey string) (port.FileInfo, error) {
	m.StatCalled = true
	m.Bucket = bucket
	m.ObjectKey = objectKey
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) GetFile(ctx context.Context, bucket, objectKey string) (io.ReadCloser, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return io.NopCloser(bytes.NewReader(m.GetOut)), nil
}

func (m *Storage) RemoveFile(ctx context.Context, bucket, objectKey string) error {
	m.RemoveCalled = true
	m.RemovedKeys = append(m.RemovedKeys, objectKey)
	return m.RemoveErr
}
