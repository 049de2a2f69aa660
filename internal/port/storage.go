package port

import (
	"context"
	"io"
)

// UploadInput describes one evidence object to store.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput identifies the stored object.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage stores and serves case evidence files. Downloads go
// through short-lived presigned URLs so evidence buckets stay private.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
