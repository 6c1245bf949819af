package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"cloud.google.com/go/storage"

	"github.com/cvsync/backend/config"
)

// CloudStorageClient archives the original PDF bytes of uploaded resumes in
// a Cloud Storage bucket. Archiving is best-effort; the pipeline does not
// depend on it.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.ResumeBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// ArchiveResume stores the raw PDF under the resume's ID and returns the
// object URL.
func (c *CloudStorageClient) ArchiveResume(ctx context.Context, resumeID, filename string, data []byte) (string, error) {
	objectName := fmt.Sprintf("resumes/%s/%s", resumeID, filepath.Base(filename))

	obj := c.client.Bucket(c.bucketName).Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = "application/pdf"

	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write resume archive: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)
	return url, nil
}
