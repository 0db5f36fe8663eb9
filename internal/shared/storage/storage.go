// Package storage keeps request attachments outside the database; only the
// returned URLs are persisted.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var ErrStorageDisabled = errors.New("attachment storage is not configured")

// File is one uploaded blob.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

//go:generate mockgen -destination=mock/storage_mock.go -package=mock . AttachmentStorage
type AttachmentStorage interface {
	Upload(ctx context.Context, ownerID string, file File) (string, error)
	Delete(ctx context.Context, url string) error
}

type minioStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
	logger  *zap.Logger
}

// NewMinioStorage stores objects under <ownerID>/<uuid><ext>. When baseURL is empty
// the returned URLs point at the client endpoint.
func NewMinioStorage(client *minio.Client, bucket, baseURL string, logger ...*zap.Logger) AttachmentStorage {
	l := zap.L().Named("storage.minio")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.minio")
	}
	if baseURL == "" && client != nil {
		baseURL = client.EndpointURL().String()
	}
	return &minioStorage{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  l,
	}
}

func (m *minioStorage) Upload(ctx context.Context, ownerID string, file File) (string, error) {
	key := ObjectKey(ownerID, file.Name, time.Now())

	contentType := file.ContentType
	if contentType == "" {
		contentType = ContentTypeFor(file.Name)
	}

	_, err := m.client.PutObject(ctx, m.bucket, key, file.Body, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		m.logger.Error("upload attachment failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("upload attachment: %w", err)
	}

	m.logger.Info("attachment uploaded", zap.String("key", key), zap.Int64("size", file.Size))
	return m.baseURL + "/" + m.bucket + "/" + key, nil
}

func (m *minioStorage) Delete(ctx context.Context, url string) error {
	prefix := m.baseURL + "/" + m.bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return fmt.Errorf("attachment %q is not stored in bucket %s", url, m.bucket)
	}
	key := strings.TrimPrefix(url, prefix)

	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		m.logger.Warn("delete attachment failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("delete attachment: %w", err)
	}
	return nil
}

// ObjectKey builds a collision-free object name that keeps the original extension.
func ObjectKey(ownerID, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join(ownerID, now.UTC().Format("2006/01"), uuid.NewString()+ext)
}

func ContentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

type disabledStorage struct{}

// Disabled is used when no object store is configured; uploads fail with ErrStorageDisabled.
func Disabled() AttachmentStorage {
	return disabledStorage{}
}

func (disabledStorage) Upload(context.Context, string, File) (string, error) {
	return "", ErrStorageDisabled
}

func (disabledStorage) Delete(context.Context, string) error {
	return ErrStorageDisabled
}
