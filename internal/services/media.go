package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
)

// Media stores product images in MinIO.
type Media struct {
	client *minio.Client
	bucket string
}

func NewMedia(client *minio.Client) *Media {
	return &Media{
		client: client,
		bucket: os.Getenv("MINIO_BUCKET"),
	}
}

func (m *Media) Enabled() bool {
	return m != nil && m.client != nil
}

// UploadProductImage stores the upload under products/<productID> and returns
// the object path kept on the product row.
func (m *Media) UploadProductImage(ctx context.Context, productID string, file *multipart.FileHeader) (string, error) {
	if !m.Enabled() {
		return "", fmt.Errorf("MinIO not configured")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectName := fmt.Sprintf("products/%s%s", productID, extOf(file.Filename))
	_, err = m.client.PutObject(ctx, m.bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}
	return objectName, nil
}

// SignedURL produces a presigned GET link for an object path.
func (m *Media) SignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	if !m.Enabled() {
		return "", fmt.Errorf("MinIO not configured")
	}
	u, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func extOf(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i:]
		}
	}
	return ""
}
