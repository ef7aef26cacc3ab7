package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hsinyu-lin/trackdesk/internal/config"
)

// opTimeout bounds every blob-store round trip; a hung store must not
// pin a request handler forever.
const opTimeout = 30 * time.Second

type MinioStore struct {
	client   *minioSDK.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewMinioStore connects to MinIO and ensures the bucket exists.
func NewMinioStore() (*MinioStore, error) {
	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		log.Printf("Bucket created: %s", config.MinioBucket)
	}

	return &MinioStore{
		client:   client,
		bucket:   config.MinioBucket,
		endpoint: config.MinioEndpoint,
		useSSL:   config.MinioUseSSL,
	}, nil
}

// Upload stores the object under folder/<uuid> and returns its public
// URL. The object name carries no extension so the public id survives
// the URL round trip unchanged.
func (s *MinioStore) Upload(ctx context.Context, folder string, data []byte, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	objectName := fmt.Sprintf("%s/%s", folder, uuid.NewString())
	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minioSDK.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName), nil
}

func (s *MinioStore) Destroy(ctx context.Context, folder, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	objectName := fmt.Sprintf("%s/%s", folder, publicID)
	return s.client.RemoveObject(ctx, s.bucket, objectName, minioSDK.RemoveObjectOptions{})
}
