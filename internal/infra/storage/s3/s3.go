package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/david-develop/files-manager/internal/domain"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// Storage — альтернативный бэкенд блобов поверх S3/MinIO.
type Storage struct {
	cl     *minio.Client
	bucket string
	logger *log.Logger
}

func New(cfg Config, logger *log.Logger) (*Storage, error) {
	cl, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}
	return &Storage{cl: cl, bucket: cfg.Bucket, logger: logger}, nil
}

var _ domain.BlobStorage = (*Storage)(nil)

func (s *Storage) Put(ctx context.Context, data []byte) (string, error) {
	key := uuid.NewString()
	_, err := s.cl.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		s.logger.Printf("put %s failed: %v", key, err)
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	s.logger.Printf("put %s ok (%d bytes)", key, len(data))
	return key, nil
}

func (s *Storage) Get(ctx context.Context, storageKey string) ([]byte, error) {
	obj, err := s.cl.GetObject(ctx, s.bucket, storageKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		s.logger.Printf("get %s failed: %v", storageKey, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return data, nil
}
