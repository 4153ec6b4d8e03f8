package storage

import (
	"bytes"
	"context"
	"registration-service/internal/app/contracts"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.MinioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return exceptions.ErrMinioCreateBucket(err, bucketName)
	}
	if exists {
		return nil
	}

	err = m.MinioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
	if err != nil {
		return exceptions.ErrMinioCreateBucket(err, bucketName)
	}
	return nil
}

func (m *minioStorage) PutJSON(ctx context.Context, bucketName, objectName string, payload []byte) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: constvars.MIMEApplicationJSON},
	)
	if err != nil {
		return exceptions.ErrMinioPutObject(err, bucketName)
	}
	return nil
}
