package contracts

import "context"

type Storage interface {
	EnsureBucket(ctx context.Context, bucketName string) error
	PutJSON(ctx context.Context, bucketName, objectName string, payload []byte) error
}
