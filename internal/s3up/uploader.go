package s3up

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader pushes original document bytes to an S3 bucket so the
// processing pipeline can be replayed later. Credentials come from the
// SDK's default chain (environment, shared config, instance role).
type Uploader struct {
	client *s3.Client
	bucket string
	prefix string
}

// New builds an uploader for the given bucket and region.
func New(ctx context.Context, bucket, region, prefix string) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3up: bucket required")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("s3up: load aws config: %w", err)
	}
	return &Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// Upload stores data under a unique key and returns that key.
func (u *Uploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	key := path.Join(u.prefix, uuid.NewString(), filepath.Base(filename))

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3up: put %s: %w", key, err)
	}
	return key, nil
}
