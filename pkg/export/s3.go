package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// ErrNoBucket is returned when an upload is attempted without a bucket.
var ErrNoBucket = errors.New("no S3 bucket configured")

// S3Config holds the bucket location and credentials for uploads.
type S3Config struct {
	Bucket    string
	Prefix    string
	Region    string
	AccessKey string
	SecretKey string
}

// PutObjectAPI is the subset of the S3 client used by S3Uploader.
type PutObjectAPI interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// NewS3Uploader wraps an existing client. It is mostly useful in tests.
func NewS3Uploader(client PutObjectAPI, bucket, prefix string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, prefix: prefix}
}

// NewS3UploaderFromConfig creates a session with static credentials.
// An empty bucket yields ErrNoBucket.
func NewS3UploaderFromConfig(cfg S3Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}
	if cfg.Region == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("missing one or more required environment variables: AWS_DEFAULT_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return NewS3Uploader(s3.New(sess), cfg.Bucket, cfg.Prefix), nil
}

// Key joins the configured prefix and name into an object key.
func (u *S3Uploader) Key(name string) string {
	prefix := strings.Trim(u.prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Upload stores PNG bytes under name and returns the s3:// location.
func (u *S3Uploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	if u == nil || u.bucket == "" {
		return "", ErrNoBucket
	}

	key := u.Key(name)
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String("image/png"),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	location := fmt.Sprintf("s3://%s/%s", u.bucket, key)
	log.Printf("Uploaded gradient to %s (%d bytes)", location, len(data))
	return location, nil
}
