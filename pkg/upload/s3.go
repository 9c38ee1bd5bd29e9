package upload

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 30 * time.Second

// Config holds S3-compatible object storage settings, read from the
// environment
type Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

// LoadConfig reads upload settings from the environment, optionally loading
// a .env file first. A missing .env file is not an error.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	cfg := &Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not set")
	}
	return cfg, nil
}

// Uploader pushes rendered images to S3-compatible object storage
type Uploader struct {
	client *s3.S3
	bucket string
}

// NewUploader creates an uploader from the given config
func NewUploader(cfg *Config) (*Uploader, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 session: %w", err)
	}

	return &Uploader{client: s3.New(sess), bucket: cfg.Bucket}, nil
}

// Upload stores the data under the given key with the given content type
func (u *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

// UploadFile reads a local file and uploads it under the given key
func (u *Uploader) UploadFile(ctx context.Context, key, path, contentType string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return u.Upload(ctx, key, data, contentType)
}
