package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	infraconfig "github.com/storemap/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// S3LogoStorage stores the logo in any S3-compatible object store
// (AWS S3, MinIO, RustFS, ...).
type S3LogoStorage struct {
	client   *s3.Client
	bucket   string
	key      string
	endpoint string
	logger   *zap.Logger
}

var _ LogoStorage = (*S3LogoStorage)(nil)

// S3LogoStorageOption is a functional option for configuring S3LogoStorage
type S3LogoStorageOption func(*S3LogoStorage)

// WithLogger sets a custom logger for S3LogoStorage
func WithLogger(logger *zap.Logger) S3LogoStorageOption {
	return func(s *S3LogoStorage) {
		s.logger = logger
	}
}

// NewS3LogoStorage creates an S3LogoStorage from configuration.
func NewS3LogoStorage(cfg *infraconfig.StorageConfig, opts ...S3LogoStorageOption) (*S3LogoStorage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("storage credentials are required")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "http://localhost:9000"
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		if cfg.UseSSL {
			endpoint = "https://" + endpoint
		} else {
			endpoint = "http://" + endpoint
		}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true // required by MinIO and most self-hosted stores
	})

	key := cfg.LogoFilename
	if cfg.KeyPrefix != "" {
		key = strings.TrimSuffix(cfg.KeyPrefix, "/") + "/" + key
	}

	st := &S3LogoStorage{
		client:   client,
		bucket:   cfg.Bucket,
		key:      key,
		endpoint: endpoint,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(st)
	}
	return st, nil
}

// Save uploads the logo object, overwriting the previous one.
func (s *S3LogoStorage) Save(ctx context.Context, r io.Reader, ext string) error {
	_, contentType, err := ValidateExtension(ext)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read logo content: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload logo: %w", err)
	}

	s.logger.Info("Logo uploaded",
		zap.String("bucket", s.bucket),
		zap.String("key", s.key),
		zap.Int("size", len(body)),
	)
	return nil
}

// URL returns the object URL when the logo exists.
func (s *S3LogoStorage) URL(ctx context.Context) string {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, s.key)
}
