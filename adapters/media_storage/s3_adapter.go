package media_storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
	"github.com/khoahotran/portfolio-showcase/internal/config"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3Adapter works against AWS S3 and S3-compatible stores such as R2 or MinIO.
type s3Adapter struct {
	client    objectPutter
	bucket    string
	publicURL string
	logger    logger.Logger
}

func NewS3Adapter(ctx context.Context, cfg config.Config, log logger.Logger) (service.Uploader, error) {
	if cfg.S3.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket has not config")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3.Region)}
	if cfg.S3.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info("Initialize S3 uploader successfully.", zap.String("bucket", cfg.S3.Bucket))
	return &s3Adapter{client: client, bucket: cfg.S3.Bucket, publicURL: cfg.S3.PublicURL, logger: log}, nil
}

func objectKey(folder, publicID string) string {
	if folder == "" {
		return publicID
	}
	return strings.TrimSuffix(folder, "/") + "/" + publicID
}

func (a *s3Adapter) Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error) {
	key := objectKey(folder, publicID)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload s3: %w", err)
	}

	if a.publicURL != "" {
		return strings.TrimSuffix(a.publicURL, "/") + "/" + key, nil
	}
	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}

func (a *s3Adapter) Delete(ctx context.Context, publicID string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete s3: %w", err)
	}
	return nil
}
