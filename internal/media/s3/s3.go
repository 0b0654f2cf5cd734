// Package s3 keeps images in an S3 compatible bucket such as Cloudflare R2 or MinIO.
package s3

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/vietanh2810/raffles-api/internal/domain"
	"github.com/vietanh2810/raffles-api/internal/media"
)

type Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

type Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.Bucket == "" || cfg.PublicBaseURL == "" {
		return nil, errors.New("invalid s3 media configuration: credentials, bucket and public base url are required")
	}
	if cfg.Region == "" {
		cfg.Region = "auto"
	}

	sdkCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		config.WithRegion(cfg.Region),
		config.WithRetryMaxAttempts(1),
	)
	if err != nil {
		return nil, fmt.Errorf("config.LoadDefaultConfig -> %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (s *Store) Upload(ctx context.Context, image domain.Image, folder string) (media.Asset, error) {
	key := objectKey(folder, image.ContentType)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        image.Content,
		ContentType: aws.String(image.ContentType),
	})
	if err != nil {
		return media.Asset{}, fmt.Errorf("s.client.PutObject -> %w", err)
	}

	return media.Asset{
		SecureURL: s.publicBaseURL + "/" + key,
		PublicID:  key,
	}, nil
}

func (s *Store) Delete(ctx context.Context, publicID string) (bool, error) {
	if publicID == "" {
		return false, nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return false, fmt.Errorf("s.client.DeleteObject -> %w", err)
	}

	return true, nil
}

func objectKey(folder, contentType string) string {
	ext := ""
	if mt := mimetype.Lookup(contentType); mt != nil {
		ext = mt.Extension()
	}

	return path.Join(folder, uuid.NewString()+ext)
}
