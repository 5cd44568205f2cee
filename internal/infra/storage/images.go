package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/pro-booking/internal/config"
)

// ImageResolver transforma a chave guardada no banco em URL para o cliente.
type ImageResolver interface {
	URL(ctx context.Context, key string) (string, error)
}

// ======================================================
// S3 (URL pré-assinada)
// ======================================================

type S3Images struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

func NewS3Images(cfg *config.Config) (*S3Images, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3: bucket name is required")
	}

	opts := s3.Options{
		Region:       cfg.S3Region,
		UsePathStyle: cfg.S3Endpoint != "",
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}
	if cfg.S3AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)
	}

	ttl := cfg.S3PresignTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &S3Images{
		presign: s3.NewPresignClient(s3.New(opts)),
		bucket:  cfg.S3Bucket,
		ttl:     ttl,
	}, nil
}

func (s *S3Images) URL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("s3 presign %q: %w", key, err)
	}
	return req.URL, nil
}

// ======================================================
// PREFIXO ESTÁTICO (CDN / disco local)
// ======================================================

type PrefixImages struct {
	base string
}

func NewPrefixImages(base string) *PrefixImages {
	return &PrefixImages{base: strings.TrimRight(base, "/")}
}

func (p *PrefixImages) URL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	if p.base == "" {
		return "/" + strings.TrimLeft(key, "/"), nil
	}
	return p.base + "/" + strings.TrimLeft(key, "/"), nil
}

// NewImageResolver usa S3 quando há bucket configurado.
func NewImageResolver(cfg *config.Config) (ImageResolver, error) {
	if cfg.S3Bucket != "" {
		return NewS3Images(cfg)
	}
	return NewPrefixImages(cfg.ImageBaseURL), nil
}
