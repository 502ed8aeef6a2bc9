// Package s3source loads an order document stored as an object in S3 or an
// S3-compatible backend such as MinIO.
package s3source

import (
	"context"
	"fmt"

	"orderaudit/internal/adapters/out/orderdoc"
	"orderaudit/internal/core/domain/model/order"
	"orderaudit/internal/core/ports"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var _ ports.OrderSource = (*Source)(nil)

// Config holds the object location and client settings.
type Config struct {
	Region          string
	Bucket          string
	Key             string
	Endpoint        string // optional; enables a custom endpoint (e.g. MinIO)
	AccessKeyID     string // optional; falls back to the default credentials chain
	SecretAccessKey string
	PathStyle       bool
}

type Source struct {
	client *s3.Client
	bucket string
	key    string
}

// New builds a client from cfg. optFns are applied after cfg and may replace the
// HTTP client.
func New(ctx context.Context, cfg Config, optFns ...func(*s3.Options)) (*Source, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	if cfg.Key == "" {
		return nil, fmt.Errorf("s3 key required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	opts := append([]func(*s3.Options){func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}}, optFns...)

	return &Source{client: s3.NewFromConfig(awsCfg, opts...), bucket: cfg.Bucket, key: cfg.Key}, nil
}

func (s *Source) Name() string {
	return "s3://" + s.bucket + "/" + s.key
}

// Load fetches the object. The format comes from the key extension, or from the
// object's content type when the key has none that is recognised.
func (s *Source) Load(ctx context.Context) ([]*order.Order, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &s.key})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.Name(), err)
	}
	defer out.Body.Close()

	format, err := orderdoc.FormatFromPath(s.key)
	if err != nil {
		format, err = orderdoc.FormatFromContentType(aws.ToString(out.ContentType))
		if err != nil {
			return nil, err
		}
	}

	orders, err := orderdoc.Decode(out.Body, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Name(), err)
	}
	return orders, nil
}
