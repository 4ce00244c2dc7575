package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/2beens/physioroutines/internal/telemetry/tracing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

var _ Backend = (*S3Backend)(nil)

//go:generate mockgen -source=$GOFILE -destination=s3_mocks_test.go -package=storage_test

type objectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Params struct {
	Bucket    string
	Region    string
	Endpoint  string // optional, e.g. MinIO
	PathStyle bool
	Prefix    string
	// optional static credentials, default credentials chain is used otherwise
	AccessKeyID     string
	SecretAccessKey string
}

// S3Backend stores each key as a single object in one bucket.
type S3Backend struct {
	client objectAPI
	bucket string
	prefix string
}

func NewS3Backend(ctx context.Context, params S3Params) (*S3Backend, error) {
	if params.Bucket == "" {
		return nil, errors.New("s3 bucket required")
	}
	region := params.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		awsconfig.WithHTTPClient(&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
	}
	if params.AccessKeyID != "" && params.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(params.AccessKeyID, params.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = params.PathStyle
		if params.Endpoint != "" {
			o.BaseEndpoint = aws.String(params.Endpoint)
		}
	})

	return NewS3BackendWithClient(client, params.Bucket, params.Prefix), nil
}

func NewS3BackendWithClient(client objectAPI, bucket, prefix string) *S3Backend {
	return &S3Backend{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (b *S3Backend) objectKey(key string) string {
	if b.prefix == "" {
		return key + ".json"
	}
	return path.Join(b.prefix, key+".json")
}

func (b *S3Backend) Read(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.s3.read")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	objKey := b.objectKey(key)
	span.SetAttributes(attribute.String("object_key", objKey))

	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get object %s: %w", objKey, err)
	}
	defer out.Body.Close()

	value, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", objKey, err)
	}
	return value, nil
}

func (b *S3Backend) Write(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.s3.write")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	objKey := b.objectKey(key)
	span.SetAttributes(attribute.String("object_key", objKey))

	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(objKey),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", objKey, err)
	}
	return nil
}

func (b *S3Backend) Close() error {
	return nil
}
