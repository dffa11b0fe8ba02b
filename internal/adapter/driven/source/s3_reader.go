package source

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/diillson/stock-analytics-dashboard-go/internal/domain/normalize"
)

// S3API é o subconjunto do cliente S3 usado pelo leitor.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Reader reads record files stored as S3 objects, e.g. s3://exports/inventory/2024-03.json.
type S3Reader struct {
	profile string
	region  string

	mu     sync.Mutex
	client S3API
}

// NewS3Reader cria um leitor S3 para o perfil e região informados.
func NewS3Reader(profile, region string) *S3Reader {
	return &S3Reader{profile: profile, region: region}
}

// NewS3ReaderWithClient cria um leitor S3 com um cliente já configurado.
func NewS3ReaderWithClient(client S3API) *S3Reader {
	return &S3Reader{client: client}
}

func (r *S3Reader) getClient(ctx context.Context) (S3API, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}

	opts := []func(*config.LoadOptions) error{}
	if r.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.profile))
	}
	if r.region != "" {
		opts = append(opts, config.WithRegion(r.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", r.profile, err)
	}

	r.client = s3.NewFromConfig(cfg)
	return r.client, nil
}

// ParseS3URI divide s3://bucket/key em bucket e chave.
func ParseS3URI(location string) (string, string, error) {
	rest, ok := strings.CutPrefix(location, "s3://")
	if !ok {
		return "", "", unsupported(location)
	}
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q, expected s3://bucket/key", location)
	}
	return bucket, key, nil
}

// ReadRows implementa RowReader.
func (r *S3Reader) ReadRows(ctx context.Context, location string, _ Scope) ([]normalize.Row, error) {
	bucket, key, err := ParseS3URI(location)
	if err != nil {
		return nil, err
	}

	format, err := FormatFromName(key)
	if err != nil {
		return nil, err
	}

	client, err := r.getClient(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", location, err)
	}
	defer out.Body.Close()

	rows, err := DecodeRows(format, out.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return rows, nil
}
