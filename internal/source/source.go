// Package source loads résumé bytes from a local path or an S3-compatible bucket.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

var ErrNoS3Client = errors.New("s3 location given but no s3 client configured")

// ObjectGetter is the part of *s3.Client the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Document struct {
	Location    string
	Filename    string
	ContentType string
	Data        []byte
}

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

type Loader struct {
	s3 ObjectGetter
}

// NewLoader accepts a nil client when only local files will be read.
func NewLoader(client ObjectGetter) *Loader {
	return &Loader{s3: client}
}

func (l *Loader) Load(ctx context.Context, location string) (*Document, error) {
	if bucket, key, ok := ParseS3URI(location); ok {
		return l.loadObject(ctx, location, bucket, key)
	}
	return loadFile(location)
}

func (l *Loader) loadObject(ctx context.Context, location, bucket, key string) (*Document, error) {
	if l.s3 == nil {
		return nil, ErrNoS3Client
	}

	out, err := l.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}

	return &Document{
		Location:    location,
		Filename:    path.Base(key),
		ContentType: aws.ToString(out.ContentType),
		Data:        buf.Bytes(),
	}, nil
}

func loadFile(location string) (*Document, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return &Document{
		Location: location,
		Filename: filepath.Base(location),
		Data:     data,
	}, nil
}

// ParseS3URI splits "s3://bucket/some/key.pdf" into bucket and key.
func ParseS3URI(location string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(location, s3Scheme) {
		return "", "", false
	}
	rest := strings.TrimPrefix(location, s3Scheme)
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// NewS3Client builds a client from the default AWS chain. Static keys and a
// custom endpoint (R2, MinIO) override it when set.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error

	region := cfg.Region
	if region == "" && cfg.Endpoint != "" {
		region = "auto"
	}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
