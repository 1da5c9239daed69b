package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string]string
	input   *s3.GetObjectInput
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.input = params
	body, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{
		Body:        io.NopCloser(strings.NewReader(body)),
		ContentType: aws.String("text/plain"),
	}, nil
}

func TestLoad_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python and Docker"), 0o644))

	doc, err := NewLoader(nil).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", doc.Filename)
	assert.Equal(t, path, doc.Location)
	assert.Empty(t, doc.ContentType)
	assert.Equal(t, []byte("Python and Docker"), doc.Data)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader(nil).Load(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_S3Object(t *testing.T) {
	client := &fakeS3{objects: map[string]string{
		"resumes/2024/jane.txt": "Kubernetes, 5 years of experience",
	}}

	doc, err := NewLoader(client).Load(context.Background(), "s3://resumes/2024/jane.txt")
	require.NoError(t, err)
	assert.Equal(t, "jane.txt", doc.Filename)
	assert.Equal(t, "text/plain", doc.ContentType)
	assert.Equal(t, "Kubernetes, 5 years of experience", string(doc.Data))

	require.NotNil(t, client.input)
	assert.Equal(t, "resumes", aws.ToString(client.input.Bucket))
	assert.Equal(t, "2024/jane.txt", aws.ToString(client.input.Key))
}

func TestLoad_S3Errors(t *testing.T) {
	_, err := NewLoader(nil).Load(context.Background(), "s3://resumes/jane.txt")
	assert.ErrorIs(t, err, ErrNoS3Client)

	_, err = NewLoader(&fakeS3{}).Load(context.Background(), "s3://resumes/missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get object")
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		location string
		bucket   string
		key      string
		ok       bool
	}{
		{location: "s3://bucket/key.pdf", bucket: "bucket", key: "key.pdf", ok: true},
		{location: "s3://bucket/a/b/c.docx", bucket: "bucket", key: "a/b/c.docx", ok: true},
		{location: "s3://bucket", ok: false},
		{location: "s3://bucket/", ok: false},
		{location: "s3:///key", ok: false},
		{location: "/tmp/resume.pdf", ok: false},
		{location: "https://bucket/key", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			bucket, key, ok := ParseS3URI(tt.location)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestNewS3Client_CustomEndpoint(t *testing.T) {
	client, err := NewS3Client(context.Background(), S3Config{
		Endpoint:  "http://localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
	})
	require.NoError(t, err)

	opts := client.Options()
	assert.Equal(t, "auto", opts.Region)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
}
