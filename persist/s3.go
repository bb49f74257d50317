package persist

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/hashicorp/golang-lru/simplelru"
)

// s3API is the subset of *s3.S3 this package calls, so tests can
// substitute gofakes3's client without needing the real service.
type s3API interface {
	GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error)
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// S3Store implements Store on top of an S3 bucket. Since blobs are
// content-addressed and therefore immutable once written, S3Store
// keeps a small LRU of names known to already exist, to skip redundant
// PutObject calls under heavy re-snapshotting of largely-unchanged
// maps.
type S3Store struct {
	client     s3API
	bucketName string
	prefix     string
	known      *simplelru.LRU
}

// NewS3Store returns a Store that loads and stores blobs as objects in
// bucketName, with keys prefixed by prefix.
func NewS3Store(client s3API, bucketName, prefix string) *S3Store {
	known, err := simplelru.NewLRU(4096, nil)
	if err != nil {
		panic(err)
	}
	return &S3Store{client: client, bucketName: bucketName, prefix: prefix, known: known}
}

func (s *S3Store) Load(ctx context.Context, name string) ([]byte, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: &s.bucketName,
		Key:    aws.String(s.prefix + name),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}
	s.known.Add(name, struct{}{})
	return b, nil
}

func (s *S3Store) Store(ctx context.Context, name string, b []byte) error {
	if _, present := s.known.Get(name); present {
		return nil
	}
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket: &s.bucketName,
		Key:    aws.String(s.prefix + name),
		Body:   bytes.NewReader(b),
	})
	if err != nil {
		return err
	}
	s.known.Add(name, struct{}{})
	return nil
}
