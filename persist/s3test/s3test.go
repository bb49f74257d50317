// Package s3test spins up an in-process fake S3 server for exercising
// persist.S3Store without network access or real credentials.
package s3test

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"net/http/httptest"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/johannesboyne/gofakes3"
	"github.com/johannesboyne/gofakes3/backend/s3mem"
)

// Client returns an S3 client backed by an in-memory fake server, a
// freshly created bucket name, and a closer to stop the server.
func Client() (*s3.S3, string, func()) {
	backend := s3mem.New()
	faker := gofakes3.New(backend)
	ts := httptest.NewServer(faker.Server())

	config := &aws.Config{
		Credentials: credentials.NewStaticCredentials(
			"TEST-ACCESSKEYID", "TEST-SECRETACCESSKEY", ""),
		Endpoint:         aws.String(ts.URL),
		Region:           aws.String("ca-west-1"),
		DisableSSL:       aws.Bool(true),
		S3ForcePathStyle: aws.Bool(true),
	}
	client := s3.New(session.New(config))

	bucketName := randBucketName()
	if _, err := client.CreateBucket(&s3.CreateBucketInput{Bucket: &bucketName}); err != nil {
		ts.Close()
		panic(err)
	}
	return client, bucketName, ts.Close
}

func randBucketName() string {
	i, err := rand.Int(rand.Reader, big.NewInt(math.MaxUint32))
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("bucket-%s", i)
}
