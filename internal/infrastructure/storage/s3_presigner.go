package storage

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"roads_authority/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingBucket = errors.New("documents bucket not configured")

type getObjectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Presigner issues time-limited download links for files in the documents bucket.
type S3Presigner struct {
	presigner getObjectPresigner
	bucket    string
}

var _ interfaces.IFilePresigner = (*S3Presigner)(nil)

// NewS3Presigner uses S3_ENDPOINT, when set, for S3-compatible local storage.
func NewS3Presigner(cfg aws.Config, bucket string) (*S3Presigner, error) {
	if bucket == "" {
		return nil, ErrMissingBucket
	}
	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	log.Printf("[storage][s3] presigner ready bucket=%s", bucket)
	return &S3Presigner{presigner: s3.NewPresignClient(client), bucket: bucket}, nil
}

func (p *S3Presigner) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := p.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
