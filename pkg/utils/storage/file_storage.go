package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MaxCatalogSize caps a catalog CSV download at 50MB.
const MaxCatalogSize = 50 * 1024 * 1024

var s3Client *s3.Client

// InitStorage configures the S3 client used for catalog downloads. Static
// credentials override the default chain when both env values are present.
func InitStorage(region, accessKey, secretKey string) error {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
	return nil
}

// FetchCatalog downloads a catalog CSV object and returns its contents.
func FetchCatalog(ctx context.Context, bucket, key string) ([]byte, error) {
	if s3Client == nil {
		return nil, fmt.Errorf("storage not initialized")
	}

	out, err := s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch s3://%s/%s: %v", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, MaxCatalogSize+1))
	if err != nil {
		return nil, fmt.Errorf("could not read catalog object: %v", err)
	}
	if len(data) > MaxCatalogSize {
		return nil, fmt.Errorf("catalog object exceeds %d bytes", MaxCatalogSize)
	}

	return data, nil
}
