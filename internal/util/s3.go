package util

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/nakachan-ing/dayspark/internal/model"
)

// UploadToS3 - エクスポートしたスナップショットを S3 にアップロード
func UploadToS3(ctx context.Context, s3Client *s3.Client, bucket, s3Key string, body io.Reader) error {
	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(s3Key),
		Body:        body,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3: %w", s3Key, err)
	}

	log.Printf("✅ Uploaded s3://%s/%s", bucket, s3Key)
	return nil
}

func NewS3Client(ctx context.Context, exportConfig model.ExportConfig) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(exportConfig.AWSRegion),
	}
	if exportConfig.AWSProfile != "" {
		opts = append(opts, config.WithSharedConfigProfile(exportConfig.AWSProfile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return s3.NewFromConfig(cfg), nil
}
