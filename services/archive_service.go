package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	appConfig "github.com/amirulhaziq/jobsheet-api/config"
)

// ArchiveService keeps a JSON snapshot of every submitted jobsheet.
// Like the webhook this is best-effort: a failed archive is logged and
// never fails the submit call.
type ArchiveService interface {
	ArchiveJobsheet(jsNumber int64, snapshot []byte) (string, error)
}

// S3ArchiveService stores snapshots as objects in an S3 bucket
type S3ArchiveService struct {
	client *s3.Client
	bucket string
}

var archiveServiceInstance ArchiveService

// InitArchiveService initializes the archive service from configuration.
// When no bucket is configured, archiving is disabled.
func InitArchiveService() (ArchiveService, error) {
	cfg := appConfig.GetConfig()
	if cfg == nil || cfg.AWSS3Bucket == "" {
		archiveServiceInstance = &NoopArchiveService{}
		return archiveServiceInstance, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	archiveServiceInstance = &S3ArchiveService{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.AWSS3Bucket,
	}
	return archiveServiceInstance, nil
}

// GetArchiveService returns the initialized archive service instance.
// Before InitArchiveService runs, it falls back to the noop archive.
func GetArchiveService() ArchiveService {
	if archiveServiceInstance == nil {
		return &NoopArchiveService{}
	}
	return archiveServiceInstance
}

// SetArchiveService sets the archive service instance (primarily for testing)
func SetArchiveService(service ArchiveService) {
	archiveServiceInstance = service
}

// ArchiveJobsheet uploads the snapshot to S3 and returns the object key
func (s *S3ArchiveService) ArchiveJobsheet(jsNumber int64, snapshot []byte) (string, error) {
	key := fmt.Sprintf("jobsheets/%d.json", jsNumber)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(snapshot),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive jobsheet %d: %w", jsNumber, err)
	}

	return key, nil
}

// NoopArchiveService stands in when no bucket is configured
type NoopArchiveService struct{}

// ArchiveJobsheet drops the snapshot
func (NoopArchiveService) ArchiveJobsheet(jsNumber int64, snapshot []byte) (string, error) {
	log.Debug().Int64("js_number", jsNumber).Msg("no archive bucket configured, skipping snapshot")
	return "", nil
}
