// Package export issues presigned upload URLs for data-export artifacts,
// gated by the EXPORT_DATA permission and the per-day exports quota.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/config"
	"github.com/dmitrijs2005/authkeeper/internal/models"
	"github.com/dmitrijs2005/authkeeper/internal/permissions"
)

const presignValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// Gate is the slice of the session controller the export service needs:
// the permission check and the exports quota.
type Gate interface {
	HasPermission(permission string) bool
	CheckDailyLimit(kind models.LimitKind) bool
	IncrementUsage(ctx context.Context, kind models.LimitKind) error
}

type Service struct {
	gate   Gate
	config *config.Config
}

func NewService(gate Gate, config *config.Config) *Service {
	return &Service{gate: gate, config: config}
}

// RandomStorageKey returns a date-partitioned object key for a new artifact.
func RandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("exports/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *Service) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// RequestExport checks the EXPORT_DATA permission and the exports quota,
// then returns a presigned PUT URL the caller uploads the artifact to.
// The quota is counted only after a URL was actually issued.
func (s *Service) RequestExport(ctx context.Context) (string, string, error) {
	if !s.gate.HasPermission(permissions.ExportData) {
		return "", "", common.ErrorUnauthorized
	}
	if !s.gate.CheckDailyLimit(models.LimitExports) {
		return "", "", common.ErrLimitExceeded
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := RandomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", "", err
	}

	if err := s.gate.IncrementUsage(ctx, models.LimitExports); err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}
