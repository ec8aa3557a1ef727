// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of the S3 client used by [S3Storage].
type s3API interface {
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, opts ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Replaced in tests.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig
	newS3Client          = func(cfg aws.Config, endpoint string) s3API {
		return s3.NewFromConfig(cfg, func(o *s3.Options) {
			if endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
				o.UsePathStyle = true
			}
		})
	}
)

const defaultS3Root = "go-clip-keeper"

// S3Storage is the [RemoteStorage] backed by an S3-compatible bucket. Files
// live under "<prefix>/<login>/". The access key identifies the account.
type S3Storage struct {
	client s3API
	bucket string
	root   string

	userID   string
	userName string

	logger *logger.Logger
}

// NewS3Storage builds the S3 client from static credentials. A non-empty
// endpoint switches to path-style addressing for MinIO and friends.
func NewS3Storage(ctx context.Context, cfg config.ClientRemote, log *logger.Logger) (*S3Storage, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(cfg.S3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKey,
			cfg.S3.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3Storage(newS3Client(awsCfg, cfg.S3.Endpoint), cfg, log), nil
}

func newS3Storage(client s3API, cfg config.ClientRemote, log *logger.Logger) *S3Storage {
	userName := cfg.Login
	if userName == "" {
		userName = cfg.S3.AccessKey
	}

	root := path.Join(strings.Trim(cfg.S3.Prefix, "/"), userName)
	if root == "" || root == "." {
		root = defaultS3Root
	}

	return &S3Storage{
		client:   client,
		bucket:   cfg.S3.Bucket,
		root:     root,
		userID:   cfg.S3.AccessKey,
		userName: userName,
		logger:   log,
	}
}

// Name implements [RemoteStorage].
func (s *S3Storage) Name() string {
	return config.ProviderS3
}

// UserID implements [RemoteStorage].
func (s *S3Storage) UserID() string {
	return s.userID
}

// UserName implements [RemoteStorage].
func (s *S3Storage) UserName() string {
	return s.userName
}

// TryAuthenticate implements [RemoteStorage] by checking the bucket is
// reachable with the configured credentials.
func (s *S3Storage) TryAuthenticate(ctx context.Context) bool {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		s.logger.Warn().Err(mapS3Error(err)).Str("provider", s.Name()).Str("bucket", s.bucket).Msg("authentication failed")
		return false
	}
	return true
}

// DownloadFile implements [RemoteStorage].
func (s *S3Storage) DownloadFile(ctx context.Context, name string, dst io.Writer) error {
	key, err := s.key(name)
	if err != nil {
		return err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("download %s: %w", name, mapS3Error(err))
	}
	defer out.Body.Close()

	if _, err = io.Copy(dst, out.Body); err != nil {
		return fmt.Errorf("%w: download %s: %w", ErrRemoteUnavailable, name, err)
	}
	return nil
}

// UploadFile implements [RemoteStorage].
func (s *S3Storage) UploadFile(ctx context.Context, src io.Reader, name string) error {
	key, err := s.key(name)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String("application/octet-stream"),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", name, mapS3Error(err))
	}
	return nil
}

// DeleteFile implements [RemoteStorage]. S3 deletes are idempotent, so the
// object is probed first to report missing files like the other providers.
func (s *S3Storage) DeleteFile(ctx context.Context, name string) error {
	key, err := s.key(name)
	if err != nil {
		return err
	}

	if _, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete %s: %w", name, mapS3Error(err))
	}

	if _, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete %s: %w", name, mapS3Error(err))
	}
	return nil
}

// ListFiles implements [RemoteStorage].
func (s *S3Storage) ListFiles(ctx context.Context) ([]models.RemoteFile, error) {
	prefix := s.root + "/"
	files := make([]models.RemoteFile, 0)

	var token *string
	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(prefix),
			Delimiter:         aws.String("/"),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("list files: %w", mapS3Error(err))
		}

		for _, obj := range out.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), prefix)
			if name == "" {
				continue
			}
			files = append(files, models.RemoteFile{
				Name:     name,
				Size:     aws.ToInt64(obj.Size),
				Modified: aws.ToTime(obj.LastModified),
			})
		}
		for _, p := range out.CommonPrefixes {
			name := strings.TrimSuffix(strings.TrimPrefix(aws.ToString(p.Prefix), prefix), "/")
			files = append(files, models.RemoteFile{Name: name, IsFolder: true})
		}

		if !aws.ToBool(out.IsTruncated) {
			break
		}
		token = out.NextContinuationToken
	}

	return files, nil
}

func (s *S3Storage) key(name string) (string, error) {
	if err := checkFileName(name); err != nil {
		return "", err
	}
	return s.root + "/" + name, nil
}
