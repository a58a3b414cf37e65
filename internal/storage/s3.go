// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package storage

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-trip-journal/internal/config"
	"github.com/MKhiriev/go-trip-journal/internal/logger"
	"github.com/MKhiriev/go-trip-journal/models"
)

// S3Storage implements ObjectStorage against an S3-compatible endpoint.
type S3Storage struct {
	client *minio.Client
	cfg    config.S3
	logger *logger.Logger
}

func NewS3Storage(cfg config.S3, log *logger.Logger) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: true,
		Region: cfg.Region,
	})
	if err != nil {
		log.Err(err).Str("func", "NewS3Storage").Msg("error creating object storage client")
		return nil, fmt.Errorf("%w: %s", ErrStorageConnection, err)
	}

	return &S3Storage{client: client, cfg: cfg, logger: log.GetChildLogger()}, nil
}

// SignedUploadURL pre-signs a PUT into the temporary bucket. The Content-Type
// header is part of the signature, so an upload with a different type than
// the one declared here is rejected by the storage backend.
func (s *S3Storage) SignedUploadURL(ctx context.Context, key, contentType string) (models.UploadCredential, error) {
	headers := http.Header{}
	headers.Set("Content-Type", contentType)

	signedURL, err := s.client.PresignHeader(ctx, http.MethodPut, s.cfg.TempBucket, key, s.cfg.UploadURLTTL, nil, headers)
	if err != nil {
		s.logger.Err(err).Str("func", "SignedUploadURL").Msg("error signing upload url")
		return models.UploadCredential{}, fmt.Errorf("%w: %s", ErrSigningUploadURL, err)
	}

	return models.UploadCredential{
		SignedURL:      signedURL.String(),
		FileURLName:    key,
		PendingFileURL: s.tempViewURL(key),
	}, nil
}

func (s *S3Storage) Promote(ctx context.Context, key string) error {
	src := minio.CopySrcOptions{Bucket: s.cfg.TempBucket, Object: key}
	dst := minio.CopyDestOptions{Bucket: s.cfg.Bucket, Object: key}

	if _, err := s.client.CopyObject(ctx, dst, src); err != nil {
		s.logger.Err(err).Str("func", "Promote").Str("key", key).Msg("error copying object to permanent bucket")
		return fmt.Errorf("%w: %s", ErrCopyingObject, err)
	}

	return nil
}

// Remove deletes every key, keeping going when one fails so a single missing
// object does not strand the rest.
func (s *S3Storage) Remove(ctx context.Context, keys []string) error {
	var firstErr error
	for _, key := range keys {
		if err := s.client.RemoveObject(ctx, s.cfg.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
			s.logger.Err(err).Str("func", "Remove").Str("key", key).Msg("error removing object")
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %s", ErrRemovingObjects, err)
			}
		}
	}

	return firstErr
}

// ViewURL builds the virtual-hosted download URL of an object in the
// permanent bucket. Clients receive this URL verbatim, so its shape is part
// of the API contract.
func (s *S3Storage) ViewURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

func (s *S3Storage) tempViewURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.TempBucket, s.cfg.Region, key)
}
