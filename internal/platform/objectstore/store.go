// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package objectstore is a single-bucket, read-only adapter over S3 (or any
S3-compatible endpoint such as MinIO).

Only the three calls the read API needs are exposed: existence check, body
download and presigned GET. Missing objects are reported as [ErrNotFound]
regardless of how the backend phrases the 404.
*/
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrNotFound is returned when the key does not exist in the bucket.
var ErrNotFound = errors.New("objectstore: object not found")

const defaultRegion = "us-east-1"

// Config holds the bucket coordinates. Empty credentials fall back to the
// default AWS credential chain.
type Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string
}

// Store reads objects from one bucket.
type Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// New builds a [Store]. Extra client options are applied last; tests use
// them to swap the HTTP transport.
func New(ctx context.Context, cfg Config, optFns ...func(*s3.Options)) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("objectstore: bucket required")
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	loadOptions := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOptions = append(loadOptions, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("objectstore: load aws config: %w", err)
	}

	clientOptions := []func(*s3.Options){func(options *s3.Options) {
		options.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			options.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}}
	client := s3.NewFromConfig(awsConfig, append(clientOptions, optFns...)...)

	return &Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
	}, nil
}

// Bucket returns the bucket name the store reads from.
func (store *Store) Bucket() string { return store.bucket }

// Head checks that key exists.
func (store *Store) Head(ctx context.Context, key string) error {
	_, err := store.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: &store.bucket, Key: &key})
	if err != nil {
		return classify("head", key, err)
	}
	return nil
}

// Get opens the body of key. The caller must close it.
func (store *Store) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	output, err := store.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &store.bucket, Key: &key})
	if err != nil {
		return nil, classify("get", key, err)
	}
	return output.Body, nil
}

// PresignGet returns a URL granting GET access to key for ttl.
func (store *Store) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	request, err := store.presign.PresignGetObject(ctx,
		&s3.GetObjectInput{Bucket: &store.bucket, Key: &key},
		func(options *s3.PresignOptions) { options.Expires = ttl },
	)
	if err != nil {
		return "", fmt.Errorf("objectstore: presign %s: %w", key, err)
	}
	return request.URL, nil
}

// IsNotFound reports whether err means the object does not exist.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}

	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return true
	}

	var responseError *awshttp.ResponseError
	return errors.As(err, &responseError) && responseError.HTTPStatusCode() == http.StatusNotFound
}

func classify(action, key string, err error) error {
	if IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return fmt.Errorf("objectstore: %s %s: %w", action, key, err)
}
