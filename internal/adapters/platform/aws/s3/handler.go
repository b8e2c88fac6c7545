package s3

import (
	"bytes"
	"context"
	stderrs "errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	aws_errors "github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/customer-tagsync/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	apperrors "github.com/olusolaa/customer-tagsync/internal/errors"
)

const (
	serviceName = "S3"
	// Returned by GetBucketTagging for a bucket that has never been tagged.
	noSuchTagSetCode = "NoSuchTagSet"
)

// Handler reads and writes objects and tags buckets. It implements
// ports.ObjectStore and ports.ResourceTagger for the s3 category.
type Handler struct {
	client       S3ClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	logger       ports.Logger
}

// HandlerOption defines a function signature for configuring the Handler.
type HandlerOption func(*Handler)

// WithS3Client provides an option to set a custom S3 client.
func WithS3Client(client S3ClientInterface) HandlerOption {
	return func(h *Handler) {
		if client != nil {
			h.client = client
		}
	}
}

// WithRateLimiter provides an option to set a custom rate limiter.
func WithRateLimiter(limiter shared.RateLimiter) HandlerOption {
	return func(h *Handler) {
		if limiter != nil {
			h.limiter = limiter
		}
	}
}

// WithErrorHandler provides an option to set a custom error handler.
func WithErrorHandler(handler shared.ErrorHandler) HandlerOption {
	return func(h *Handler) {
		if handler != nil {
			h.errorHandler = handler
		}
	}
}

// NewHandler creates a new Handler with the given AWS config and optional configurations.
func NewHandler(cfg aws.Config, logger ports.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		client:       s3.NewFromConfig(cfg),
		errorHandler: &aws_errors.DefaultErrorHandler{},
		logger:       logger.WithFields(map[string]any{"component": "s3_handler"}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := h.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, h.storageError(ctx, apperrors.CodeStorageReadError, bucket, key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorageReadError,
			fmt.Sprintf("failed to read body of s3://%s/%s", bucket, key))
	}
	h.logger.Debugf(ctx, "Read %d bytes from s3://%s/%s", len(body), bucket, key)
	return body, nil
}

func (h *Handler) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := h.client.PutObject(ctx, input); err != nil {
		return h.storageError(ctx, apperrors.CodeStorageWriteError, bucket, key, err)
	}
	h.logger.Debugf(ctx, "Wrote %d bytes to s3://%s/%s", len(body), bucket, key)
	return nil
}

// storageError keeps auth, not-found and transient classifications from the
// error handler and files everything else under the storage code.
func (h *Handler) storageError(ctx context.Context, code apperrors.Code, bucket, key string, err error) error {
	handled := h.errorHandler.Handle("S3 object", fmt.Sprintf("s3://%s/%s", bucket, key), err, ctx)
	if apperrors.GetCode(handled) == apperrors.CodePlatformAPIError {
		return apperrors.Wrap(err, code, fmt.Sprintf("S3 request for s3://%s/%s failed", bucket, key))
	}
	return handled
}

func (h *Handler) Categories() []domain.Category {
	return []domain.Category{domain.CategoryS3}
}

// TagResource merges tags into the bucket's existing tag set.
// PutBucketTagging replaces the whole set, so the current tags are read
// first to match the create-or-overwrite behaviour of EC2 CreateTags.
func (h *Handler) TagResource(ctx context.Context, category domain.Category, bucket string, tags domain.Tags) error {
	if category != domain.CategoryS3 {
		return apperrors.New(apperrors.CodeNotImplemented, fmt.Sprintf("resource category '%s' not supported by S3 handler", category))
	}
	if len(tags) == 0 {
		return nil
	}

	if h.limiter != nil {
		if err := h.limiter.Wait(ctx, h.logger); err != nil {
			return apperrors.Wrap(err, apperrors.CodeTimeout, "rate limiter wait failed")
		}
	}

	current, err := h.bucketTags(ctx, bucket)
	if err != nil {
		return err
	}
	merged := domain.Merge(current.WithoutReserved(), tags)

	_, err = h.client.PutBucketTagging(ctx, &s3.PutBucketTaggingInput{
		Bucket:  aws.String(bucket),
		Tagging: &s3types.Tagging{TagSet: toS3Tags(merged)},
	})
	if err != nil {
		return h.errorHandler.Handle(category.Description(), bucket, err, ctx)
	}
	return nil
}

func (h *Handler) bucketTags(ctx context.Context, bucket string) (domain.Tags, error) {
	out, err := h.client.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{Bucket: aws.String(bucket)})
	if err != nil {
		var apiErr smithy.APIError
		if stderrs.As(err, &apiErr) && apiErr.ErrorCode() == noSuchTagSetCode {
			return domain.Tags{}, nil
		}
		return nil, h.errorHandler.Handle(serviceName, fmt.Sprintf("GetBucketTagging %s", bucket), err, ctx)
	}
	return fromS3Tags(out.TagSet), nil
}
