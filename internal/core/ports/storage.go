package ports

import (
	"context"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
)

//go:generate mockery --name ObjectStore --output ./mocks --outpkg mocks --case underscore

// ObjectStore reads and writes whole objects. Put always overwrites.
type ObjectStore interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error
}

//go:generate mockery --name DocumentStore --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name DefaultTagsSource --output ./mocks --outpkg mocks --case underscore

// DocumentStore persists the configuration document shared by the jobs.
type DocumentStore interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
}

// DefaultTagsSource supplies the tags applied to every resource.
type DefaultTagsSource interface {
	DefaultTags(ctx context.Context) (domain.Tags, error)
}
