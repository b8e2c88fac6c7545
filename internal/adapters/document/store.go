package document

import (
	"context"
	"fmt"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

const ContentTypeJSON = "application/json"

// Store reads and writes the configuration document at a fixed location.
// Writes replace the object wholesale; there is no locking between runs.
type Store struct {
	objects ports.ObjectStore
	bucket  string
	key     string
	logger  ports.Logger
}

func NewStore(objects ports.ObjectStore, bucket, key string, logger ports.Logger) *Store {
	return &Store{
		objects: objects,
		bucket:  bucket,
		key:     key,
		logger:  logger.WithFields(map[string]any{"component": "document_store"}),
	}
}

func (s *Store) Location() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	data, err := s.objects.GetObject(ctx, s.bucket, s.key)
	if err != nil {
		return nil, errors.WrapUserFacing(err, storageCode(err, errors.CodeStorageReadError),
			fmt.Sprintf("failed to read configuration document %s", s.Location()),
			"Run the discover job first or check the document bucket and key.")
	}
	doc, ignored, err := Decode(data)
	if err != nil {
		return nil, err
	}
	for _, key := range ignored {
		s.logger.Warnf(ctx, "Ignoring unknown top-level key '%s' in configuration document %s", key, s.Location())
	}
	s.logger.Infof(ctx, "Loaded configuration document %s with %d resource(s)", s.Location(), doc.Count())
	return doc, nil
}

func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := s.objects.PutObject(ctx, s.bucket, s.key, data, ContentTypeJSON); err != nil {
		return errors.WrapUserFacing(err, storageCode(err, errors.CodeStorageWriteError),
			fmt.Sprintf("failed to write configuration document %s", s.Location()), "")
	}
	s.logger.Infof(ctx, "Wrote configuration document %s with %d resource(s)", s.Location(), doc.Count())
	return nil
}

// storageCode keeps the classification of an adapter error so callers can
// still tell a missing object from a denied one.
func storageCode(err error, fallback errors.Code) errors.Code {
	if code := errors.GetCode(err); code != errors.CodeUnknown {
		return code
	}
	return fallback
}
