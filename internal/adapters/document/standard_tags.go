package document

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

// StandardTagsLoader reads the standard tags object, which maps each tag
// key to its list of permitted values, e.g. {"CostCenter": ["1234", "5678"]}.
type StandardTagsLoader struct {
	objects ports.ObjectStore
	bucket  string
	key     string
	keys    []string
	logger  ports.Logger
}

func NewStandardTagsLoader(objects ports.ObjectStore, bucket, key string, keys []string, logger ports.Logger) *StandardTagsLoader {
	return &StandardTagsLoader{
		objects: objects,
		bucket:  bucket,
		key:     key,
		keys:    keys,
		logger:  logger.WithFields(map[string]any{"component": "standard_tags"}),
	}
}

// DefaultTags returns the first permitted value of each configured key.
// Keys absent from the object are skipped with a warning.
func (l *StandardTagsLoader) DefaultTags(ctx context.Context) (domain.Tags, error) {
	data, err := l.objects.GetObject(ctx, l.bucket, l.key)
	if err != nil {
		return nil, err
	}
	options, err := DecodeStandardTags(data)
	if err != nil {
		return nil, err
	}

	tags := make(domain.Tags, len(l.keys))
	for _, key := range l.keys {
		values := options[key]
		if len(values) == 0 {
			l.logger.Warnf(ctx, "Standard tags object s3://%s/%s has no values for '%s'", l.bucket, l.key, key)
			continue
		}
		tags[key] = values[0]
	}
	return tags, nil
}

// DecodeStandardTags accepts either a list or a single string per key.
func DecodeStandardTags(data []byte) (map[string][]string, error) {
	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.CodeDocumentParseError, "standard tags object is not a JSON object")
	}
	out := make(map[string][]string, len(raw))
	for key, value := range raw {
		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			out[key] = list
			continue
		}
		var single string
		if err := json.Unmarshal(value, &single); err != nil {
			return nil, errors.New(errors.CodeDocumentParseError,
				fmt.Sprintf("standard tag '%s' must be a string or a list of strings", key))
		}
		out[key] = []string{single}
	}
	return out, nil
}
