package service

import (
	"context"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

// Writer assembles the configuration document and persists it.
type Writer struct {
	store  ports.DocumentStore
	source ports.DefaultTagsSource
	static domain.Tags
	logger ports.Logger
}

// NewWriter takes an optional source for default tags; static tags are used
// on their own when source is nil and as the base otherwise.
func NewWriter(store ports.DocumentStore, source ports.DefaultTagsSource, static domain.Tags, logger ports.Logger) *Writer {
	return &Writer{
		store:  store,
		source: source,
		static: static,
		logger: logger.WithFields(map[string]any{"component": "writer"}),
	}
}

// DefaultTags merges the source's tags over the static set. A source that
// cannot be read is logged and the static set is used.
func (w *Writer) DefaultTags(ctx context.Context) (domain.Tags, error) {
	if w.source == nil {
		return w.static.Clone(), nil
	}
	fromSource, err := w.source.DefaultTags(ctx)
	if err != nil {
		if errors.Kind(err) == errors.KindCanceled {
			return nil, err
		}
		w.logger.Errorf(ctx, err, "Standard tags unavailable, falling back to configured default tags")
		return w.static.Clone(), nil
	}
	return domain.Merge(w.static, fromSource), nil
}

// Write replaces the stored document with one built from resources.
func (w *Writer) Write(ctx context.Context, resources map[domain.Category]map[string]domain.Tags) (*domain.Document, error) {
	defaults, err := w.DefaultTags(ctx)
	if err != nil {
		return nil, err
	}
	doc := domain.NewDocument(defaults)
	for category, byID := range resources {
		doc.Resources[category] = map[string]domain.Tags{}
		for id, tags := range byID {
			doc.Set(category, id, tags)
		}
	}
	if err := w.store.Save(ctx, doc); err != nil {
		return nil, err
	}
	w.logger.Infof(ctx, "Document written with %d default tag(s) and %d resource(s)", len(defaults), doc.Count())
	return doc, nil
}
