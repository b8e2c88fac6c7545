package service

import (
	"fmt"
	"sync"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

// TaggerRegistry routes each resource category to the tagger that owns it.
type TaggerRegistry struct {
	mu      sync.RWMutex
	taggers map[domain.Category]ports.ResourceTagger
}

func NewTaggerRegistry() *TaggerRegistry {
	return &TaggerRegistry{
		taggers: make(map[domain.Category]ports.ResourceTagger),
	}
}

// Register adds tagger under every category it reports. A category may only
// be claimed once.
func (r *TaggerRegistry) Register(tagger ports.ResourceTagger) error {
	if tagger == nil {
		return errors.New(errors.CodeInternal, "attempted to register nil resource tagger")
	}
	categories := tagger.Categories()
	if len(categories) == 0 {
		return errors.New(errors.CodeInternal, "resource tagger reports no categories")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range categories {
		if _, exists := r.taggers[c]; exists {
			return errors.New(errors.CodeInternal, fmt.Sprintf("resource tagger for category '%s' already registered", c))
		}
	}
	for _, c := range categories {
		r.taggers[c] = tagger
	}
	return nil
}

func (r *TaggerRegistry) Tagger(category domain.Category) (ports.ResourceTagger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tagger, exists := r.taggers[category]
	if !exists {
		return nil, errors.New(errors.CodeNotImplemented, fmt.Sprintf("no resource tagger registered for category '%s'", category))
	}
	return tagger, nil
}

func (r *TaggerRegistry) Categories() []domain.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Category, 0, len(r.taggers))
	for c := range r.taggers {
		out = append(out, c)
	}
	domain.SortCategories(out)
	return out
}
