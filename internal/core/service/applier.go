package service

import (
	"context"
	"sort"
	"time"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

type ApplierOptions struct {
	// Categories restricts which document categories are applied. Empty
	// means all.
	Categories []domain.Category
	// DryRun logs the merged tags instead of calling the provider.
	DryRun bool
}

// Applier reads the document and tags each listed resource once.
type Applier struct {
	store    ports.DocumentStore
	registry *TaggerRegistry
	enabled  map[domain.Category]bool
	dryRun   bool
	logger   ports.Logger
}

func NewApplier(store ports.DocumentStore, registry *TaggerRegistry, opts ApplierOptions, logger ports.Logger) *Applier {
	var enabled map[domain.Category]bool
	if len(opts.Categories) > 0 {
		enabled = make(map[domain.Category]bool, len(opts.Categories))
		for _, c := range opts.Categories {
			enabled[c] = true
		}
	}
	return &Applier{
		store:    store,
		registry: registry,
		enabled:  enabled,
		dryRun:   opts.DryRun,
		logger:   logger.WithFields(map[string]any{"component": "applier"}),
	}
}

// Apply tags every resource in the stored document with its default tags
// overlaid by its own. A failure on one resource is recorded and the run
// moves on; only a document load failure or cancellation ends it early.
func (a *Applier) Apply(ctx context.Context) (*domain.RunSummary, error) {
	summary := &domain.RunSummary{Job: domain.JobApply, StartedAt: time.Now()}
	defer func() { summary.Duration = time.Since(summary.StartedAt) }()

	doc, err := a.store.Load(ctx)
	if err != nil {
		return summary, err
	}
	if a.dryRun {
		a.logger.Infof(ctx, "Dry run: no tags will be written")
	}

	for _, category := range doc.Categories() {
		if err := a.applyCategory(ctx, summary, doc, category); err != nil {
			return summary, err
		}
	}

	a.logger.Infof(ctx, "Tag run finished: %d tagged, %d dry-run, %d failed, %d skipped",
		summary.Count(domain.StatusTagged), summary.Count(domain.StatusDryRun),
		summary.Count(domain.StatusFailed), summary.Count(domain.StatusSkipped))
	return summary, nil
}

func (a *Applier) applyCategory(ctx context.Context, summary *domain.RunSummary, doc *domain.Document, category domain.Category) error {
	byID := doc.Resources[category]
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	logger := a.logger.WithFields(map[string]any{"category": string(category)})

	var tagger ports.ResourceTagger
	skipReason := ""
	if a.enabled != nil && !a.enabled[category] {
		skipReason = "category not enabled"
	} else if t, err := a.registry.Tagger(category); err != nil {
		skipReason = err.Error()
	} else {
		tagger = t
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		merged := domain.Merge(doc.DefaultTags, byID[id])
		result := domain.TagResult{Category: category, ResourceID: id, Tags: merged}

		switch {
		case tagger == nil:
			logger.Debugf(ctx, "Skipping %s %s: %s", category.Description(), id, skipReason)
			result.Status = domain.StatusSkipped
		case len(merged) == 0:
			logger.Debugf(ctx, "Skipping %s %s: no tags to apply", category.Description(), id)
			result.Status = domain.StatusSkipped
		case a.dryRun:
			logger.Infof(ctx, "Would tag %s %s with %v", category.Description(), id, merged)
			result.Status = domain.StatusDryRun
		default:
			if err := tagger.TagResource(ctx, category, id, merged); err != nil {
				if errors.Kind(err) == errors.KindCanceled {
					return err
				}
				logger.Errorf(ctx, err, "Failed to tag %s %s", category.Description(), id)
				result.Status = domain.StatusFailed
				result.Error = err
			} else {
				logger.Infof(ctx, "Tagged %s %s with %v", category.Description(), id, merged)
				result.Status = domain.StatusTagged
			}
		}
		summary.Results = append(summary.Results, result)
	}
	return nil
}

// SetDryRun switches dry-run mode for subsequent runs.
func (a *Applier) SetDryRun(dryRun bool) {
	a.dryRun = dryRun
}

func (a *Applier) DryRun() bool {
	return a.dryRun
}
