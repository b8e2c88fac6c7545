package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

// Enumerator attributes network resources to customers through their VPC.
type Enumerator struct {
	inventory      ports.NetworkInventory
	categories     []domain.Category
	customerTagKey string
	logger         ports.Logger
}

func NewEnumerator(inventory ports.NetworkInventory, categories []domain.Category, customerTagKey string, logger ports.Logger) *Enumerator {
	if len(categories) == 0 {
		categories = domain.NetworkCategories
	}
	if customerTagKey == "" {
		customerTagKey = domain.TagKeyCustomerName
	}
	return &Enumerator{
		inventory:      inventory,
		categories:     categories,
		customerTagKey: customerTagKey,
		logger:         logger.WithFields(map[string]any{"component": "enumerator"}),
	}
}

// Enumerate lists every configured category concurrently. Each category
// always has an entry in the result, possibly empty. Malformed records and
// resources in VPCs without a customer are skipped. The first failed
// listing cancels the others and fails the run.
func (e *Enumerator) Enumerate(ctx context.Context, mapping domain.CustomerMapping) (map[domain.Category]map[string]domain.Tags, error) {
	results := make([]map[string]domain.Tags, len(e.categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range e.categories {
		g.Go(func() error {
			byID, err := e.enumerateCategory(gctx, category, mapping)
			if err != nil {
				return err
			}
			results[i] = byID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[domain.Category]map[string]domain.Tags, len(e.categories))
	for i, category := range e.categories {
		out[category] = results[i]
	}
	return out, nil
}

func (e *Enumerator) enumerateCategory(ctx context.Context, category domain.Category, mapping domain.CustomerMapping) (map[string]domain.Tags, error) {
	logger := e.logger.WithFields(map[string]any{"category": string(category)})

	resources, err := e.inventory.ListResources(ctx, category)
	if err != nil {
		wrapped := errors.Wrap(err, errors.CodePlatformAPIError, "failed listing "+category.Description()+"s")
		logger.Errorf(ctx, wrapped, "Listing failed")
		return nil, wrapped
	}

	byID := make(map[string]domain.Tags)
	skipped := 0
	for _, res := range resources {
		if res.Err != nil {
			logger.Warnf(ctx, "Skipping %s %s: %v", category.Description(), res.ID, res.Err)
			skipped++
			continue
		}
		customer, ok := mapping[res.VpcID]
		if !ok {
			logger.Debugf(ctx, "No customer for %s %s in VPC %s", category.Description(), res.ID, res.VpcID)
			continue
		}
		byID[res.ID] = domain.Tags{e.customerTagKey: customer}
	}
	logger.Infof(ctx, "Attributed %d of %d resources to customers (%d malformed)", len(byID), len(resources), skipped)
	return byID, nil
}
