package service

import (
	"context"
	"time"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
)

// Discoverer runs the discovery job: resolve customers, attribute
// resources, write the document.
type Discoverer struct {
	resolver   *Resolver
	enumerator *Enumerator
	writer     *Writer
	logger     ports.Logger
}

func NewDiscoverer(resolver *Resolver, enumerator *Enumerator, writer *Writer, logger ports.Logger) *Discoverer {
	return &Discoverer{
		resolver:   resolver,
		enumerator: enumerator,
		writer:     writer,
		logger:     logger,
	}
}

func (d *Discoverer) Discover(ctx context.Context) (*domain.RunSummary, error) {
	summary := &domain.RunSummary{Job: domain.JobDiscover, StartedAt: time.Now()}
	defer func() { summary.Duration = time.Since(summary.StartedAt) }()

	mapping, err := d.resolver.Resolve(ctx)
	if err != nil {
		return summary, err
	}
	if len(mapping) == 0 {
		d.logger.Warnf(ctx, "No VPC resolved to a customer; the document will only carry default tags")
	}

	resources, err := d.enumerator.Enumerate(ctx, mapping)
	if err != nil {
		return summary, err
	}

	doc, err := d.writer.Write(ctx, resources)
	if err != nil {
		return summary, err
	}

	summary.Discovered = make(map[domain.Category]int, len(doc.Resources))
	for category, byID := range doc.Resources {
		summary.Discovered[category] = len(byID)
	}
	return summary, nil
}
