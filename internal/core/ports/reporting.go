package ports

import (
	"context"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
)

type Reporter interface {
	Report(ctx context.Context, summary *domain.RunSummary) error
}
