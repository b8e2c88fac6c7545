package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

const DefaultNamePattern = `^customer-(\d+)$`

type ResolverOptions struct {
	// NameTagKey is the VPC tag holding the customer-NN name.
	NameTagKey string
	// NamePattern must capture the network number in its first group, or
	// match only digits when it has no groups.
	NamePattern string
}

// Resolver joins live VPC names against the customer spreadsheet.
type Resolver struct {
	inventory  ports.NetworkInventory
	sheet      ports.CustomerSheetReader
	nameTagKey string
	pattern    *regexp.Regexp
	logger     ports.Logger
}

func NewResolver(inventory ports.NetworkInventory, sheet ports.CustomerSheetReader, opts ResolverOptions, logger ports.Logger) (*Resolver, error) {
	if inventory == nil || sheet == nil {
		return nil, errors.New(errors.CodeInternal, "resolver requires a network inventory and a customer sheet reader")
	}
	if opts.NameTagKey == "" {
		opts.NameTagKey = domain.TagKeyName
	}
	if opts.NamePattern == "" {
		opts.NamePattern = DefaultNamePattern
	}
	pattern, err := regexp.Compile(opts.NamePattern)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigValidation, fmt.Sprintf("invalid VPC name pattern %q", opts.NamePattern))
	}
	return &Resolver{
		inventory:  inventory,
		sheet:      sheet,
		nameTagKey: opts.NameTagKey,
		pattern:    pattern,
		logger:     logger.WithFields(map[string]any{"component": "resolver"}),
	}, nil
}

// Resolve returns VPC id -> customer name. VPCs whose name does not match
// the pattern, or whose number is absent from the sheet, are left out.
func (r *Resolver) Resolve(ctx context.Context) (domain.CustomerMapping, error) {
	sheet, err := r.sheet.ReadCustomerSheet(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeStorageReadError, "failed to load customer spreadsheet")
	}
	vpcs, err := r.inventory.ListVPCs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodePlatformAPIError, "failed to list VPCs")
	}

	mapping := make(domain.CustomerMapping, len(vpcs))
	for _, vpc := range vpcs {
		name := vpc.Tags[r.nameTagKey]
		number, ok := r.NetworkNumber(name)
		if !ok {
			r.logger.Debugf(ctx, "VPC %s name %q does not match the customer pattern", vpc.ID, name)
			continue
		}
		customer, found := sheet[number]
		if !found {
			miss := errors.New(errors.CodeLookupMiss, fmt.Sprintf("network %d (VPC %s) not in customer spreadsheet", number, vpc.ID))
			r.logger.Debugf(ctx, "Skipping: %v", miss)
			continue
		}
		mapping[vpc.ID] = domain.StripQuotes(customer)
	}
	r.logger.Infof(ctx, "Resolved %d of %d VPCs to customers", len(mapping), len(vpcs))
	return mapping, nil
}

// NetworkNumber extracts the network number from a VPC name. Only the last
// two digits are significant, so customer-105 and customer-05 both map to 5.
func (r *Resolver) NetworkNumber(name string) (int, bool) {
	m := r.pattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	digits := m[0]
	if len(m) > 1 {
		digits = m[1]
	}
	if len(digits) > 2 {
		digits = digits[len(digits)-2:]
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
