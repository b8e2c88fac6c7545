package ports

import (
	"context"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
)

//go:generate mockery --name NetworkInventory --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name ResourceTagger --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name CustomerSheetReader --output ./mocks --outpkg mocks --case underscore

// NetworkInventory lists VPCs and the resources attributed to them.
type NetworkInventory interface {
	ListVPCs(ctx context.Context) ([]domain.VPC, error)
	// ListResources returns every resource of one network category. Records
	// missing the owning VPC are returned with Err set rather than failing
	// the whole listing.
	ListResources(ctx context.Context, category domain.Category) ([]domain.NetworkResource, error)
}

// ResourceTagger applies a full tag set to one resource.
type ResourceTagger interface {
	Categories() []domain.Category
	TagResource(ctx context.Context, category domain.Category, resourceID string, tags domain.Tags) error
}

// CustomerSheetReader loads the VPC number -> customer name spreadsheet.
type CustomerSheetReader interface {
	ReadCustomerSheet(ctx context.Context) (domain.CustomerSheet, error)
}
