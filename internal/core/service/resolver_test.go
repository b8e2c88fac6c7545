package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	portsmocks "github.com/olusolaa/customer-tagsync/internal/core/ports/mocks"
	"github.com/olusolaa/customer-tagsync/internal/errors"
	"github.com/olusolaa/customer-tagsync/internal/log"
)

func vpc(id, name string) domain.VPC {
	tags := domain.Tags{}
	if name != "" {
		tags[domain.TagKeyName] = name
	}
	return domain.VPC{ID: id, Tags: tags}
}

func newTestResolver(t *testing.T, inv *portsmocks.NetworkInventory, sheet *portsmocks.CustomerSheetReader) *Resolver {
	t.Helper()
	r, err := NewResolver(inv, sheet, ResolverOptions{}, log.Nop())
	require.NoError(t, err)
	return r
}

func TestResolver_Resolve(t *testing.T) {
	inv := portsmocks.NewNetworkInventory(t)
	sheet := portsmocks.NewCustomerSheetReader(t)

	sheet.On("ReadCustomerSheet", mock.Anything).Return(domain.CustomerSheet{
		5:  "Acme",
		7:  `"Globex"`,
		12: "Initech",
	}, nil).Once()
	inv.On("ListVPCs", mock.Anything).Return([]domain.VPC{
		vpc("vpc-acme", "customer-05"),
		vpc("vpc-globex", "customer-07"),
		vpc("vpc-long", "customer-112"),
		vpc("vpc-miss", "customer-99"),
		vpc("vpc-shared", "shared-services"),
		vpc("vpc-unnamed", ""),
	}, nil).Once()

	mapping, err := newTestResolver(t, inv, sheet).Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.CustomerMapping{
		"vpc-acme":   "Acme",
		"vpc-globex": "Globex",
		"vpc-long":   "Initech",
	}, mapping)
}

func TestResolver_SheetFailureAborts(t *testing.T) {
	inv := portsmocks.NewNetworkInventory(t)
	sheet := portsmocks.NewCustomerSheetReader(t)
	sheet.On("ReadCustomerSheet", mock.Anything).
		Return(nil, errors.New(errors.CodePlatformAuthError, "access denied")).Once()

	_, err := newTestResolver(t, inv, sheet).Resolve(context.Background())

	assert.Equal(t, errors.KindAuth, errors.Kind(err))
	inv.AssertNotCalled(t, "ListVPCs", mock.Anything)
}

func TestResolver_ListFailureAborts(t *testing.T) {
	inv := portsmocks.NewNetworkInventory(t)
	sheet := portsmocks.NewCustomerSheetReader(t)
	sheet.On("ReadCustomerSheet", mock.Anything).Return(domain.CustomerSheet{}, nil).Once()
	inv.On("ListVPCs", mock.Anything).Return(nil, errors.New(errors.CodeTransient, "throttled")).Once()

	_, err := newTestResolver(t, inv, sheet).Resolve(context.Background())

	assert.Equal(t, errors.KindTransient, errors.Kind(err))
}

func TestResolver_NetworkNumber(t *testing.T) {
	r := newTestResolver(t, portsmocks.NewNetworkInventory(t), portsmocks.NewCustomerSheetReader(t))

	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"customer-05", 5, true},
		{"customer-5", 5, true},
		{"customer-00", 0, true},
		{"customer-1234", 34, true},
		{"Customer-05", 0, false},
		{"customer-05-dr", 0, false},
		{"customer-", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.NetworkNumber(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewResolver_CustomPattern(t *testing.T) {
	r, err := NewResolver(portsmocks.NewNetworkInventory(t), portsmocks.NewCustomerSheetReader(t),
		ResolverOptions{NamePattern: `^cust(\d+)-vpc$`}, log.Nop())
	require.NoError(t, err)

	n, ok := r.NetworkNumber("cust42-vpc")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, err = NewResolver(portsmocks.NewNetworkInventory(t), portsmocks.NewCustomerSheetReader(t),
		ResolverOptions{NamePattern: `(`}, log.Nop())
	assert.Equal(t, errors.CodeConfigValidation, errors.GetCode(err))
}
