package spreadsheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	portsmocks "github.com/olusolaa/customer-tagsync/internal/core/ports/mocks"
	"github.com/olusolaa/customer-tagsync/internal/errors"
	"github.com/olusolaa/customer-tagsync/internal/log"
)

var defaultSubs = map[string]string{"O": "0", "o": "0", "l": "1", "I": "1"}

func TestCoerce(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "5", want: 5},
		{raw: " 12 ", want: 12},
		{raw: "5.0", want: 5},
		{raw: "O5", want: 5},
		{raw: "1O", want: 10},
		{raw: "l2", want: 12},
		{raw: "5.5", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "n/a", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Coerce(tt.raw, defaultSubs)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.KindMalformed, errors.Kind(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplySubstitutions_LongestFirst(t *testing.T) {
	subs := map[string]string{"O": "0", "OO": "7"}
	assert.Equal(t, "71", applySubstitutions("OO1", subs))
}

func newTestReader(store *portsmocks.ObjectStore, format string) *Reader {
	return NewReader(store, Options{
		Bucket:         "tags-bucket",
		Key:            "customers." + format,
		Format:         format,
		NetworkColumn:  "VPC",
		CustomerColumn: "Customer",
		Substitutions:  defaultSubs,
	}, log.Nop())
}

func TestReadCustomerSheet_CSV(t *testing.T) {
	store := portsmocks.NewObjectStore(t)
	csvBody := "\xEF\xBB\xBFVPC,Customer,Notes\n" +
		"5,\"\"\"Acme\"\"\",first\n" +
		"O7,'Globex',typo\n" +
		"TBD,Initech,dropped\n" +
		",,\n" +
		"9,,no name\n"
	store.On("GetObject", mock.Anything, "tags-bucket", "customers.csv").Return([]byte(csvBody), nil).Once()

	sheet, err := newTestReader(store, FormatCSV).ReadCustomerSheet(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.CustomerSheet{5: "Acme", 7: "Globex"}, sheet)
}

func TestReadCustomerSheet_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheetName, "A1", &[]any{"Customer", "VPC"}))
	require.NoError(t, f.SetSheetRow(sheetName, "A2", &[]any{"Acme", 5}))
	require.NoError(t, f.SetSheetRow(sheetName, "A3", &[]any{"“Umbrella”", "12.0"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	store := portsmocks.NewObjectStore(t)
	store.On("GetObject", mock.Anything, "tags-bucket", "customers.xlsx").Return(buf.Bytes(), nil).Once()

	sheet, err := newTestReader(store, FormatXLSX).ReadCustomerSheet(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.CustomerSheet{5: "Acme", 12: "Umbrella"}, sheet)
}

func TestReadCustomerSheet_StorageFailurePropagates(t *testing.T) {
	store := portsmocks.NewObjectStore(t)
	storeErr := errors.New(errors.CodeStorageReadError, "access denied")
	store.On("GetObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, storeErr).Once()

	_, err := newTestReader(store, FormatCSV).ReadCustomerSheet(context.Background())

	assert.Same(t, storeErr, err)
}

func TestReadCustomerSheet_MissingHeader(t *testing.T) {
	store := portsmocks.NewObjectStore(t)
	store.On("GetObject", mock.Anything, mock.Anything, mock.Anything).Return([]byte("Network,Name\n5,Acme\n"), nil).Once()

	_, err := newTestReader(store, FormatCSV).ReadCustomerSheet(context.Background())

	require.Error(t, err)
	_, suggestion, ok := errors.GetUserFacingMessage(err)
	assert.True(t, ok)
	assert.Contains(t, suggestion, "network_column")
}

func TestReadCustomerSheet_CorruptWorkbook(t *testing.T) {
	store := portsmocks.NewObjectStore(t)
	store.On("GetObject", mock.Anything, mock.Anything, mock.Anything).Return([]byte("not a zip"), nil).Once()

	_, err := newTestReader(store, FormatXLSX).ReadCustomerSheet(context.Background())

	assert.Equal(t, errors.CodeSpreadsheetParseError, errors.GetCode(err))
}

func TestParse_DuplicateNumberLastWins(t *testing.T) {
	r := newTestReader(portsmocks.NewObjectStore(t), FormatCSV)

	sheet, err := r.Parse(context.Background(), [][]string{
		{"vpc", "CUSTOMER"},
		{"3", "Old Name"},
		{"3", "New Name"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CustomerSheet{3: "New Name"}, sheet)
}
