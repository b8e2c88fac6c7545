package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/olusolaa/customer-tagsync/internal/core/domain"
	"github.com/olusolaa/customer-tagsync/internal/core/ports"
	"github.com/olusolaa/customer-tagsync/internal/errors"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

type Options struct {
	Bucket         string
	Key            string
	Format         string
	Sheet          string
	NetworkColumn  string
	CustomerColumn string
	Substitutions  map[string]string
}

// Reader loads the customer spreadsheet from object storage. It implements
// ports.CustomerSheetReader.
type Reader struct {
	store  ports.ObjectStore
	opts   Options
	logger ports.Logger
}

func NewReader(store ports.ObjectStore, opts Options, logger ports.Logger) *Reader {
	if opts.Format == "" {
		opts.Format = FormatXLSX
	}
	return &Reader{
		store:  store,
		opts:   opts,
		logger: logger.WithFields(map[string]any{"component": "spreadsheet_reader", "object": opts.Key}),
	}
}

// ReadCustomerSheet fetches and parses the sheet. A storage failure is
// returned as-is; rows whose network number cannot be coerced are dropped.
func (r *Reader) ReadCustomerSheet(ctx context.Context) (domain.CustomerSheet, error) {
	data, err := r.store.GetObject(ctx, r.opts.Bucket, r.opts.Key)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch r.opts.Format {
	case FormatCSV:
		rows, err = readCSV(data)
	case FormatXLSX:
		rows, err = readXLSX(data, r.opts.Sheet)
	default:
		err = errors.New(errors.CodeSpreadsheetParseError, fmt.Sprintf("unsupported spreadsheet format '%s'", r.opts.Format))
	}
	if err != nil {
		return nil, err
	}
	return r.Parse(ctx, rows)
}

// Parse builds the sheet from raw rows; the first row is the header.
func (r *Reader) Parse(ctx context.Context, rows [][]string) (domain.CustomerSheet, error) {
	if len(rows) == 0 {
		return nil, errors.New(errors.CodeSpreadsheetParseError, "spreadsheet has no header row")
	}
	netIdx, custIdx := -1, -1
	for i, cell := range rows[0] {
		name := strings.TrimSpace(cell)
		switch {
		case strings.EqualFold(name, r.opts.NetworkColumn):
			netIdx = i
		case strings.EqualFold(name, r.opts.CustomerColumn):
			custIdx = i
		}
	}
	if netIdx < 0 || custIdx < 0 {
		return nil, errors.NewUserFacing(errors.CodeSpreadsheetParseError,
			fmt.Sprintf("spreadsheet header is missing column '%s' or '%s'", r.opts.NetworkColumn, r.opts.CustomerColumn),
			"Set spreadsheet.network_column and spreadsheet.customer_column to the header names used in the sheet.")
	}

	sheet := make(domain.CustomerSheet, len(rows)-1)
	dropped := 0
	for i, row := range rows[1:] {
		line := i + 2
		rawNum, rawName := cellAt(row, netIdx), cellAt(row, custIdx)
		if strings.TrimSpace(rawNum) == "" && strings.TrimSpace(rawName) == "" {
			continue
		}
		num, err := Coerce(rawNum, r.opts.Substitutions)
		if err != nil {
			r.logger.Debugf(ctx, "Dropping row %d: %v", line, err)
			dropped++
			continue
		}
		name := domain.StripQuotes(rawName)
		if name == "" {
			r.logger.Debugf(ctx, "Dropping row %d: empty customer name for network %d", line, num)
			dropped++
			continue
		}
		if prev, ok := sheet[num]; ok && prev != name {
			r.logger.Warnf(ctx, "Network %d listed more than once (%q, %q); keeping row %d", num, prev, name, line)
		}
		sheet[num] = name
	}
	r.logger.Infof(ctx, "Loaded %d customer rows (%d dropped)", len(sheet), dropped)
	return sheet, nil
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
