package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/olusolaa/customer-tagsync/internal/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSpreadsheetParseError, "failed to parse CSV spreadsheet")
	}
	return rows, nil
}

// readXLSX returns the rows of sheet, or of the first sheet when sheet is empty.
func readXLSX(data []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSpreadsheetParseError, "failed to open XLSX spreadsheet")
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.CodeSpreadsheetParseError, "XLSX workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSpreadsheetParseError, fmt.Sprintf("failed to read sheet '%s'", sheet))
	}
	return rows, nil
}
