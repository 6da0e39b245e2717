// Package export converts a filtered collection into a single-sheet xlsx
// workbook. Callers must pass the filtered set, never the paginated slice.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrNoRows signals an export with nothing to write. The users and
// subscribers screens surface it as a "No data to export" notice; other
// screens may ignore it and ship a header-only workbook.
var ErrNoRows = errors.New("no data to export")

const sheetName = "Sheet1"

// Workbook builds a single sheet with one header row followed by the data
// rows in input order.
func Workbook(headers []string, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := writeRow(f, 1, toAny(headers)); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Write streams the workbook to w. When requireRows is set an empty input
// fails with ErrNoRows before anything is written.
func Write(w io.Writer, headers []string, rows [][]any, requireRows bool) error {
	if requireRows && len(rows) == 0 {
		return ErrNoRows
	}
	f, err := Workbook(headers, rows)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writeRow(f *excelize.File, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}

func toAny(values []string) []any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
