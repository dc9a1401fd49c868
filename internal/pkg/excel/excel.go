// Package excel reads and writes the xlsx workbooks used for report
// export, roster import and backups.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet is one named table: a header row followed by data rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// WriteWorkbook writes every sheet into a single xlsx workbook.
func WriteWorkbook(w io.Writer, sheets []Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// Reuse the default sheet for the first table.
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
			}
		}

		if err := writeRow(f, sheet.Name, 1, sheet.Headers); err != nil {
			return err
		}
		for r, row := range sheet.Rows {
			if err := writeRow(f, sheet.Name, r+2, row); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write row %d on %s: %w", rowNum, sheet, err)
	}
	return nil
}

// ReadWorkbook returns every sheet of an xlsx workbook, first row treated
// as headers. Sheets without rows come back with nil Rows.
func ReadWorkbook(r io.Reader) (map[string]Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := make(map[string]Sheet)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}

		sheet := Sheet{Name: name}
		if len(rows) > 0 {
			sheet.Headers = rows[0]
			sheet.Rows = rows[1:]
		}
		sheets[name] = sheet
	}
	return sheets, nil
}
