package report

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the attendance table.
const SheetName = "Attendance"

// WriteXLSX writes the same table as WriteCSV as an Excel workbook.
func WriteXLSX(w io.Writer, records []attendance.Record, withCreated bool) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	header := Columns(withCreated)
	if err := setRow(f, 1, header); err != nil {
		return err
	}
	for i, rec := range records {
		if err := setRow(f, i+2, Row(rec, withCreated)); err != nil {
			return err
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header row: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
