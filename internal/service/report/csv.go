package report

import (
	"io"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
)

// Header is the fixed first row of an attendance export.
var Header = []string{"Date", "Employee", "Client", "Status", "Type", "Shift"}

// CreatedColumn is appended to the header of admin exports.
const CreatedColumn = "Created"

// Columns returns the header row, with the Created column when withCreated is set.
func Columns(withCreated bool) []string {
	cols := append([]string{}, Header...)
	if withCreated {
		cols = append(cols, CreatedColumn)
	}
	return cols
}

// Row returns the cells of one record in header order.
func Row(rec attendance.Record, withCreated bool) []string {
	row := []string{
		rec.Date,
		rec.EmployeeName,
		rec.ClientName,
		string(rec.Status),
		string(rec.Type),
		string(rec.Shift),
	}
	if withCreated {
		row = append(row, rec.CreatedAt.UTC().Format(time.RFC3339))
	}
	return row
}

// WriteCSV writes the header and one line per record. Cells are joined with
// commas as-is: values containing commas, quotes or newlines are not escaped.
// Lines are separated by "\n" with no trailing newline, so N records give N+1 lines.
func WriteCSV(w io.Writer, records []attendance.Record, withCreated bool) error {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(Columns(withCreated), ","))
	for _, rec := range records {
		lines = append(lines, strings.Join(Row(rec, withCreated), ","))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
