package report

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// AttendanceReportRequest selects the rows and encoding of an attendance export.
type AttendanceReportRequest struct {
	Date   *string
	Format Format
	// IncludeCreated adds the Created column used by admin exports.
	IncludeCreated bool
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Format == "" {
		r.Format = FormatCSV
	}
	if r.Format != FormatCSV && r.Format != FormatXLSX {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: csv, xlsx",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// File is a rendered export ready to be downloaded.
type File struct {
	Filename    string
	ContentType string
	Rows        int
	Body        []byte
}
