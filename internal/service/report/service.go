package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/service/state"
)

const attendanceReportName = "attendance"

type ReportServiceImpl struct {
	store *state.Store
	loc   *time.Location
	now   func() time.Time
}

func NewReportService(store *state.Store, loc *time.Location) report.ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &ReportServiceImpl{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

// Filename builds "<name>_<YYYY-MM-DD>.<ext>".
func Filename(name string, date time.Time, format report.Format) string {
	return fmt.Sprintf("%s_%s.%s", name, date.Format(time.DateOnly), format)
}

// ExportAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, req report.AttendanceReportRequest) (report.File, error) {
	if err := req.Validate(); err != nil {
		return report.File{}, err
	}

	records := attendance.Render(s.store.Attendance.All(), req.Date)

	var (
		buf         bytes.Buffer
		contentType string
		err         error
	)
	switch req.Format {
	case report.FormatXLSX:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = WriteXLSX(&buf, records, req.IncludeCreated)
	default:
		contentType = "text/csv; charset=utf-8"
		err = WriteCSV(&buf, records, req.IncludeCreated)
	}
	if err != nil {
		return report.File{}, fmt.Errorf("%w: %v", report.ErrReportGeneration, err)
	}

	return report.File{
		Filename:    Filename(attendanceReportName, s.now().In(s.loc), req.Format),
		ContentType: contentType,
		Rows:        len(records),
		Body:        buf.Bytes(),
	}, nil
}
