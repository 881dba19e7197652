package report

import "context"

type ReportService interface {
	// ExportAttendance renders the visible attendance rows as a downloadable file.
	ExportAttendance(ctx context.Context, req AttendanceReportRequest) (File, error)
}
