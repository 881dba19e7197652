package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportAttendance implements ReportHandler.
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	req := report.AttendanceReportRequest{
		Format:         report.Format(r.URL.Query().Get("format")),
		IncludeCreated: true,
	}
	if date := r.URL.Query().Get("date"); date != "" {
		req.Date = &date
	}

	file, err := h.reportService.ExportAttendance(r.Context(), req)
	if err != nil {
		slog.Error("Export attendance error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance exported", "filename", file.Filename, "rows", file.Rows)
	response.Attachment(w, file.Filename, file.ContentType, file.Body)
}
