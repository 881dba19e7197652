package dashboard

import "github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"

type DashboardResponse struct {
	Date           string                            `json:"date"`
	TotalClients   int                               `json:"total_clients"`
	TotalEmployees int                               `json:"total_employees"`
	PresentToday   int                               `json:"present_today"`
	AbsentToday    int                               `json:"absent_today"`
	Today          attendance.ListAttendanceResponse `json:"today"`
}
