package dashboard

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/attendance-backend-go/internal/service/state"
)

type DashboardServiceImpl struct {
	store *state.Store
	loc   *time.Location
	now   func() time.Time
}

func NewDashboardService(store *state.Store, loc *time.Location) dashboard.DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardServiceImpl{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

// Today implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Today(ctx context.Context) (dashboard.DashboardResponse, error) {
	today := s.now().In(s.loc).Format(time.DateOnly)

	records := attendance.Render(s.store.Attendance.All(), &today)
	counts := attendance.CountByStatus(records)

	return dashboard.DashboardResponse{
		Date:           today,
		TotalClients:   s.store.Clients.Len(),
		TotalEmployees: s.store.Employees.Len(),
		PresentToday:   counts[attendance.StatusPresent],
		AbsentToday:    counts[attendance.StatusAbsent],
		Today:          attendance.NewListAttendanceResponse(records),
	}, nil
}
