package dashboard

import "context"

type DashboardService interface {
	// Today summarizes the current day's attendance.
	Today(ctx context.Context) (DashboardResponse, error)
}
