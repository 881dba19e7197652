package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Create records attendance for the selected client and employee
	Create(ctx context.Context, req CreateAttendanceRequest) (CreateAttendanceResponse, error)

	// List renders the mirror, filtered by date when set, most recent first
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Update corrects fields of an existing record (admin)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (UpdateAttendanceResponse, error)

	// Delete removes a record (admin)
	Delete(ctx context.Context, id string) (DeleteAttendanceResponse, error)
}
