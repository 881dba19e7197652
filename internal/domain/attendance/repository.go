package attendance

import (
	"context"
)

// AttendanceRepository maps records to and from the attendance table of the Record Store.
type AttendanceRepository interface {
	// List returns every record; there is no pagination.
	List(ctx context.Context) ([]Record, error)

	// Create inserts a record whose ID and CreatedAt are already assigned.
	Create(ctx context.Context, record Record) (Record, error)

	// Update writes the non-nil fields of req. Returns ErrAttendanceNotFound for unknown ids.
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) error

	// Delete removes a record. Returns ErrAttendanceNotFound for unknown ids.
	Delete(ctx context.Context, id string) error
}
