package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/mirror"
	"github.com/cmlabs-hris/attendance-backend-go/internal/service/state"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	store          *state.Store
	loc            *time.Location
	now            func() time.Time
}

// NewAttendanceService creates the attendance service. loc decides what "today" is
// when a form is submitted without a date.
func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, store *state.Store, loc *time.Location) attendance.AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		store:          store,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) today() string {
	return s.now().In(s.loc).Format(time.DateOnly)
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.CreateAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CreateAttendanceResponse{}, err
	}

	c, clientOK := s.store.Clients.Get(req.ClientID)
	e, employeeOK := s.store.Employees.Get(req.EmployeeID)
	if !clientOK || !employeeOK {
		return attendance.CreateAttendanceResponse{}, attendance.ErrInvalidSelection
	}

	date := s.today()
	if req.Date != nil {
		date = *req.Date
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.CreateAttendanceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	record := attendance.Record{
		ID:           id.String(),
		Date:         date,
		EmployeeID:   e.ID,
		EmployeeName: e.Name,
		ClientID:     c.ID,
		ClientName:   c.Name,
		Status:       req.Status,
		Type:         req.Type,
		Shift:        req.Shift,
		CreatedAt:    s.now().UTC(),
	}

	outcome := mirror.Persisted
	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		slog.Warn("Failed to persist attendance record, keeping it in memory only",
			"attendance_id", record.ID,
			"employee_id", record.EmployeeID,
			"date", record.Date,
			"error", err,
		)
		outcome = mirror.PersistedLocallyOnly
	} else {
		record = created
	}

	s.store.Mutate(func() { s.store.Attendance.Upsert(record) })
	s.store.Notify(state.Change{
		Collection: state.CollectionAttendance,
		Op:         state.OpCreate,
		ID:         record.ID,
		Outcome:    outcome,
	})

	return attendance.CreateAttendanceResponse{
		Record:      attendance.NewAttendanceResponse(record),
		Persistence: outcome,
		NextForm:    attendance.NextFormState(req),
	}, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}
	records := attendance.Render(s.store.Attendance.All(), filter.Date)
	return attendance.NewListAttendanceResponse(records), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.UpdateAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.UpdateAttendanceResponse{}, err
	}

	existing, ok := s.store.Attendance.Get(id)
	if !ok {
		return attendance.UpdateAttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	outcome := mirror.Persisted
	if err := s.attendanceRepo.Update(ctx, id, req); err != nil {
		slog.Warn("Failed to persist attendance update, applying it in memory only", "attendance_id", id, "error", err)
		outcome = mirror.PersistedLocallyOnly
	}

	updated := req.Apply(existing)
	s.store.Mutate(func() { s.store.Attendance.Upsert(updated) })
	s.store.Notify(state.Change{
		Collection: state.CollectionAttendance,
		Op:         state.OpUpdate,
		ID:         id,
		Outcome:    outcome,
	})

	return attendance.UpdateAttendanceResponse{
		Record:      attendance.NewAttendanceResponse(updated),
		Persistence: outcome,
	}, nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) (attendance.DeleteAttendanceResponse, error) {
	if _, ok := s.store.Attendance.Get(id); !ok {
		return attendance.DeleteAttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	outcome := mirror.Persisted
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		slog.Warn("Failed to delete attendance record from the record store, removing it in memory only", "attendance_id", id, "error", err)
		outcome = mirror.PersistedLocallyOnly
	}

	s.store.Mutate(func() { s.store.Attendance.Delete(id) })
	s.store.Notify(state.Change{
		Collection: state.CollectionAttendance,
		Op:         state.OpDelete,
		ID:         id,
		Outcome:    outcome,
	})

	return attendance.DeleteAttendanceResponse{
		ID:          id,
		Persistence: outcome,
	}, nil
}
