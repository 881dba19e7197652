package sqlite

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"gorm.io/gorm"
)

type attendanceRepositoryImpl struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func toRecord(row attendanceRow) attendance.Record {
	return attendance.Record{
		ID:           row.ID,
		Date:         row.Date,
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		ClientID:     row.ClientID,
		ClientName:   row.ClientName,
		Status:       attendance.Status(row.Status),
		Type:         attendance.Type(row.Type),
		Shift:        attendance.Shift(row.Shift),
		CreatedAt:    row.CreatedAt,
	}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Record, error) {
	var rows []attendanceRow
	if err := conn(ctx, r.db).Order("date DESC").Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]attendance.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, toRecord(row))
	}
	return records, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	row := attendanceRow{
		ID:           rec.ID,
		Date:         rec.Date,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		ClientID:     rec.ClientID,
		ClientName:   rec.ClientName,
		Status:       string(rec.Status),
		Type:         string(rec.Type),
		Shift:        string(rec.Shift),
		CreatedAt:    rec.CreatedAt,
	}
	if err := conn(ctx, r.db).Create(&row).Error; err != nil {
		return attendance.Record{}, err
	}
	return toRecord(row), nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) error {
	updates := make(map[string]interface{}, 4)
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Status != nil {
		updates["status"] = string(*req.Status)
	}
	if req.Type != nil {
		updates["type"] = string(*req.Type)
	}
	if req.Shift != nil {
		updates["shift"] = string(*req.Shift)
	}
	if len(updates) == 0 {
		return attendance.ErrNothingToUpdate
	}

	result := conn(ctx, r.db).Model(&attendanceRow{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update attendance with id %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := conn(ctx, r.db).Where("id = ?", id).Delete(&attendanceRow{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete attendance with id %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
