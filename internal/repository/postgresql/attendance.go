package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, employee_id, employee_name, client_id, client_name,
		       status, type, shift, created_at
		FROM attendance
		ORDER BY date DESC, created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var (
			rec                attendance.Record
			date               time.Time
			status, typ, shift string
		)
		if err := rows.Scan(
			&rec.ID,
			&date,
			&rec.EmployeeID,
			&rec.EmployeeName,
			&rec.ClientID,
			&rec.ClientName,
			&status,
			&typ,
			&shift,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Date = date.Format(time.DateOnly)
		rec.Status = attendance.Status(status)
		rec.Type = attendance.Type(typ)
		rec.Shift = attendance.Shift(shift)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (
			id, date, employee_id, employee_name, client_id, client_name,
			status, type, shift, created_at
		)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	created := rec
	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.Date,
		rec.EmployeeID,
		rec.EmployeeName,
		rec.ClientID,
		rec.ClientName,
		string(rec.Status),
		string(rec.Type),
		string(rec.Shift),
		rec.CreatedAt,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return attendance.Record{}, err
	}
	return created, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)
	i := 1
	add := func(clause string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf(clause, i))
		args = append(args, val)
		i++
	}

	if req.Date != nil {
		add("date = $%d::date", *req.Date)
	}
	if req.Status != nil {
		add("status = $%d", string(*req.Status))
	}
	if req.Type != nil {
		add("type = $%d", string(*req.Type))
	}
	if req.Shift != nil {
		add("shift = $%d", string(*req.Shift))
	}

	if len(setClauses) == 0 {
		return attendance.ErrNothingToUpdate
	}

	sql := "UPDATE attendance SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update attendance with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
