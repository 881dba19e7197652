package postgresql

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, client_id, phone_number, created_at
		FROM employees
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.ClientID, &e.PhoneNumber, &e.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, client_id, phone_number, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, client_id, phone_number, created_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.Name,
		newEmployee.ClientID,
		newEmployee.PhoneNumber,
		newEmployee.CreatedAt,
	).Scan(&created.ID, &created.Name, &created.ClientID, &created.PhoneNumber, &created.CreatedAt)
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}
