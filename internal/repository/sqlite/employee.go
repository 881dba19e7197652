package sqlite

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"gorm.io/gorm"
)

type employeeRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func toEmployee(row employeeRow) employee.Employee {
	return employee.Employee{
		ID:          row.ID,
		Name:        row.Name,
		ClientID:    row.ClientID,
		PhoneNumber: row.PhoneNumber,
		CreatedAt:   row.CreatedAt,
	}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	var rows []employeeRow
	if err := conn(ctx, r.db).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	employees := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, toEmployee(row))
	}
	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	row := employeeRow{
		ID:          newEmployee.ID,
		Name:        newEmployee.Name,
		PhoneNumber: newEmployee.PhoneNumber,
		ClientID:    newEmployee.ClientID,
		CreatedAt:   newEmployee.CreatedAt,
	}
	if err := conn(ctx, r.db).Create(&row).Error; err != nil {
		return employee.Employee{}, err
	}
	return toEmployee(row), nil
}
