package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/mirror"
	"github.com/cmlabs-hris/attendance-backend-go/internal/service/state"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	store        *state.Store
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, store *state.Store) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		store:        store,
		now:          time.Now,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) []employee.EmployeeResponse {
	var employees []employee.Employee
	if filter.ClientID != nil {
		clientID := *filter.ClientID
		employees = s.store.Employees.Filter(func(e employee.Employee) bool {
			return e.AssignedTo(clientID)
		})
	} else {
		employees = s.store.Employees.All()
	}

	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, employee.NewEmployeeResponse(e))
	}
	return resp
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	if req.ClientID != nil {
		if _, ok := s.store.Clients.Get(*req.ClientID); !ok {
			return employee.CreateEmployeeResponse{}, client.ErrClientNotFound
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	newEmployee := employee.Employee{
		ID:          id.String(),
		Name:        req.Name,
		ClientID:    req.ClientID,
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   s.now().UTC(),
	}

	outcome := mirror.Persisted
	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		slog.Warn("Failed to persist employee, keeping it in memory only", "employee_id", newEmployee.ID, "error", err)
		outcome = mirror.PersistedLocallyOnly
	} else {
		newEmployee = created
	}

	s.store.Mutate(func() { s.store.Employees.Upsert(newEmployee) })
	s.store.Notify(state.Change{
		Collection: state.CollectionEmployees,
		Op:         state.OpCreate,
		ID:         newEmployee.ID,
		Outcome:    outcome,
	})

	return employee.CreateEmployeeResponse{
		Employee:    employee.NewEmployeeResponse(newEmployee),
		Persistence: outcome,
	}, nil
}
