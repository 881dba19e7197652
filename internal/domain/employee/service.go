package employee

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/mirror"
)

type EmployeeService interface {
	// List returns every employee, or only those assigned to ClientID when the filter sets it.
	List(ctx context.Context, filter EmployeeFilter) []EmployeeResponse
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
}

type CreateEmployeeResponse struct {
	Employee    EmployeeResponse `json:"employee"`
	Persistence mirror.Outcome   `json:"persistence"`
}
