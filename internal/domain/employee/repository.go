package employee

import "context"

// EmployeeRepository maps employees to and from the employees table of the Record Store.
type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}
