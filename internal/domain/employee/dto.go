package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ClientID    *string   `json:"client_id"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		ClientID:    e.ClientID,
		PhoneNumber: e.PhoneNumber,
		CreatedAt:   e.CreatedAt,
	}
}

type EmployeeFilter struct {
	ClientID *string
}

type CreateEmployeeRequest struct {
	Name        string  `json:"name"`
	ClientID    *string `json:"client_id,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if validator.Length(r.Name) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Employee name must be at least 2 characters.",
		})
	}
	if validator.Length(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	// An empty selection means "unassigned".
	if r.ClientID != nil && validator.IsEmpty(*r.ClientID) {
		r.ClientID = nil
	}

	if r.PhoneNumber != nil {
		phone := strings.TrimSpace(*r.PhoneNumber)
		if phone == "" {
			r.PhoneNumber = nil
		} else if !validator.IsValidPhoneNumber(phone) {
			errs = append(errs, validator.ValidationError{
				Field:   "phone_number",
				Message: "phone_number must contain 7 to 20 digits, optionally starting with +",
			})
		} else {
			r.PhoneNumber = &phone
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
