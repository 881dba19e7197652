package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/mirror"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// Defaults applied to a fresh attendance form.
const (
	DefaultStatus = StatusPresent
	DefaultType   = TypeFullDay
	DefaultShift  = ShiftFirst
)

type AttendanceResponse struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	ClientID     string    `json:"client_id"`
	ClientName   string    `json:"client_name"`
	Status       Status    `json:"status"`
	Type         Type      `json:"type"`
	Shift        Shift     `json:"shift"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewAttendanceResponse(r Record) AttendanceResponse {
	return AttendanceResponse{
		ID:           r.ID,
		Date:         r.Date,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		ClientID:     r.ClientID,
		ClientName:   r.ClientName,
		Status:       r.Status,
		Type:         r.Type,
		Shift:        r.Shift,
		CreatedAt:    r.CreatedAt,
	}
}

// FormState is what the attendance form shows after a submission.
type FormState struct {
	ClientID   string `json:"client_id"`
	EmployeeID string `json:"employee_id"`
	Status     Status `json:"status"`
	Type       Type   `json:"type"`
	Shift      Shift  `json:"shift"`
}

// NextFormState resets the details but keeps the client and employee selections
// so repeated entry for the same person is quick.
func NextFormState(submitted CreateAttendanceRequest) FormState {
	return FormState{
		ClientID:   submitted.ClientID,
		EmployeeID: submitted.EmployeeID,
		Status:     DefaultStatus,
		Type:       DefaultType,
		Shift:      DefaultShift,
	}
}

type CreateAttendanceRequest struct {
	ClientID   string  `json:"client_id"`
	EmployeeID string  `json:"employee_id"`
	Date       *string `json:"date,omitempty"`
	Status     Status  `json:"status,omitempty"`
	Type       Type    `json:"type,omitempty"`
	Shift      Shift   `json:"shift,omitempty"`
}

// Validate returns ErrSelectionRequired when either selection is missing,
// before looking at any other field.
func (r *CreateAttendanceRequest) Validate() error {
	r.ClientID = strings.TrimSpace(r.ClientID)
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	if r.ClientID == "" || r.EmployeeID == "" {
		return ErrSelectionRequired
	}

	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status == "" {
		r.Status = DefaultStatus
	} else if _, err := ParseStatus(string(r.Status)); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent",
		})
	}

	if r.Type == "" {
		r.Type = DefaultType
	} else if _, err := ParseType(string(r.Type)); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: Full day, Half day",
		})
	}

	if r.Shift == "" {
		r.Shift = DefaultShift
	} else if _, err := ParseShift(string(r.Shift)); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be one of: 1st Shift, 2nd Shift, 3rd Shift",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateAttendanceResponse struct {
	Record      AttendanceResponse `json:"record"`
	Persistence mirror.Outcome     `json:"persistence"`
	NextForm    FormState          `json:"next_form"`
}

// UpdateAttendanceRequest carries the fields an admin may correct.
// Employee and client are fixed once recorded.
type UpdateAttendanceRequest struct {
	Date   *string `json:"date,omitempty"`
	Status *Status `json:"status,omitempty"`
	Type   *Type   `json:"type,omitempty"`
	Shift  *Shift  `json:"shift,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	if r.Date == nil && r.Status == nil && r.Type == nil && r.Shift == nil {
		return ErrNothingToUpdate
	}

	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Status != nil {
		if _, err := ParseStatus(string(*r.Status)); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: Present, Absent",
			})
		}
	}
	if r.Type != nil {
		if _, err := ParseType(string(*r.Type)); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "type",
				Message: "type must be one of: Full day, Half day",
			})
		}
	}
	if r.Shift != nil {
		if _, err := ParseShift(string(*r.Shift)); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "shift",
				Message: "shift must be one of: 1st Shift, 2nd Shift, 3rd Shift",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply returns a copy of rec with the non-nil fields of r written over it.
func (r UpdateAttendanceRequest) Apply(rec Record) Record {
	if r.Date != nil {
		rec.Date = *r.Date
	}
	if r.Status != nil {
		rec.Status = *r.Status
	}
	if r.Type != nil {
		rec.Type = *r.Type
	}
	if r.Shift != nil {
		rec.Shift = *r.Shift
	}
	return rec
}

type UpdateAttendanceResponse struct {
	Record      AttendanceResponse `json:"record"`
	Persistence mirror.Outcome     `json:"persistence"`
}

type DeleteAttendanceResponse struct {
	ID          string         `json:"id"`
	Persistence mirror.Outcome `json:"persistence"`
}

type AttendanceFilter struct {
	Date *string
}

func (f AttendanceFilter) Validate() error {
	if f.Date == nil {
		return nil
	}
	if _, ok := validator.IsValidDate(*f.Date); !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	return nil
}

type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
	Total   int                  `json:"total"`
	Empty   bool                 `json:"empty"`
	Message string               `json:"message,omitempty"`
}

// EmptyMessage is shown instead of an empty table.
const EmptyMessage = "No attendance records found."

func NewListAttendanceResponse(records []Record) ListAttendanceResponse {
	resp := ListAttendanceResponse{
		Records: make([]AttendanceResponse, 0, len(records)),
		Total:   len(records),
		Empty:   len(records) == 0,
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, NewAttendanceResponse(rec))
	}
	if resp.Empty {
		resp.Message = EmptyMessage
	}
	return resp
}
