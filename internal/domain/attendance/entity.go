package attendance

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

type Type string

const (
	TypeFullDay Type = "Full day"
	TypeHalfDay Type = "Half day"
)

type Shift string

const (
	ShiftFirst  Shift = "1st Shift"
	ShiftSecond Shift = "2nd Shift"
	ShiftThird  Shift = "3rd Shift"
)

var (
	Statuses = []Status{StatusPresent, StatusAbsent}
	Types    = []Type{TypeFullDay, TypeHalfDay}
	Shifts   = []Shift{ShiftFirst, ShiftSecond, ShiftThird}
)

func ParseStatus(s string) (Status, error) {
	for _, v := range Statuses {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func ParseType(s string) (Type, error) {
	for _, v := range Types {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

func ParseShift(s string) (Shift, error) {
	for _, v := range Shifts {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidShift, s)
}

// Record is one employee's attendance entry for one calendar date.
// EmployeeName and ClientName are copied at creation time and never re-synchronized.
type Record struct {
	ID           string
	Date         string // YYYY-MM-DD
	EmployeeID   string
	EmployeeName string
	ClientID     string
	ClientName   string
	Status       Status
	Type         Type
	Shift        Shift
	CreatedAt    time.Time
}

// Check validates the enumerations of a record read from the Record Store.
func (r Record) Check() error {
	if _, err := ParseStatus(string(r.Status)); err != nil {
		return err
	}
	if _, err := ParseType(string(r.Type)); err != nil {
		return err
	}
	if _, err := ParseShift(string(r.Shift)); err != nil {
		return err
	}
	if _, err := time.Parse(time.DateOnly, r.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, r.Date)
	}
	return nil
}
