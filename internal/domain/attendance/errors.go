package attendance

import "errors"

// Attendance domain errors
var (
	// Form errors
	ErrSelectionRequired = errors.New("please select both client and employee")
	ErrInvalidSelection  = errors.New("invalid client or employee selection")

	// Enumeration errors
	ErrInvalidStatus = errors.New("invalid attendance status")
	ErrInvalidType   = errors.New("invalid attendance type")
	ErrInvalidShift  = errors.New("invalid shift")
	ErrInvalidDate   = errors.New("invalid attendance date")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNothingToUpdate    = errors.New("no updatable fields provided")
)
