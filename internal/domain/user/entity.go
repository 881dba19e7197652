package user

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"    // Views and exports attendance, corrects records
	RoleManager  Role = "manager"  // Registers clients/employees, records attendance
	RoleEmployee Role = "employee" // Read-only dashboard access
)

// ParseRole validates a role coming from a request or a stored row.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

