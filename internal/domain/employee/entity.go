package employee

import "time"

type Employee struct {
	ID          string
	Name        string
	ClientID    *string
	PhoneNumber *string
	CreatedAt   time.Time
}

// AssignedTo reports whether the employee works for the given client.
func (e Employee) AssignedTo(clientID string) bool {
	return e.ClientID != nil && *e.ClientID == clientID
}
