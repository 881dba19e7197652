package sqlite

import "time"

// Row models mirror the Record Store schema. Column names are snake_case.

type clientRow struct {
	ID        string    `gorm:"primaryKey;type:text"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (clientRow) TableName() string {
	return "clients"
}

type employeeRow struct {
	ID          string  `gorm:"primaryKey;type:text"`
	Name        string  `gorm:"not null"`
	PhoneNumber *string `gorm:"type:text"`
	ClientID    *string `gorm:"type:text;index"`
	CreatedAt   time.Time
}

func (employeeRow) TableName() string {
	return "employees"
}

type attendanceRow struct {
	ID           string `gorm:"primaryKey;type:text"`
	Date         string `gorm:"type:text;not null;index"`
	EmployeeID   string `gorm:"type:text;not null"`
	EmployeeName string `gorm:"not null"`
	ClientID     string `gorm:"type:text;not null"`
	ClientName   string `gorm:"not null"`
	Status       string `gorm:"type:varchar(16);not null"`
	Type         string `gorm:"type:varchar(16);not null"`
	Shift        string `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time
}

func (attendanceRow) TableName() string {
	return "attendance"
}

type userRow struct {
	ID           string `gorm:"primaryKey;type:text"`
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRow) TableName() string {
	return "users"
}

type refreshTokenRow struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"type:text;not null;index"`
	TokenHash string    `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	UserAgent string
	IPAddress string
	RevokedAt *time.Time
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (refreshTokenRow) TableName() string {
	return "refresh_tokens"
}
