package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ===== USER REPOSITORY TESTS =====

func TestUserRepository_Create_Success(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(setup.DB)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("securepass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	created, err := userRepo.Create(ctx, user.User{
		ID:           newID(t),
		Email:        "manager@example.com",
		Name:         "Manager",
		PasswordHash: string(hashedPassword),
		Role:         user.RoleManager,
		CreatedAt:    time.Now(),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "manager@example.com", created.Email)
	assert.Equal(t, user.RoleManager, created.Role)
	assert.False(t, created.UpdatedAt.IsZero())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(setup.DB)

	created, err := userRepo.Create(ctx, user.User{
		ID:           newID(t),
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: "hash",
		Role:         user.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)

	retrieved, err := userRepo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, retrieved.ID)

	exists, err := userRepo.ExistsByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = userRepo.GetByEmail(ctx, "notfound@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

// ===== RECORD STORE TESTS =====

func TestClientEmployeeAttendance_RoundTrip(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	clientRepo := postgresql.NewClientRepository(setup.DB)
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)

	acme, err := clientRepo.Create(ctx, client.Client{ID: newID(t), Name: "Acme Corp", CreatedAt: time.Now()})
	require.NoError(t, err)

	john, err := employeeRepo.Create(ctx, employee.Employee{
		ID:        newID(t),
		Name:      "John Doe",
		ClientID:  &acme.ID,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, john.AssignedTo(acme.ID))
	assert.Nil(t, john.PhoneNumber)

	rec := attendance.Record{
		ID:           newID(t),
		Date:         "2025-04-18",
		EmployeeID:   john.ID,
		EmployeeName: john.Name,
		ClientID:     acme.ID,
		ClientName:   acme.Name,
		Status:       attendance.StatusPresent,
		Type:         attendance.TypeHalfDay,
		Shift:        attendance.ShiftThird,
		CreatedAt:    time.Now(),
	}
	_, err = attendanceRepo.Create(ctx, rec)
	require.NoError(t, err)

	records, err := attendanceRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-04-18", records[0].Date)
	assert.Equal(t, attendance.TypeHalfDay, records[0].Type)
	assert.NoError(t, records[0].Check())

	absent := attendance.StatusAbsent
	require.NoError(t, attendanceRepo.Update(ctx, rec.ID, attendance.UpdateAttendanceRequest{Status: &absent}))
	require.NoError(t, attendanceRepo.Delete(ctx, rec.ID))
	assert.ErrorIs(t, attendanceRepo.Delete(ctx, rec.ID), attendance.ErrAttendanceNotFound)
}

func TestJWTRepository_RevokeRefreshToken(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(setup.DB)
	jwtRepo := postgresql.NewJWTRepository(setup.DB)

	u, err := userRepo.Create(ctx, user.User{
		ID:           newID(t),
		Email:        "manager@example.com",
		Name:         "Manager",
		PasswordHash: "hash",
		Role:         user.RoleManager,
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, jwtRepo.CreateRefreshToken(ctx, u.ID, "refresh-token", now.Add(time.Hour).Unix(), auth.SessionTrackingRequest{}))

	owner, revoked, err := jwtRepo.IsRefreshTokenRevoked(ctx, "refresh-token", now)
	require.NoError(t, err)
	assert.Equal(t, u.ID, owner)
	assert.False(t, revoked)

	require.NoError(t, jwtRepo.RevokeRefreshToken(ctx, "refresh-token"))
	_, revoked, err = jwtRepo.IsRefreshTokenRevoked(ctx, "refresh-token", now)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestTransactor_RollsBack(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	clientRepo := postgresql.NewClientRepository(setup.DB)

	err := postgresql.NewTransactor(setup.DB).WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := clientRepo.Create(ctx, client.Client{ID: newID(t), Name: "Acme Corp", CreatedAt: time.Now()}); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	clients, err := clientRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}
