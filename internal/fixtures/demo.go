package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoEmployee is a sample employee and the client they work for.
type DemoEmployee struct {
	Name       string
	ClientName string
}

// DemoUser is a sample login.
type DemoUser struct {
	Name  string
	Email string
	Role  user.Role
}

// GetDemoClients returns the sample clients shown on a fresh install.
func GetDemoClients() []string {
	return []string{
		"Acme Corp",
		"Globex Industries",
		"Stark Enterprises",
	}
}

// GetDemoEmployees returns the sample employees, each assigned to a demo client.
func GetDemoEmployees() []DemoEmployee {
	return []DemoEmployee{
		{Name: "John Doe", ClientName: "Acme Corp"},
		{Name: "Jane Smith", ClientName: "Acme Corp"},
		{Name: "Alice Johnson", ClientName: "Globex Industries"},
		{Name: "Bob Brown", ClientName: "Globex Industries"},
		{Name: "Charlie Davis", ClientName: "Stark Enterprises"},
	}
}

// GetDemoUsers returns one admin and one manager login.
func GetDemoUsers() []DemoUser {
	return []DemoUser{
		{Name: "Admin", Email: "admin@example.com", Role: user.RoleAdmin},
		{Name: "Manager", Email: "manager@example.com", Role: user.RoleManager},
	}
}

// SeedResult counts what Seed wrote.
type SeedResult struct {
	Clients   int
	Employees int
	Users     int
}

type Seeder struct {
	transactor   database.Transactor
	clientRepo   client.ClientRepository
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	bcryptCost   int
	now          func() time.Time
}

func NewSeeder(
	transactor database.Transactor,
	clientRepo client.ClientRepository,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) *Seeder {
	return &Seeder{
		transactor:   transactor,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		bcryptCost:   bcrypt.DefaultCost,
		now:          time.Now,
	}
}

// Seed writes the demo data in one transaction. Clients and employees are
// only written into an empty store; users are skipped when their email exists.
func (s *Seeder) Seed(ctx context.Context, password string) (SeedResult, error) {
	var result SeedResult

	err := s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.clientRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		if len(existing) == 0 {
			clientIDs := make(map[string]string)
			createdAt := s.now()
			for i, name := range GetDemoClients() {
				c, err := s.clientRepo.Create(txCtx, client.Client{
					ID:        newID(),
					Name:      name,
					CreatedAt: createdAt.Add(time.Duration(i) * time.Millisecond),
				})
				if err != nil {
					return fmt.Errorf("failed to create client %q: %w", name, err)
				}
				clientIDs[name] = c.ID
				result.Clients++
			}

			for i, demo := range GetDemoEmployees() {
				clientID := clientIDs[demo.ClientName]
				_, err := s.employeeRepo.Create(txCtx, employee.Employee{
					ID:        newID(),
					Name:      demo.Name,
					ClientID:  &clientID,
					CreatedAt: createdAt.Add(time.Duration(i) * time.Millisecond),
				})
				if err != nil {
					return fmt.Errorf("failed to create employee %q: %w", demo.Name, err)
				}
				result.Employees++
			}
		} else {
			slog.Info("Record store already has clients, skipping demo clients and employees", "clients", len(existing))
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		for _, demo := range GetDemoUsers() {
			exists, err := s.userRepo.ExistsByEmail(txCtx, demo.Email)
			if err != nil {
				return fmt.Errorf("failed to check user %q: %w", demo.Email, err)
			}
			if exists {
				continue
			}
			_, err = s.userRepo.Create(txCtx, user.User{
				ID:           newID(),
				Email:        demo.Email,
				Name:         demo.Name,
				PasswordHash: string(hash),
				Role:         demo.Role,
				CreatedAt:    s.now(),
			})
			if err != nil {
				return fmt.Errorf("failed to create user %q: %w", demo.Email, err)
			}
			result.Users++
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return result, nil
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
