// Package repository opens the Record Store selected by configuration and
// hands out the matching repository implementations.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/sqlite"
)

type Repositories struct {
	Client       client.ClientRepository
	Employee     employee.EmployeeRepository
	Attendance   attendance.AttendanceRepository
	User         user.UserRepository
	RefreshToken auth.RefreshTokenRepository
	Transactor   database.Transactor

	close func()
}

// Close releases the underlying connections.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// Open connects to the configured Record Store driver.
func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		slog.Info("Connected to record store", "driver", cfg.Store.Driver, "host", cfg.Database.Host, "database", cfg.Database.Name)
		return &Repositories{
			Client:       postgresql.NewClientRepository(db),
			Employee:     postgresql.NewEmployeeRepository(db),
			Attendance:   postgresql.NewAttendanceRepository(db),
			User:         postgresql.NewUserRepository(db),
			RefreshToken: postgresql.NewJWTRepository(db),
			Transactor:   postgresql.NewTransactor(db),
			close:        db.Close,
		}, nil

	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		if err := sqlite.Migrate(db); err != nil {
			return nil, err
		}
		slog.Info("Connected to record store", "driver", cfg.Store.Driver, "path", cfg.SQLite.Path)
		return &Repositories{
			Client:       sqlite.NewClientRepository(db),
			Employee:     sqlite.NewEmployeeRepository(db),
			Attendance:   sqlite.NewAttendanceRepository(db),
			User:         sqlite.NewUserRepository(db),
			RefreshToken: sqlite.NewJWTRepository(db),
			Transactor:   sqlite.NewTransactor(db),
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					sqlDB.Close()
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
