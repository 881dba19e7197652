// Package state keeps the in-memory mirror of the Record Store that every
// read endpoint renders from.
package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/mirror"
	"golang.org/x/sync/errgroup"
)

// Collection names used in Change notifications.
const (
	CollectionClients    = "clients"
	CollectionEmployees  = "employees"
	CollectionAttendance = "attendance"
	CollectionAll        = "all"
)

// Operations used in Change notifications.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpReload = "reload"
)

// Change describes one mutation of the mirror.
type Change struct {
	Collection string         `json:"collection"`
	Op         string         `json:"op"`
	ID         string         `json:"id,omitempty"`
	Outcome    mirror.Outcome `json:"persistence,omitempty"`
}

// Summary reports what a Load put into the mirror.
type Summary struct {
	Clients    int       `json:"clients"`
	Employees  int       `json:"employees"`
	Attendance int       `json:"attendance"`
	Skipped    int       `json:"skipped"`
	LoadedAt   time.Time `json:"loaded_at"`
}

type Store struct {
	Clients    *mirror.Collection[client.Client]
	Employees  *mirror.Collection[employee.Employee]
	Attendance *mirror.Collection[attendance.Record]

	clientRepo     client.ClientRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository

	// mu orders mirror writes against Load. Writers share the read side;
	// Load holds the write side from its first read until the swap.
	mu sync.RWMutex

	listenersMu sync.RWMutex
	listeners   []func(Change)

	now func() time.Time
}

func NewStore(
	clientRepo client.ClientRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) *Store {
	return &Store{
		Clients:        mirror.NewCollection(func(c client.Client) string { return c.ID }),
		Employees:      mirror.NewCollection(func(e employee.Employee) string { return e.ID }),
		Attendance:     mirror.NewCollection(func(r attendance.Record) string { return r.ID }),
		clientRepo:     clientRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Load reads all three collections from the Record Store and replaces the
// mirror wholesale. If any read fails the mirror is left as it was.
func (s *Store) Load(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		clients   []client.Client
		employees []employee.Employee
		records   []attendance.Record
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if clients, err = s.clientRepo.List(gctx); err != nil {
			return fmt.Errorf("failed to load clients: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if employees, err = s.employeeRepo.List(gctx); err != nil {
			return fmt.Errorf("failed to load employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if records, err = s.attendanceRepo.List(gctx); err != nil {
			return fmt.Errorf("failed to load attendance: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	valid := make([]attendance.Record, 0, len(records))
	skipped := 0
	for _, rec := range records {
		if err := rec.Check(); err != nil {
			slog.Warn("Skipping invalid attendance row", "id", rec.ID, "error", err)
			skipped++
			continue
		}
		valid = append(valid, rec)
	}

	s.Clients.Replace(clients)
	s.Employees.Replace(employees)
	s.Attendance.Replace(valid)

	summary := Summary{
		Clients:    s.Clients.Len(),
		Employees:  s.Employees.Len(),
		Attendance: s.Attendance.Len(),
		Skipped:    skipped,
		LoadedAt:   s.now(),
	}
	slog.Info("Loaded record store",
		"clients", summary.Clients,
		"employees", summary.Employees,
		"attendance", summary.Attendance,
		"skipped", summary.Skipped,
	)

	s.Notify(Change{Collection: CollectionAll, Op: OpReload})
	return summary, nil
}

// Mutate applies fn to the mirror. It waits for a running Load to finish so
// the change is not overwritten by an older snapshot.
func (s *Store) Mutate(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// OnChange registers fn to be called after every mutation of the mirror.
func (s *Store) OnChange(fn func(Change)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Notify calls every registered listener with c.
func (s *Store) Notify(c Change) {
	s.listenersMu.RLock()
	listeners := make([]func(Change), len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(c)
	}
}
