package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/mirror"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/sqlite"
	"github.com/cmlabs-hris/attendance-backend-go/internal/service/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("record store unavailable")

// failingAttendanceRepo rejects every write.
type failingAttendanceRepo struct{}

func (failingAttendanceRepo) List(ctx context.Context) ([]attendance.Record, error) {
	return nil, errStoreDown
}
func (failingAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return attendance.Record{}, errStoreDown
}
func (failingAttendanceRepo) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) error {
	return errStoreDown
}
func (failingAttendanceRepo) Delete(ctx context.Context, id string) error {
	return errStoreDown
}

// fixedNow is 2025-04-18 23:30 UTC, which is already 2025-04-19 in Jakarta.
var fixedNow = time.Date(2025, 4, 18, 23, 30, 0, 0, time.UTC)

type fixture struct {
	svc   *AttendanceServiceImpl
	store *state.Store
	repo  attendance.AttendanceRepository
}

func newFixture(t *testing.T, repo attendance.AttendanceRepository) fixture {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if repo == nil {
		repo = sqlite.NewAttendanceRepository(db)
	}

	store := state.NewStore(sqlite.NewClientRepository(db), sqlite.NewEmployeeRepository(db), repo)
	store.Clients.Upsert(client.Client{ID: "c-acme", Name: "Acme Corp"})
	store.Clients.Upsert(client.Client{ID: "c-globex", Name: "Globex Industries"})
	acme := "c-acme"
	store.Employees.Upsert(employee.Employee{ID: "e-john", Name: "John Doe", ClientID: &acme})
	store.Employees.Upsert(employee.Employee{ID: "e-jane", Name: "Jane Smith", ClientID: &acme})

	jakarta := time.FixedZone("WIB", 7*60*60)

	svc := NewAttendanceService(repo, store, jakarta).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return fixture{svc: svc, store: store, repo: repo}
}

func strPtr(s string) *string { return &s }

func TestAttendanceService_Create_AppliesDefaults(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := f.svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		ClientID:   "c-acme",
		EmployeeID: "e-john",
	})
	require.NoError(t, err)

	assert.Equal(t, mirror.Persisted, resp.Persistence)
	assert.Equal(t, "2025-04-19", resp.Record.Date, "date defaults to today in the configured time zone")
	assert.Equal(t, "John Doe", resp.Record.EmployeeName)
	assert.Equal(t, "Acme Corp", resp.Record.ClientName)
	assert.Equal(t, attendance.StatusPresent, resp.Record.Status)
	assert.Equal(t, attendance.TypeFullDay, resp.Record.Type)
	assert.Equal(t, attendance.ShiftFirst, resp.Record.Shift)
	assert.NotEmpty(t, resp.Record.ID)

	records, err := f.repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, resp.Record.ID, records[0].ID)

	_, ok := f.store.Attendance.Get(resp.Record.ID)
	assert.True(t, ok)
}

func TestAttendanceService_Create_NextFormKeepsSelections(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := f.svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		ClientID:   "c-acme",
		EmployeeID: "e-jane",
		Date:       strPtr("2025-04-17"),
		Status:     attendance.StatusAbsent,
		Type:       attendance.TypeHalfDay,
		Shift:      attendance.ShiftThird,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-04-17", resp.Record.Date)
	assert.Equal(t, attendance.StatusAbsent, resp.Record.Status)
	assert.Equal(t, attendance.FormState{
		ClientID:   "c-acme",
		EmployeeID: "e-jane",
		Status:     attendance.StatusPresent,
		Type:       attendance.TypeFullDay,
		Shift:      attendance.ShiftFirst,
	}, resp.NextForm)
}

func TestAttendanceService_Create_SelectionRequired(t *testing.T) {
	f := newFixture(t, nil)

	for _, req := range []attendance.CreateAttendanceRequest{
		{ClientID: "c-acme"},
		{EmployeeID: "e-john"},
		{ClientID: "  ", EmployeeID: "e-john", Status: "Late"},
	} {
		_, err := f.svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, attendance.ErrSelectionRequired)
	}
	assert.Equal(t, 0, f.store.Attendance.Len())
}

func TestAttendanceService_Create_InvalidSelection(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		ClientID:   "c-unknown",
		EmployeeID: "e-john",
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidSelection)

	_, err = f.svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		ClientID:   "c-acme",
		EmployeeID: "e-unknown",
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidSelection)
}

func TestAttendanceService_Create_InvalidEnumeration(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		ClientID:   "c-acme",
		EmployeeID: "e-john",
		Shift:      "4th Shift",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "shift")
}

func TestAttendanceService_Create_StoreFailureKeepsLocalCopy(t *testing.T) {
	f := newFixture(t, failingAttendanceRepo{})

	resp, err := f.svc.Create(context.Background(), attendance.CreateAttendanceRequest{
		ClientID:   "c-acme",
		EmployeeID: "e-john",
	})
	require.NoError(t, err)
	assert.Equal(t, mirror.PersistedLocallyOnly, resp.Persistence)

	_, ok := f.store.Attendance.Get(resp.Record.ID)
	assert.True(t, ok)
}

func TestAttendanceService_Create_DuplicatesAccumulate(t *testing.T) {
	f := newFixture(t, nil)
	req := attendance.CreateAttendanceRequest{ClientID: "c-acme", EmployeeID: "e-john"}

	first, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	second, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.Record.ID, second.Record.ID)
	assert.Equal(t, 2, f.store.Attendance.Len())
}

func TestAttendanceService_List_FilterAndOrder(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	for _, date := range []string{"2025-04-16", "2025-04-18", "2025-04-17", "2025-04-18"} {
		_, err := f.svc.Create(ctx, attendance.CreateAttendanceRequest{
			ClientID:   "c-acme",
			EmployeeID: "e-john",
			Date:       strPtr(date),
		})
		require.NoError(t, err)
	}

	all, err := f.svc.List(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	require.Equal(t, 4, all.Total)
	dates := make([]string, 0, len(all.Records))
	for _, r := range all.Records {
		dates = append(dates, r.Date)
	}
	assert.Equal(t, []string{"2025-04-18", "2025-04-18", "2025-04-17", "2025-04-16"}, dates)

	filtered, err := f.svc.List(ctx, attendance.AttendanceFilter{Date: strPtr("2025-04-17")})
	require.NoError(t, err)
	assert.Equal(t, 1, filtered.Total)
	assert.False(t, filtered.Empty)

	none, err := f.svc.List(ctx, attendance.AttendanceFilter{Date: strPtr("2020-01-01")})
	require.NoError(t, err)
	assert.True(t, none.Empty)
	assert.Equal(t, attendance.EmptyMessage, none.Message)
	assert.NotNil(t, none.Records)

	_, err = f.svc.List(ctx, attendance.AttendanceFilter{Date: strPtr("18/04/2025")})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestAttendanceService_UpdateAndDelete(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, attendance.CreateAttendanceRequest{ClientID: "c-acme", EmployeeID: "e-john"})
	require.NoError(t, err)

	absent := attendance.StatusAbsent
	updated, err := f.svc.Update(ctx, created.Record.ID, attendance.UpdateAttendanceRequest{Status: &absent})
	require.NoError(t, err)
	assert.Equal(t, mirror.Persisted, updated.Persistence)
	assert.Equal(t, attendance.StatusAbsent, updated.Record.Status)
	assert.Equal(t, "John Doe", updated.Record.EmployeeName)

	_, err = f.svc.Update(ctx, created.Record.ID, attendance.UpdateAttendanceRequest{})
	assert.ErrorIs(t, err, attendance.ErrNothingToUpdate)

	_, err = f.svc.Update(ctx, "missing", attendance.UpdateAttendanceRequest{Status: &absent})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)

	deleted, err := f.svc.Delete(ctx, created.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, mirror.Persisted, deleted.Persistence)
	assert.Equal(t, 0, f.store.Attendance.Len())

	_, err = f.svc.Delete(ctx, created.Record.ID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_UpdateAndDelete_StoreFailure(t *testing.T) {
	f := newFixture(t, failingAttendanceRepo{})
	ctx := context.Background()

	created, err := f.svc.Create(ctx, attendance.CreateAttendanceRequest{ClientID: "c-acme", EmployeeID: "e-john"})
	require.NoError(t, err)

	second := attendance.ShiftSecond
	updated, err := f.svc.Update(ctx, created.Record.ID, attendance.UpdateAttendanceRequest{Shift: &second})
	require.NoError(t, err)
	assert.Equal(t, mirror.PersistedLocallyOnly, updated.Persistence)

	rec, ok := f.store.Attendance.Get(created.Record.ID)
	require.True(t, ok)
	assert.Equal(t, attendance.ShiftSecond, rec.Shift)

	deleted, err := f.svc.Delete(ctx, created.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, mirror.PersistedLocallyOnly, deleted.Persistence)
	assert.Equal(t, 0, f.store.Attendance.Len())
}

func TestAttendanceService_NotifiesListeners(t *testing.T) {
	f := newFixture(t, nil)

	var changes []state.Change
	f.store.OnChange(func(c state.Change) { changes = append(changes, c) })

	resp, err := f.svc.Create(context.Background(), attendance.CreateAttendanceRequest{ClientID: "c-acme", EmployeeID: "e-john"})
	require.NoError(t, err)

	require.Len(t, changes, 1)
	assert.Equal(t, state.Change{
		Collection: state.CollectionAttendance,
		Op:         state.OpCreate,
		ID:         resp.Record.ID,
		Outcome:    mirror.Persisted,
	}, changes[0])
}
