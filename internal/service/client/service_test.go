package client

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/mirror"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/sqlite"
	"github.com/cmlabs-hris/attendance-backend-go/internal/service/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingClientRepo struct{}

func (failingClientRepo) List(ctx context.Context) ([]client.Client, error) {
	return nil, errors.New("record store unavailable")
}
func (failingClientRepo) Create(ctx context.Context, c client.Client) (client.Client, error) {
	return client.Client{}, errors.New("record store unavailable")
}

func newTestClientService(t *testing.T, repo client.ClientRepository) (client.ClientService, *state.Store, client.ClientRepository) {
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
		repo = sqlite.NewClientRepository(db)
	}
	store := state.NewStore(repo, sqlite.NewEmployeeRepository(db), sqlite.NewAttendanceRepository(db))
	return NewClientService(repo, store), store, repo
}

func TestClientService_Create_Success(t *testing.T) {
	svc, store, repo := newTestClientService(t, nil)
	ctx := context.Background()

	resp, err := svc.Create(ctx, client.CreateClientRequest{Name: "  Acme Corp  "})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", resp.Client.Name)
	assert.Equal(t, mirror.Persisted, resp.Persistence)

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, resp.Client.ID, stored[0].ID)

	assert.Equal(t, 1, store.Clients.Len())
	list := svc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme Corp", list[0].Name)
}

func TestClientService_Create_NameTooShort(t *testing.T) {
	svc, store, _ := newTestClientService(t, nil)

	_, err := svc.Create(context.Background(), client.CreateClientRequest{Name: "A"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Client name must be at least 2 characters.", verrs.ToMap()["name"])
	assert.Equal(t, 0, store.Clients.Len())
}

func TestClientService_Create_StoreFailure(t *testing.T) {
	svc, store, _ := newTestClientService(t, failingClientRepo{})

	resp, err := svc.Create(context.Background(), client.CreateClientRequest{Name: "Globex Industries"})
	require.NoError(t, err)
	assert.Equal(t, mirror.PersistedLocallyOnly, resp.Persistence)
	assert.False(t, resp.Persistence.IsDurable())

	_, ok := store.Clients.Get(resp.Client.ID)
	assert.True(t, ok)
}

func TestClientService_List_Empty(t *testing.T) {
	svc, _, _ := newTestClientService(t, nil)

	list := svc.List(context.Background())
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
