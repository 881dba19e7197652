package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/mirror"
	"github.com/cmlabs-hris/attendance-backend-go/internal/service/state"
	"github.com/google/uuid"
)

type ClientServiceImpl struct {
	clientRepo client.ClientRepository
	store      *state.Store
	now        func() time.Time
}

func NewClientService(clientRepo client.ClientRepository, store *state.Store) client.ClientService {
	return &ClientServiceImpl{
		clientRepo: clientRepo,
		store:      store,
		now:        time.Now,
	}
}

// List implements client.ClientService.
func (s *ClientServiceImpl) List(ctx context.Context) []client.ClientResponse {
	clients := s.store.Clients.All()
	resp := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		resp = append(resp, client.NewClientResponse(c))
	}
	return resp
}

// Create implements client.ClientService.
func (s *ClientServiceImpl) Create(ctx context.Context, req client.CreateClientRequest) (client.CreateClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.CreateClientResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return client.CreateClientResponse{}, fmt.Errorf("failed to generate client id: %w", err)
	}

	newClient := client.Client{
		ID:        id.String(),
		Name:      req.Name,
		CreatedAt: s.now().UTC(),
	}

	outcome := mirror.Persisted
	created, err := s.clientRepo.Create(ctx, newClient)
	if err != nil {
		slog.Warn("Failed to persist client, keeping it in memory only", "client_id", newClient.ID, "error", err)
		outcome = mirror.PersistedLocallyOnly
	} else {
		newClient = created
	}

	s.store.Mutate(func() { s.store.Clients.Upsert(newClient) })
	s.store.Notify(state.Change{
		Collection: state.CollectionClients,
		Op:         state.OpCreate,
		ID:         newClient.ID,
		Outcome:    outcome,
	})

	return client.CreateClientResponse{
		Client:      client.NewClientResponse(newClient),
		Persistence: outcome,
	}, nil
}
