package postgresql

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

// List implements client.ClientRepository.
func (c *clientRepositoryImpl) List(ctx context.Context) ([]client.Client, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, created_at
		FROM clients
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]client.Client, 0)
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// Create implements client.ClientRepository.
func (c *clientRepositoryImpl) Create(ctx context.Context, newClient client.Client) (client.Client, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO clients (id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, name, created_at
	`

	var created client.Client
	err := q.QueryRow(ctx, query, newClient.ID, newClient.Name, newClient.CreatedAt).
		Scan(&created.ID, &created.Name, &created.CreatedAt)
	if err != nil {
		return client.Client{}, err
	}
	return created, nil
}
