package sqlite

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/client"
	"gorm.io/gorm"
)

type clientRepositoryImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

// List implements client.ClientRepository.
func (r *clientRepositoryImpl) List(ctx context.Context) ([]client.Client, error) {
	var rows []clientRow
	if err := conn(ctx, r.db).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	clients := make([]client.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, client.Client{
			ID:        row.ID,
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
		})
	}
	return clients, nil
}

// Create implements client.ClientRepository.
func (r *clientRepositoryImpl) Create(ctx context.Context, newClient client.Client) (client.Client, error) {
	row := clientRow{
		ID:        newClient.ID,
		Name:      newClient.Name,
		CreatedAt: newClient.CreatedAt,
	}
	if err := conn(ctx, r.db).Create(&row).Error; err != nil {
		return client.Client{}, err
	}
	return client.Client{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt}, nil
}
