package client

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/mirror"
)

type ClientService interface {
	List(ctx context.Context) []ClientResponse
	Create(ctx context.Context, req CreateClientRequest) (CreateClientResponse, error)
}

type CreateClientResponse struct {
	Client      ClientResponse `json:"client"`
	Persistence mirror.Outcome `json:"persistence"`
}
