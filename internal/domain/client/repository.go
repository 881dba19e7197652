package client

import "context"

// ClientRepository maps clients to and from the clients table of the Record Store.
type ClientRepository interface {
	List(ctx context.Context) ([]Client, error)
	Create(ctx context.Context, newClient Client) (Client, error)
}
