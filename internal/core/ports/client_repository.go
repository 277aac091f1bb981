package ports

import (
	"context"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/client"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for clients. Codes and
// names are unique case-insensitively; lookups normalize before comparing.
type ClientRepository interface {
	// Add persists a new client.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetByCode retrieves a client by its code, matched case-insensitively.
	GetByCode(ctx context.Context, code string) (*client.Client, error)

	// GetAll retrieves every client ordered by code.
	GetAll(ctx context.Context) ([]*client.Client, error)
}
