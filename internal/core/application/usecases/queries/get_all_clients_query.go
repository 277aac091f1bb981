package queries

import (
	"errors"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var ErrGetAllClientsQueryIsNotConstructed = errors.New(
	"GetAllClientsQuery must be created via NewGetAllClientsQuery constructor",
)

// GetAllClientsQuery retrieves all registered clients. This is a
// parameterless query used by intake tooling and the admin surface.
type GetAllClientsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllClientsQuery creates a query to retrieve all clients.
func NewGetAllClientsQuery() GetAllClientsQuery {
	return GetAllClientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllClientsQueryIsNotConstructed)
}

// GetAllClientsQueryResponse represents one client in the read model.
type GetAllClientsQueryResponse struct {
	ID   kernel.UUID
	Code string
	Name string
}
