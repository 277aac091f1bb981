package queries

import (
	"errors"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var ErrGetAllWorkstationsQueryIsNotConstructed = errors.New(
	"GetAllWorkstationsQuery must be created via NewGetAllWorkstationsQuery constructor",
)

// GetAllWorkstationsQuery retrieves all packing stations for the login
// screen and floor monitoring.
type GetAllWorkstationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllWorkstationsQuery creates a query to retrieve all workstations.
func NewGetAllWorkstationsQuery() GetAllWorkstationsQuery {
	return GetAllWorkstationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllWorkstationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllWorkstationsQueryIsNotConstructed)
}

// GetAllWorkstationsQueryResponse represents one station in the read model.
type GetAllWorkstationsQueryResponse struct {
	ID          kernel.UUID
	Code        string
	Area        string
	Description string
	IsActive    bool
}
