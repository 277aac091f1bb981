package queries

import (
	"context"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllClientsQueryHandler retrieves all clients from the database.
type GetAllClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllClientsQueryHandler creates a handler for client listing
// queries. Requires a GORM database connection for query execution.
func NewGetAllClientsQueryHandler(db *gorm.DB) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{db: db}
}

// Handle executes the query. Clients come back ordered by code.
func (h GetAllClientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllClientsQuery,
) ([]GetAllClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name
		FROM clients
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]GetAllClientsQueryResponse, 0)
	for rows.Next() {
		var c GetAllClientsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &c.Code, &c.Name); err != nil {
			return nil, err
		}

		clientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		c.ID = clientID
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
