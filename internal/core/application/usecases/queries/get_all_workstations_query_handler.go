package queries

import (
	"context"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllWorkstationsQueryHandler retrieves all packing stations from the
// database.
type GetAllWorkstationsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllWorkstationsQueryHandler creates a handler for workstation
// listing queries.
func NewGetAllWorkstationsQueryHandler(db *gorm.DB) GetAllWorkstationsQueryHandler {
	return GetAllWorkstationsQueryHandler{db: db}
}

// Handle executes the query. Stations come back ordered by code, inactive
// ones included so the floor plan stays complete.
func (h GetAllWorkstationsQueryHandler) Handle(
	ctx context.Context,
	query GetAllWorkstationsQuery,
) ([]GetAllWorkstationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			area,
			description,
			is_active
		FROM workstations
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := make([]GetAllWorkstationsQueryResponse, 0)
	for rows.Next() {
		var ws GetAllWorkstationsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &ws.Code, &ws.Area, &ws.Description, &ws.IsActive)
		if err != nil {
			return nil, err
		}

		wsID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ws.ID = wsID
		stations = append(stations, ws)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}
