package queries

import (
	"context"
	"database/sql"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPoolItemsQueryHandler retrieves the unassigned item pool from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type ListPoolItemsQueryHandler struct {
	db *gorm.DB
}

// NewListPoolItemsQueryHandler creates a handler for pool listing queries.
func NewListPoolItemsQueryHandler(db *gorm.DB) ListPoolItemsQueryHandler {
	return ListPoolItemsQueryHandler{db: db}
}

// Handle executes the query. Results come back ordered by id so repeated
// calls list the pool in a stable order.
func (h ListPoolItemsQueryHandler) Handle(
	ctx context.Context,
	query ListPoolItemsQuery,
) ([]ListPoolItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			sku,
			name,
			qty,
			barcode,
			category
		FROM handling_unit_items
		WHERE handling_unit_id IS NULL
	`
	args := make([]any, 0, 1)
	if query.SKU() != "" {
		stmt += " AND sku = ?"
		args = append(args, query.SKU())
	}
	stmt += " ORDER BY id"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ListPoolItemsQueryResponse, 0)
	for rows.Next() {
		var item ListPoolItemsQueryResponse
		var id uuid.UUID
		var category sql.NullString

		err = rows.Scan(&id, &item.SKU, &item.Name, &item.Qty, &item.Barcode, &category)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		item.Category = nullableString(category)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
