package ports

import (
	"context"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for items outside the
// handling unit aggregate boundary, chiefly the shared unassigned pool.
// Lines that belong to a unit are persisted through HandlingUnitRepository.
type ItemRepository interface {
	// Add persists a new pool item.
	Add(ctx context.Context, item *handlingunit.Item) error

	// Update persists changes to an existing item.
	Update(ctx context.Context, item *handlingunit.Item) error

	// Get retrieves an item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*handlingunit.Item, error)

	// ListPool retrieves unassigned items ordered by SKU and then by
	// identifier. An empty sku lists the entire pool.
	ListPool(ctx context.Context, sku string) ([]*handlingunit.Item, error)

	// GetPoolBySKUsForUpdate retrieves and row-locks every unassigned item
	// whose SKU is in skus, ordered by SKU and then by identifier. The
	// locks hold until the surrounding transaction ends so two assignments
	// can never grab the same pool item.
	GetPoolBySKUsForUpdate(ctx context.Context, skus []string) ([]*handlingunit.Item, error)

	// GetByIDsForUpdate retrieves and row-locks the items with the given
	// identifiers. Unknown identifiers are silently skipped.
	GetByIDsForUpdate(ctx context.Context, ids []kernel.UUID) ([]*handlingunit.Item, error)

	// RemoveByHandlingUnit deletes every item line of the given unit. Used
	// by the full-replace flow before writing the new content.
	RemoveByHandlingUnit(ctx context.Context, huID kernel.UUID) error
}
