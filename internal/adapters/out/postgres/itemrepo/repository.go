package itemrepo

import (
	"context"
	"errors"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Add saves a new item to the database.
func (r *GormItemRepository) Add(ctx context.Context, item *handlingunit.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := FromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing item to the database.
func (r *GormItemRepository) Update(ctx context.Context, item *handlingunit.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := FromDomain(item)
	result := r.db.WithContext(ctx).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", item.ID().String())
	}

	return nil
}

// Get retrieves an item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*handlingunit.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// ListPool retrieves unassigned items, optionally narrowed to one SKU.
// Results come back ordered by id so repeated listings are stable.
func (r *GormItemRepository) ListPool(ctx context.Context, sku string) ([]*handlingunit.Item, error) {
	query := r.db.WithContext(ctx).Where("handling_unit_id IS NULL")
	if sku != "" {
		query = query.Where("sku = ?", sku)
	}

	var dtos []ItemDTO
	if err := query.Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetPoolBySKUsForUpdate retrieves every pool item matching the given SKUs
// and locks the rows until the surrounding transaction ends, keeping
// concurrent assignments of the same stock apart.
func (r *GormItemRepository) GetPoolBySKUsForUpdate(ctx context.Context, skus []string) ([]*handlingunit.Item, error) {
	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("handling_unit_id IS NULL AND sku IN ?", skus).
		Order("sku, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByIDsForUpdate retrieves and locks the items with the given ids.
// Unknown ids are skipped silently.
func (r *GormItemRepository) GetByIDsForUpdate(ctx context.Context, ids []kernel.UUID) ([]*handlingunit.Item, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", raw).
		Order("sku, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// RemoveByHandlingUnit deletes every item row attached to the given
// handling unit. Used by the full-replace flow before new lines land.
func (r *GormItemRepository) RemoveByHandlingUnit(ctx context.Context, huID kernel.UUID) error {
	if err := huID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("handling_unit_id = ?", huID.Bytes()).
		Delete(&ItemDTO{}).Error
}

func toDomainSlice(dtos []ItemDTO) ([]*handlingunit.Item, error) {
	items := make([]*handlingunit.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
