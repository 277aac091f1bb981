package hurepo

import (
	"context"
	"errors"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHandlingUnitRepository implements HandlingUnitRepository using GORM.
type GormHandlingUnitRepository struct {
	db *gorm.DB
}

// NewGormHandlingUnitRepository creates a new GORM handling unit repository.
func NewGormHandlingUnitRepository(db *gorm.DB) *GormHandlingUnitRepository {
	return &GormHandlingUnitRepository{db: db}
}

// Add saves a new handling unit to the database, lines included.
func (r *GormHandlingUnitRepository) Add(ctx context.Context, hu *handlingunit.HandlingUnit) error {
	if err := hu.Validate(); err != nil {
		return err
	}

	dto := fromDomain(hu)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing handling unit to the database. Line rows are
// upserted alongside the unit so attaching pool items in the aggregate
// lands in one write.
func (r *GormHandlingUnitRepository) Update(ctx context.Context, hu *handlingunit.HandlingUnit) error {
	if err := hu.Validate(); err != nil {
		return err
	}

	dto := fromDomain(hu)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a handling unit by ID.
func (r *GormHandlingUnitRepository) Get(ctx context.Context, id kernel.UUID) (*handlingunit.HandlingUnit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HandlingUnitDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("handling_unit", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a handling unit by its scannable code.
func (r *GormHandlingUnitRepository) GetByCode(ctx context.Context, code string) (*handlingunit.HandlingUnit, error) {
	return r.getByCode(ctx, code, false)
}

// GetByCodeForUpdate retrieves a handling unit by code and locks its row
// until the surrounding transaction ends. Workflow commands use this so two
// packers scanning the same code serialize instead of clobbering each other.
func (r *GormHandlingUnitRepository) GetByCodeForUpdate(ctx context.Context, code string) (*handlingunit.HandlingUnit, error) {
	return r.getByCode(ctx, code, true)
}

func (r *GormHandlingUnitRepository) getByCode(ctx context.Context, code string, forUpdate bool) (*handlingunit.HandlingUnit, error) {
	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Table: clause.Table{Name: "handling_units"}})
	}

	var dto HandlingUnitDTO
	if err := query.Preload("Lines").First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hu_code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}
