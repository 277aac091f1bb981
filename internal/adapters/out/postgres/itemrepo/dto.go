// Package itemrepo provides data transfer objects and mapping functions for
// item persistence. Items live in one table whether they wait in the shared
// pool or hang off a handling unit as a numbered line; a null handling unit
// reference marks the pool side on the wire while the domain keeps the two
// states explicit.
package itemrepo

import (
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting items.
type ItemDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	HandlingUnitID *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_hu_line"`
	LineNo         *int       `gorm:"type:int;uniqueIndex:idx_hu_line"`
	SKU            string     `gorm:"type:varchar(64);not null;index"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Qty            int        `gorm:"type:int;not null"`
	Barcode        string     `gorm:"type:varchar(64)"`
	Category       *string    `gorm:"type:varchar(32)"`
	LengthCm       *float64   `gorm:"type:numeric"`
	WidthCm        *float64   `gorm:"type:numeric"`
	HeightCm       *float64   `gorm:"type:numeric"`
	WeightG        *float64   `gorm:"type:numeric"`
	Verified       bool       `gorm:"not null;default:false"`
	VerifiedBy     *string    `gorm:"type:varchar(150)"`
	VerifiedAt     *time.Time
}

// TableName specifies the database table name for item entities.
// Overrides GORM's default naming convention to use "handling_unit_items"
// instead of "item_dtos".
func (ItemDTO) TableName() string {
	return "handling_unit_items"
}

// FromDomain converts an item domain entity to its database representation.
// Exported because the handling unit repository persists its lines through
// the same table.
func FromDomain(item *handlingunit.Item) ItemDTO {
	dto := ItemDTO{
		ID:         item.ID().Bytes(),
		SKU:        item.SKU(),
		Name:       item.Name(),
		Qty:        item.Qty(),
		Barcode:    item.Barcode(),
		Category:   item.Category(),
		LengthCm:   item.LengthCm(),
		WidthCm:    item.WidthCm(),
		HeightCm:   item.HeightCm(),
		WeightG:    item.WeightG(),
		Verified:   item.Verified(),
		VerifiedBy: item.VerifiedBy(),
		VerifiedAt: item.VerifiedAt(),
	}

	if huID, ok := item.Location().HandlingUnitID(); ok {
		raw := huID.Bytes()
		dto.HandlingUnitID = &raw
		dto.LineNo = item.Location().LineNo()
	}

	return dto
}

// ToDomain converts a database DTO to an item domain entity. Exported for
// the same reason FromDomain is.
func ToDomain(dto ItemDTO) (*handlingunit.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location := handlingunit.PoolLocation()
	if dto.HandlingUnitID != nil {
		huID, huErr := kernel.UUIDFromBytes((*dto.HandlingUnitID)[:])
		if huErr != nil {
			return nil, huErr
		}
		location, err = handlingunit.AssignedLocation(huID, dto.LineNo)
		if err != nil {
			return nil, err
		}
	}

	return handlingunit.RestoreItem(
		id,
		dto.SKU,
		dto.Name,
		dto.Qty,
		dto.Barcode,
		location,
		dto.Verified,
		dto.VerifiedBy,
		dto.VerifiedAt,
		handlingunit.Attributes{
			Category: dto.Category,
			LengthCm: dto.LengthCm,
			WidthCm:  dto.WidthCm,
			HeightCm: dto.HeightCm,
			WeightG:  dto.WeightG,
		},
	)
}
