// Package hurepo provides data transfer objects and mapping functions for
// handling unit persistence. This package implements the repository pattern
// for the handling unit aggregate, handling the conversion between domain
// entities and database representations.
package hurepo

import (
	"time"

	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres/itemrepo"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HandlingUnitDTO represents the database structure for persisting handling
// unit aggregates. Lines live in the shared item table and hang off the
// unit via foreign key.
type HandlingUnitDTO struct {
	ID                  uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Code                string             `gorm:"type:varchar(64);not null;uniqueIndex"`
	ClientID            uuid.UUID          `gorm:"type:uuid;not null;index"`
	Status              string             `gorm:"type:varchar(32);not null"`
	AssignedPicker      *string            `gorm:"type:varchar(150)"`
	AssignedWorkstation *string            `gorm:"type:varchar(64)"`
	CreatedAt           time.Time          `gorm:"not null"`
	UpdatedAt           time.Time          `gorm:"not null"`
	Lines               []itemrepo.ItemDTO `gorm:"foreignKey:HandlingUnitID"`
}

// TableName specifies the database table name for handling unit entities.
// Overrides GORM's default naming convention to use "handling_units"
// instead of "handling_unit_dtos".
func (HandlingUnitDTO) TableName() string {
	return "handling_units"
}

// fromDomain converts a handling unit aggregate to its database
// representation, lines included.
func fromDomain(hu *handlingunit.HandlingUnit) HandlingUnitDTO {
	lines := make([]itemrepo.ItemDTO, 0, len(hu.Lines()))
	for _, line := range hu.Lines() {
		lines = append(lines, itemrepo.FromDomain(line))
	}

	return HandlingUnitDTO{
		ID:                  hu.ID().Bytes(),
		Code:                hu.Code(),
		ClientID:            hu.ClientID().Bytes(),
		Status:              hu.Status().String(),
		AssignedPicker:      hu.AssignedPicker(),
		AssignedWorkstation: hu.AssignedWorkstation(),
		CreatedAt:           hu.CreatedAt(),
		UpdatedAt:           hu.UpdatedAt(),
		Lines:               lines,
	}
}

// toDomain converts a database DTO to a handling unit aggregate.
// Reconstructs the complete aggregate including all lines using
// RestoreHandlingUnit.
func toDomain(dto HandlingUnitDTO) (*handlingunit.HandlingUnit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	status, err := handlingunit.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*handlingunit.Item, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := itemrepo.ToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return handlingunit.RestoreHandlingUnit(
		id,
		dto.Code,
		clientID,
		status,
		dto.AssignedPicker,
		dto.AssignedWorkstation,
		lines,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
