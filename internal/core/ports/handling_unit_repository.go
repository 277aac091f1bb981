// Package ports defines repository interfaces for the packing domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
)

// HandlingUnitRepository defines the persistence contract for handling unit
// aggregates. Units are loaded together with their item lines.
type HandlingUnitRepository interface {
	// Add persists a new handling unit aggregate with its lines.
	Add(ctx context.Context, aggregate *handlingunit.HandlingUnit) error

	// Update persists changes to an existing handling unit and its lines.
	// Lines detached from the unit since loading are returned to the pool,
	// not deleted.
	Update(ctx context.Context, aggregate *handlingunit.HandlingUnit) error

	// Get retrieves a handling unit aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*handlingunit.HandlingUnit, error)

	// GetByCode retrieves a handling unit by its scannable code.
	GetByCode(ctx context.Context, code string) (*handlingunit.HandlingUnit, error)

	// GetByCodeForUpdate retrieves a handling unit by code while holding a
	// row lock until the surrounding transaction ends. Concurrent workflow
	// commands against the same unit serialize on this lock.
	GetByCodeForUpdate(ctx context.Context, code string) (*handlingunit.HandlingUnit, error)
}
